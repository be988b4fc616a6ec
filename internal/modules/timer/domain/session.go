package domain

import (
	"fmt"
	"time"

	apperrors "tempo/internal/platform/errors"
)

const SchemaVersion = 1

type SessionType string

const (
	TypeWork       SessionType = "work"
	TypePomodoro   SessionType = "pomodoro"
	TypeContinuous SessionType = "continuous"
	TypeShortBreak SessionType = "short_break"
	TypeLongBreak  SessionType = "long_break"
)

func ParseSessionType(raw string) (SessionType, error) {
	switch SessionType(raw) {
	case TypeWork, TypePomodoro, TypeContinuous, TypeShortBreak, TypeLongBreak:
		return SessionType(raw), nil
	}
	return "", fmt.Errorf("%w: unknown session type %q", apperrors.ErrInvalidInput, raw)
}

// CountsAsWork reports whether completed sessions of this type contribute
// minutes to daily metrics.
func (t SessionType) CountsAsWork() bool {
	return t == TypeWork || t == TypePomodoro || t == TypeContinuous
}

// AwardsPomodoro reports whether completing this type earns a gamification
// award and a pomodorosCompleted increment.
func (t SessionType) AwardsPomodoro() bool {
	return t == TypeWork || t == TypePomodoro
}

// Session is one contiguous (modulo pauses) interval of tracked time.
// A zero EndedAt means the session is still active; a zero CurrentPauseStart
// means it is not paused. TotalPauseSeconds accumulates completed pauses only.
type Session struct {
	ID                string
	UserID            string
	TaskID            string
	Type              SessionType
	StartedAt         time.Time
	EndedAt           time.Time
	CurrentPauseStart time.Time
	TotalPauseSeconds int
	PauseCount        int
	DurationMin       int
	WasCompleted      bool
	Notes             string
	SplitReason       string
}

func (s Session) IsActive() bool {
	return s.EndedAt.IsZero()
}

func (s Session) IsPaused() bool {
	return !s.CurrentPauseStart.IsZero()
}
