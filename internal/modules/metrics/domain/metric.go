package domain

import (
	"fmt"
	"time"

	apperrors "tempo/internal/platform/errors"
)

// DailyMetric holds the additive per-user-per-day counters. Rows are created
// on first event and only ever incremented afterwards.
type DailyMetric struct {
	UserID               string
	Date                 time.Time
	TasksCreated         int
	TasksCompleted       int
	PomodorosCompleted   int
	MinutesWorked        int
	ShortBreaksCompleted int
	LongBreaksCompleted  int
}

// Delta is a set of counter increments applied atomically at the store.
type Delta struct {
	TasksCreated         int
	TasksCompleted       int
	PomodorosCompleted   int
	MinutesWorked        int
	ShortBreaksCompleted int
	LongBreaksCompleted  int
}

func (d Delta) IsZero() bool {
	return d == Delta{}
}

// DeltaForCompletion maps a completed session kind to its counter increments.
// Kinds use the timer module's wire names.
func DeltaForCompletion(kind string, durationMin int) (Delta, error) {
	switch kind {
	case "work", "pomodoro":
		return Delta{MinutesWorked: durationMin, PomodorosCompleted: 1}, nil
	case "continuous":
		return Delta{MinutesWorked: durationMin}, nil
	case "short_break":
		return Delta{ShortBreaksCompleted: 1}, nil
	case "long_break":
		return Delta{LongBreaksCompleted: 1}, nil
	}
	return Delta{}, fmt.Errorf("%w: unknown session kind %q", apperrors.ErrInvalidInput, kind)
}
