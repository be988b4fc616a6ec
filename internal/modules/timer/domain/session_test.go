package domain_test

import (
	"errors"
	"testing"
	"time"

	"tempo/internal/modules/timer/domain"
	apperrors "tempo/internal/platform/errors"
)

func TestParseSessionType(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"work", "pomodoro", "continuous", "short_break", "long_break"} {
		if _, err := domain.ParseSessionType(raw); err != nil {
			t.Fatalf("expected %q to parse, got %v", raw, err)
		}
	}
	if _, err := domain.ParseSessionType("nap"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSessionTypeClassification(t *testing.T) {
	t.Parallel()
	if !domain.TypeContinuous.CountsAsWork() || domain.TypeContinuous.AwardsPomodoro() {
		t.Fatalf("continuous sessions count minutes but never award pomodoros")
	}
	if domain.TypeShortBreak.CountsAsWork() || domain.TypeLongBreak.AwardsPomodoro() {
		t.Fatalf("break sessions contribute nothing to work metrics")
	}
	if !domain.TypeWork.AwardsPomodoro() || !domain.TypePomodoro.AwardsPomodoro() {
		t.Fatalf("work and pomodoro completions award pomodoros")
	}
}

func TestSessionStateFromTimestamps(t *testing.T) {
	t.Parallel()
	s := domain.Session{StartedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	if !s.IsActive() || s.IsPaused() {
		t.Fatalf("fresh session must be active and unpaused")
	}
	s.CurrentPauseStart = s.StartedAt.Add(time.Minute)
	if !s.IsPaused() {
		t.Fatalf("session with an open pause must report paused")
	}
	s.EndedAt = s.StartedAt.Add(time.Hour)
	if s.IsActive() {
		t.Fatalf("ended session must not be active")
	}
}
