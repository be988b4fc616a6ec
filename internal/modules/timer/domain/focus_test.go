package domain_test

import (
	"math"
	"testing"
	"time"

	"tempo/internal/modules/timer/domain"
)

func TestFocusScorePercentageOfWorkedTime(t *testing.T) {
	t.Parallel()
	got := domain.FocusScore(15000, 300)
	if math.Abs(got-98.0392) > 0.001 {
		t.Fatalf("expected focus score ~98.0392, got %f", got)
	}
}

func TestFocusScoreZeroWorkScoresZero(t *testing.T) {
	t.Parallel()
	if got := domain.FocusScore(0, 500); got != 0 {
		t.Fatalf("expected zero score, got %f", got)
	}
}

func TestFocusScoreNoPausesIsHundred(t *testing.T) {
	t.Parallel()
	if got := domain.FocusScore(3600, 0); got != 100 {
		t.Fatalf("expected 100, got %f", got)
	}
}

func TestRatiosGuardAgainstZeroSessions(t *testing.T) {
	t.Parallel()
	if got := domain.CompletionRate(0, 0); got != 0 {
		t.Fatalf("completion rate: expected 0, got %f", got)
	}
	if got := domain.AvgSessionMinutes(0, 0); got != 0 {
		t.Fatalf("avg minutes: expected 0, got %f", got)
	}
	if got := domain.AvgPausesPerSession(0, 0); got != 0 {
		t.Fatalf("avg pauses: expected 0, got %f", got)
	}
	if got := domain.CompletionRate(3, 4); got != 75 {
		t.Fatalf("completion rate: expected 75, got %f", got)
	}
}

func TestDailyBreakdownZeroFillsAndOrdersDays(t *testing.T) {
	t.Parallel()
	from := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)
	to := time.Date(2026, 3, 7, 8, 0, 0, 0, time.UTC)
	sessions := []domain.Session{
		{
			StartedAt:         time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC),
			EndedAt:           time.Date(2026, 3, 3, 9, 25, 0, 0, time.UTC),
			DurationMin:       25,
			TotalPauseSeconds: 60,
			WasCompleted:      true,
		},
		{
			StartedAt:    time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC),
			EndedAt:      time.Date(2026, 3, 3, 15, 10, 0, 0, time.UTC),
			DurationMin:  10,
			WasCompleted: false,
		},
	}
	buckets := domain.DailyBreakdown(from, to, sessions)
	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}
	for i, b := range buckets {
		want := time.Date(2026, 3, 1+i, 0, 0, 0, 0, time.UTC)
		if !b.Date.Equal(want) {
			t.Fatalf("bucket %d: expected date %s, got %s", i, want, b.Date)
		}
	}
	day := buckets[2]
	if day.Sessions != 2 || day.CompletedSessions != 1 || day.MinutesWorked != 35 || day.PauseSeconds != 60 {
		t.Fatalf("unexpected bucket for march 3rd: %+v", day)
	}
	if buckets[0].Sessions != 0 || buckets[6].Sessions != 0 {
		t.Fatalf("expected zero-valued buckets on empty days")
	}
}

func TestDailyBreakdownSkipsActiveSessions(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	sessions := []domain.Session{
		{StartedAt: day.Add(9 * time.Hour)}, // still running
	}
	buckets := domain.DailyBreakdown(day, day, sessions)
	if len(buckets) != 1 || buckets[0].Sessions != 0 {
		t.Fatalf("active session must not be counted: %+v", buckets)
	}
}

func TestDailyBreakdownEmptyWhenRangeInverted(t *testing.T) {
	t.Parallel()
	from := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)
	if buckets := domain.DailyBreakdown(from, to, nil); buckets != nil {
		t.Fatalf("expected nil for inverted range, got %+v", buckets)
	}
}
