package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tempo/internal/modules/metrics/domain"
	"tempo/internal/modules/metrics/dto"
	"tempo/internal/modules/metrics/service"
	"tempo/internal/modules/metrics/usecase"
	apperrors "tempo/internal/platform/errors"
)

type memoryMetricStore struct {
	increments []domain.Delta
	rows       []domain.DailyMetric
}

func (s *memoryMetricStore) Increment(_ context.Context, _ string, _ time.Time, delta domain.Delta) error {
	s.increments = append(s.increments, delta)
	return nil
}

func (s *memoryMetricStore) GetRange(context.Context, string, time.Time, time.Time) ([]domain.DailyMetric, error) {
	return s.rows, nil
}

func TestRecordSessionCompletionMapsKindToDelta(t *testing.T) {
	t.Parallel()
	store := &memoryMetricStore{}
	uc := usecase.NewInteractor(service.NewMetricsService(store))
	ctx := context.Background()
	day := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	if err := uc.RecordSessionCompletion(ctx, dto.RecordSessionInput{UserID: "u1", Kind: "pomodoro", DurationMin: 25, Day: day}); err != nil {
		t.Fatalf("record pomodoro: %v", err)
	}
	if err := uc.RecordSessionCompletion(ctx, dto.RecordSessionInput{UserID: "u1", Kind: "short_break", DurationMin: 5, Day: day}); err != nil {
		t.Fatalf("record break: %v", err)
	}
	if len(store.increments) != 2 {
		t.Fatalf("expected 2 increments, got %d", len(store.increments))
	}
	if store.increments[0].MinutesWorked != 25 || store.increments[0].PomodorosCompleted != 1 {
		t.Fatalf("unexpected pomodoro delta: %+v", store.increments[0])
	}
	if store.increments[1].ShortBreaksCompleted != 1 || store.increments[1].MinutesWorked != 0 {
		t.Fatalf("breaks must not add worked minutes: %+v", store.increments[1])
	}
}

func TestRecordSessionCompletionRejectsBadInput(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewMetricsService(&memoryMetricStore{}))
	ctx := context.Background()
	day := time.Now()

	if err := uc.RecordSessionCompletion(ctx, dto.RecordSessionInput{Kind: "pomodoro", Day: day}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("missing user: expected ErrInvalidInput, got %v", err)
	}
	if err := uc.RecordSessionCompletion(ctx, dto.RecordSessionInput{UserID: "u1", Kind: "nap", Day: day}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown kind: expected ErrInvalidInput, got %v", err)
	}
}

func TestTaskEventsIncrementSingleCounters(t *testing.T) {
	t.Parallel()
	store := &memoryMetricStore{}
	uc := usecase.NewInteractor(service.NewMetricsService(store))
	ctx := context.Background()
	day := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	if err := uc.RecordTaskCreated(ctx, dto.RecordTaskEventInput{UserID: "u1", Day: day}); err != nil {
		t.Fatalf("task created: %v", err)
	}
	if err := uc.RecordTaskCompleted(ctx, dto.RecordTaskEventInput{UserID: "u1", Day: day}); err != nil {
		t.Fatalf("task completed: %v", err)
	}
	if store.increments[0] != (domain.Delta{TasksCreated: 1}) {
		t.Fatalf("unexpected created delta: %+v", store.increments[0])
	}
	if store.increments[1] != (domain.Delta{TasksCompleted: 1}) {
		t.Fatalf("unexpected completed delta: %+v", store.increments[1])
	}
}

func TestGetRangeMapsToOutputs(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	store := &memoryMetricStore{rows: []domain.DailyMetric{
		{UserID: "u1", Date: day, MinutesWorked: 50, PomodorosCompleted: 2, TasksCreated: 1},
	}}
	uc := usecase.NewInteractor(service.NewMetricsService(store))

	out, err := uc.GetRange(context.Background(), "u1", day, day)
	if err != nil {
		t.Fatalf("get range: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one row, got %d", len(out))
	}
	if out[0].MinutesWorked != 50 || out[0].PomodorosCompleted != 2 || out[0].TasksCreated != 1 {
		t.Fatalf("unexpected output: %+v", out[0])
	}
}
