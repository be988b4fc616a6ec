package service

import (
	"context"
	"fmt"
	"time"

	"tempo/internal/modules/metrics/domain"
	metricsout "tempo/internal/modules/metrics/port/out"
	apperrors "tempo/internal/platform/errors"
)

type MetricsService struct {
	store metricsout.MetricStore
}

func NewMetricsService(store metricsout.MetricStore) *MetricsService {
	return &MetricsService{store: store}
}

func (s *MetricsService) RecordCompletion(ctx context.Context, userID, kind string, durationMin int, day time.Time) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	delta, err := domain.DeltaForCompletion(kind, durationMin)
	if err != nil {
		return err
	}
	return s.store.Increment(ctx, userID, day, delta)
}

func (s *MetricsService) RecordTaskCreated(ctx context.Context, userID string, day time.Time) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	return s.store.Increment(ctx, userID, day, domain.Delta{TasksCreated: 1})
}

func (s *MetricsService) RecordTaskCompleted(ctx context.Context, userID string, day time.Time) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	return s.store.Increment(ctx, userID, day, domain.Delta{TasksCompleted: 1})
}

func (s *MetricsService) Range(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyMetric, error) {
	return s.store.GetRange(ctx, userID, from, to)
}
