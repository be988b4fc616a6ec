package out

import (
	"context"
	"time"

	"tempo/internal/modules/metrics/domain"
)

type MetricStore interface {
	// Increment applies the delta as a single atomic upsert keyed by
	// (userID, day); concurrent increments for the same key must not lose
	// updates.
	Increment(ctx context.Context, userID string, day time.Time, delta domain.Delta) error
	GetRange(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyMetric, error)
}
