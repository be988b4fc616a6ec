package in

import (
	"context"
	"time"

	"tempo/internal/modules/metrics/dto"
)

type Usecase interface {
	RecordSessionCompletion(ctx context.Context, input dto.RecordSessionInput) error
	RecordTaskCreated(ctx context.Context, input dto.RecordTaskEventInput) error
	RecordTaskCompleted(ctx context.Context, input dto.RecordTaskEventInput) error
	GetRange(ctx context.Context, userID string, from, to time.Time) ([]dto.DailyMetricOutput, error)
}
