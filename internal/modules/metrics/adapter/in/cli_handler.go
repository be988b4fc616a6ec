package in

import (
	"context"
	"time"

	"tempo/internal/modules/metrics/dto"
	metricsin "tempo/internal/modules/metrics/port/in"
)

type CLIHandler struct {
	usecase metricsin.Usecase
}

func NewCLIHandler(usecase metricsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// TaskCreated and TaskCompleted are the surface for external task-lifecycle
// events; full task management lives outside this system.
func (h CLIHandler) TaskCreated(ctx context.Context, userID string, day time.Time) error {
	return h.usecase.RecordTaskCreated(ctx, dto.RecordTaskEventInput{UserID: userID, Day: day})
}

func (h CLIHandler) TaskCompleted(ctx context.Context, userID string, day time.Time) error {
	return h.usecase.RecordTaskCompleted(ctx, dto.RecordTaskEventInput{UserID: userID, Day: day})
}

func (h CLIHandler) GetRange(ctx context.Context, userID string, from, to time.Time) ([]dto.DailyMetricOutput, error) {
	return h.usecase.GetRange(ctx, userID, from, to)
}
