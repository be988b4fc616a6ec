package usecase

import (
	"context"
	"time"

	"tempo/internal/modules/metrics/dto"
	metricsin "tempo/internal/modules/metrics/port/in"
	"tempo/internal/modules/metrics/service"
)

type Interactor struct {
	svc *service.MetricsService
}

func NewInteractor(svc *service.MetricsService) metricsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) RecordSessionCompletion(ctx context.Context, input dto.RecordSessionInput) error {
	return i.svc.RecordCompletion(ctx, input.UserID, input.Kind, input.DurationMin, input.Day)
}

func (i *Interactor) RecordTaskCreated(ctx context.Context, input dto.RecordTaskEventInput) error {
	return i.svc.RecordTaskCreated(ctx, input.UserID, input.Day)
}

func (i *Interactor) RecordTaskCompleted(ctx context.Context, input dto.RecordTaskEventInput) error {
	return i.svc.RecordTaskCompleted(ctx, input.UserID, input.Day)
}

func (i *Interactor) GetRange(ctx context.Context, userID string, from, to time.Time) ([]dto.DailyMetricOutput, error) {
	metrics, err := i.svc.Range(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DailyMetricOutput, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, dto.DailyMetricOutput{
			Date:                 m.Date,
			TasksCreated:         m.TasksCreated,
			TasksCompleted:       m.TasksCompleted,
			PomodorosCompleted:   m.PomodorosCompleted,
			MinutesWorked:        m.MinutesWorked,
			ShortBreaksCompleted: m.ShortBreaksCompleted,
			LongBreaksCompleted:  m.LongBreaksCompleted,
		})
	}
	return out, nil
}
