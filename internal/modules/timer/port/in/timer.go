package in

import (
	"context"

	"tempo/internal/modules/timer/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.SessionOutput, error)
	Pause(ctx context.Context, input dto.PauseInput) (dto.SessionOutput, error)
	Resume(ctx context.Context, input dto.ResumeInput) (dto.SessionOutput, error)
	Stop(ctx context.Context, input dto.StopInput) (dto.SessionOutput, error)
	SwitchTask(ctx context.Context, input dto.SwitchInput) (dto.SwitchOutput, error)
	GetActive(ctx context.Context, userID string) (dto.ActiveOutput, error)
	GetStats(ctx context.Context, input dto.StatsInput) (dto.StatsOutput, error)
	GetHistory(ctx context.Context, input dto.HistoryInput) (dto.HistoryOutput, error)
}
