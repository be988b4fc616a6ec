package in

import (
	"context"
	"time"

	"tempo/internal/modules/timer/dto"
	timerin "tempo/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, userID, taskID, sessionType string) (dto.SessionOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{UserID: userID, TaskID: taskID, Type: sessionType})
}

func (h CLIHandler) Pause(ctx context.Context, userID string, at time.Time) (dto.SessionOutput, error) {
	return h.usecase.Pause(ctx, dto.PauseInput{UserID: userID, PauseStartedAt: at})
}

func (h CLIHandler) Resume(ctx context.Context, userID string, at time.Time) (dto.SessionOutput, error) {
	return h.usecase.Resume(ctx, dto.ResumeInput{UserID: userID, ResumedAt: at})
}

func (h CLIHandler) Stop(ctx context.Context, userID string, completed bool, notes string) (dto.SessionOutput, error) {
	return h.usecase.Stop(ctx, dto.StopInput{UserID: userID, WasCompleted: completed, Notes: notes})
}

func (h CLIHandler) SwitchTask(ctx context.Context, userID, newTaskID, sessionType, splitReason string) (dto.SwitchOutput, error) {
	return h.usecase.SwitchTask(ctx, dto.SwitchInput{UserID: userID, NewTaskID: newTaskID, Type: sessionType, SplitReason: splitReason})
}

func (h CLIHandler) GetActive(ctx context.Context, userID string) (dto.ActiveOutput, error) {
	return h.usecase.GetActive(ctx, userID)
}

func (h CLIHandler) GetStats(ctx context.Context, userID string, from, to time.Time) (dto.StatsOutput, error) {
	return h.usecase.GetStats(ctx, dto.StatsInput{UserID: userID, From: from, To: to})
}

func (h CLIHandler) GetHistory(ctx context.Context, input dto.HistoryInput) (dto.HistoryOutput, error) {
	return h.usecase.GetHistory(ctx, input)
}
