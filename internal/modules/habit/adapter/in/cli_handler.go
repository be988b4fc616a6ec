package in

import (
	"context"

	"tempo/internal/modules/habit/dto"
	habitin "tempo/internal/modules/habit/port/in"
)

type CLIHandler struct {
	usecase habitin.Usecase
}

func NewCLIHandler(usecase habitin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, userID, name string) (dto.HabitOutput, error) {
	return h.usecase.Create(ctx, dto.CreateInput{UserID: userID, Name: name})
}

func (h CLIHandler) Complete(ctx context.Context, habitID string) (dto.HabitOutput, error) {
	return h.usecase.Complete(ctx, dto.CompleteInput{HabitID: habitID})
}

func (h CLIHandler) Stats(ctx context.Context, habitID string) (dto.HabitOutput, error) {
	return h.usecase.Stats(ctx, habitID)
}

func (h CLIHandler) List(ctx context.Context, userID string) ([]dto.HabitOutput, error) {
	return h.usecase.List(ctx, userID)
}
