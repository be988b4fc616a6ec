package in

import (
	"context"

	"tempo/internal/modules/habit/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateInput) (dto.HabitOutput, error)
	Complete(ctx context.Context, input dto.CompleteInput) (dto.HabitOutput, error)
	Stats(ctx context.Context, habitID string) (dto.HabitOutput, error)
	List(ctx context.Context, userID string) ([]dto.HabitOutput, error)
}
