package usecase

import (
	"context"

	"tempo/internal/modules/habit/domain"
	"tempo/internal/modules/habit/dto"
	habitin "tempo/internal/modules/habit/port/in"
	"tempo/internal/modules/habit/service"
)

type Interactor struct {
	svc *service.HabitService
}

func NewInteractor(svc *service.HabitService) habitin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateInput) (dto.HabitOutput, error) {
	habit, err := i.svc.Create(ctx, input.UserID, input.Name)
	if err != nil {
		return dto.HabitOutput{}, err
	}
	return toHabitOutput(habit), nil
}

func (i *Interactor) Complete(ctx context.Context, input dto.CompleteInput) (dto.HabitOutput, error) {
	habit, err := i.svc.Complete(ctx, input.HabitID)
	if err != nil {
		return dto.HabitOutput{}, err
	}
	return toHabitOutput(habit), nil
}

func (i *Interactor) Stats(ctx context.Context, habitID string) (dto.HabitOutput, error) {
	habit, err := i.svc.Stats(ctx, habitID)
	if err != nil {
		return dto.HabitOutput{}, err
	}
	return toHabitOutput(habit), nil
}

func (i *Interactor) List(ctx context.Context, userID string) ([]dto.HabitOutput, error) {
	habits, err := i.svc.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HabitOutput, 0, len(habits))
	for _, h := range habits {
		out = append(out, toHabitOutput(h))
	}
	return out, nil
}

func toHabitOutput(habit domain.Habit) dto.HabitOutput {
	return dto.HabitOutput{
		HabitID:          habit.ID,
		UserID:           habit.UserID,
		Name:             habit.Name,
		CurrentStreak:    habit.CurrentStreak,
		LongestStreak:    habit.LongestStreak,
		TotalCompletions: habit.TotalCompletions,
		CreatedAt:        habit.CreatedAt,
	}
}
