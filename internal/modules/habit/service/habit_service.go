package service

import (
	"context"
	"fmt"
	"time"

	"tempo/internal/modules/habit/domain"
	habitout "tempo/internal/modules/habit/port/out"
	"tempo/internal/platform/clock"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/platform/id"
	"tempo/internal/platform/streak"
)

type HabitService struct {
	clock clock.Clock
	idGen id.Generator
	store habitout.HabitStore
}

func NewHabitService(clock clock.Clock, idGen id.Generator, store habitout.HabitStore) *HabitService {
	return &HabitService{clock: clock, idGen: idGen, store: store}
}

func (s *HabitService) Create(ctx context.Context, userID, name string) (domain.Habit, error) {
	if userID == "" || name == "" {
		return domain.Habit{}, fmt.Errorf("%w: user id and name are required", apperrors.ErrInvalidInput)
	}
	habit := domain.Habit{
		ID:        s.idGen.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: s.clock.Now(),
	}
	if err := s.store.Insert(ctx, habit); err != nil {
		return domain.Habit{}, err
	}
	return habit, nil
}

// Complete records today's completion and refreshes the streak state. A
// duplicate same-day completion changes nothing.
func (s *HabitService) Complete(ctx context.Context, habitID string) (domain.Habit, error) {
	habit, err := s.store.Get(ctx, habitID)
	if err != nil {
		return domain.Habit{}, err
	}
	today := streak.Day(s.clock.Now())
	inserted, err := s.store.AddCompletion(ctx, habitID, today)
	if err != nil {
		return domain.Habit{}, err
	}
	if inserted {
		habit.TotalCompletions++
	}
	habit, err = s.refreshStreak(ctx, habit, today)
	if err != nil {
		return domain.Habit{}, err
	}
	if err := s.store.Update(ctx, habit); err != nil {
		return domain.Habit{}, err
	}
	return habit, nil
}

// Stats recomputes the current streak from history; the stored value is a
// cache, not a source of truth.
func (s *HabitService) Stats(ctx context.Context, habitID string) (domain.Habit, error) {
	habit, err := s.store.Get(ctx, habitID)
	if err != nil {
		return domain.Habit{}, err
	}
	return s.refreshStreak(ctx, habit, streak.Day(s.clock.Now()))
}

func (s *HabitService) List(ctx context.Context, userID string) ([]domain.Habit, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *HabitService) refreshStreak(ctx context.Context, habit domain.Habit, today time.Time) (domain.Habit, error) {
	dates, err := s.store.CompletionDates(ctx, habit.ID, streak.LookbackLimit)
	if err != nil {
		return domain.Habit{}, err
	}
	habit.CurrentStreak = streak.Current(today, dates)
	habit.LongestStreak = streak.Longest(habit.LongestStreak, habit.CurrentStreak)
	return habit, nil
}
