package out

import (
	"context"
	"time"

	"tempo/internal/modules/habit/domain"
)

type HabitStore interface {
	Insert(ctx context.Context, habit domain.Habit) error
	Update(ctx context.Context, habit domain.Habit) error
	// Get returns apperrors.ErrNotFound for unknown ids.
	Get(ctx context.Context, habitID string) (domain.Habit, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Habit, error)
	// AddCompletion records a date-granular completion; a repeat for the
	// same day is a no-op and reports inserted=false.
	AddCompletion(ctx context.Context, habitID string, day time.Time) (inserted bool, err error)
	// CompletionDates returns completion days, most recent first, capped to
	// limit entries.
	CompletionDates(ctx context.Context, habitID string, limit int) ([]time.Time, error)
}
