package out

import (
	"context"
	"time"

	"tempo/internal/modules/timer/domain"
)

// HistoryFilter narrows and pages a session history query.
type HistoryFilter struct {
	UserID        string
	Type          domain.SessionType
	TaskID        string
	From          time.Time
	To            time.Time
	CompletedOnly bool
	Limit         int
	Offset        int
}

type SessionStore interface {
	// Insert persists a new active session. It surfaces
	// apperrors.ErrActiveSessionExists when the storage-level uniqueness
	// constraint on active sessions rejects the row.
	Insert(ctx context.Context, session domain.Session) error
	Update(ctx context.Context, session domain.Session) error
	// FindActive returns apperrors.ErrNoActiveSession when no row with a
	// null end timestamp exists for the user.
	FindActive(ctx context.Context, userID string) (domain.Session, error)
	FindWithFilters(ctx context.Context, filter HistoryFilter) ([]domain.Session, int, error)
	AggregateTotals(ctx context.Context, userID string, from, to time.Time) (domain.StatTotals, error)
	FindByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Session, error)
}

// Learner receives completed session snapshots, best effort.
type Learner interface {
	LearnFromSession(ctx context.Context, session domain.Session) error
}
