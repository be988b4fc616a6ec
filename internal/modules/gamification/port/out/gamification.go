package out

import (
	"context"

	"tempo/internal/modules/gamification/domain"
)

type ProfileStore interface {
	// AddAward increments the profile counters atomically, creating the row
	// on first award.
	AddAward(ctx context.Context, userID string, xp int) error
	Get(ctx context.Context, userID string) (domain.Profile, error)
}
