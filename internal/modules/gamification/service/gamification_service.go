package service

import (
	"context"
	"fmt"

	"tempo/internal/modules/gamification/domain"
	gamificationout "tempo/internal/modules/gamification/port/out"
	apperrors "tempo/internal/platform/errors"
)

type GamificationService struct {
	store gamificationout.ProfileStore
}

func NewGamificationService(store gamificationout.ProfileStore) *GamificationService {
	return &GamificationService{store: store}
}

func (s *GamificationService) Award(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	return s.store.AddAward(ctx, userID, domain.XPPerPomodoro)
}

func (s *GamificationService) Profile(ctx context.Context, userID string) (domain.Profile, error) {
	if userID == "" {
		return domain.Profile{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	return s.store.Get(ctx, userID)
}
