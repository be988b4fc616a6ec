package in

import (
	"context"

	"tempo/internal/modules/gamification/dto"
)

type Usecase interface {
	AwardPomodoroCompletion(ctx context.Context, userID string) error
	GetProfile(ctx context.Context, userID string) (dto.ProfileOutput, error)
}
