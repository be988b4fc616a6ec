package in

import (
	"context"

	"tempo/internal/modules/gamification/dto"
	gamificationin "tempo/internal/modules/gamification/port/in"
)

type CLIHandler struct {
	usecase gamificationin.Usecase
}

func NewCLIHandler(usecase gamificationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Profile(ctx context.Context, userID string) (dto.ProfileOutput, error) {
	return h.usecase.GetProfile(ctx, userID)
}
