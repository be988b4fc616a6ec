package usecase

import (
	"context"
	"time"

	"tempo/internal/modules/gamification/domain"
	"tempo/internal/modules/gamification/dto"
	gamificationin "tempo/internal/modules/gamification/port/in"
	"tempo/internal/modules/gamification/service"
	metricsin "tempo/internal/modules/metrics/port/in"
	"tempo/internal/platform/clock"
	"tempo/internal/platform/streak"
)

type Interactor struct {
	svc     *service.GamificationService
	metrics metricsin.Usecase
	clock   clock.Clock
}

func NewInteractor(svc *service.GamificationService, metrics metricsin.Usecase, clk clock.Clock) gamificationin.Usecase {
	return &Interactor{svc: svc, metrics: metrics, clock: clk}
}

func (i *Interactor) AwardPomodoroCompletion(ctx context.Context, userID string) error {
	return i.svc.Award(ctx, userID)
}

// GetProfile returns the stored XP totals plus the work-day streak, derived
// from daily metrics days with at least one completed pomodoro.
func (i *Interactor) GetProfile(ctx context.Context, userID string) (dto.ProfileOutput, error) {
	profile, err := i.svc.Profile(ctx, userID)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	workStreak := 0
	if i.metrics != nil {
		today := streak.Day(i.clock.Now())
		from := today.AddDate(0, 0, -streak.LookbackLimit)
		days, err := i.metrics.GetRange(ctx, userID, from, today)
		if err != nil {
			return dto.ProfileOutput{}, err
		}
		dates := make([]time.Time, 0, len(days))
		for idx := len(days) - 1; idx >= 0; idx-- {
			if days[idx].PomodorosCompleted > 0 {
				dates = append(dates, days[idx].Date)
			}
		}
		workStreak = streak.Current(today, dates)
	}
	return dto.ProfileOutput{
		UserID:             profile.UserID,
		XP:                 profile.XP,
		Level:              domain.LevelForXP(profile.XP),
		PomodorosCompleted: profile.PomodorosCompleted,
		WorkDayStreak:      workStreak,
	}, nil
}
