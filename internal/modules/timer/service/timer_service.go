package service

import (
	"context"
	"fmt"
	"time"

	"tempo/internal/modules/timer/domain"
	timerout "tempo/internal/modules/timer/port/out"
	"tempo/internal/platform/clock"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/platform/id"
)

// TimerService enforces the session state machine. Every transition loads the
// active row, checks state explicitly, and writes back in one store call; the
// single-active-session invariant itself lives in the store's uniqueness
// constraint, not here.
type TimerService struct {
	clock clock.Clock
	idGen id.Generator
	store timerout.SessionStore
}

func NewTimerService(clock clock.Clock, idGen id.Generator, store timerout.SessionStore) *TimerService {
	return &TimerService{clock: clock, idGen: idGen, store: store}
}

func (s *TimerService) Start(ctx context.Context, userID, taskID string, sessionType domain.SessionType) (domain.Session, error) {
	if userID == "" {
		return domain.Session{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	session := domain.Session{
		ID:        s.idGen.New(),
		UserID:    userID,
		TaskID:    taskID,
		Type:      sessionType,
		StartedAt: s.clock.Now(),
	}
	if err := s.store.Insert(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func (s *TimerService) Pause(ctx context.Context, userID string, pauseStartedAt time.Time) (domain.Session, error) {
	session, err := s.store.FindActive(ctx, userID)
	if err != nil {
		return domain.Session{}, err
	}
	if session.IsPaused() {
		return domain.Session{}, apperrors.ErrSessionAlreadyPaused
	}
	if pauseStartedAt.Before(session.StartedAt) {
		return domain.Session{}, fmt.Errorf("%w: pause start predates session start", apperrors.ErrInvalidInput)
	}
	session.CurrentPauseStart = pauseStartedAt
	session.PauseCount++
	if err := s.store.Update(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// Resume closes the open pause. The stored pause start is authoritative; a
// caller-supplied pause start that disagrees with it is rejected, as is a
// resume instant earlier than the pause start (clock skew).
func (s *TimerService) Resume(ctx context.Context, userID string, pauseStartedAt, resumedAt time.Time) (domain.Session, error) {
	session, err := s.store.FindActive(ctx, userID)
	if err != nil {
		return domain.Session{}, err
	}
	if !session.IsPaused() {
		return domain.Session{}, apperrors.ErrSessionNotPaused
	}
	if !pauseStartedAt.IsZero() && !pauseStartedAt.Equal(session.CurrentPauseStart) {
		return domain.Session{}, fmt.Errorf("%w: pause start mismatch", apperrors.ErrInvalidInput)
	}
	if resumedAt.Before(session.CurrentPauseStart) {
		return domain.Session{}, fmt.Errorf("%w: resume instant predates pause start", apperrors.ErrInvalidInput)
	}
	session.TotalPauseSeconds += int(resumedAt.Sub(session.CurrentPauseStart).Seconds())
	session.CurrentPauseStart = time.Time{}
	if err := s.store.Update(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// Stop finalizes the active session. An open pause is folded into the pause
// total using now as the implicit resume instant.
func (s *TimerService) Stop(ctx context.Context, userID string, wasCompleted bool, notes, splitReason string) (domain.Session, error) {
	session, err := s.store.FindActive(ctx, userID)
	if err != nil {
		return domain.Session{}, err
	}
	now := s.clock.Now()
	if session.IsPaused() {
		if now.After(session.CurrentPauseStart) {
			session.TotalPauseSeconds += int(now.Sub(session.CurrentPauseStart).Seconds())
		}
		session.CurrentPauseStart = time.Time{}
	}
	session.EndedAt = now
	session.WasCompleted = wasCompleted
	session.DurationMin = domain.DurationMinutes(session.StartedAt, session.EndedAt, session.TotalPauseSeconds)
	if notes != "" {
		session.Notes = notes
	}
	if splitReason != "" {
		session.SplitReason = splitReason
	}
	if err := s.store.Update(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// Active returns the running session with elapsed time recomputed from the
// wall clock, never from a stored counter.
func (s *TimerService) Active(ctx context.Context, userID string) (domain.Session, int, error) {
	session, err := s.store.FindActive(ctx, userID)
	if err != nil {
		return domain.Session{}, 0, err
	}
	elapsed := domain.ElapsedSeconds(s.clock.Now(), session.StartedAt, session.TotalPauseSeconds, session.CurrentPauseStart)
	return session, elapsed, nil
}

func (s *TimerService) Totals(ctx context.Context, userID string, from, to time.Time) (domain.StatTotals, error) {
	return s.store.AggregateTotals(ctx, userID, from, to)
}

func (s *TimerService) SessionsBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.Session, error) {
	return s.store.FindByDateRange(ctx, userID, from, to)
}

func (s *TimerService) History(ctx context.Context, filter timerout.HistoryFilter) ([]domain.Session, int, error) {
	return s.store.FindWithFilters(ctx, filter)
}
