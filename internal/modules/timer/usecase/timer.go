package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	gamificationin "tempo/internal/modules/gamification/port/in"
	metricsdto "tempo/internal/modules/metrics/dto"
	metricsin "tempo/internal/modules/metrics/port/in"
	"tempo/internal/modules/timer/domain"
	"tempo/internal/modules/timer/dto"
	timerin "tempo/internal/modules/timer/port/in"
	timerout "tempo/internal/modules/timer/port/out"
	"tempo/internal/modules/timer/service"
	"tempo/internal/platform/tx"
)

const sideEffectTimeout = 5 * time.Second

// Dispatcher runs a side-effect task off the caller's path. The default
// dispatcher spawns a goroutine; tests substitute a synchronous one.
type Dispatcher func(func())

type Interactor struct {
	svc          *service.TimerService
	metrics      metricsin.Usecase
	gamification gamificationin.Usecase
	learner      timerout.Learner
	txm          tx.Manager
	logger       *slog.Logger
	dispatch     Dispatcher
	pending      sync.WaitGroup
}

func NewInteractor(
	svc *service.TimerService,
	metrics metricsin.Usecase,
	gamification gamificationin.Usecase,
	learner timerout.Learner,
	txm tx.Manager,
	logger *slog.Logger,
) *Interactor {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	i := &Interactor{
		svc:          svc,
		metrics:      metrics,
		gamification: gamification,
		learner:      learner,
		txm:          txm,
		logger:       logger,
	}
	i.dispatch = func(task func()) {
		i.pending.Add(1)
		go func() {
			defer i.pending.Done()
			task()
		}()
	}
	return i
}

// Drain blocks until in-flight completion side effects finish. Intended for
// shutdown; callers on the hot path never wait.
func (i *Interactor) Drain() {
	i.pending.Wait()
}

var _ timerin.Usecase = (*Interactor)(nil)

// WithDispatcher overrides how completion side effects are scheduled.
func (i *Interactor) WithDispatcher(dispatch Dispatcher) *Interactor {
	i.dispatch = dispatch
	return i
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.SessionOutput, error) {
	sessionType, err := domain.ParseSessionType(input.Type)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	var session domain.Session
	err = i.txm.Within(ctx, func(ctx context.Context) error {
		session, err = i.svc.Start(ctx, input.UserID, input.TaskID, sessionType)
		return err
	})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) Pause(ctx context.Context, input dto.PauseInput) (dto.SessionOutput, error) {
	var session domain.Session
	err := i.txm.Within(ctx, func(ctx context.Context) error {
		var err error
		session, err = i.svc.Pause(ctx, input.UserID, input.PauseStartedAt)
		return err
	})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) Resume(ctx context.Context, input dto.ResumeInput) (dto.SessionOutput, error) {
	var session domain.Session
	err := i.txm.Within(ctx, func(ctx context.Context) error {
		var err error
		session, err = i.svc.Resume(ctx, input.UserID, input.PauseStartedAt, input.ResumedAt)
		return err
	})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

// Stop finalizes the active session and, for completed sessions, updates the
// day's metrics in the same transaction before firing best-effort collaborator
// notifications.
func (i *Interactor) Stop(ctx context.Context, input dto.StopInput) (dto.SessionOutput, error) {
	var session domain.Session
	err := i.txm.Within(ctx, func(ctx context.Context) error {
		var err error
		session, err = i.svc.Stop(ctx, input.UserID, input.WasCompleted, input.Notes, "")
		if err != nil {
			return err
		}
		return i.recordCompletion(ctx, session)
	})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	i.notifyCompletion(session)
	return toSessionOutput(session), nil
}

// SwitchTask stops the active session as completed and starts a new one for
// the next task inside a single transaction, so no reader ever observes zero
// or two active sessions.
func (i *Interactor) SwitchTask(ctx context.Context, input dto.SwitchInput) (dto.SwitchOutput, error) {
	sessionType, err := domain.ParseSessionType(input.Type)
	if err != nil {
		return dto.SwitchOutput{}, err
	}
	var oldSession, newSession domain.Session
	err = i.txm.Within(ctx, func(ctx context.Context) error {
		var err error
		oldSession, err = i.svc.Stop(ctx, input.UserID, true, "", input.SplitReason)
		if err != nil {
			return err
		}
		if err := i.recordCompletion(ctx, oldSession); err != nil {
			return err
		}
		newSession, err = i.svc.Start(ctx, input.UserID, input.NewTaskID, sessionType)
		return err
	})
	if err != nil {
		return dto.SwitchOutput{}, err
	}
	i.notifyCompletion(oldSession)
	return dto.SwitchOutput{
		OldSession: toSessionOutput(oldSession),
		NewSession: toSessionOutput(newSession),
	}, nil
}

func (i *Interactor) GetActive(ctx context.Context, userID string) (dto.ActiveOutput, error) {
	session, elapsed, err := i.svc.Active(ctx, userID)
	if err != nil {
		return dto.ActiveOutput{}, err
	}
	return dto.ActiveOutput{
		Session:        toSessionOutput(session),
		ElapsedSeconds: elapsed,
		IsPaused:       session.IsPaused(),
	}, nil
}

func (i *Interactor) GetStats(ctx context.Context, input dto.StatsInput) (dto.StatsOutput, error) {
	totals, err := i.svc.Totals(ctx, input.UserID, input.From, input.To)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	sessions, err := i.svc.SessionsBetween(ctx, input.UserID, input.From, input.To)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	breakdown := domain.DailyBreakdown(input.From, input.To, sessions)
	days := make([]dto.DayStats, 0, len(breakdown))
	for _, b := range breakdown {
		days = append(days, dto.DayStats{
			Date:              b.Date,
			Sessions:          b.Sessions,
			CompletedSessions: b.CompletedSessions,
			MinutesWorked:     b.MinutesWorked,
			PauseSeconds:      b.PauseSeconds,
		})
	}
	return dto.StatsOutput{
		Sessions:            totals.Sessions,
		CompletedSessions:   totals.CompletedSessions,
		MinutesWorked:       totals.MinutesWorked,
		FocusScore:          domain.FocusScore(totals.WorkSeconds, totals.PauseSeconds),
		CompletionRate:      domain.CompletionRate(totals.CompletedSessions, totals.Sessions),
		AvgSessionMinutes:   domain.AvgSessionMinutes(totals.MinutesWorked, totals.Sessions),
		AvgPausesPerSession: domain.AvgPausesPerSession(totals.Pauses, totals.Sessions),
		DailyBreakdown:      days,
	}, nil
}

func (i *Interactor) GetHistory(ctx context.Context, input dto.HistoryInput) (dto.HistoryOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = 20
	}
	filter := timerout.HistoryFilter{
		UserID:        input.UserID,
		TaskID:        input.TaskID,
		From:          input.From,
		To:            input.To,
		CompletedOnly: input.CompletedOnly,
		Limit:         perPage,
		Offset:        (page - 1) * perPage,
	}
	if input.Type != "" {
		sessionType, err := domain.ParseSessionType(input.Type)
		if err != nil {
			return dto.HistoryOutput{}, err
		}
		filter.Type = sessionType
	}
	sessions, total, err := i.svc.History(ctx, filter)
	if err != nil {
		return dto.HistoryOutput{}, err
	}
	items := make([]dto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, toSessionOutput(s))
	}
	return dto.HistoryOutput{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: (total + perPage - 1) / perPage,
	}, nil
}

func (i *Interactor) recordCompletion(ctx context.Context, session domain.Session) error {
	if !session.WasCompleted || i.metrics == nil {
		return nil
	}
	return i.metrics.RecordSessionCompletion(ctx, metricsdto.RecordSessionInput{
		UserID:      session.UserID,
		Kind:        string(session.Type),
		DurationMin: session.DurationMin,
		Day:         session.EndedAt,
	})
}

// notifyCompletion fires the gamification and adaptive-learning collaborators
// off the request path. Failures are logged and suppressed; they never fail
// the stop that triggered them.
func (i *Interactor) notifyCompletion(session domain.Session) {
	if !session.WasCompleted {
		return
	}
	i.dispatch(func() {
		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()
		if i.gamification != nil && session.Type.AwardsPomodoro() {
			if err := i.gamification.AwardPomodoroCompletion(ctx, session.UserID); err != nil {
				i.logger.Warn("pomodoro award failed",
					slog.String("session_id", session.ID),
					slog.String("user_id", session.UserID),
					slog.String("error", err.Error()))
			}
		}
		if i.learner != nil {
			if err := i.learner.LearnFromSession(ctx, session); err != nil {
				i.logger.Warn("session learning failed",
					slog.String("session_id", session.ID),
					slog.String("user_id", session.UserID),
					slog.String("error", err.Error()))
			}
		}
	})
}

func toSessionOutput(session domain.Session) dto.SessionOutput {
	return dto.SessionOutput{
		SessionID:         session.ID,
		UserID:            session.UserID,
		TaskID:            session.TaskID,
		Type:              string(session.Type),
		StartedAt:         session.StartedAt,
		EndedAt:           session.EndedAt,
		TotalPauseSeconds: session.TotalPauseSeconds,
		PauseCount:        session.PauseCount,
		DurationMin:       session.DurationMin,
		WasCompleted:      session.WasCompleted,
		Notes:             session.Notes,
		SplitReason:       session.SplitReason,
	}
}
