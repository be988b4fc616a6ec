package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	gamificationinadapter "tempo/internal/modules/gamification/adapter/in"
	gamificationoutadapter "tempo/internal/modules/gamification/adapter/out"
	gamificationservice "tempo/internal/modules/gamification/service"
	gamificationusecase "tempo/internal/modules/gamification/usecase"
	habitinadapter "tempo/internal/modules/habit/adapter/in"
	habitoutadapter "tempo/internal/modules/habit/adapter/out"
	habitservice "tempo/internal/modules/habit/service"
	habitusecase "tempo/internal/modules/habit/usecase"
	metricsinadapter "tempo/internal/modules/metrics/adapter/in"
	metricsoutadapter "tempo/internal/modules/metrics/adapter/out"
	metricsservice "tempo/internal/modules/metrics/service"
	metricsusecase "tempo/internal/modules/metrics/usecase"
	timerinadapter "tempo/internal/modules/timer/adapter/in"
	timeroutadapter "tempo/internal/modules/timer/adapter/out"
	timerout "tempo/internal/modules/timer/port/out"
	timerservice "tempo/internal/modules/timer/service"
	timerusecase "tempo/internal/modules/timer/usecase"
	"tempo/internal/platform/clock"
	"tempo/internal/platform/config"
	"tempo/internal/platform/id"
	"tempo/internal/platform/tx"

	_ "modernc.org/sqlite"
)

type App struct {
	TimerCLI        timerinadapter.CLIHandler
	HabitCLI        habitinadapter.CLIHandler
	MetricsCLI      metricsinadapter.CLIHandler
	GamificationCLI gamificationinadapter.CLIHandler
	DefaultUser     string

	timer *timerusecase.Interactor
	db    *sql.DB
}

func New(cfg config.Config) (*App, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	clk := clock.SystemClock{}
	ids := id.UUID{}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	txm := tx.NewSQLManager(db)

	metricStore, err := metricsoutadapter.NewSQLiteMetricStore(db)
	if err != nil {
		return nil, err
	}
	metricsUC := metricsusecase.NewInteractor(metricsservice.NewMetricsService(metricStore))

	profileStore, err := gamificationoutadapter.NewSQLiteProfileStore(db)
	if err != nil {
		return nil, err
	}
	gamificationUC := gamificationusecase.NewInteractor(
		gamificationservice.NewGamificationService(profileStore), metricsUC, clk)

	sessionStore, err := timeroutadapter.NewSQLiteSessionStore(db)
	if err != nil {
		return nil, err
	}
	var learner timerout.Learner
	if cfg.Learner.Binary != "" {
		learner = timeroutadapter.NewPluginLearner(cfg.Learner.Binary)
	}
	timerUC := timerusecase.NewInteractor(
		timerservice.NewTimerService(clk, ids, sessionStore),
		metricsUC,
		gamificationUC,
		learner,
		txm,
		logger,
	)
	app := &App{timer: timerUC, db: db}

	habitStore, err := habitoutadapter.NewSQLiteHabitStore(db)
	if err != nil {
		return nil, err
	}
	habitUC := habitusecase.NewInteractor(habitservice.NewHabitService(clk, ids, habitStore))

	app.TimerCLI = timerinadapter.NewCLIHandler(timerUC)
	app.HabitCLI = habitinadapter.NewCLIHandler(habitUC)
	app.MetricsCLI = metricsinadapter.NewCLIHandler(metricsUC)
	app.GamificationCLI = gamificationinadapter.NewCLIHandler(gamificationUC)
	app.DefaultUser = cfg.DefaultUser
	return app, nil
}

// Close waits for in-flight side effects before releasing the database.
func (a *App) Close() error {
	a.timer.Drain()
	return a.db.Close()
}
