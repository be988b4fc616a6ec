package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"tempo/internal/bootstrap"
	timerdto "tempo/internal/modules/timer/dto"
	"tempo/internal/platform/config"
	apperrors "tempo/internal/platform/errors"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir, user string

	root := &cobra.Command{
		Use:           "tempo",
		Short:         "Personal productivity tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory")
	root.PersistentFlags().StringVar(&user, "user", "", "user id (defaults to configured user)")

	root.AddCommand(newTimerCmd(&dataDir, &user))
	root.AddCommand(newStatsCmd(&dataDir, &user))
	root.AddCommand(newHabitCmd(&dataDir, &user))
	root.AddCommand(newTaskCmd(&dataDir, &user))
	root.AddCommand(newProfileCmd(&dataDir, &user))
	return root
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tempo"
	}
	return filepath.Join(home, ".tempo")
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func resolveUser(app *bootstrap.App, user string) string {
	if user != "" {
		return user
	}
	return app.DefaultUser
}

func printSession(cmd *cobra.Command, label string, s timerdto.SessionOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s type=%s task=%s started=%s", label, s.SessionID, s.Type, s.TaskID, s.StartedAt.Format(timeLayout))
	if !s.EndedAt.IsZero() {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), " ended=%s duration=%dmin pauses=%d completed=%t", s.EndedAt.Format(timeLayout), s.DurationMin, s.PauseCount, s.WasCompleted)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout())
}

func newTimerCmd(dataDir, user *string) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Time-tracking session lifecycle"}

	var taskID, sessionType string
	start := &cobra.Command{
		Use:   "start",
		Short: "Start a new session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.TimerCLI.Start(context.Background(), resolveUser(app, *user), taskID, sessionType)
			if err != nil {
				return err
			}
			printSession(cmd, "session started", out)
			return nil
		},
	}
	start.Flags().StringVar(&taskID, "task", "", "task id (optional)")
	start.Flags().StringVar(&sessionType, "type", "pomodoro", "session type: work|pomodoro|continuous|short_break|long_break")

	pause := &cobra.Command{
		Use:   "pause",
		Short: "Pause the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.TimerCLI.Pause(context.Background(), resolveUser(app, *user), time.Now().UTC())
			if err != nil {
				return err
			}
			printSession(cmd, "session paused", out)
			return nil
		},
	}

	resume := &cobra.Command{
		Use:   "resume",
		Short: "Resume the paused session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.TimerCLI.Resume(context.Background(), resolveUser(app, *user), time.Now().UTC())
			if err != nil {
				return err
			}
			printSession(cmd, "session resumed", out)
			return nil
		},
	}

	var abandoned bool
	var notes string
	stop := &cobra.Command{
		Use:   "stop",
		Short: "Stop the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.TimerCLI.Stop(context.Background(), resolveUser(app, *user), !abandoned, notes)
			if err != nil {
				return err
			}
			printSession(cmd, "session stopped", out)
			return nil
		},
	}
	stop.Flags().BoolVar(&abandoned, "abandoned", false, "record the session as not completed")
	stop.Flags().StringVar(&notes, "notes", "", "session notes")

	var switchTask, switchType, switchReason string
	switchCmd := &cobra.Command{
		Use:   "switch --task <id>",
		Short: "Stop the active session and start one for another task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.TimerCLI.SwitchTask(context.Background(), resolveUser(app, *user), switchTask, switchType, switchReason)
			if err != nil {
				return err
			}
			printSession(cmd, "session stopped", out.OldSession)
			printSession(cmd, "session started", out.NewSession)
			return nil
		},
	}
	switchCmd.Flags().StringVar(&switchTask, "task", "", "new task id")
	switchCmd.Flags().StringVar(&switchType, "type", "pomodoro", "session type for the new session")
	switchCmd.Flags().StringVar(&switchReason, "reason", "task_switch", "split reason recorded on the old session")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.TimerCLI.GetActive(context.Background(), resolveUser(app, *user))
			if err != nil {
				if errors.Is(err, apperrors.ErrNoActiveSession) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no active session")
					return nil
				}
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session %s type=%s task=%s elapsed=%ds paused=%t pauses=%d\n",
				out.Session.SessionID, out.Session.Type, out.Session.TaskID, out.ElapsedSeconds, out.IsPaused, out.Session.PauseCount)
			return nil
		},
	}

	var historyType, historyTask string
	var completedOnly bool
	var page, perPage, historyDays int
	history := &cobra.Command{
		Use:   "history",
		Short: "List finished sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			input := timerdto.HistoryInput{
				UserID:        resolveUser(app, *user),
				Type:          historyType,
				TaskID:        historyTask,
				CompletedOnly: completedOnly,
				Page:          page,
				PerPage:       perPage,
			}
			if historyDays > 0 {
				now := time.Now().UTC()
				input.From = now.AddDate(0, 0, -historyDays)
				input.To = now
			}
			out, err := app.TimerCLI.GetHistory(context.Background(), input)
			if err != nil {
				return err
			}
			for _, item := range out.Items {
				printSession(cmd, "session", item)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "page %d/%d (%d sessions)\n", out.Page, out.TotalPages, out.Total)
			return nil
		},
	}
	history.Flags().StringVar(&historyType, "type", "", "filter by session type")
	history.Flags().StringVar(&historyTask, "task", "", "filter by task id")
	history.Flags().BoolVar(&completedOnly, "completed", false, "only completed sessions")
	history.Flags().IntVar(&page, "page", 1, "page number")
	history.Flags().IntVar(&perPage, "per-page", 20, "page size")
	history.Flags().IntVar(&historyDays, "days", 0, "restrict to the last N days")

	timer.AddCommand(start, pause, resume, stop, switchCmd, status, history)
	return timer
}

func newStatsCmd(dataDir, user *string) *cobra.Command {
	var days int
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show session statistics with a daily breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			now := time.Now().UTC()
			from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(days - 1))
			out, err := app.TimerCLI.GetStats(context.Background(), resolveUser(app, *user), from, now)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sessions=%d completed=%d minutes=%d focus=%.1f completion=%.1f%% avg_minutes=%.1f avg_pauses=%.1f\n",
				out.Sessions, out.CompletedSessions, out.MinutesWorked, out.FocusScore, out.CompletionRate, out.AvgSessionMinutes, out.AvgPausesPerSession)
			for _, day := range out.DailyBreakdown {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tsessions=%d\tminutes=%d\tpause=%ds\n",
					day.Date.Format("2006-01-02"), day.Sessions, day.MinutesWorked, day.PauseSeconds)
			}
			return nil
		},
	}
	stats.Flags().IntVar(&days, "days", 7, "window size in days")
	return stats
}

func newHabitCmd(dataDir, user *string) *cobra.Command {
	habit := &cobra.Command{Use: "habit", Short: "Streak-tracked habits"}

	var name string
	add := &cobra.Command{
		Use:   "add --name <name>",
		Short: "Create a habit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.HabitCLI.Create(context.Background(), resolveUser(app, *user), name)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "habit created: %s (%s)\n", out.Name, out.HabitID)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "habit name")

	var habitID string
	done := &cobra.Command{
		Use:   "done --id <id>",
		Short: "Record today's completion",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if habitID == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.HabitCLI.Complete(context.Background(), habitID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: streak=%d longest=%d total=%d\n", out.Name, out.CurrentStreak, out.LongestStreak, out.TotalCompletions)
			return nil
		},
	}
	done.Flags().StringVar(&habitID, "id", "", "habit id")

	var statsID string
	statsCmd := &cobra.Command{
		Use:   "stats --id <id>",
		Short: "Show habit streak state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if statsID == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.HabitCLI.Stats(context.Background(), statsID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: streak=%d longest=%d total=%d\n", out.Name, out.CurrentStreak, out.LongestStreak, out.TotalCompletions)
			return nil
		},
	}
	statsCmd.Flags().StringVar(&statsID, "id", "", "habit id")

	list := &cobra.Command{
		Use:   "list",
		Short: "List habits",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			habits, err := app.HabitCLI.List(context.Background(), resolveUser(app, *user))
			if err != nil {
				return err
			}
			if len(habits) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no habits")
				return nil
			}
			for _, h := range habits {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tstreak=%d longest=%d total=%d\n", h.HabitID, h.Name, h.CurrentStreak, h.LongestStreak, h.TotalCompletions)
			}
			return nil
		},
	}

	habit.AddCommand(add, done, statsCmd, list)
	return habit
}

func newTaskCmd(dataDir, user *string) *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Record task lifecycle events"}

	task.AddCommand(&cobra.Command{
		Use:   "created",
		Short: "Count a task created today",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.MetricsCLI.TaskCreated(context.Background(), resolveUser(app, *user), time.Now().UTC()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "recorded")
			return nil
		},
	})

	task.AddCommand(&cobra.Command{
		Use:   "completed",
		Short: "Count a task completed today",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.MetricsCLI.TaskCompleted(context.Background(), resolveUser(app, *user), time.Now().UTC()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "recorded")
			return nil
		},
	})

	return task
}

func newProfileCmd(dataDir, user *string) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show gamification profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.GamificationCLI.Profile(context.Background(), resolveUser(app, *user))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "user=%s level=%d xp=%d pomodoros=%d work_streak=%d\n",
				out.UserID, out.Level, out.XP, out.PomodorosCompleted, out.WorkDayStreak)
			return nil
		},
	}
}
