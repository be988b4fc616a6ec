package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tempo/internal/modules/metrics/domain"
	metricsout "tempo/internal/modules/metrics/port/out"
	"tempo/internal/platform/tx"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

// SQLiteMetricStore keeps the per-user-per-day counters. Increments are a
// single upsert statement so concurrent completions for the same day never
// lose updates.
type SQLiteMetricStore struct {
	db *sql.DB
}

func NewSQLiteMetricStore(db *sql.DB) (*SQLiteMetricStore, error) {
	store := &SQLiteMetricStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

var _ metricsout.MetricStore = (*SQLiteMetricStore)(nil)

func (s *SQLiteMetricStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS daily_metrics (
  user_id TEXT NOT NULL,
  date TEXT NOT NULL,
  tasks_created INTEGER NOT NULL DEFAULT 0,
  tasks_completed INTEGER NOT NULL DEFAULT 0,
  pomodoros_completed INTEGER NOT NULL DEFAULT 0,
  minutes_worked INTEGER NOT NULL DEFAULT 0,
  short_breaks_completed INTEGER NOT NULL DEFAULT 0,
  long_breaks_completed INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (user_id, date)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create daily_metrics table: %w", err)
	}
	return nil
}

func (s *SQLiteMetricStore) Increment(ctx context.Context, userID string, day time.Time, delta domain.Delta) error {
	if delta.IsZero() {
		return nil
	}
	const stmt = `
INSERT INTO daily_metrics (user_id, date, tasks_created, tasks_completed, pomodoros_completed, minutes_worked, short_breaks_completed, long_breaks_completed)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id, date) DO UPDATE SET
  tasks_created=tasks_created+excluded.tasks_created,
  tasks_completed=tasks_completed+excluded.tasks_completed,
  pomodoros_completed=pomodoros_completed+excluded.pomodoros_completed,
  minutes_worked=minutes_worked+excluded.minutes_worked,
  short_breaks_completed=short_breaks_completed+excluded.short_breaks_completed,
  long_breaks_completed=long_breaks_completed+excluded.long_breaks_completed;
`
	_, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		userID,
		day.UTC().Format(dateLayout),
		delta.TasksCreated,
		delta.TasksCompleted,
		delta.PomodorosCompleted,
		delta.MinutesWorked,
		delta.ShortBreaksCompleted,
		delta.LongBreaksCompleted,
	)
	if err != nil {
		return fmt.Errorf("increment daily metrics: %w", err)
	}
	return nil
}

func (s *SQLiteMetricStore) GetRange(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyMetric, error) {
	const query = `
SELECT user_id, date, tasks_created, tasks_completed, pomodoros_completed, minutes_worked, short_breaks_completed, long_breaks_completed
FROM daily_metrics
WHERE user_id=? AND date>=? AND date<=?
ORDER BY date ASC;
`
	rows, err := tx.From(ctx, s.db).QueryContext(ctx, query,
		userID, from.UTC().Format(dateLayout), to.UTC().Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("query daily metrics: %w", err)
	}
	defer rows.Close()

	metrics := []domain.DailyMetric{}
	for rows.Next() {
		var (
			metric domain.DailyMetric
			date   string
		)
		if err := rows.Scan(
			&metric.UserID,
			&date,
			&metric.TasksCreated,
			&metric.TasksCompleted,
			&metric.PomodorosCompleted,
			&metric.MinutesWorked,
			&metric.ShortBreaksCompleted,
			&metric.LongBreaksCompleted,
		); err != nil {
			return nil, fmt.Errorf("scan daily metric: %w", err)
		}
		if metric.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("parse metric date: %w", err)
		}
		metrics = append(metrics, metric)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily metrics: %w", err)
	}
	return metrics, nil
}
