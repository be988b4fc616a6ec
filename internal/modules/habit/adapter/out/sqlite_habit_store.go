package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tempo/internal/modules/habit/domain"
	habitout "tempo/internal/modules/habit/port/out"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/platform/tx"

	_ "modernc.org/sqlite"
)

const (
	timeLayout = "2006-01-02T15:04:05Z07:00"
	dateLayout = "2006-01-02"
)

type SQLiteHabitStore struct {
	db *sql.DB
}

func NewSQLiteHabitStore(db *sql.DB) (*SQLiteHabitStore, error) {
	store := &SQLiteHabitStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

var _ habitout.HabitStore = (*SQLiteHabitStore)(nil)

func (s *SQLiteHabitStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS habits (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  name TEXT NOT NULL,
  current_streak INTEGER NOT NULL DEFAULT 0,
  longest_streak INTEGER NOT NULL DEFAULT 0,
  total_completions INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS habit_completions (
  habit_id TEXT NOT NULL,
  date TEXT NOT NULL,
  PRIMARY KEY (habit_id, date)
);
CREATE INDEX IF NOT EXISTS habits_user ON habits(user_id);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create habit tables: %w", err)
	}
	return nil
}

func (s *SQLiteHabitStore) Insert(ctx context.Context, habit domain.Habit) error {
	const stmt = `
INSERT INTO habits (id, user_id, name, current_streak, longest_streak, total_completions, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?);
`
	_, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		habit.ID,
		habit.UserID,
		habit.Name,
		habit.CurrentStreak,
		habit.LongestStreak,
		habit.TotalCompletions,
		habit.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert habit: %w", err)
	}
	return nil
}

func (s *SQLiteHabitStore) Update(ctx context.Context, habit domain.Habit) error {
	const stmt = `
UPDATE habits SET name=?, current_streak=?, longest_streak=?, total_completions=? WHERE id=?;
`
	result, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		habit.Name,
		habit.CurrentStreak,
		habit.LongestStreak,
		habit.TotalCompletions,
		habit.ID,
	)
	if err != nil {
		return fmt.Errorf("update habit: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update habit rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *SQLiteHabitStore) Get(ctx context.Context, habitID string) (domain.Habit, error) {
	row := tx.From(ctx, s.db).QueryRowContext(ctx,
		`SELECT id, user_id, name, current_streak, longest_streak, total_completions, created_at FROM habits WHERE id=?;`, habitID)
	habit, err := scanHabit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Habit{}, apperrors.ErrNotFound
		}
		return domain.Habit{}, fmt.Errorf("get habit: %w", err)
	}
	return habit, nil
}

func (s *SQLiteHabitStore) ListByUser(ctx context.Context, userID string) ([]domain.Habit, error) {
	rows, err := tx.From(ctx, s.db).QueryContext(ctx,
		`SELECT id, user_id, name, current_streak, longest_streak, total_completions, created_at FROM habits WHERE user_id=? ORDER BY created_at ASC;`, userID)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer rows.Close()

	habits := []domain.Habit{}
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan habit: %w", err)
		}
		habits = append(habits, habit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate habits: %w", err)
	}
	return habits, nil
}

func (s *SQLiteHabitStore) AddCompletion(ctx context.Context, habitID string, day time.Time) (bool, error) {
	const stmt = `
INSERT INTO habit_completions (habit_id, date) VALUES (?, ?)
ON CONFLICT(habit_id, date) DO NOTHING;
`
	result, err := tx.From(ctx, s.db).ExecContext(ctx, stmt, habitID, day.UTC().Format(dateLayout))
	if err != nil {
		return false, fmt.Errorf("add habit completion: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("add habit completion rows: %w", err)
	}
	return affected > 0, nil
}

func (s *SQLiteHabitStore) CompletionDates(ctx context.Context, habitID string, limit int) ([]time.Time, error) {
	rows, err := tx.From(ctx, s.db).QueryContext(ctx,
		`SELECT date FROM habit_completions WHERE habit_id=? ORDER BY date DESC LIMIT ?;`, habitID, limit)
	if err != nil {
		return nil, fmt.Errorf("query habit completions: %w", err)
	}
	defer rows.Close()

	dates := []time.Time{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan habit completion: %w", err)
		}
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("parse completion date: %w", err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate habit completions: %w", err)
	}
	return dates, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (domain.Habit, error) {
	var (
		habit     domain.Habit
		createdAt string
	)
	err := row.Scan(
		&habit.ID,
		&habit.UserID,
		&habit.Name,
		&habit.CurrentStreak,
		&habit.LongestStreak,
		&habit.TotalCompletions,
		&createdAt,
	)
	if err != nil {
		return domain.Habit{}, err
	}
	if habit.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return domain.Habit{}, fmt.Errorf("parse created_at: %w", err)
	}
	return habit, nil
}
