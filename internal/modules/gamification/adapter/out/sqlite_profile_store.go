package out

import (
	"context"
	"database/sql"
	"fmt"

	"tempo/internal/modules/gamification/domain"
	gamificationout "tempo/internal/modules/gamification/port/out"
	"tempo/internal/platform/tx"

	_ "modernc.org/sqlite"
)

type SQLiteProfileStore struct {
	db *sql.DB
}

func NewSQLiteProfileStore(db *sql.DB) (*SQLiteProfileStore, error) {
	store := &SQLiteProfileStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

var _ gamificationout.ProfileStore = (*SQLiteProfileStore)(nil)

func (s *SQLiteProfileStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS profiles (
  user_id TEXT PRIMARY KEY,
  xp INTEGER NOT NULL DEFAULT 0,
  pomodoros_completed INTEGER NOT NULL DEFAULT 0
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create profiles table: %w", err)
	}
	return nil
}

func (s *SQLiteProfileStore) AddAward(ctx context.Context, userID string, xp int) error {
	const stmt = `
INSERT INTO profiles (user_id, xp, pomodoros_completed) VALUES (?, ?, 1)
ON CONFLICT(user_id) DO UPDATE SET
  xp=xp+excluded.xp,
  pomodoros_completed=pomodoros_completed+1;
`
	if _, err := tx.From(ctx, s.db).ExecContext(ctx, stmt, userID, xp); err != nil {
		return fmt.Errorf("add award: %w", err)
	}
	return nil
}

func (s *SQLiteProfileStore) Get(ctx context.Context, userID string) (domain.Profile, error) {
	profile := domain.Profile{UserID: userID}
	err := tx.From(ctx, s.db).QueryRowContext(ctx,
		`SELECT xp, pomodoros_completed FROM profiles WHERE user_id=?;`, userID,
	).Scan(&profile.XP, &profile.PomodorosCompleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return profile, nil
		}
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}
