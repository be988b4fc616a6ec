package out

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tempo/internal/modules/timer/domain"
	timerout "tempo/internal/modules/timer/port/out"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/platform/tx"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteSessionStore persists sessions. The partial unique index on
// (user_id) WHERE ended_at IS NULL is what enforces the single-active-session
// invariant: concurrent starts race here and exactly one insert wins.
type SQLiteSessionStore struct {
	db *sql.DB
}

func NewSQLiteSessionStore(db *sql.DB) (*SQLiteSessionStore, error) {
	store := &SQLiteSessionStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

var _ timerout.SessionStore = (*SQLiteSessionStore)(nil)

func (s *SQLiteSessionStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  task_id TEXT,
  type TEXT NOT NULL,
  started_at TEXT NOT NULL,
  ended_at TEXT,
  current_pause_start TEXT,
  total_pause_seconds INTEGER NOT NULL DEFAULT 0,
  pause_count INTEGER NOT NULL DEFAULT 0,
  duration_min INTEGER NOT NULL DEFAULT 0,
  was_completed INTEGER NOT NULL DEFAULT 0,
  notes TEXT,
  split_reason TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS sessions_active_user ON sessions(user_id) WHERE ended_at IS NULL;
CREATE INDEX IF NOT EXISTS sessions_user_started ON sessions(user_id, started_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Insert(ctx context.Context, session domain.Session) error {
	const stmt = `
INSERT INTO sessions (id, user_id, task_id, type, started_at, ended_at, current_pause_start, total_pause_seconds, pause_count, duration_min, was_completed, notes, split_reason)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	_, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		session.ID,
		session.UserID,
		nullableString(session.TaskID),
		string(session.Type),
		session.StartedAt.Format(timeLayout),
		nullableTime(session.EndedAt),
		nullableTime(session.CurrentPauseStart),
		session.TotalPauseSeconds,
		session.PauseCount,
		session.DurationMin,
		session.WasCompleted,
		nullableString(session.Notes),
		nullableString(session.SplitReason),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrActiveSessionExists
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Update(ctx context.Context, session domain.Session) error {
	const stmt = `
UPDATE sessions SET
  ended_at=?,
  current_pause_start=?,
  total_pause_seconds=?,
  pause_count=?,
  duration_min=?,
  was_completed=?,
  notes=?,
  split_reason=?
WHERE id=?;
`
	result, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		nullableTime(session.EndedAt),
		nullableTime(session.CurrentPauseStart),
		session.TotalPauseSeconds,
		session.PauseCount,
		session.DurationMin,
		session.WasCompleted,
		nullableString(session.Notes),
		nullableString(session.SplitReason),
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update session rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const sessionColumns = `id, user_id, task_id, type, started_at, ended_at, current_pause_start, total_pause_seconds, pause_count, duration_min, was_completed, notes, split_reason`

func (s *SQLiteSessionStore) FindActive(ctx context.Context, userID string) (domain.Session, error) {
	row := tx.From(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE user_id=? AND ended_at IS NULL;`, userID)
	session, err := scanSession(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Session{}, apperrors.ErrNoActiveSession
		}
		return domain.Session{}, fmt.Errorf("find active session: %w", err)
	}
	return session, nil
}

func (s *SQLiteSessionStore) FindWithFilters(ctx context.Context, filter timerout.HistoryFilter) ([]domain.Session, int, error) {
	where := []string{"user_id=?", "ended_at IS NOT NULL"}
	args := []any{filter.UserID}
	if filter.Type != "" {
		where = append(where, "type=?")
		args = append(args, string(filter.Type))
	}
	if filter.TaskID != "" {
		where = append(where, "task_id=?")
		args = append(args, filter.TaskID)
	}
	if !filter.From.IsZero() {
		where = append(where, "started_at>=?")
		args = append(args, filter.From.Format(timeLayout))
	}
	if !filter.To.IsZero() {
		where = append(where, "started_at<=?")
		args = append(args, filter.To.Format(timeLayout))
	}
	if filter.CompletedOnly {
		where = append(where, "was_completed=1")
	}
	clause := strings.Join(where, " AND ")

	total := 0
	if err := tx.From(ctx, s.db).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sessions WHERE `+clause+`;`, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE ` + clause + ` ORDER BY started_at DESC LIMIT ? OFFSET ?;`
	rows, err := tx.From(ctx, s.db).QueryContext(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []domain.Session{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, total, nil
}

func (s *SQLiteSessionStore) AggregateTotals(ctx context.Context, userID string, from, to time.Time) (domain.StatTotals, error) {
	const stmt = `
SELECT
  COUNT(*),
  COALESCE(SUM(was_completed), 0),
  COALESCE(SUM(duration_min), 0),
  COALESCE(SUM(MAX(0, CAST(strftime('%s', ended_at) AS INTEGER) - CAST(strftime('%s', started_at) AS INTEGER) - total_pause_seconds)), 0),
  COALESCE(SUM(total_pause_seconds), 0),
  COALESCE(SUM(pause_count), 0)
FROM sessions
WHERE user_id=? AND ended_at IS NOT NULL AND started_at>=? AND started_at<=?;
`
	totals := domain.StatTotals{}
	err := tx.From(ctx, s.db).QueryRowContext(ctx, stmt,
		userID, from.Format(timeLayout), to.Format(timeLayout),
	).Scan(
		&totals.Sessions,
		&totals.CompletedSessions,
		&totals.MinutesWorked,
		&totals.WorkSeconds,
		&totals.PauseSeconds,
		&totals.Pauses,
	)
	if err != nil {
		return domain.StatTotals{}, fmt.Errorf("aggregate totals: %w", err)
	}
	return totals, nil
}

func (s *SQLiteSessionStore) FindByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE user_id=? AND started_at>=? AND started_at<=? ORDER BY started_at ASC;`
	rows, err := tx.From(ctx, s.db).QueryContext(ctx, query,
		userID, from.Format(timeLayout), to.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("query sessions by range: %w", err)
	}
	defer rows.Close()

	sessions := []domain.Session{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (domain.Session, error) {
	var (
		session                    domain.Session
		taskID, notes, splitReason sql.NullString
		startedAt, sessionType     string
		endedAt, currentPauseStart sql.NullString
	)
	err := row.Scan(
		&session.ID,
		&session.UserID,
		&taskID,
		&sessionType,
		&startedAt,
		&endedAt,
		&currentPauseStart,
		&session.TotalPauseSeconds,
		&session.PauseCount,
		&session.DurationMin,
		&session.WasCompleted,
		&notes,
		&splitReason,
	)
	if err != nil {
		return domain.Session{}, err
	}
	session.Type = domain.SessionType(sessionType)
	session.TaskID = taskID.String
	session.Notes = notes.String
	session.SplitReason = splitReason.String
	if session.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
		return domain.Session{}, fmt.Errorf("parse started_at: %w", err)
	}
	if endedAt.Valid {
		if session.EndedAt, err = time.Parse(timeLayout, endedAt.String); err != nil {
			return domain.Session{}, fmt.Errorf("parse ended_at: %w", err)
		}
	}
	if currentPauseStart.Valid {
		if session.CurrentPauseStart, err = time.Parse(timeLayout, currentPauseStart.String); err != nil {
			return domain.Session{}, fmt.Errorf("parse current_pause_start: %w", err)
		}
	}
	return session, nil
}

func nullableString(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func nullableTime(v time.Time) any {
	if v.IsZero() {
		return nil
	}
	return v.Format(timeLayout)
}
