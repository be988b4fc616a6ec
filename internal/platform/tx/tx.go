package tx

import (
	"context"
	"database/sql"
	"fmt"
)

// Manager wraps transactional boundaries for multi-adapter operations.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type ctxKey struct{}

// From returns the ambient transaction when one is open, else the raw handle.
func From(ctx context.Context, db *sql.DB) Querier {
	if t, ok := ctx.Value(ctxKey{}).(*sql.Tx); ok {
		return t
	}
	return db
}

// SQLManager runs fn inside a single database transaction. Nested Within
// calls join the already-open transaction.
type SQLManager struct {
	db *sql.DB
}

func NewSQLManager(db *sql.DB) *SQLManager {
	return &SQLManager{db: db}
}

func (m *SQLManager) Within(ctx context.Context, fn func(context.Context) error) error {
	if _, ok := ctx.Value(ctxKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}
	t, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(context.WithValue(ctx, ctxKey{}, t)); err != nil {
		_ = t.Rollback()
		return err
	}
	if err := t.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
