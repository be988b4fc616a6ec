package out_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	out "tempo/internal/modules/metrics/adapter/out"
	"tempo/internal/modules/metrics/domain"

	_ "modernc.org/sqlite"
)

func newStore(t *testing.T) *out.SQLiteMetricStore {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "tempo.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	store, err := out.NewSQLiteMetricStore(db)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	return store
}

func TestIncrementAccumulatesWithinADay(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	if err := store.Increment(ctx, "u1", day, domain.Delta{MinutesWorked: 25, PomodorosCompleted: 1}); err != nil {
		t.Fatalf("first increment: %v", err)
	}
	if err := store.Increment(ctx, "u1", day.Add(3*time.Hour), domain.Delta{MinutesWorked: 50, PomodorosCompleted: 1, TasksCompleted: 1}); err != nil {
		t.Fatalf("second increment: %v", err)
	}

	metrics, err := store.GetRange(ctx, "u1", day, day)
	if err != nil {
		t.Fatalf("get range: %v", err)
	}
	if len(metrics) != 1 {
		t.Fatalf("expected one row for the day, got %d", len(metrics))
	}
	m := metrics[0]
	if m.MinutesWorked != 75 || m.PomodorosCompleted != 2 || m.TasksCompleted != 1 {
		t.Fatalf("unexpected accumulated row: %+v", m)
	}
}

func TestIncrementIgnoresZeroDelta(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	if err := store.Increment(ctx, "u1", day, domain.Delta{}); err != nil {
		t.Fatalf("zero increment: %v", err)
	}
	metrics, err := store.GetRange(ctx, "u1", day, day)
	if err != nil {
		t.Fatalf("get range: %v", err)
	}
	if len(metrics) != 0 {
		t.Fatalf("zero delta must not create a row, got %+v", metrics)
	}
}

func TestGetRangeOrdersAscendingAndScopesUser(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if err := store.Increment(ctx, "u1", base.AddDate(0, 0, i), domain.Delta{MinutesWorked: 10 * (i + 1)}); err != nil {
			t.Fatalf("increment day %d: %v", i, err)
		}
	}
	if err := store.Increment(ctx, "u2", base, domain.Delta{MinutesWorked: 99}); err != nil {
		t.Fatalf("increment other user: %v", err)
	}

	metrics, err := store.GetRange(ctx, "u1", base, base.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("get range: %v", err)
	}
	if len(metrics) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(metrics))
	}
	for i, m := range metrics {
		if !m.Date.Equal(base.AddDate(0, 0, i)) {
			t.Fatalf("row %d out of order: %+v", i, m)
		}
		if m.MinutesWorked != 10*(i+1) {
			t.Fatalf("row %d wrong counters: %+v", i, m)
		}
	}
}
