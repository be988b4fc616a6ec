package usecase_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	habitout "tempo/internal/modules/habit/adapter/out"
	"tempo/internal/modules/habit/dto"
	habitin "tempo/internal/modules/habit/port/in"
	"tempo/internal/modules/habit/service"
	"tempo/internal/modules/habit/usecase"
	apperrors "tempo/internal/platform/errors"

	_ "modernc.org/sqlite"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type fakeID struct {
	next int
}

func (f *fakeID) New() string {
	f.next++
	return fmt.Sprintf("habit-%d", f.next)
}

func newUsecase(t *testing.T, clk *fakeClock) habitin.Usecase {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "tempo.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	store, err := habitout.NewSQLiteHabitStore(db)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	return usecase.NewInteractor(service.NewHabitService(clk, &fakeID{}, store))
}

func TestHabitStreakGrowsWithConsecutiveDays(t *testing.T) {
	t.Parallel()
	d1 := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	// Clock order: create, complete d1, duplicate d1, complete d2.
	clk := &fakeClock{values: []time.Time{d1, d1.Add(time.Hour), d1.Add(2 * time.Hour), d2}}
	uc := newUsecase(t, clk)
	ctx := context.Background()

	habit, err := uc.Create(ctx, dto.CreateInput{UserID: "u1", Name: "stretch"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	done, err := uc.Complete(ctx, dto.CompleteInput{HabitID: habit.HabitID})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.CurrentStreak != 1 || done.TotalCompletions != 1 {
		t.Fatalf("after first completion: %+v", done)
	}

	done, err = uc.Complete(ctx, dto.CompleteInput{HabitID: habit.HabitID})
	if err != nil {
		t.Fatalf("duplicate complete: %v", err)
	}
	if done.CurrentStreak != 1 || done.TotalCompletions != 1 {
		t.Fatalf("same-day completion must be a no-op: %+v", done)
	}

	done, err = uc.Complete(ctx, dto.CompleteInput{HabitID: habit.HabitID})
	if err != nil {
		t.Fatalf("next-day complete: %v", err)
	}
	if done.CurrentStreak != 2 || done.LongestStreak != 2 || done.TotalCompletions != 2 {
		t.Fatalf("after second day: %+v", done)
	}
}

func TestHabitStreakResetsAfterGapButLongestSticks(t *testing.T) {
	t.Parallel()
	d1 := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	d5 := d1.AddDate(0, 0, 4)
	// Clock order: create, complete d1, complete d2, stats on d5, complete d5.
	clk := &fakeClock{values: []time.Time{d1, d1, d2, d5, d5}}
	uc := newUsecase(t, clk)
	ctx := context.Background()

	habit, err := uc.Create(ctx, dto.CreateInput{UserID: "u1", Name: "stretch"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := uc.Complete(ctx, dto.CompleteInput{HabitID: habit.HabitID}); err != nil {
			t.Fatalf("complete %d: %v", i, err)
		}
	}

	stats, err := uc.Stats(ctx, habit.HabitID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.CurrentStreak != 0 {
		t.Fatalf("streak must reset after a gap, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 2 {
		t.Fatalf("longest streak must survive the reset, got %d", stats.LongestStreak)
	}

	done, err := uc.Complete(ctx, dto.CompleteInput{HabitID: habit.HabitID})
	if err != nil {
		t.Fatalf("complete after gap: %v", err)
	}
	if done.CurrentStreak != 1 || done.LongestStreak != 2 || done.TotalCompletions != 3 {
		t.Fatalf("after restart: %+v", done)
	}
}

func TestHabitValidationAndLookup(t *testing.T) {
	t.Parallel()
	d1 := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	uc := newUsecase(t, &fakeClock{values: []time.Time{d1}})
	ctx := context.Background()

	if _, err := uc.Create(ctx, dto.CreateInput{UserID: "u1"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}
	if _, err := uc.Complete(ctx, dto.CompleteInput{HabitID: "ghost"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := uc.Stats(ctx, "ghost"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	habit, err := uc.Create(ctx, dto.CreateInput{UserID: "u1", Name: "read"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	habits, err := uc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(habits) != 1 || habits[0].HabitID != habit.HabitID {
		t.Fatalf("unexpected list: %+v", habits)
	}
	if habits, err := uc.List(ctx, "u2"); err != nil || len(habits) != 0 {
		t.Fatalf("expected empty list for other user, got %v %+v", err, habits)
	}
}
