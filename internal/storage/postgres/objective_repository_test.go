package postgres

import (
	"context"
	"testing"

	"github.com/5YPEXE/albion-objectives-bot/internal/domain"
	"github.com/5YPEXE/albion-objectives-bot/internal/testutil"
)

func TestObjectiveRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewObjectiveRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	const now int64 = 1_800_000_000

	t.Run("insert and list ordered by effective deadline", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		late, err := repo.InsertActive(ctx, "4.4 Ore", "Black Monastery", now+900)
		if err != nil {
			t.Fatalf("insert late: %v", err)
		}
		pausedA, err := repo.InsertPaused(ctx, "4.4 Fiber", "Daemonium Keep", 300)
		if err != nil {
			t.Fatalf("insert paused: %v", err)
		}
		early, err := repo.InsertActive(ctx, "4.4 Hide", "Citadel of Ash", now+60)
		if err != nil {
			t.Fatalf("insert early: %v", err)
		}
		pausedB, err := repo.InsertPaused(ctx, "4.4 Wood", "Avalanche Incline", 120)
		if err != nil {
			t.Fatalf("insert paused: %v", err)
		}

		list, err := repo.ListOrderedByDeadline(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 4 {
			t.Fatalf("expected 4 records, got %d", len(list))
		}

		// Actives ascending by deadline, then paused ascending by id.
		wantOrder := []int64{early, late, pausedA, pausedB}
		for i, want := range wantOrder {
			if list[i].ID != want {
				t.Fatalf("position %d: expected id %d, got %d", i, want, list[i].ID)
			}
		}
		if list[0].EndTime != now+60 || list[0].RemainingSeconds != 0 {
			t.Fatalf("active record fields wrong: %+v", list[0])
		}
		if list[2].RemainingSeconds != 300 || list[2].EndTime != 0 {
			t.Fatalf("paused record fields wrong: %+v", list[2])
		}
	})

	t.Run("DeleteExpiredActive sweeps deadlines at or before now", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		if _, err := repo.InsertActive(ctx, "4.4 Ore", "Black Monastery", now); err != nil {
			t.Fatalf("insert at deadline: %v", err)
		}
		if _, err := repo.InsertActive(ctx, "4.4 Ore", "Black Monastery", now+1); err != nil {
			t.Fatalf("insert future: %v", err)
		}
		if _, err := repo.InsertPaused(ctx, "4.4 Ore", "Black Monastery", 0); err != nil {
			t.Fatalf("insert paused: %v", err)
		}

		deleted, err := repo.DeleteExpiredActive(ctx, now)
		if err != nil {
			t.Fatalf("sweep: %v", err)
		}
		if deleted != 1 {
			t.Fatalf("expected 1 swept, got %d", deleted)
		}

		list, err := repo.ListOrderedByDeadline(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("paused records and future actives must survive, got %d", len(list))
		}
		for _, o := range list {
			if o.Status == domain.ObjectiveStatusActive && o.EndTime <= now {
				t.Fatalf("expired active survived the sweep: %+v", o)
			}
		}
	})

	t.Run("freeze and resume round-trip", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		id, err := repo.InsertActive(ctx, "Rare(Purple) Vortex", "Black Monastery", now+9000)
		if err != nil {
			t.Fatalf("insert: %v", err)
		}

		frozen, err := repo.MarkAllActivePaused(ctx, now+100)
		if err != nil {
			t.Fatalf("freeze: %v", err)
		}
		if frozen != 1 {
			t.Fatalf("expected 1 frozen, got %d", frozen)
		}

		list, err := repo.ListOrderedByDeadline(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if list[0].ID != id || list[0].Status != domain.ObjectiveStatusPaused {
			t.Fatalf("expected paused record, got %+v", list[0])
		}
		if list[0].RemainingSeconds != 8900 {
			t.Fatalf("expected 8900 remaining, got %d", list[0].RemainingSeconds)
		}

		// Idempotent: nothing active remains to freeze again.
		frozen, err = repo.MarkAllActivePaused(ctx, now+100)
		if err != nil {
			t.Fatalf("second freeze: %v", err)
		}
		if frozen != 0 {
			t.Fatalf("second freeze must be a no-op, got %d", frozen)
		}

		resumed, err := repo.ResumeAllPaused(ctx, now+400)
		if err != nil {
			t.Fatalf("resume: %v", err)
		}
		if resumed != 1 {
			t.Fatalf("expected 1 resumed, got %d", resumed)
		}

		list, err = repo.ListOrderedByDeadline(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if list[0].Status != domain.ObjectiveStatusActive {
			t.Fatalf("expected active record, got %+v", list[0])
		}
		if want := now + 400 + 8900; list[0].EndTime != want {
			t.Fatalf("expected re-anchored deadline %d, got %d", want, list[0].EndTime)
		}
		if list[0].RemainingSeconds != 0 {
			t.Fatalf("resumed record must not carry remaining seconds, got %d", list[0].RemainingSeconds)
		}
	})

	t.Run("freeze clamps at zero", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		if _, err := repo.InsertActive(ctx, "4.4 Ore", "Black Monastery", now-50); err != nil {
			t.Fatalf("insert: %v", err)
		}

		if _, err := repo.MarkAllActivePaused(ctx, now); err != nil {
			t.Fatalf("freeze: %v", err)
		}
		list, err := repo.ListOrderedByDeadline(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if list[0].RemainingSeconds != 0 {
			t.Fatalf("overdue freeze must clamp to zero, got %d", list[0].RemainingSeconds)
		}
	})

	t.Run("ClearAll removes every record", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		if _, err := repo.InsertActive(ctx, "4.4 Ore", "Black Monastery", now+600); err != nil {
			t.Fatalf("insert: %v", err)
		}
		if _, err := repo.InsertPaused(ctx, "4.4 Fiber", "Daemonium Keep", 120); err != nil {
			t.Fatalf("insert: %v", err)
		}

		cleared, err := repo.ClearAll(ctx)
		if err != nil {
			t.Fatalf("clear: %v", err)
		}
		if cleared != 2 {
			t.Fatalf("expected 2 cleared, got %d", cleared)
		}

		list, err := repo.ListOrderedByDeadline(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 0 {
			t.Fatalf("expected empty table, got %d records", len(list))
		}
	})
}
