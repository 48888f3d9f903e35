package app

import (
	"context"
	"fmt"
)

// Tick runs one reconciliation pass. The order is load-bearing: expired
// objectives are swept before any freeze, so a record whose deadline falls
// exactly on the offline instant is removed rather than frozen at zero.
// Freeze and resume use the same `now` as the sweep, keeping the
// active↔paused conversion lossless. At most one redisplay happens per tick.
func (t *Tracker) Tick(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now().Unix()
	needsRedisplay := false

	swept, err := t.store.DeleteExpiredActive(ctx, now)
	if err != nil {
		return fmt.Errorf("sweep expired objectives: %w", err)
	}
	if swept > 0 {
		t.logger.Printf("swept %d expired objectives", swept)
		needsRedisplay = true
	}

	online, probeErr := t.probe.Check(ctx)
	if probeErr != nil {
		// Transient: hold the prior availability state.
		t.logger.Printf("WARN: status check failed: %v", probeErr)
	} else {
		// The edge is committed only after the store transition lands; a
		// failed freeze or resume stays pending and the next tick retries it.
		switch t.availability.Pending(online) {
		case BecameOffline:
			frozen, err := t.store.MarkAllActivePaused(ctx, now)
			if err != nil {
				return fmt.Errorf("freeze objectives: %w", err)
			}
			t.availability.Observe(online)
			t.logger.Printf("server offline, froze %d objectives", frozen)
			needsRedisplay = true
		case BecameOnline:
			resumed, err := t.store.ResumeAllPaused(ctx, now)
			if err != nil {
				return fmt.Errorf("resume objectives: %w", err)
			}
			t.availability.Observe(online)
			t.logger.Printf("server online, resumed %d objectives", resumed)
			needsRedisplay = true
		}
	}

	if needsRedisplay {
		t.redisplayLogged(ctx)
	}
	return nil
}

// Refresh republishes the board regardless of whether anything changed. It
// backs the long-period timer that recovers from missed or failed updates.
func (t *Tracker) Refresh(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.redisplay(ctx)
}
