package app

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/5YPEXE/albion-objectives-bot/internal/clock"
	"github.com/5YPEXE/albion-objectives-bot/internal/domain"
	"github.com/5YPEXE/albion-objectives-bot/internal/render"
)

// ObjectiveStore is the persistence surface the tracker needs. Every bulk
// operation applies to each record as a unit and is idempotent when there is
// nothing left to transition.
type ObjectiveStore interface {
	InsertActive(ctx context.Context, kind, zone string, endTime int64) (int64, error)
	InsertPaused(ctx context.Context, kind, zone string, remaining int64) (int64, error)
	ListOrderedByDeadline(ctx context.Context) ([]domain.Objective, error)
	DeleteExpiredActive(ctx context.Context, now int64) (int64, error)
	ClearAll(ctx context.Context) (int64, error)
	MarkAllActivePaused(ctx context.Context, now int64) (int64, error)
	ResumeAllPaused(ctx context.Context, now int64) (int64, error)
}

// StatusProbe reports whether the game server is online. An error means the
// reading failed and says nothing about availability.
type StatusProbe interface {
	Check(ctx context.Context) (bool, error)
}

// BoardPublisher posts a rendered board and removes a previous one. Publish
// returns an opaque handle used for later deletion.
type BoardPublisher interface {
	Publish(ctx context.Context, board render.Board) (string, error)
	Delete(ctx context.Context, handle string) error
}

// Tracker owns the objective board. One mutex serializes command requests,
// reconcile ticks and refreshes, so no tick can observe a half-applied
// mutation and no two store mutations interleave.
type Tracker struct {
	mu sync.Mutex

	store        ObjectiveStore
	probe        StatusProbe
	publisher    BoardPublisher
	availability *Availability
	objectives   domain.Vocabulary
	zones        domain.Vocabulary
	clock        clock.Clock
	logger       *log.Logger

	// lastHandle is the currently live board message; at most one exists.
	lastHandle string
}

func NewTracker(
	store ObjectiveStore,
	probe StatusProbe,
	publisher BoardPublisher,
	objectives, zones domain.Vocabulary,
	clk clock.Clock,
	logger *log.Logger,
) *Tracker {
	return &Tracker{
		store:        store,
		probe:        probe,
		publisher:    publisher,
		availability: NewAvailability(),
		objectives:   objectives,
		zones:        zones,
		clock:        clk,
		logger:       logger,
	}
}

// redisplay renders the current store state and publishes it, superseding
// the previous board. Delete failures are best-effort; a stale message is
// better than no update. Callers must hold t.mu.
func (t *Tracker) redisplay(ctx context.Context) error {
	list, err := t.store.ListOrderedByDeadline(ctx)
	if err != nil {
		return fmt.Errorf("list objectives: %w", err)
	}

	board := render.Build(list, t.availability.Online(), t.clock.Now())

	if t.lastHandle != "" {
		if err := t.publisher.Delete(ctx, t.lastHandle); err != nil {
			t.logger.Printf("WARN: delete previous board: %v", err)
		}
	}

	handle, err := t.publisher.Publish(ctx, board)
	if err != nil {
		return fmt.Errorf("publish board: %w", err)
	}
	t.lastHandle = handle
	return nil
}

// redisplayLogged runs redisplay and downgrades its failure to a log line.
// A missed publish heals on the next tick or on the unconditional refresh.
func (t *Tracker) redisplayLogged(ctx context.Context) {
	if err := t.redisplay(ctx); err != nil {
		t.logger.Printf("WARN: board refresh failed: %v", err)
	}
}
