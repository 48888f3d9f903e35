package app

import (
	"context"
	"fmt"

	"github.com/5YPEXE/albion-objectives-bot/internal/domain"
)

type CreateObjectiveInput struct {
	Hours   int
	Minutes int
	Kind    string
	Zone    string
}

// CreateObjective validates the request against the fixed vocabularies and
// inserts the record. While the server is online the objective starts active
// with an absolute deadline; while offline it starts paused, owing the full
// duration until the resume edge re-anchors it.
func (t *Tracker) CreateObjective(ctx context.Context, in CreateObjectiveInput) (domain.Objective, error) {
	if in.Hours < 0 || in.Minutes < 0 {
		return domain.Objective{}, domain.ErrInvalidDuration
	}
	if !t.objectives.Contains(in.Kind) {
		return domain.Objective{}, domain.ErrUnknownObjective
	}
	if !t.zones.Contains(in.Zone) {
		return domain.Objective{}, domain.ErrUnknownZone
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now().Unix()
	duration := int64(in.Hours)*3600 + int64(in.Minutes)*60

	obj := domain.Objective{Kind: in.Kind, Zone: in.Zone}
	var err error
	if t.availability.Online() {
		obj.Status = domain.ObjectiveStatusActive
		obj.EndTime = now + duration
		obj.ID, err = t.store.InsertActive(ctx, in.Kind, in.Zone, obj.EndTime)
	} else {
		obj.Status = domain.ObjectiveStatusPaused
		obj.RemainingSeconds = duration
		obj.ID, err = t.store.InsertPaused(ctx, in.Kind, in.Zone, duration)
	}
	if err != nil {
		return domain.Objective{}, fmt.Errorf("insert objective: %w", err)
	}

	t.redisplayLogged(ctx)
	return obj, nil
}

// ClearAll wipes every objective regardless of status and refreshes the
// board exactly once.
func (t *Tracker) ClearAll(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	count, err := t.store.ClearAll(ctx)
	if err != nil {
		return fmt.Errorf("clear objectives: %w", err)
	}
	t.logger.Printf("cleared %d objectives", count)

	t.redisplayLogged(ctx)
	return nil
}

// AutocompleteField selects which vocabulary an autocomplete request is for.
type AutocompleteField int

const (
	FieldObjective AutocompleteField = iota
	FieldZone
)

// Autocomplete returns up to 25 case-insensitive substring matches from the
// selected vocabulary, in vocabulary order.
func (t *Tracker) Autocomplete(field AutocompleteField, partial string) []string {
	if field == FieldZone {
		return t.zones.Match(partial)
	}
	return t.objectives.Match(partial)
}
