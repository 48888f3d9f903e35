package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/5YPEXE/albion-objectives-bot/internal/domain"
)

// ObjectiveRepository stores objectives in a single Postgres table. Every
// bulk transition is one statement, so each record flips as a unit and a
// second call with nothing left to transition is a no-op.
type ObjectiveRepository struct {
	pool *pgxpool.Pool
}

func NewObjectiveRepository(pool *pgxpool.Pool) *ObjectiveRepository {
	return &ObjectiveRepository{pool: pool}
}

func (r *ObjectiveRepository) InsertActive(ctx context.Context, kind, zone string, endTime int64) (int64, error) {
	const stmt = `
INSERT INTO objectives (objective, zone, end_time)
VALUES ($1, $2, $3)
RETURNING id`

	var id int64
	if err := r.pool.QueryRow(ctx, stmt, kind, zone, endTime).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert active objective: %w", err)
	}
	return id, nil
}

func (r *ObjectiveRepository) InsertPaused(ctx context.Context, kind, zone string, remaining int64) (int64, error) {
	const stmt = `
INSERT INTO objectives (objective, zone, remaining_seconds, status)
VALUES ($1, $2, $3, 'paused')
RETURNING id`

	var id int64
	if err := r.pool.QueryRow(ctx, stmt, kind, zone, remaining).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert paused objective: %w", err)
	}
	return id, nil
}

// ListOrderedByDeadline returns active objectives first, ascending by
// deadline, then paused objectives ascending by id (paused records have no
// deadline to compare; id keeps the order stable).
func (r *ObjectiveRepository) ListOrderedByDeadline(ctx context.Context) ([]domain.Objective, error) {
	const query = `
SELECT id, objective, zone, status, COALESCE(end_time, 0), COALESCE(remaining_seconds, 0)
FROM objectives
ORDER BY status = 'paused', end_time ASC NULLS LAST, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list objectives: %w", err)
	}
	defer rows.Close()

	var list []domain.Objective
	for rows.Next() {
		var o domain.Objective
		if err := rows.Scan(&o.ID, &o.Kind, &o.Zone, &o.Status, &o.EndTime, &o.RemainingSeconds); err != nil {
			return nil, fmt.Errorf("scan objective: %w", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate objectives: %w", err)
	}
	return list, nil
}

func (r *ObjectiveRepository) DeleteExpiredActive(ctx context.Context, now int64) (int64, error) {
	const stmt = `DELETE FROM objectives WHERE status = 'active' AND end_time <= $1`

	tag, err := r.pool.Exec(ctx, stmt, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired objectives: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ObjectiveRepository) ClearAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM objectives`)
	if err != nil {
		return 0, fmt.Errorf("clear objectives: %w", err)
	}
	return tag.RowsAffected(), nil
}

// MarkAllActivePaused snapshots the remaining time of every active objective
// at `now` and freezes it. The GREATEST clamp is unreachable when the expiry
// sweep ran first with the same instant, but keeps the column non-negative
// regardless.
func (r *ObjectiveRepository) MarkAllActivePaused(ctx context.Context, now int64) (int64, error) {
	const stmt = `
UPDATE objectives
SET status = 'paused', remaining_seconds = GREATEST(0, end_time - $1), end_time = NULL
WHERE status = 'active'`

	tag, err := r.pool.Exec(ctx, stmt, now)
	if err != nil {
		return 0, fmt.Errorf("pause objectives: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ResumeAllPaused re-anchors every paused objective to an absolute deadline
// `now + remaining`.
func (r *ObjectiveRepository) ResumeAllPaused(ctx context.Context, now int64) (int64, error) {
	const stmt = `
UPDATE objectives
SET status = 'active', end_time = $1 + remaining_seconds, remaining_seconds = NULL
WHERE status = 'paused'`

	tag, err := r.pool.Exec(ctx, stmt, now)
	if err != nil {
		return 0, fmt.Errorf("resume objectives: %w", err)
	}
	return tag.RowsAffected(), nil
}
