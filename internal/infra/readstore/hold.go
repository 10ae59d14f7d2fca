package readstore

import (
	"context"

	"atelier-store/internal/infra"
	"atelier-store/internal/infra/db"
	"atelier-store/internal/pkg/clock"
	"atelier-store/internal/pkg/pgconv"
	"atelier-store/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type HoldReadStore struct {
	db    db.DBTX
	clock clock.Clock
}

func NewHoldReadStore(pool db.DBTX, clock clock.Clock) *HoldReadStore {
	return &HoldReadStore{db: pool, clock: clock}
}

// FindActiveBySession filters by wall clock as well as status: a lapsed hold
// the sweep has not reached yet must already be invisible here.
func (r *HoldReadStore) FindActiveBySession(ctx context.Context, sessionID string) ([]*queries.HoldView, error) {
	const q = `
		SELECT id, product_id, session_id, status, created_at, expires_at
		FROM reservations
		WHERE session_id = $1 AND status = 'active' AND expires_at > $2
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, sessionID, pgconv.TimeToPgtype(r.clock.Now()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active holds", err)
	}
	defer rows.Close()

	return scanHoldViews(rows)
}

// FindLapsed feeds the sweep: active rows whose lifetime has passed.
func (r *HoldReadStore) FindLapsed(ctx context.Context, limit int32) ([]*queries.HoldView, error) {
	const q = `
		SELECT id, product_id, session_id, status, created_at, expires_at
		FROM reservations
		WHERE status = 'active' AND expires_at <= $1
		ORDER BY expires_at
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, pgconv.TimeToPgtype(r.clock.Now()), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find lapsed holds", err)
	}
	defer rows.Close()

	return scanHoldViews(rows)
}

// FindActiveBySessionAny ignores the wall-clock filter; the finalizer's
// failure path releases everything the session still holds, lapsed or not.
func (r *HoldReadStore) FindActiveBySessionAny(ctx context.Context, sessionID string) ([]*queries.HoldView, error) {
	const q = `
		SELECT id, product_id, session_id, status, created_at, expires_at
		FROM reservations
		WHERE session_id = $1 AND status = 'active'
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find session holds", err)
	}
	defer rows.Close()

	return scanHoldViews(rows)
}

type holdRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanHoldViews(rows holdRows) ([]*queries.HoldView, error) {
	var result []*queries.HoldView
	for rows.Next() {
		var (
			view      queries.HoldView
			createdAt pgtype.Timestamptz
			expiresAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.ProductID, &view.SessionID, &view.Status, &createdAt, &expiresAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hold row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hold rows", err)
	}
	return result, nil
}
