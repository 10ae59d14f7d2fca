package repository

import (
	"context"
	"errors"
	"time"

	"atelier-store/internal/domain/reservation"
	"atelier-store/internal/infra"
	"atelier-store/internal/infra/db"
	"atelier-store/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// ReservationRepository is the write side of the hold ledger. Status
// transitions are guarded in SQL so a stale caller can never flip a hold a
// newer actor already settled.
type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(pool db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: pool}
}

func (r *ReservationRepository) Insert(ctx context.Context, tx db.DBTX, h *reservation.Hold) error {
	const q = `
		INSERT INTO reservations (id, product_id, session_id, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, q,
		h.ID(), h.ProductID(), h.SessionID(), h.Status().String(),
		pgconv.TimeToPgtype(h.CreatedAt()), pgconv.TimeToPgtype(h.ExpiresAt()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("active hold already exists for product", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to insert hold", err)
	}
	return nil
}

// ExpireActive marks the session's active hold on a product expired. Zero
// rows is a valid outcome; Release is idempotent.
func (r *ReservationRepository) ExpireActive(ctx context.Context, tx db.DBTX, sessionID string, productID uuid.UUID) (int64, error) {
	const q = `
		UPDATE reservations
		SET status = 'expired'
		WHERE session_id = $1 AND product_id = $2 AND status = 'active'`

	tag, err := tx.Exec(ctx, q, sessionID, productID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire active hold", err)
	}
	return tag.RowsAffected(), nil
}

// ExpireLapsed settles any lapsed active hold on the product, whoever held
// it. A new claimant must be able to reserve without waiting for the sweep,
// so the stale row is flipped before the claimant's own row is inserted.
func (r *ReservationRepository) ExpireLapsed(ctx context.Context, tx db.DBTX, productID uuid.UUID, now time.Time) (int64, error) {
	const q = `
		UPDATE reservations
		SET status = 'expired'
		WHERE product_id = $1 AND status = 'active' AND expires_at <= $2`

	tag, err := tx.Exec(ctx, q, productID, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire lapsed hold", err)
	}
	return tag.RowsAffected(), nil
}

// MarkExpiredByID is the sweep's transition; guarded on status so a re-run
// over an already-expired hold is a no-op.
func (r *ReservationRepository) MarkExpiredByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error) {
	const q = `
		UPDATE reservations
		SET status = 'expired'
		WHERE id = $1 AND status = 'active'`

	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark hold expired", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CompleteActive consumes the session's active hold on a product into a
// finished order.
func (r *ReservationRepository) CompleteActive(ctx context.Context, tx db.DBTX, sessionID string, productID uuid.UUID) (bool, error) {
	const q = `
		UPDATE reservations
		SET status = 'completed'
		WHERE session_id = $1 AND product_id = $2 AND status = 'active'`

	tag, err := tx.Exec(ctx, q, sessionID, productID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete hold", err)
	}
	return tag.RowsAffected() > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505"
}
