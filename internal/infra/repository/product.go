package repository

import (
	"context"
	"time"

	"atelier-store/internal/domain/product"
	"atelier-store/internal/infra"
	"atelier-store/internal/infra/db"
	"atelier-store/internal/pkg/pgconv"
	"atelier-store/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ProductRepository mutates the denormalized availability pair. Every write
// here is a compare-and-set: the WHERE clause states what the caller believes
// about the row, and zero affected rows means that belief was stale. This is
// the storage-level substitute for a lock shared by Reserve, Release, the
// sweep and the finalizer.
type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(pool db.DBTX) *ProductRepository {
	return &ProductRepository{db: pool}
}

func (r *ProductRepository) Insert(ctx context.Context, tx db.DBTX, p *product.Product) error {
	const q = `
		INSERT INTO products (id, name, price_cents, sold, reserved_until, reserved_by_session)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, q,
		p.ID(), p.Name(), p.PriceCents(), p.Sold(),
		pgconv.TimePtrToPgtype(p.ReservedUntil()), pgconv.StringPtrToPgtype(p.ReservedBySession()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert product", err)
	}
	return nil
}

// Claim atomically takes the availability pair for sessionID. It succeeds
// when the product is unsold and unheld, stale-held (past reserved_until),
// or already held by this same session (extend).
func (r *ProductRepository) Claim(ctx context.Context, tx db.DBTX, productID uuid.UUID, sessionID string, until, now time.Time) (bool, error) {
	const q = `
		UPDATE products
		SET reserved_until = $3, reserved_by_session = $2, updated_at = now()
		WHERE id = $1
		  AND sold = FALSE
		  AND (reserved_until IS NULL OR reserved_until <= $4 OR reserved_by_session = $2)`

	tag, err := tx.Exec(ctx, q, productID, sessionID,
		pgconv.TimeToPgtype(until), pgconv.TimeToPgtype(now))
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim product", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ClearHold releases the pair only while it still points at sessionID, so a
// stale releaser can never clear a newer, still-valid hold.
func (r *ProductRepository) ClearHold(ctx context.Context, tx db.DBTX, productID uuid.UUID, sessionID string) (bool, error) {
	const q = `
		UPDATE products
		SET reserved_until = NULL, reserved_by_session = NULL, updated_at = now()
		WHERE id = $1 AND reserved_by_session = $2`

	tag, err := tx.Exec(ctx, q, productID, sessionID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to clear product hold", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkSold permanently removes the product from the available pool. Distinct
// from ClearHold: sold items never return.
func (r *ProductRepository) MarkSold(ctx context.Context, tx db.DBTX, productID uuid.UUID) (bool, error) {
	const q = `
		UPDATE products
		SET sold = TRUE, reserved_until = NULL, reserved_by_session = NULL, updated_at = now()
		WHERE id = $1 AND sold = FALSE`

	tag, err := tx.Exec(ctx, q, productID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark product sold", err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindForUpdate reads the row a failed Claim needs to explain itself, locked
// so the explanation cannot race a concurrent mutation.
func (r *ProductRepository) FindForUpdate(ctx context.Context, tx db.DBTX, productID uuid.UUID) (*commands.ProductSnapshot, error) {
	const q = `
		SELECT id, name, price_cents, sold, reserved_until, reserved_by_session
		FROM products
		WHERE id = $1
		FOR UPDATE`

	var (
		snap          commands.ProductSnapshot
		reservedUntil pgtype.Timestamptz
		reservedBy    pgtype.Text
	)
	err := tx.QueryRow(ctx, q, productID).Scan(
		&snap.ID, &snap.Name, &snap.PriceCents, &snap.Sold, &reservedUntil, &reservedBy,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product for update", err)
	}

	snap.ReservedUntil = pgconv.TimePtrFromPgtype(reservedUntil)
	snap.ReservedBySession = pgconv.StringPtrFromPgtype(reservedBy)
	return &snap, nil
}
