package readstore

import (
	"context"

	"atelier-store/internal/infra"
	"atelier-store/internal/infra/db"
	"atelier-store/internal/pkg/pgconv"
	"atelier-store/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(pool db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: pool}
}

const productColumns = `
	id, name, price_cents, sold, reserved_until, reserved_by_session, created_at, updated_at`

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	q := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var (
		view          queries.ProductView
		reservedUntil pgtype.Timestamptz
		reservedBy    pgtype.Text
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.Name, &view.PriceCents, &view.Sold,
		&reservedUntil, &reservedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}

	view.ReservedUntil = pgconv.TimePtrFromPgtype(reservedUntil)
	view.ReservedBySession = pgconv.StringPtrFromPgtype(reservedBy)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func (r *ProductReadStore) FindAll(ctx context.Context) ([]*queries.ProductView, error) {
	q := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var result []*queries.ProductView
	for rows.Next() {
		var (
			view          queries.ProductView
			reservedUntil pgtype.Timestamptz
			reservedBy    pgtype.Text
			createdAt     pgtype.Timestamptz
			updatedAt     pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.Name, &view.PriceCents, &view.Sold,
			&reservedUntil, &reservedBy, &createdAt, &updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		view.ReservedUntil = pgconv.TimePtrFromPgtype(reservedUntil)
		view.ReservedBySession = pgconv.StringPtrFromPgtype(reservedBy)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}

	return result, nil
}
