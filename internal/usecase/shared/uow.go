package shared

import (
	"context"

	"atelier-store/internal/infra/db"
)

// UnitOfWork runs fn inside one storage transaction. The conditional
// product-field mutations only stay atomic with their reservation-row
// transitions when both go through the same tx.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}
