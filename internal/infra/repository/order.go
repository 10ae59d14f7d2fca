package repository

import (
	"context"

	"atelier-store/internal/domain/order"
	"atelier-store/internal/infra"
	"atelier-store/internal/infra/db"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(pool db.DBTX) *OrderRepository {
	return &OrderRepository{db: pool}
}

// Insert persists the order and its lines. The unique payment_intent_id
// doubles as the redelivery guard: a replayed webhook inserts zero rows and
// the caller treats that as an already-processed event.
func (r *OrderRepository) Insert(ctx context.Context, tx db.DBTX, o *order.Order) (bool, error) {
	const insertOrder = `
		INSERT INTO orders (id, payment_intent_id, session_id, email, total_cents)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (payment_intent_id) DO NOTHING`

	tag, err := tx.Exec(ctx, insertOrder,
		o.ID(), o.PaymentIntentID(), o.SessionID(), o.Email(), o.TotalCents())
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert order", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	const insertLine = `
		INSERT INTO order_lines (order_id, product_id, name, price_cents)
		VALUES ($1, $2, $3, $4)`

	for _, line := range o.Lines() {
		if _, err := tx.Exec(ctx, insertLine, o.ID(), line.ProductID, line.Name, line.PriceCents); err != nil {
			return false, infra.WrapRepoErr("failed to insert order line", err)
		}
	}

	return true, nil
}

func (r *OrderRepository) ExistsByPaymentIntent(ctx context.Context, paymentIntentID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM orders WHERE payment_intent_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, paymentIntentID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check order existence", err)
	}
	return exists, nil
}
