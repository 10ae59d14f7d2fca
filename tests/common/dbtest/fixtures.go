//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestProduct(t *testing.T, db DBLike, name string, priceCents int64) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO products (id, name, price_cents, sold) VALUES ($1, $2, $3, FALSE)",
		productID, name, priceCents)
	require.NoError(t, err)

	return productID
}

// CreateLapsedHold seeds an active reservation whose expiry is already in
// the past, together with the matching product pair, as if the sweep had not
// run yet.
func CreateLapsedHold(t *testing.T, db DBLike, productID uuid.UUID, sessionID string, lapsedBy time.Duration) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	holdID := uuid.New()
	expiresAt := time.Now().UTC().Add(-lapsedBy)
	createdAt := expiresAt.Add(-15 * time.Minute)

	_, err := db.Exec(ctx,
		"INSERT INTO reservations (id, product_id, session_id, status, created_at, expires_at) VALUES ($1, $2, $3, 'active', $4, $5)",
		holdID, productID, sessionID, createdAt, expiresAt)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"UPDATE products SET reserved_until = $2, reserved_by_session = $3 WHERE id = $1",
		productID, expiresAt, sessionID)
	require.NoError(t, err)

	return holdID
}

// ForceLapse rewinds an active hold's expiry into the past, as if the hold
// duration had elapsed without the sweep noticing yet.
func ForceLapse(t *testing.T, db DBLike, productID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	past := time.Now().UTC().Add(-time.Minute)

	_, err := db.Exec(ctx,
		"UPDATE reservations SET expires_at = $2 WHERE product_id = $1 AND status = 'active'",
		productID, past)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"UPDATE products SET reserved_until = $2 WHERE id = $1",
		productID, past)
	require.NoError(t, err)
}

func HoldStatus(t *testing.T, db DBLike, holdID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM reservations WHERE id = $1", holdID).Scan(&status)
	require.NoError(t, err)
	return status
}

func ProductState(t *testing.T, db DBLike, productID uuid.UUID) (sold bool, reservedBy *string) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT sold, reserved_by_session FROM products WHERE id = $1", productID).
		Scan(&sold, &reservedBy)
	require.NoError(t, err)
	return sold, reservedBy
}

func CountOrders(t *testing.T, db DBLike, paymentIntentID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM orders WHERE payment_intent_id = $1", paymentIntentID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountOrderLines(t *testing.T, db DBLike, paymentIntentID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM order_lines ol
		 JOIN orders o ON o.id = ol.order_id
		 WHERE o.payment_intent_id = $1`, paymentIntentID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every public table between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var tbl string
			if err := rows.Scan(&tbl); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, tbl)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})

	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
