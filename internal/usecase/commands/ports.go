package commands

import (
	"context"
	"time"

	"atelier-store/internal/domain/order"
	"atelier-store/internal/domain/reservation"
	"atelier-store/internal/infra/db"
	"atelier-store/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side snapshot prevents dependency on read-side query types
type ProductSnapshot struct {
	ID                uuid.UUID
	Name              string
	PriceCents        int64
	Sold              bool
	ReservedUntil     *time.Time
	ReservedBySession *string
}

type HoldRepository interface {
	Insert(ctx context.Context, tx db.DBTX, h *reservation.Hold) error
	ExpireActive(ctx context.Context, tx db.DBTX, sessionID string, productID uuid.UUID) (int64, error)
	ExpireLapsed(ctx context.Context, tx db.DBTX, productID uuid.UUID, now time.Time) (int64, error)
	MarkExpiredByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error)
	CompleteActive(ctx context.Context, tx db.DBTX, sessionID string, productID uuid.UUID) (bool, error)
}

type ProductRepository interface {
	Claim(ctx context.Context, tx db.DBTX, productID uuid.UUID, sessionID string, until, now time.Time) (bool, error)
	ClearHold(ctx context.Context, tx db.DBTX, productID uuid.UUID, sessionID string) (bool, error)
	MarkSold(ctx context.Context, tx db.DBTX, productID uuid.UUID) (bool, error)
	FindForUpdate(ctx context.Context, tx db.DBTX, productID uuid.UUID) (*ProductSnapshot, error)
}

type HoldFinder interface {
	FindLapsed(ctx context.Context, limit int32) ([]*queries.HoldView, error)
	FindActiveBySessionAny(ctx context.Context, sessionID string) ([]*queries.HoldView, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx db.DBTX, o *order.Order) (bool, error)
	ExistsByPaymentIntent(ctx context.Context, paymentIntentID string) (bool, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	FindPending(ctx context.Context, now time.Time, limit int32) ([]*queries.NotificationJobView, error)
	MarkDelivered(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error
}

// AvailabilityMirror receives best-effort write-behind updates after the
// authoritative transaction commits. Errors are logged, never propagated.
type AvailabilityMirror interface {
	SetHold(ctx context.Context, productID uuid.UUID, sessionID string, until, now time.Time) error
	ClearHold(ctx context.Context, productID uuid.UUID, sessionID string) error
	Delete(ctx context.Context, productID uuid.UUID) error
}
