package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"atelier-store/internal/domain/order"
	"atelier-store/internal/infra/db"
	"atelier-store/internal/pkg/clock"
	"atelier-store/internal/pkg/errs"
	"atelier-store/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUnknownPaymentOutcome = errs.New("unknown payment outcome")
	ErrInvalidCartSnapshot   = errs.New("invalid cart snapshot")
	ErrOrderCreationFailed   = errs.New("order creation failed")
	ErrReleaseFailed         = errs.New("failed to release session holds")
)

type PaymentOutcome string

const (
	PaymentSucceeded PaymentOutcome = "succeeded"
	PaymentFailed    PaymentOutcome = "failed"
)

// CartSnapshotItem is one line of the cart as serialized into the payment
// intent's metadata when checkout began.
type CartSnapshotItem struct {
	ProductID  uuid.UUID `json:"product_id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
}

// PaymentEvent is the verified content of a processor callback.
type PaymentEvent struct {
	IntentID  string
	Outcome   PaymentOutcome
	SessionID string
	Email     string
	Items     []CartSnapshotItem
}

// CheckoutCommands converts a session's holds into a completed order on
// payment success, or returns them to the pool on payment failure. The
// processor may redeliver either outcome; both paths are idempotent.
type CheckoutCommands interface {
	HandlePaymentOutcome(ctx context.Context, evt PaymentEvent) error
}

type checkoutCommandsImpl struct {
	orders        OrderRepository
	notifications NotificationRepository
	finder        HoldFinder
	reservations  ReservationCommands
	uow           shared.UnitOfWork
	clock         clock.Clock
	logger        *slog.Logger
}

func NewCheckoutCommands(
	orders OrderRepository,
	notifications NotificationRepository,
	finder HoldFinder,
	reservations ReservationCommands,
	uow shared.UnitOfWork,
	clock clock.Clock,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		orders:        orders,
		notifications: notifications,
		finder:        finder,
		reservations:  reservations,
		uow:           uow,
		clock:         clock,
		logger:        logger,
	}
}

func (c *checkoutCommandsImpl) HandlePaymentOutcome(ctx context.Context, evt PaymentEvent) error {
	switch evt.Outcome {
	case PaymentSucceeded:
		return c.handleSucceeded(ctx, evt)
	case PaymentFailed:
		return c.handleFailed(ctx, evt)
	default:
		return ErrUnknownPaymentOutcome
	}
}

// handleSucceeded treats the order row as the durable source of truth. Once
// it commits, every later step is best-effort: the payment is already
// captured, so nothing may roll back or block the order.
func (c *checkoutCommandsImpl) handleSucceeded(ctx context.Context, evt PaymentEvent) error {
	lines := make([]order.Line, len(evt.Items))
	for i, item := range evt.Items {
		lines[i] = order.Line{
			ProductID:  item.ProductID,
			Name:       item.Name,
			PriceCents: item.PriceCents,
		}
	}

	newOrder, err := order.NewOrder(evt.IntentID, evt.SessionID, evt.Email, lines)
	if err != nil {
		return errs.Mark(err, ErrInvalidCartSnapshot)
	}

	redelivered, err := c.orders.ExistsByPaymentIntent(ctx, evt.IntentID)
	if err != nil {
		return errs.Mark(err, ErrOrderCreationFailed)
	}

	var created bool
	if !redelivered {
		err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
			ok, err := c.orders.Insert(ctx, tx, newOrder)
			if err != nil {
				return err
			}
			created = ok
			return nil
		})
		if err != nil {
			return errs.Mark(err, ErrOrderCreationFailed)
		}
	}
	if !created {
		// Redelivered success notification. The order row is already there,
		// but the first delivery may have died before its holds were
		// consumed, so the completion below still runs.
		c.logger.Info("payment success redelivered, order already exists",
			"payment_intent_id", evt.IntentID, "session_id", evt.SessionID)
	}

	productIDs := make([]uuid.UUID, len(evt.Items))
	for i, item := range evt.Items {
		productIDs[i] = item.ProductID
	}
	if err := c.reservations.Complete(ctx, evt.SessionID, productIDs); err != nil {
		c.logger.Error("failed to complete holds after order creation",
			"payment_intent_id", evt.IntentID, "error", err.Error())
	}

	if !created {
		return nil
	}

	if err := c.enqueueConfirmation(ctx, newOrder); err != nil {
		c.logger.Error("failed to enqueue order confirmation",
			"order_id", newOrder.ID(), "error", err.Error())
	}

	return nil
}

// handleFailed returns the items to the available pool immediately rather
// than waiting for the next sweep. Releasing an already-released hold is a
// no-op, so redelivery is safe.
func (c *checkoutCommandsImpl) handleFailed(ctx context.Context, evt PaymentEvent) error {
	holds, err := c.finder.FindActiveBySessionAny(ctx, evt.SessionID)
	if err != nil {
		return errs.Mark(err, ErrReleaseFailed)
	}

	var firstErr error
	for _, hold := range holds {
		if err := c.reservations.Release(ctx, evt.SessionID, hold.ProductID); err != nil {
			c.logger.Error("failed to release hold after payment failure",
				"session_id", evt.SessionID, "product_id", hold.ProductID, "error", err.Error())
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		return errs.Mark(firstErr, ErrReleaseFailed)
	}

	c.logger.Info("released session holds after payment failure",
		"session_id", evt.SessionID, "released", len(holds))
	return nil
}

func (c *checkoutCommandsImpl) enqueueConfirmation(ctx context.Context, o *order.Order) error {
	payload, err := json.Marshal(map[string]any{
		"order_id": o.ID(),
		"email":    o.Email(),
		"type":     "order_confirmation",
	})
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return c.notifications.CreateJob(ctx, tx, "email", "order_confirmation", payload, c.clock.Now())
	})
}
