package commands

import (
	"context"
	"log/slog"

	"atelier-store/internal/domain/reservation"
	"atelier-store/internal/infra"
	"atelier-store/internal/infra/db"
	"atelier-store/internal/pkg/clock"
	"atelier-store/internal/pkg/config"
	"atelier-store/internal/pkg/errs"
	"atelier-store/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound         = errs.New("product not found")
	ErrProductHeld             = errs.New("product is held by another session")
	ErrProductSold             = errs.New("product is sold")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ReservationCommands is the authoritative create/release/consume surface of
// the hold ledger. Every mutation of the product availability pair goes
// through a conditional update, so concurrent callers resolve to exactly one
// winner without an in-process lock.
type ReservationCommands interface {
	// Reserve atomically claims the product for the session. A product
	// validly held by another session fails with ErrProductHeld; a product
	// held by this same session gets a fresh hold (extend).
	Reserve(ctx context.Context, sessionID string, productID uuid.UUID) (*reservation.Hold, error)
	// Release is idempotent: releasing an already-released or never-held
	// product is a no-op, not an error.
	Release(ctx context.Context, sessionID string, productID uuid.UUID) error
	// Complete consumes the session's holds on productIDs into a finished
	// order and permanently removes the products from the pool. Per-item
	// failures are logged and do not block the remaining items.
	Complete(ctx context.Context, sessionID string, productIDs []uuid.UUID) error
}

type reservationCommandsImpl struct {
	holds    HoldRepository
	products ProductRepository
	mirror   AvailabilityMirror
	uow      shared.UnitOfWork
	clock    clock.Clock
	hold     config.HoldConfig
	logger   *slog.Logger
}

func NewReservationCommands(
	holds HoldRepository,
	products ProductRepository,
	mirror AvailabilityMirror,
	uow shared.UnitOfWork,
	clock clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		holds:    holds,
		products: products,
		mirror:   mirror,
		uow:      uow,
		clock:    clock,
		hold:     cfg.Hold,
		logger:   logger,
	}
}

func (c *reservationCommandsImpl) Reserve(ctx context.Context, sessionID string, productID uuid.UUID) (*reservation.Hold, error) {
	now := c.clock.Now()

	hold, err := reservation.NewHold(now, productID, sessionID, c.hold.Duration)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		claimed, err := c.products.Claim(ctx, tx, productID, sessionID, hold.ExpiresAt(), now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !claimed {
			return c.explainFailedClaim(ctx, tx, productID, sessionID)
		}

		// A stale holder's row is still 'active' until the sweep visits it;
		// settle it here or it blocks the insert via the partial unique
		// index.
		if _, err := c.holds.ExpireLapsed(ctx, tx, productID, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Extend path: the prior hold for this session ends here, a fresh
		// row begins. Holds are never resurrected.
		if _, err := c.holds.ExpireActive(ctx, tx, sessionID, productID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.holds.Insert(ctx, tx, hold); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrProductHeld
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if mirrorErr := c.mirror.SetHold(ctx, productID, sessionID, hold.ExpiresAt(), now); mirrorErr != nil {
		c.logger.Warn("failed to mirror hold to cache",
			"product_id", productID, "error", mirrorErr.Error())
	}

	return hold, nil
}

// explainFailedClaim turns a zero-row conditional update into a typed error.
// The row is read under FOR UPDATE so the answer cannot race the writer that
// beat us.
func (c *reservationCommandsImpl) explainFailedClaim(ctx context.Context, tx db.DBTX, productID uuid.UUID, sessionID string) error {
	snap, err := c.products.FindForUpdate(ctx, tx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.Sold {
		return ErrProductSold
	}
	return ErrProductHeld
}

func (c *reservationCommandsImpl) Release(ctx context.Context, sessionID string, productID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := c.holds.ExpireActive(ctx, tx, sessionID, productID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		// Clears only while the pair still points at this session; a newer
		// hold by someone else stays untouched.
		if _, err := c.products.ClearHold(ctx, tx, productID, sessionID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if mirrorErr := c.mirror.ClearHold(ctx, productID, sessionID); mirrorErr != nil {
		c.logger.Warn("failed to clear mirrored hold",
			"product_id", productID, "error", mirrorErr.Error())
	}

	return nil
}

func (c *reservationCommandsImpl) Complete(ctx context.Context, sessionID string, productIDs []uuid.UUID) error {
	var firstErr error

	for _, productID := range productIDs {
		err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
			if _, err := c.holds.CompleteActive(ctx, tx, sessionID, productID); err != nil {
				return err
			}
			if _, err := c.products.MarkSold(ctx, tx, productID); err != nil {
				return err
			}
			return nil
		})
		if err != nil {
			c.logger.Error("failed to complete hold",
				"session_id", sessionID, "product_id", productID, "error", err.Error())
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if mirrorErr := c.mirror.Delete(ctx, productID); mirrorErr != nil {
			c.logger.Warn("failed to drop mirrored hold",
				"product_id", productID, "error", mirrorErr.Error())
		}
	}

	if firstErr != nil {
		return errs.Mark(firstErr, ErrDatabaseOperationFailed)
	}
	return nil
}
