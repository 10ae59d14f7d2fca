package commands

import (
	"context"
	"log/slog"

	"atelier-store/internal/infra/db"
	"atelier-store/internal/pkg/config"
	"atelier-store/internal/pkg/errs"
	"atelier-store/internal/usecase/shared"
)

var ErrSweepQueryFailed = errs.New("failed to query lapsed holds")

// SweepSummary is what the scheduled trigger reports back.
type SweepSummary struct {
	Expired  int `json:"expired"`
	Released int `json:"released"`
	Errors   int `json:"errors"`
}

// SweepCommands force-expires lapsed holds independent of any client being
// online. Safe to run concurrently with itself and with Reserve/Release: each
// transition is guarded the same way theirs are.
type SweepCommands interface {
	Run(ctx context.Context) (SweepSummary, error)
}

type sweepCommandsImpl struct {
	finder   HoldFinder
	holds    HoldRepository
	products ProductRepository
	mirror   AvailabilityMirror
	uow      shared.UnitOfWork
	cfg      config.SweepConfig
	logger   *slog.Logger
}

func NewSweepCommands(
	finder HoldFinder,
	holds HoldRepository,
	products ProductRepository,
	mirror AvailabilityMirror,
	uow shared.UnitOfWork,
	cfg config.Config,
	logger *slog.Logger,
) SweepCommands {
	return &sweepCommandsImpl{
		finder:   finder,
		holds:    holds,
		products: products,
		mirror:   mirror,
		uow:      uow,
		cfg:      cfg.Sweep,
		logger:   logger,
	}
}

func (s *sweepCommandsImpl) Run(ctx context.Context) (SweepSummary, error) {
	var summary SweepSummary

	lapsed, err := s.finder.FindLapsed(ctx, s.cfg.BatchSize)
	if err != nil {
		return summary, errs.Mark(err, ErrSweepQueryFailed)
	}
	if len(lapsed) == 0 {
		return summary, nil
	}

	// One item failing must not block releasing the others.
	for _, hold := range lapsed {
		expired := false
		released := false

		err := s.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
			ok, err := s.holds.MarkExpiredByID(ctx, tx, hold.ID)
			if err != nil {
				return err
			}
			expired = ok

			// Same session guard as Release: a hold someone else created
			// after this one lapsed must not be clobbered.
			cleared, err := s.products.ClearHold(ctx, tx, hold.ProductID, hold.SessionID)
			if err != nil {
				return err
			}
			released = cleared
			return nil
		})
		if err != nil {
			summary.Errors++
			s.logger.Error("sweep failed to release lapsed hold",
				"hold_id", hold.ID, "product_id", hold.ProductID, "error", err.Error())
			continue
		}

		if expired {
			summary.Expired++
		}
		if released {
			summary.Released++
			if mirrorErr := s.mirror.ClearHold(ctx, hold.ProductID, hold.SessionID); mirrorErr != nil {
				s.logger.Warn("sweep failed to clear mirrored hold",
					"product_id", hold.ProductID, "error", mirrorErr.Error())
			}
		}
	}

	s.logger.Info("expiry sweep finished",
		"expired", summary.Expired, "released", summary.Released, "errors", summary.Errors)

	return summary, nil
}
