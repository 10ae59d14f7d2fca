package queries

import (
	"context"
	"time"

	"atelier-store/internal/pkg/clock"
	"atelier-store/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProductNotFound = errs.New("product not found")

type ProductQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context) ([]*ProductView, error)
	// Availability applies the stale-held rule on top of the denormalized
	// pair, preferring the cache mirror when it has an answer.
	Availability(ctx context.Context, id uuid.UUID) (*AvailabilityView, error)
}

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindAll(ctx context.Context) ([]*ProductView, error)
}

// AvailabilityMirrorReader reads the best-effort availability cache. A nil
// view means the mirror has no opinion and the store must be consulted.
type AvailabilityMirrorReader interface {
	GetHold(ctx context.Context, productID uuid.UUID) (*MirroredHold, error)
}

type MirroredHold struct {
	SessionID     string
	ReservedUntil int64 // unix seconds
}

type productQueriesImpl struct {
	repo   ProductReadStore
	mirror AvailabilityMirrorReader
	clock  clock.Clock
}

func NewProductQueries(repo ProductReadStore, mirror AvailabilityMirrorReader, clock clock.Clock) ProductQueries {
	return &productQueriesImpl{repo: repo, mirror: mirror, clock: clock}
}

func (q *productQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *productQueriesImpl) List(ctx context.Context) ([]*ProductView, error) {
	return q.repo.FindAll(ctx)
}

func (q *productQueriesImpl) Availability(ctx context.Context, id uuid.UUID) (*AvailabilityView, error) {
	now := q.clock.Now()

	// Mirror hit means an unexpired hold exists; anything else falls back to
	// the authoritative row.
	if q.mirror != nil {
		mirrored, err := q.mirror.GetHold(ctx, id)
		if err == nil && mirrored != nil && mirrored.ReservedUntil > now.Unix() {
			until := unixTime(mirrored.ReservedUntil)
			return &AvailabilityView{
				ProductID:     id,
				Available:     false,
				ReservedUntil: &until,
			}, nil
		}
	}

	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	available := !view.Sold &&
		(view.ReservedUntil == nil || !view.ReservedUntil.After(now))

	av := &AvailabilityView{
		ProductID: id,
		Available: available,
		Sold:      view.Sold,
	}
	if !available && view.ReservedUntil != nil && view.ReservedUntil.After(now) {
		av.ReservedUntil = view.ReservedUntil
	}
	return av, nil
}

func unixTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
