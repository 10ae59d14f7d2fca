package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("product name is empty")
	ErrNegativePrice = errors.New("product price cannot be negative")
)

// Product is one handmade item with a typical stock of one. The
// reservedUntil/reservedBySession pair is the denormalized availability view
// the rest of the system contends over; it is only ever mutated through
// conditional storage-level updates, never through this entity.
type Product struct {
	id                uuid.UUID
	name              string
	priceCents        int64
	sold              bool
	reservedUntil     *time.Time
	reservedBySession *string
	createdAt         time.Time
	updatedAt         time.Time
}

func NewProduct(name string, priceCents int64) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Product{
		id:         uuid.New(),
		name:       name,
		priceCents: priceCents,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	name string,
	priceCents int64,
	sold bool,
	reservedUntil *time.Time,
	reservedBySession *string,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:                id,
		name:              name,
		priceCents:        priceCents,
		sold:              sold,
		reservedUntil:     reservedUntil,
		reservedBySession: reservedBySession,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// AvailableAt applies the stale-held rule: a hold whose reservedUntil has
// passed counts as available even before the sweep clears the fields.
func (p *Product) AvailableAt(now time.Time) bool {
	if p.sold {
		return false
	}
	if p.reservedUntil == nil {
		return true
	}
	return !p.reservedUntil.After(now)
}

// HeldBy reports whether session currently owns a still-valid hold.
func (p *Product) HeldBy(sessionID string, now time.Time) bool {
	if p.reservedBySession == nil || p.reservedUntil == nil {
		return false
	}
	return *p.reservedBySession == sessionID && p.reservedUntil.After(now)
}

func (p *Product) ID() uuid.UUID              { return p.id }
func (p *Product) Name() string               { return p.name }
func (p *Product) PriceCents() int64          { return p.priceCents }
func (p *Product) Sold() bool                 { return p.sold }
func (p *Product) ReservedUntil() *time.Time  { return p.reservedUntil }
func (p *Product) ReservedBySession() *string { return p.reservedBySession }
func (p *Product) CreatedAt() time.Time       { return p.createdAt }
func (p *Product) UpdatedAt() time.Time       { return p.updatedAt }
