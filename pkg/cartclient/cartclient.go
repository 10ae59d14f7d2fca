// Package cartclient is an embeddable client-side mirror of a shopper's
// reservations. It renders the countdown and evicts lapsed items
// optimistically; the store remains the only authority on availability,
// and everything here must stay reconcilable against it.
package cartclient

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"atelier-store/internal/pkg/clock"
	"atelier-store/internal/pkg/config"
)

const (
	defaultDebounce          = 5 * time.Second
	defaultReconcileInterval = 45 * time.Second
	noticeBuffer             = 16
)

// Item is one mirrored hold. ReservedUntil is always an absolute UTC
// instant; zone-less timestamps from the wire are interpreted as UTC so
// client/server clock comparisons stay meaningful.
type Item struct {
	ProductID     uuid.UUID
	ReservedUntil time.Time

	addedAt time.Time
}

// NoticeCause distinguishes why items left the cart; the UI words the two
// cases differently.
type NoticeCause string

const (
	// CauseExpired: the local countdown ran out and the debounce recheck
	// confirmed it.
	CauseExpired NoticeCause = "expired"
	// CauseReconciled: the store no longer had an active hold for the item.
	CauseReconciled NoticeCause = "reconciled"
)

type Notice struct {
	Cause      NoticeCause
	ProductIDs []uuid.UUID
}

// Urgency buckets the remaining time for countdown styling.
type Urgency string

const (
	UrgencyCalm     Urgency = "calm"     // more than 5 minutes left
	UrgencyWarning  Urgency = "warning"  // 2 to 5 minutes
	UrgencyCritical Urgency = "critical" // under 2 minutes
	UrgencyExpired  Urgency = "expired"
)

func UrgencyFor(remaining time.Duration) Urgency {
	switch {
	case remaining <= 0:
		return UrgencyExpired
	case remaining < 2*time.Minute:
		return UrgencyCritical
	case remaining <= 5*time.Minute:
		return UrgencyWarning
	default:
		return UrgencyCalm
	}
}

// Store is the reservation API the cart mirrors. Implementations never
// panic across this boundary; every outcome is an error value.
type Store interface {
	Reserve(ctx context.Context, productID uuid.UUID) (Item, error)
	Release(ctx context.Context, productID uuid.UUID) error
	ListActive(ctx context.Context) ([]Item, error)
}

type Options struct {
	// Debounce is how long an apparently expired item is kept before the
	// recheck that evicts it. Near-zero remaining right after creation is
	// usually clock skew, not expiry.
	Debounce time.Duration
	// ReconcileInterval is the cadence of the authoritative re-sync.
	ReconcileInterval time.Duration
	Clock             clock.Clock
	Logger            *slog.Logger
}

// OptionsFromConfig derives client options from the server's hold settings,
// so a deployment that tunes HOLD_EXPIRY_DEBOUNCE tunes both sides at once.
func OptionsFromConfig(cfg config.HoldConfig) Options {
	return Options{Debounce: cfg.ExpiryDebounce}
}

type Cart struct {
	store   Store
	clock   clock.Clock
	logger  *slog.Logger
	opts    Options
	notices chan Notice

	mu              sync.Mutex
	items           map[uuid.UUID]Item
	expiryArmedAt   *time.Time
	skewOccurrences int
}

func NewCart(store Store, opts Options) *Cart {
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}
	if opts.ReconcileInterval <= 0 {
		opts.ReconcileInterval = defaultReconcileInterval
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Cart{
		store:   store,
		clock:   opts.Clock,
		logger:  opts.Logger,
		opts:    opts,
		notices: make(chan Notice, noticeBuffer),
		items:   make(map[uuid.UUID]Item),
	}
}

// Notices delivers eviction notices. The channel is buffered and sends are
// dropped when nobody is listening; notices are advisory UI events, not
// state.
func (c *Cart) Notices() <-chan Notice {
	return c.notices
}

// Add reserves the product and mirrors the resulting hold. A same-product
// re-add overwrites the mirror with the extended hold.
func (c *Cart) Add(ctx context.Context, productID uuid.UUID) (Item, error) {
	item, err := c.store.Reserve(ctx, productID)
	if err != nil {
		return Item{}, err
	}
	item.ReservedUntil = item.ReservedUntil.UTC()
	item.addedAt = c.clock.Now()

	c.mu.Lock()
	c.items[item.ProductID] = item
	c.mu.Unlock()
	return item, nil
}

// Remove releases the hold and drops the mirror entry. Releasing an item
// that is no longer held is a no-op on the store side, so Remove is safe to
// call twice.
func (c *Cart) Remove(ctx context.Context, productID uuid.UUID) error {
	if err := c.store.Release(ctx, productID); err != nil {
		return err
	}
	c.mu.Lock()
	delete(c.items, productID)
	c.mu.Unlock()
	return nil
}

func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Remaining reports the time until the soonest hold lapses, or false when
// the cart is empty.
func (c *Cart) Remaining() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remainingLocked(c.clock.Now())
}

func (c *Cart) remainingLocked(now time.Time) (time.Duration, bool) {
	if len(c.items) == 0 {
		return 0, false
	}
	var soonest time.Time
	for _, item := range c.items {
		if soonest.IsZero() || item.ReservedUntil.Before(soonest) {
			soonest = item.ReservedUntil
		}
	}
	return soonest.Sub(now), true
}

// Urgency reports the countdown bucket for the soonest hold.
func (c *Cart) Urgency() (Urgency, bool) {
	remaining, ok := c.Remaining()
	if !ok {
		return "", false
	}
	return UrgencyFor(remaining), true
}

func (c *Cart) notify(cause NoticeCause, ids []uuid.UUID) {
	if len(ids) == 0 {
		return
	}
	select {
	case c.notices <- Notice{Cause: cause, ProductIDs: ids}:
	default:
		c.logger.Debug("dropping cart notice, no listener", "cause", string(cause))
	}
}
