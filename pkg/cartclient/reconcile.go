package cartclient

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RunReconciliation re-syncs the mirror against the authoritative store on a
// slow cadence until ctx is cancelled. Passes are skipped while the cart is
// empty.
func (c *Cart) RunReconciliation(ctx context.Context) {
	ticker := time.NewTicker(c.opts.ReconcileInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c.Len() == 0 {
				continue
			}
			if err := c.Reconcile(ctx); err != nil {
				// Staleness resolves on the next pass; never surface it.
				c.logger.Warn("reconciliation pass failed", "error", err.Error())
			}
		}
	}
}

// Reconcile performs one pass: fetch the authoritative active set, drop
// local items the store no longer holds, pick up active holds the mirror is
// missing, and adopt the store's expiry where the two disagree.
func (c *Cart) Reconcile(ctx context.Context) error {
	authoritative, err := c.store.ListActive(ctx)
	if err != nil {
		return err
	}
	byProduct := make(map[uuid.UUID]Item, len(authoritative))
	for _, item := range authoritative {
		item.ReservedUntil = item.ReservedUntil.UTC()
		byProduct[item.ProductID] = item
	}

	now := c.clock.Now()

	c.mu.Lock()
	var removed []uuid.UUID
	for id, local := range c.items {
		remote, exists := byProduct[id]
		if !exists {
			// Release candidate. A hold we created an instant ago may not be
			// visible in the read we just did, so only evict once the local
			// expiry has also passed.
			if !local.ReservedUntil.After(now) {
				delete(c.items, id)
				removed = append(removed, id)
			}
			continue
		}
		if !remote.ReservedUntil.Equal(local.ReservedUntil) {
			// Store wins on disagreement.
			local.ReservedUntil = remote.ReservedUntil
			c.items[id] = local
		}
	}
	// The store can also know holds the mirror missed, e.g. after a page
	// reload wiped local state while the session's holds lived on.
	for id, remote := range byProduct {
		if _, exists := c.items[id]; exists {
			continue
		}
		remote.addedAt = now
		c.items[id] = remote
	}
	c.mu.Unlock()

	// One aggregated notice per pass, however many items went.
	c.notify(CauseReconciled, removed)
	return nil
}
