package cartclient

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const countdownTick = time.Second

// skewWindow: an item whose countdown hits zero this soon after being added
// locally almost certainly reflects client/store clock skew rather than a
// real 15-minute hold lapsing.
const skewWindow = 10 * time.Second

// RunCountdown drives the once-per-second expiry check until ctx is
// cancelled. It is one of three independent enforcement paths (client tick,
// reconciliation, server sweep); each runs as its own cancellable task so a
// failure in one cannot disable the others.
func (c *Cart) RunCountdown(ctx context.Context) {
	ticker := time.NewTicker(countdownTick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Tick(ctx)
		}
	}
}

// Tick performs a single countdown step. Exposed separately so hosts with
// their own scheduler (and tests) can drive it directly.
func (c *Cart) Tick(ctx context.Context) {
	now := c.clock.Now()

	c.mu.Lock()
	remaining, ok := c.remainingLocked(now)
	if !ok || remaining > 0 {
		// Healthy cart; disarm any pending expiry.
		c.expiryArmedAt = nil
		c.mu.Unlock()
		return
	}

	// Remaining hit zero. Don't evict yet: wait out the debounce window and
	// recheck, since approximately-zero can mean clock skew rather than a
	// genuinely lapsed hold.
	if c.expiryArmedAt == nil {
		armed := now
		c.expiryArmedAt = &armed
		c.recordPossibleSkewLocked(now)
		c.mu.Unlock()
		return
	}
	if now.Sub(*c.expiryArmedAt) < c.opts.Debounce {
		c.mu.Unlock()
		return
	}

	// Debounce elapsed and the items are still past due.
	c.expiryArmedAt = nil
	var evicted []uuid.UUID
	for id, item := range c.items {
		if !item.ReservedUntil.After(now) {
			delete(c.items, id)
			evicted = append(evicted, id)
		}
	}
	c.mu.Unlock()

	for _, id := range evicted {
		// Best effort: the server sweep releases anything we miss here.
		if err := c.store.Release(ctx, id); err != nil {
			c.logger.Warn("failed to release expired item", "product_id", id, "error", err.Error())
		}
	}
	c.notify(CauseExpired, evicted)
}

// recordPossibleSkewLocked logs when items keep appearing to expire moments
// after creation. One occurrence is a tolerable timing artifact; a pattern
// suggests real clock skew between this client and the store and should be
// visible, not silently absorbed.
func (c *Cart) recordPossibleSkewLocked(now time.Time) {
	suspicious := false
	for _, item := range c.items {
		if !item.ReservedUntil.After(now) && now.Sub(item.addedAt) < skewWindow {
			suspicious = true
			break
		}
	}
	if !suspicious {
		return
	}
	c.skewOccurrences++
	if c.skewOccurrences > 1 {
		c.logger.Warn("repeated near-immediate hold expiry, possible clock skew",
			"occurrences", c.skewOccurrences)
	}
}
