package queries

import (
	"context"
)

type CartQueries interface {
	// ListActive returns the session's non-terminal holds. A hold whose
	// expires_at has passed is never returned, whether or not the sweep has
	// recorded the expiry yet.
	ListActive(ctx context.Context, sessionID string) ([]*HoldView, error)
}

type HoldReadStore interface {
	FindActiveBySession(ctx context.Context, sessionID string) ([]*HoldView, error)
}

type cartQueriesImpl struct {
	repo HoldReadStore
}

func NewCartQueries(repo HoldReadStore) CartQueries {
	return &cartQueriesImpl{repo: repo}
}

func (q *cartQueriesImpl) ListActive(ctx context.Context, sessionID string) ([]*HoldView, error) {
	return q.repo.FindActiveBySession(ctx, sessionID)
}
