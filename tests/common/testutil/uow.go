//go:build unit || e2e

package testutil

import (
	"context"

	"atelier-store/internal/infra/db"
)

// PassthroughUoW runs the transactional closure directly with a nil DBTX.
// Unit tests mock the repositories, which ignore the tx handle anyway.
type PassthroughUoW struct{}

func (PassthroughUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}
