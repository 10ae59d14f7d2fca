//go:build unit

package product_test

import (
	"testing"
	"time"

	"atelier-store/internal/domain/product"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productBase = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func reconstruct(sold bool, until *time.Time, session *string) *product.Product {
	return product.ReconstructProduct(
		uuid.New(), "ceramic vase", 4200, sold, until, session, productBase, productBase,
	)
}

func TestNewProduct(t *testing.T) {
	p, err := product.NewProduct("ceramic vase", 4200)
	require.NoError(t, err)
	assert.Equal(t, "ceramic vase", p.Name())
	assert.Equal(t, int64(4200), p.PriceCents())
	assert.False(t, p.Sold())

	_, err = product.NewProduct("", 100)
	assert.ErrorIs(t, err, product.ErrEmptyName)

	_, err = product.NewProduct("bowl", -1)
	assert.ErrorIs(t, err, product.ErrNegativePrice)
}

func TestProduct_AvailableAt(t *testing.T) {
	session := "a1b2c3"
	future := productBase.Add(10 * time.Minute)
	past := productBase.Add(-10 * time.Minute)

	cases := []struct {
		name      string
		sold      bool
		until     *time.Time
		session   *string
		available bool
	}{
		{name: "never held", available: true},
		{name: "validly held", until: &future, session: &session, available: false},
		{name: "stale hold reads as available", until: &past, session: &session, available: true},
		{name: "hold expiring exactly now", until: &productBase, session: &session, available: true},
		{name: "sold is never available", sold: true, available: false},
		{name: "sold with stale hold still unavailable", sold: true, until: &past, session: &session, available: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := reconstruct(tc.sold, tc.until, tc.session)
			assert.Equal(t, tc.available, p.AvailableAt(productBase))
		})
	}
}

func TestProduct_HeldBy(t *testing.T) {
	session := "a1b2c3"
	future := productBase.Add(10 * time.Minute)
	past := productBase.Add(-time.Minute)

	t.Run("matching session with live hold", func(t *testing.T) {
		p := reconstruct(false, &future, &session)
		assert.True(t, p.HeldBy("a1b2c3", productBase))
	})
	t.Run("different session", func(t *testing.T) {
		p := reconstruct(false, &future, &session)
		assert.False(t, p.HeldBy("zzz", productBase))
	})
	t.Run("own hold already lapsed", func(t *testing.T) {
		p := reconstruct(false, &past, &session)
		assert.False(t, p.HeldBy("a1b2c3", productBase))
	})
	t.Run("no hold at all", func(t *testing.T) {
		p := reconstruct(false, nil, nil)
		assert.False(t, p.HeldBy("a1b2c3", productBase))
	})
}
