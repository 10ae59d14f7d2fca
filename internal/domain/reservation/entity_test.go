//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"atelier-store/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var holdBase = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewHold(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		productID := uuid.New()
		actual, err := reservation.NewHold(holdBase, productID, "a1b2c3", 15*time.Minute)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, productID, actual.ProductID())
		assert.Equal(t, "a1b2c3", actual.SessionID())
		assert.Equal(t, reservation.StatusActive, actual.Status())
		assert.Equal(t, holdBase, actual.CreatedAt())
		assert.Equal(t, holdBase.Add(15*time.Minute), actual.ExpiresAt())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name      string
			sessionID string
			duration  time.Duration
			errIs     error
		}{
			{name: "empty session", sessionID: "", duration: 15 * time.Minute, errIs: reservation.ErrEmptySession},
			{name: "zero duration", sessionID: "a1b2c3", duration: 0, errIs: reservation.ErrInvalidDuration},
			{name: "negative duration", sessionID: "a1b2c3", duration: -time.Minute, errIs: reservation.ErrInvalidDuration},
			{name: "one second hold", sessionID: "a1b2c3", duration: time.Second},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := reservation.NewHold(holdBase, uuid.New(), tc.sessionID, tc.duration)
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
			})
		}
	})
}

func TestHold_HasLapsed(t *testing.T) {
	hold, err := reservation.NewHold(holdBase, uuid.New(), "a1b2c3", 15*time.Minute)
	require.NoError(t, err)

	assert.False(t, hold.HasLapsed(holdBase))
	assert.False(t, hold.HasLapsed(holdBase.Add(15*time.Minute-time.Second)))
	// Boundary: a hold lapses exactly at expires_at, not one tick later.
	assert.True(t, hold.HasLapsed(holdBase.Add(15*time.Minute)))
	assert.True(t, hold.HasLapsed(holdBase.Add(16*time.Minute)))
}

func TestHold_Remaining(t *testing.T) {
	hold, err := reservation.NewHold(holdBase, uuid.New(), "a1b2c3", 15*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, hold.Remaining(holdBase))
	assert.Equal(t, 5*time.Minute, hold.Remaining(holdBase.Add(10*time.Minute)))
	// Never negative, even long after expiry.
	assert.Equal(t, time.Duration(0), hold.Remaining(holdBase.Add(time.Hour)))
}

func TestHold_Transitions(t *testing.T) {
	t.Run("expire active hold", func(t *testing.T) {
		hold, err := reservation.NewHold(holdBase, uuid.New(), "a1b2c3", 15*time.Minute)
		require.NoError(t, err)

		require.NoError(t, hold.Expire())
		assert.Equal(t, reservation.StatusExpired, hold.Status())
		assert.False(t, hold.IsActive())
	})

	t.Run("complete active hold", func(t *testing.T) {
		hold, err := reservation.NewHold(holdBase, uuid.New(), "a1b2c3", 15*time.Minute)
		require.NoError(t, err)

		require.NoError(t, hold.Complete())
		assert.Equal(t, reservation.StatusCompleted, hold.Status())
	})

	t.Run("terminal states never change again", func(t *testing.T) {
		expired := reservation.ReconstructHold(
			uuid.New(), uuid.New(), "a1b2c3",
			reservation.StatusExpired, holdBase, holdBase.Add(15*time.Minute),
		)
		assert.ErrorIs(t, expired.Expire(), reservation.ErrHoldNotActive)
		assert.ErrorIs(t, expired.Complete(), reservation.ErrHoldNotActive)

		completed := reservation.ReconstructHold(
			uuid.New(), uuid.New(), "a1b2c3",
			reservation.StatusCompleted, holdBase, holdBase.Add(15*time.Minute),
		)
		assert.ErrorIs(t, completed.Expire(), reservation.ErrHoldNotActive)
		assert.ErrorIs(t, completed.Complete(), reservation.ErrHoldNotActive)
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, reservation.StatusActive.IsValid())
	assert.True(t, reservation.StatusExpired.IsValid())
	assert.True(t, reservation.StatusCompleted.IsValid())
	assert.False(t, reservation.Status("pending").IsValid())

	assert.False(t, reservation.StatusActive.IsTerminal())
	assert.True(t, reservation.StatusExpired.IsTerminal())
	assert.True(t, reservation.StatusCompleted.IsTerminal())
}
