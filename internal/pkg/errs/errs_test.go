//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"atelier-store/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("operation failed")
	cause := errs.New("connection refused")

	t.Run("marked error matches the sentinel via standard errors.Is", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("original cause stays reachable", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		require.ErrorIs(t, err, cause)
	})

	t.Run("mark survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(cause, sentinel), "while sweeping")
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("nil cause yields the sentinel itself", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})
}

func TestIs(t *testing.T) {
	sentinel := errs.New("not found")

	assert.True(t, errs.Is(errs.Mark(errors.New("no rows"), sentinel), sentinel))
	assert.False(t, errs.Is(errs.New("unrelated"), sentinel))
	assert.False(t, errs.Is(nil, sentinel))
}
