package cell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/cell"
)

func TestActivationLoss(t *testing.T) {
	c := newCell(t, nil)

	t.Run("golden at one ampere", func(t *testing.T) {
		v, err := c.ActivationLoss(1.0)
		require.NoError(t, err)
		assert.InDelta(t, 0.2101174, v, 1e-6)
	})

	t.Run("floored at zero current", func(t *testing.T) {
		v, err := c.ActivationLoss(0)
		require.NoError(t, err)
		assert.Zero(t, v, "guard keeps the log finite and the floor clips the negative value")
	})

	t.Run("floored below exchange current", func(t *testing.T) {
		v, err := c.ActivationLoss(5e-4)
		require.NoError(t, err)
		assert.Zero(t, v)
	})

	t.Run("positive above exchange current", func(t *testing.T) {
		v, err := c.ActivationLoss(2e-3)
		require.NoError(t, err)
		assert.Greater(t, v, 0.0)
	})
}

func TestActivationLossMonotonic(t *testing.T) {
	c := newCell(t, nil)

	prev := -1.0
	for i := 0.0; i <= 1.7; i += 0.05 {
		v, err := c.ActivationLoss(i)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, prev, "activation loss must not decrease with current (i=%g)", i)
		prev = v
	}
}

func TestActivationLossDomain(t *testing.T) {
	c := newCell(t, nil)

	t.Run("negative beyond guard", func(t *testing.T) {
		_, err := c.ActivationLoss(-2e-6)
		assert.ErrorIs(t, err, cell.ErrDomain, "log of a negative argument has no finite value")
	})

	t.Run("exactly cancelling the guard", func(t *testing.T) {
		_, err := c.ActivationLoss(-1e-6)
		assert.ErrorIs(t, err, cell.ErrDomain, "log of zero has no finite value")
	})
}
