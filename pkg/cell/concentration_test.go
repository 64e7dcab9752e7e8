package cell_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/cell"
)

func TestConcentrationLoss(t *testing.T) {
	c := newCell(t, nil)

	t.Run("golden at one ampere", func(t *testing.T) {
		v, err := c.ConcentrationLoss(1.0)
		require.NoError(t, err)
		assert.InDelta(t, 0.0123333, v, 1e-6)
	})

	t.Run("near zero at low current", func(t *testing.T) {
		v, err := c.ConcentrationLoss(1e-3)
		require.NoError(t, err)
		assert.InDelta(t, 0, v, 1e-4)
	})
}

func TestConcentrationLossSaturates(t *testing.T) {
	c := newCell(t, nil)
	limit := cell.DefaultParams().LimitCurrent

	atClamp, err := c.ConcentrationLoss(limit - cell.ConcentrationMargin)
	require.NoError(t, err)

	for _, i := range []float64{limit, limit + 0.5, limit + 5, 100} {
		v, err := c.ConcentrationLoss(i)
		require.NoError(t, err, "beyond the limit the clamp must keep the loss finite (i=%g)", i)
		assert.False(t, math.IsInf(v, 0) || math.IsNaN(v))
		assert.Equal(t, atClamp, v, "everything past the clamp point evaluates at the clamp point (i=%g)", i)
	}

	ref, err := c.ConcentrationLoss(1.0)
	require.NoError(t, err)
	assert.Greater(t, atClamp, 10*ref, "the clamped loss still reflects the steep approach to the limit")
}

func TestConcentrationLossMonotonic(t *testing.T) {
	c := newCell(t, nil)

	prev := -1.0
	for i := 0.0; i < 1.79; i += 0.02 {
		v, err := c.ConcentrationLoss(i)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, prev, "concentration loss must not decrease with current (i=%g)", i)
		prev = v
	}
}

func TestConcentrationLossDomain(t *testing.T) {
	c := newCell(t, nil)

	_, err := c.ConcentrationLoss(math.Inf(-1))
	assert.ErrorIs(t, err, cell.ErrDomain)
}
