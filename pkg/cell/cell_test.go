package cell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/cell"
)

func TestOhmicLoss(t *testing.T) {
	c := newCell(t, nil)

	assert.Equal(t, 0.0, c.OhmicLoss(0))
	assert.InDelta(t, 0.2, c.OhmicLoss(1.0), 1e-12)
	assert.InDelta(t, c.OhmicLoss(0.3)+c.OhmicLoss(0.7), c.OhmicLoss(1.0), 1e-12, "ohmic drop is linear in current")
}

func TestVoltageIsOpenCircuitMinusLosses(t *testing.T) {
	c := newCell(t, func(p *cell.Params) { p.PH2, p.PO2 = 3.0, 3.0 })

	e, err := c.OpenCircuitVoltage()
	require.NoError(t, err)

	for _, i := range []float64{0.001, 0.2, 0.75, 1.0, 1.5, 1.74} {
		v, err := c.Voltage(i)
		require.NoError(t, err)

		vAct, err := c.ActivationLoss(i)
		require.NoError(t, err)
		vConc, err := c.ConcentrationLoss(i)
		require.NoError(t, err)

		assert.InDelta(t, e-vAct-c.OhmicLoss(i)-vConc, v, 1e-12, "loss budget must close exactly (i=%g)", i)
	}
}

func TestVoltageGolden(t *testing.T) {
	// 353 K with both reactants at 3 atm, drawing 1 A/cm^2.
	c := newCell(t, func(p *cell.Params) { p.PH2, p.PO2 = 3.0, 3.0 })

	v, err := c.Voltage(1.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.785, v, 1e-3)

	vDefault, err := newCell(t, nil).Voltage(1.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.7599268, vDefault, 1e-6)
}

func TestVoltageSlope(t *testing.T) {
	c := newCell(t, nil)

	t.Run("matches finite difference", func(t *testing.T) {
		const h = 1e-6
		for _, i := range []float64{0.05, 0.3, 0.9, 1.5} {
			hi, err := c.Voltage(i + h)
			require.NoError(t, err)
			lo, err := c.Voltage(i - h)
			require.NoError(t, err)

			assert.InDelta(t, (hi-lo)/(2*h), c.VoltageSlope(i), 1e-4, "dV/di at i=%g", i)
		}
	})

	t.Run("always negative in the operating window", func(t *testing.T) {
		for i := 0.01; i < 1.74; i += 0.01 {
			assert.Negative(t, c.VoltageSlope(i), "losses only grow with current (i=%g)", i)
		}
	})
}
