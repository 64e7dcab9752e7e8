package cell

import (
	"fmt"
	"math"
)

// ConcentrationMargin is the clamp distance kept below the limiting current
// (A/cm^2).
const ConcentrationMargin = 1e-4

// ConcentrationLoss is the mass-transport overvoltage at current density i.
// Currents at or beyond the limiting current are clamped to just below it,
// so the loss saturates instead of diverging.
func (c *Cell) ConcentrationLoss(i float64) (float64, error) {
	p := c.params
	if p.Temperature <= 0 || p.LimitCurrent <= 0 {
		return 0, fmt.Errorf("%w: temperature %g K, limit current %g A/cm^2", ErrInvalidParameter, p.Temperature, p.LimitCurrent)
	}

	iSafe := math.Min(i, p.LimitCurrent-ConcentrationMargin)
	arg := 1 - iSafe/p.LimitCurrent
	if arg <= 0 || math.IsNaN(arg) {
		return 0, fmt.Errorf("%w: current density %g A/cm^2", ErrDomain, i)
	}

	v := -nernstFactor(p) * math.Log(arg)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: concentration loss not finite at %g A/cm^2", ErrDomain, i)
	}
	return v, nil
}
