package cell

import (
	"fmt"
	"math"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/internal/consts"
)

const (
	// ExchangeCurrent is the exchange current density of the Tafel
	// expression (A/cm^2).
	ExchangeCurrent = 1e-3

	// ActivationGuard keeps the Tafel logarithm defined at zero current
	// (A/cm^2).
	ActivationGuard = 1e-6
)

// tafelFactor is RT/(2*alpha*F), the Tafel slope scale (V).
func tafelFactor(p Params) float64 {
	return consts.GASCONST * p.Temperature / (2 * p.Alpha * consts.FARADAY)
}

// ActivationLoss is the Tafel overvoltage at current density i. Currents at
// or below the exchange current would give a negative logarithm, so the loss
// is floored at zero there.
func (c *Cell) ActivationLoss(i float64) (float64, error) {
	p := c.params
	if p.Temperature <= 0 || p.Alpha <= 0 {
		return 0, fmt.Errorf("%w: temperature %g K, alpha %g", ErrInvalidParameter, p.Temperature, p.Alpha)
	}

	arg := (i + ActivationGuard) / ExchangeCurrent
	if arg <= 0 || math.IsNaN(arg) {
		return 0, fmt.Errorf("%w: current density %g A/cm^2", ErrDomain, i)
	}

	v := tafelFactor(p) * math.Log(arg)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: activation loss not finite at %g A/cm^2", ErrDomain, i)
	}
	if v < 0 {
		v = 0
	}
	return v, nil
}
