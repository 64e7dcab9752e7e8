package cell

import (
	"fmt"
	"math"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/internal/consts"
)

const (
	standardPotential = 1.229   // Reversible potential at REFTEMP (V)
	tempCoefficient   = 0.85e-3 // Reversible potential temperature slope (V/K)
)

// nernstFactor is RT/2F, the thermal scale of the two-electron reaction (V).
func nernstFactor(p Params) float64 {
	return consts.GASCONST * p.Temperature / (2 * consts.FARADAY)
}

// OpenCircuitVoltage is the Nernst potential with a linear temperature
// correction:
//
//	E = E0 - 0.85e-3*(T - 298.15) + (RT/2F)*ln(pH2*sqrt(pO2))
func (c *Cell) OpenCircuitVoltage() (float64, error) {
	p := c.params
	if p.Temperature <= 0 {
		return 0, fmt.Errorf("%w: temperature %g K", ErrInvalidParameter, p.Temperature)
	}
	pressure := p.PH2 * math.Sqrt(p.PO2)
	if pressure <= 0 || math.IsNaN(pressure) {
		return 0, fmt.Errorf("%w: partial pressures %g atm H2, %g atm O2", ErrInvalidParameter, p.PH2, p.PO2)
	}

	e := standardPotential - tempCoefficient*(p.Temperature-consts.REFTEMP) + nernstFactor(p)*math.Log(pressure)
	return e, nil
}
