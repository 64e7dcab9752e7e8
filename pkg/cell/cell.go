// Package cell models the steady-state electrochemistry of a single PEM
// fuel cell: the Nernst open-circuit voltage and the activation, ohmic and
// concentration losses that shape its polarization curve.
package cell

// Cell evaluates the voltage terms of one membrane-electrode assembly. The
// zero value is unusable; construct with New so the parameters are checked
// once up front.
type Cell struct {
	params Params
}

func New(params Params) (*Cell, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Cell{params: params}, nil
}

func (c *Cell) Params() Params { return c.params }

// Voltage is the net terminal voltage at current density i: open-circuit
// voltage minus the three loss terms.
func (c *Cell) Voltage(i float64) (float64, error) {
	e, err := c.OpenCircuitVoltage()
	if err != nil {
		return 0, err
	}
	vAct, err := c.ActivationLoss(i)
	if err != nil {
		return 0, err
	}
	vConc, err := c.ConcentrationLoss(i)
	if err != nil {
		return 0, err
	}

	return e - vAct - c.OhmicLoss(i) - vConc, nil
}

// VoltageSlope is dV/di at current density i. The activation term drops out
// below the exchange current where the loss is floored, and the
// concentration term goes flat past the clamp point.
func (c *Cell) VoltageSlope(i float64) float64 {
	p := c.params
	slope := -p.AreaResistance
	if i+ActivationGuard >= ExchangeCurrent {
		slope -= tafelFactor(p) / (i + ActivationGuard)
	}
	if i < p.LimitCurrent-ConcentrationMargin {
		slope -= nernstFactor(p) / (p.LimitCurrent - i)
	}
	return slope
}
