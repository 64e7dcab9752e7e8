package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A zero-value Cell skips New and its validation, so the calculators must
// catch the bad parameters themselves instead of emitting NaN.
func TestCalculatorsRejectUnvalidatedParams(t *testing.T) {
	var c Cell

	_, err := c.OpenCircuitVoltage()
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = c.ActivationLoss(1.0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = c.ConcentrationLoss(1.0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = c.Voltage(1.0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestOpenCircuitVoltageNegativeOxygen(t *testing.T) {
	c := Cell{params: Params{Temperature: 353, PH2: 1, PO2: -1, Alpha: 0.5, AreaResistance: 0.2, LimitCurrent: 1.8}}

	// sqrt of a negative pressure is NaN; it must surface as an error.
	_, err := c.OpenCircuitVoltage()
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
