package analysis

import (
	"fmt"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/cell"
)

// OperatingPoint evaluates the full loss breakdown at one requested current
// density, without sweeping.
type OperatingPoint struct {
	BaseAnalysis
	current float64
	result  Sample
}

func NewOperatingPoint(current float64) *OperatingPoint {
	return &OperatingPoint{
		BaseAnalysis: *NewBaseAnalysis(),
		current:      current,
	}
}

func (op *OperatingPoint) Setup(c *cell.Cell) error {
	if c == nil {
		return ErrNoCell
	}
	op.Cell = c
	return nil
}

func (op *OperatingPoint) Execute() error {
	if op.Cell == nil {
		return ErrNoCell
	}

	s, err := evaluateSample(op.Cell, op.current)
	if err != nil {
		return err
	}
	op.result = s
	return nil
}

func (op *OperatingPoint) Results() Sample { return op.result }

// evaluateSample runs every calculator at current density i and assembles
// the operating point.
func evaluateSample(c *cell.Cell, i float64) (Sample, error) {
	e, err := c.OpenCircuitVoltage()
	if err != nil {
		return Sample{}, fmt.Errorf("open-circuit voltage: %w", err)
	}
	vAct, err := c.ActivationLoss(i)
	if err != nil {
		return Sample{}, fmt.Errorf("activation loss at %g A/cm^2: %w", i, err)
	}
	vConc, err := c.ConcentrationLoss(i)
	if err != nil {
		return Sample{}, fmt.Errorf("concentration loss at %g A/cm^2: %w", i, err)
	}

	vOhmic := c.OhmicLoss(i)
	v := e - vAct - vOhmic - vConc
	return Sample{
		I:      i,
		E:      e,
		V:      v,
		P:      v * i,
		VAct:   vAct,
		VOhmic: vOhmic,
		VConc:  vConc,
	}, nil
}
