package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/cell"
)

const (
	DefaultPoints = 100   // Samples per sweep
	DefaultStart  = 0.001 // First sample (A/cm^2)
	DefaultMargin = 0.05  // Gap kept between the last sample and the limiting current (A/cm^2)
)

// Polarization sweeps current density across the cell operating window and
// records voltage, power and the loss breakdown at every sample.
type Polarization struct {
	BaseAnalysis
	points int
	start  float64
	margin float64
	curve  *Curve
}

func NewPolarization(points int) *Polarization {
	return NewPolarizationWindow(points, DefaultStart, DefaultMargin)
}

// NewPolarizationWindow sweeps points samples from start up to the cell's
// limiting current minus margin.
func NewPolarizationWindow(points int, start, margin float64) *Polarization {
	return &Polarization{
		BaseAnalysis: *NewBaseAnalysis(),
		points:       points,
		start:        start,
		margin:       margin,
	}
}

func (pz *Polarization) Setup(c *cell.Cell) error {
	if c == nil {
		return ErrNoCell
	}
	pz.Cell = c
	return nil
}

// Execute runs the sweep. On any calculator error the previous curve is
// kept and no partial result is published.
func (pz *Polarization) Execute() error {
	if pz.Cell == nil {
		return ErrNoCell
	}
	if pz.points < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", ErrBadInput, pz.points)
	}
	if pz.start <= 0 || pz.margin <= 0 {
		return fmt.Errorf("%w: window start %g and margin %g must be positive", ErrBadInput, pz.start, pz.margin)
	}

	p := pz.Cell.Params()
	stop := p.LimitCurrent - pz.margin
	if stop <= pz.start {
		return fmt.Errorf("%w: start %g A/cm^2, stop %g A/cm^2", ErrSweepWindow, pz.start, stop)
	}

	e, err := pz.Cell.OpenCircuitVoltage()
	if err != nil {
		return fmt.Errorf("open-circuit voltage: %w", err)
	}

	cv := &Curve{
		I:      floats.Span(make([]float64, pz.points), pz.start, stop),
		V:      make([]float64, pz.points),
		P:      make([]float64, pz.points),
		VAct:   make([]float64, pz.points),
		VOhmic: make([]float64, pz.points),
		VConc:  make([]float64, pz.points),
		E:      e,
	}

	for k, i := range cv.I {
		vAct, err := pz.Cell.ActivationLoss(i)
		if err != nil {
			return fmt.Errorf("activation loss at %g A/cm^2: %w", i, err)
		}
		vConc, err := pz.Cell.ConcentrationLoss(i)
		if err != nil {
			return fmt.Errorf("concentration loss at %g A/cm^2: %w", i, err)
		}

		cv.VAct[k] = vAct
		cv.VOhmic[k] = pz.Cell.OhmicLoss(i)
		cv.VConc[k] = vConc
		cv.V[k] = e - vAct - cv.VOhmic[k] - vConc
	}
	floats.MulTo(cv.P, cv.I, cv.V)

	pz.curve = cv
	return nil
}

// Results returns the curve of the last successful Execute, nil before any.
func (pz *Polarization) Results() *Curve { return pz.curve }
