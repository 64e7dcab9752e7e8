// Package analysis runs evaluation passes over a fuel cell model: the
// polarization sweep, single operating points and the load-line solve.
package analysis

import (
	"math"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/cell"
)

// Analysis is a single evaluation pass over one cell model. Setup binds the
// cell, Execute runs the pass; results are exposed by each concrete type.
type Analysis interface {
	Setup(c *cell.Cell) error
	Execute() error
}

// BaseAnalysis carries the cell under analysis and the convergence settings
// shared by the iterative solvers.
type BaseAnalysis struct {
	Cell        *cell.Cell
	convergence struct {
		maxIter  int
		abstol   float64
		reltol   float64
		residTol float64
	}
}

func NewBaseAnalysis() *BaseAnalysis {
	ba := &BaseAnalysis{}

	ba.convergence.maxIter = 100
	ba.convergence.abstol = 1e-12
	ba.convergence.reltol = 1e-6
	ba.convergence.residTol = 1e-9

	return ba
}

// CheckConvergence reports whether two successive iterates agree within the
// absolute or relative tolerance.
func (a *BaseAnalysis) CheckConvergence(oldVal, newVal float64) bool {
	diff := math.Abs(newVal - oldVal)
	if diff > a.convergence.abstol &&
		diff > a.convergence.reltol*math.Abs(newVal) {
		return false
	}
	return true
}
