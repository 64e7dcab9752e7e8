package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Sample is one operating point with its loss breakdown.
type Sample struct {
	I      float64 // Current density (A/cm^2)
	E      float64 // Open-circuit voltage (V)
	V      float64 // Net cell voltage (V)
	P      float64 // Power density (W/cm^2)
	VAct   float64 // Activation loss (V)
	VOhmic float64 // Ohmic loss (V)
	VConc  float64 // Concentration loss (V)
}

// Curve holds the index-aligned series of one polarization sweep: position k
// in every slice describes the operating point at I[k].
type Curve struct {
	I      []float64 // Current density samples (A/cm^2), increasing
	V      []float64 // Net cell voltage (V)
	P      []float64 // Power density (W/cm^2)
	VAct   []float64 // Activation loss (V)
	VOhmic []float64 // Ohmic loss (V)
	VConc  []float64 // Concentration loss (V)
	E      float64   // Open-circuit voltage (V), constant across the sweep
}

func (cv *Curve) Len() int { return len(cv.I) }

// At returns the sample at index k.
func (cv *Curve) At(k int) Sample {
	return Sample{
		I:      cv.I[k],
		E:      cv.E,
		V:      cv.V[k],
		P:      cv.P[k],
		VAct:   cv.VAct[k],
		VOhmic: cv.VOhmic[k],
		VConc:  cv.VConc[k],
	}
}

// NearestIndex returns the index of the sample closest to current density i,
// or -1 for an empty curve.
func (cv *Curve) NearestIndex(i float64) int {
	best := -1
	bestDist := math.Inf(1)
	for k, ik := range cv.I {
		if d := math.Abs(ik - i); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

// Interpolate returns the operating point at current density i, linearly
// interpolated between the two bracketing samples. Requests outside the
// swept window clamp to the end samples; an empty curve yields the zero
// Sample.
func (cv *Curve) Interpolate(i float64) Sample {
	n := cv.Len()
	switch {
	case n == 0:
		return Sample{}
	case i <= cv.I[0]:
		return cv.At(0)
	case i >= cv.I[n-1]:
		return cv.At(n - 1)
	}

	hi := sort.SearchFloat64s(cv.I, i)
	lo := hi - 1
	t := (i - cv.I[lo]) / (cv.I[hi] - cv.I[lo])

	lerp := func(a, b float64) float64 { return a + t*(b-a) }
	return Sample{
		I:      i,
		E:      cv.E,
		V:      lerp(cv.V[lo], cv.V[hi]),
		P:      lerp(cv.P[lo], cv.P[hi]),
		VAct:   lerp(cv.VAct[lo], cv.VAct[hi]),
		VOhmic: lerp(cv.VOhmic[lo], cv.VOhmic[hi]),
		VConc:  lerp(cv.VConc[lo], cv.VConc[hi]),
	}
}

// PeakPowerIndex returns the index of the maximum power density sample, or
// -1 for an empty curve.
func (cv *Curve) PeakPowerIndex() int {
	if cv.Len() == 0 {
		return -1
	}
	return floats.MaxIdx(cv.P)
}
