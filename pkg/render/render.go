// Package render draws polarization results with gonum/plot.
package render

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/analysis"
	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/cell"
)

// Options control the rendered figure.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions labels the figure with the cell's operating conditions.
func DefaultOptions(p cell.Params) Options {
	return Options{
		Title:  fmt.Sprintf("Fuel Cell Performance (T=%gK, P=%gatm)", p.Temperature, p.PH2),
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

// Polarization builds the voltage and power-density figure for one sweep.
func Polarization(cv *analysis.Curve, opts Options) (*plot.Plot, error) {
	if cv == nil || cv.Len() == 0 {
		return nil, fmt.Errorf("render: empty curve")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Current density (A/cm^2)"
	p.Y.Label.Text = "Cell voltage (V), power density (W/cm^2)"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	err := plotutil.AddLines(p,
		"Cell voltage", curveXYs(cv.I, cv.V),
		"Power density", curveXYs(cv.I, cv.P),
	)
	if err != nil {
		return nil, fmt.Errorf("render: adding curves: %w", err)
	}

	return p, nil
}

// WritePNG renders the polarization figure for cv into w as a PNG image.
func WritePNG(w io.Writer, cv *analysis.Curve, opts Options) error {
	plt, err := Polarization(cv, opts)
	if err != nil {
		return err
	}

	wt, err := plt.WriterTo(opts.Width, opts.Height, "png")
	if err != nil {
		return fmt.Errorf("render: encoding plot: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: writing plot: %w", err)
	}
	return nil
}

// SavePNG renders the polarization figure for cv into the file at path.
func SavePNG(path string, cv *analysis.Curve, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WritePNG(f, cv, opts); err != nil {
		return err
	}
	return f.Close()
}

func curveXYs(xs, ys []float64) plotter.XYs {
	xy := make(plotter.XYs, len(xs))
	for k := range xs {
		xy[k].X = xs[k]
		xy[k].Y = ys[k]
	}
	return xy
}
