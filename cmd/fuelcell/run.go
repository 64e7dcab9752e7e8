package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/analysis"
	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/cell"
	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/config"
	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/util"
)

var (
	flagAt     float64
	flagLookup string
	flagPoints int
	flagTable  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sweep the polarization curve and report an operating point",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("at") {
			cfg.Output.ReportCurrent = flagAt
		}
		if cmd.Flags().Changed("lookup") {
			cfg.Output.Lookup = flagLookup
		}
		if cmd.Flags().Changed("points") {
			cfg.Sweep.Points = flagPoints
		}

		c, err := cell.New(cfg.Cell)
		if err != nil {
			return err
		}

		cv, err := runSweep(c)
		if err != nil {
			return err
		}

		s, err := lookupSample(c, cv, cfg.Output.ReportCurrent, cfg.Output.Lookup)
		if err != nil {
			return err
		}

		printParams(os.Stdout, c.Params())
		printBreakdown(os.Stdout, s)

		k := cv.PeakPowerIndex()
		fmt.Printf("\nPeak power = %s at %s\n",
			util.FormatDensity(cv.P[k], "W/cm^2"),
			util.FormatDensity(cv.I[k], "A/cm^2"))

		if flagTable {
			printCurve(os.Stdout, cv)
		}
		return nil
	},
}

func runSweep(c *cell.Cell) (*analysis.Curve, error) {
	pz := analysis.NewPolarizationWindow(cfg.Sweep.Points, cfg.Sweep.Start, cfg.Sweep.Margin)
	if err := pz.Setup(c); err != nil {
		return nil, err
	}

	slog.Info("running polarization sweep",
		"points", cfg.Sweep.Points, "start", cfg.Sweep.Start, "margin", cfg.Sweep.Margin)
	if err := pz.Execute(); err != nil {
		return nil, err
	}
	return pz.Results(), nil
}

// lookupSample resolves the breakdown point: exact evaluation by default,
// or a sweep-based lookup when requested.
func lookupSample(c *cell.Cell, cv *analysis.Curve, at float64, mode string) (analysis.Sample, error) {
	switch mode {
	case config.LookupNearest:
		k := cv.NearestIndex(at)
		slog.Debug("using nearest sweep sample", "requested", at, "sample", cv.I[k])
		return cv.At(k), nil
	case config.LookupInterp:
		return cv.Interpolate(at), nil
	default:
		op := analysis.NewOperatingPoint(at)
		if err := op.Setup(c); err != nil {
			return analysis.Sample{}, err
		}
		if err := op.Execute(); err != nil {
			return analysis.Sample{}, err
		}
		return op.Results(), nil
	}
}

func printParams(w io.Writer, p cell.Params) {
	fmt.Fprintln(w, "\nCell Parameters:")
	fmt.Fprintln(w, "================")
	fmt.Fprintf(w, "Temperature     = %s\n", util.FormatTemperature(p.Temperature))
	fmt.Fprintf(w, "H2 pressure     = %.2f atm\n", p.PH2)
	fmt.Fprintf(w, "O2 pressure     = %.2f atm\n", p.PO2)
	fmt.Fprintf(w, "Alpha           = %.2f\n", p.Alpha)
	fmt.Fprintf(w, "Area resistance = %.3f ohm*cm^2\n", p.AreaResistance)
	fmt.Fprintf(w, "Limit current   = %s\n", util.FormatDensity(p.LimitCurrent, "A/cm^2"))
}

func printBreakdown(w io.Writer, s analysis.Sample) {
	fmt.Fprintf(w, "\nOperating Point at %s:\n", util.FormatDensity(s.I, "A/cm^2"))
	fmt.Fprintln(w, "--------------------------------")
	fmt.Fprintf(w, "Open circuit voltage = %s\n", util.FormatValueFactor(s.E, "V"))
	fmt.Fprintf(w, "Activation loss      = %s\n", util.FormatValueFactor(s.VAct, "V"))
	fmt.Fprintf(w, "Ohmic loss           = %s\n", util.FormatValueFactor(s.VOhmic, "V"))
	fmt.Fprintf(w, "Concentration loss   = %s\n", util.FormatValueFactor(s.VConc, "V"))
	fmt.Fprintf(w, "Cell voltage         = %s\n", util.FormatValueFactor(s.V, "V"))
	fmt.Fprintf(w, "Power density        = %s\n", util.FormatDensity(s.P, "W/cm^2"))
}

func printCurve(w io.Writer, cv *analysis.Curve) {
	fmt.Fprintf(w, "\nPolarization Sweep Results (%d points):\n", cv.Len())
	fmt.Fprintln(w, "Current             Voltage          Power")
	fmt.Fprintln(w, "------------------------------------------------")
	for k := 0; k < cv.Len(); k++ {
		fmt.Fprintf(w, "I=%-16s V=%-14s P=%s\n",
			util.FormatDensity(cv.I[k], "A/cm^2"),
			util.FormatValueFactor(cv.V[k], "V"),
			util.FormatDensity(cv.P[k], "W/cm^2"))
	}
}

func init() {
	runCmd.Flags().Float64Var(&flagAt, "at", 1.0, "current density for the loss breakdown (A/cm^2)")
	runCmd.Flags().StringVar(&flagLookup, "lookup", config.LookupExact, "breakdown mode: exact, nearest or interp")
	runCmd.Flags().IntVar(&flagPoints, "points", analysis.DefaultPoints, "samples in the sweep")
	runCmd.Flags().BoolVar(&flagTable, "table", false, "print the full sweep table")
}
