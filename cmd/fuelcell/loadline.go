package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/analysis"
	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/cell"
	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/util"
)

var flagLoad float64

var loadlineCmd = &cobra.Command{
	Use:   "loadline",
	Short: "Solve the operating point for an external load resistance",
	RunE: func(*cobra.Command, []string) error {
		c, err := cell.New(cfg.Cell)
		if err != nil {
			return err
		}

		ll := analysis.NewLoadLine(flagLoad)
		if err := ll.Setup(c); err != nil {
			return err
		}

		slog.Info("solving load line", "resistance", flagLoad)
		if err := ll.Execute(); err != nil {
			return err
		}

		s := ll.Results()
		printParams(os.Stdout, c.Params())
		printBreakdown(os.Stdout, s)
		fmt.Printf("\nLoad voltage check: R*I = %s\n", util.FormatValueFactor(flagLoad*s.I, "V"))
		return nil
	},
}

func init() {
	loadlineCmd.Flags().Float64Var(&flagLoad, "load", 0.5, "external load (ohm*cm^2)")
}
