package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/cell"
	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/render"
)

var flagOut string

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the polarization and power curves to a PNG file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("out") {
			cfg.Output.PlotFile = flagOut
		}

		c, err := cell.New(cfg.Cell)
		if err != nil {
			return err
		}

		cv, err := runSweep(c)
		if err != nil {
			return err
		}

		opts := render.DefaultOptions(c.Params())
		opts.Width = vg.Length(cfg.Output.PlotWidth) * vg.Inch
		opts.Height = vg.Length(cfg.Output.PlotHeight) * vg.Inch

		if err := render.SavePNG(cfg.Output.PlotFile, cv, opts); err != nil {
			return err
		}

		slog.Info("wrote polarization plot", "file", cfg.Output.PlotFile)
		return nil
	},
}

func init() {
	plotCmd.Flags().StringVar(&flagOut, "out", "", "output PNG path (defaults to output.plot_file)")
}
