package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/internal/logger"
	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/config"
)

const version = "0.1.0"

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fuelcell",
	Short: "Steady-state PEM fuel cell polarization model",
	Long: `fuelcell models a single proton exchange membrane fuel cell in steady
state: the Nernst open-circuit voltage minus activation, ohmic and
concentration losses. Subcommands sweep the polarization curve, solve
operating points and render plots.

Configuration comes from an optional TOML file (--config), environment
variables in the form FUELCELL_SECTION_KEY, and command line flags, in
rising precedence.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			c.Log.Level, _ = cmd.Flags().GetString("log-level")
		}
		logger.Setup(os.Stderr, logger.Config{Level: c.Log.Level, Format: c.Log.Format})

		cfg = c
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(*cobra.Command, []string) {
		fmt.Println("fuelcell v" + version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().String("log-level", "", "log verbosity: debug, info, warn or error")

	rootCmd.AddCommand(runCmd, plotCmd, loadlineCmd, versionCmd)
}
