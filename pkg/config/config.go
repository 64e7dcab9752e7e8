// Package config loads run configuration from defaults, an optional TOML
// file and FUELCELL_ environment variables, in rising precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/analysis"
	"github.com/deannguyen9xyz/pem-fuel-cell-model/pkg/cell"
)

// Lookup modes for the operating point report.
const (
	LookupExact   = "exact"   // evaluate the calculators at the requested current
	LookupNearest = "nearest" // pick the nearest sweep sample
	LookupInterp  = "interp"  // interpolate between the bracketing samples
)

// Config holds one full run: the cell under test, the sweep window and the
// report and plot outputs.
type Config struct {
	Cell   cell.Params  `mapstructure:"cell"`
	Sweep  SweepConfig  `mapstructure:"sweep"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// SweepConfig shapes the polarization sweep grid.
type SweepConfig struct {
	Points int     `mapstructure:"points" validate:"gte=2"` // Samples per sweep
	Start  float64 `mapstructure:"start" validate:"gt=0"`   // First sample (A/cm^2)
	Margin float64 `mapstructure:"margin" validate:"gt=0"`  // Gap below the limiting current (A/cm^2)
}

// OutputConfig selects the report point and the plot file.
type OutputConfig struct {
	ReportCurrent float64 `mapstructure:"report_current" validate:"gt=0"` // Breakdown point (A/cm^2)
	Lookup        string  `mapstructure:"lookup" validate:"oneof=exact nearest interp"`
	PlotFile      string  `mapstructure:"plot_file"`
	PlotWidth     float64 `mapstructure:"plot_width" validate:"gt=0"`  // Figure width (inch)
	PlotHeight    float64 `mapstructure:"plot_height" validate:"gt=0"` // Figure height (inch)
}

// LogConfig selects logger verbosity and encoding.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration: the stock cell swept over the
// standard window, reporting at 1 A/cm^2.
func Default() Config {
	return Config{
		Cell: cell.DefaultParams(),
		Sweep: SweepConfig{
			Points: analysis.DefaultPoints,
			Start:  analysis.DefaultStart,
			Margin: analysis.DefaultMargin,
		},
		Output: OutputConfig{
			ReportCurrent: 1.0,
			Lookup:        LookupExact,
			PlotFile:      "polarization.png",
			PlotWidth:     10,
			PlotHeight:    6,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the configuration. With an empty path it looks for an optional
// fuelcell.toml in the working directory; an explicit path must exist.
// Environment variables such as FUELCELL_CELL_ALPHA override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("cell.temperature", def.Cell.Temperature)
	v.SetDefault("cell.p_h2", def.Cell.PH2)
	v.SetDefault("cell.p_o2", def.Cell.PO2)
	v.SetDefault("cell.alpha", def.Cell.Alpha)
	v.SetDefault("cell.area_resistance", def.Cell.AreaResistance)
	v.SetDefault("cell.limit_current", def.Cell.LimitCurrent)
	v.SetDefault("sweep.points", def.Sweep.Points)
	v.SetDefault("sweep.start", def.Sweep.Start)
	v.SetDefault("sweep.margin", def.Sweep.Margin)
	v.SetDefault("output.report_current", def.Output.ReportCurrent)
	v.SetDefault("output.lookup", def.Output.Lookup)
	v.SetDefault("output.plot_file", def.Output.PlotFile)
	v.SetDefault("output.plot_width", def.Output.PlotWidth)
	v.SetDefault("output.plot_height", def.Output.PlotHeight)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("fuelcell")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix("FUELCELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{
		"cell.temperature", "cell.p_h2", "cell.p_o2", "cell.alpha",
		"cell.area_resistance", "cell.limit_current",
		"sweep.points", "sweep.start", "sweep.margin",
		"output.report_current", "output.lookup", "output.plot_file",
		"output.plot_width", "output.plot_height",
		"log.level", "log.format",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
