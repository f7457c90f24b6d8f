package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ceres-hq/ceres/pkg/config"
	"ceres-hq/ceres/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ceres",
	Short: "Ceres - nutrition label compliance validator",
	Long: `Ceres validates packaged-food nutrition labels against FDA labeling
regulations (21 CFR 101).

It evaluates label documents against a rule catalog covering:
  - Label format eligibility by package surface area
  - Serving size declarations against RACC reference amounts
  - Serving size and servings-per-container rounding
  - Mandatory nutrient presence and declaration order
  - Nutrient content claim thresholds ("low sodium", "fat free", ...)

The rule catalog ships built in and can be replaced with YAML files or
a SQLite database via the configuration file.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configured (or default) configuration.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfigWithEnvOverrides(cfgFile)
}

// newLogger builds the command logger from configuration and the
// --verbose flag.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level := cfg.Telemetry.Logging.Level
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Config{
		Level:     level,
		Format:    cfg.Telemetry.Logging.Format,
		AddSource: cfg.Telemetry.Logging.AddSource,
		Writer:    os.Stderr,
	})
}
