package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ceres-hq/ceres/pkg/catalog"
	"ceres-hq/ceres/pkg/catalog/source"
	"ceres-hq/ceres/pkg/cli"
)

var lintFlags struct {
	file string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint catalog files",
	Long: `Check catalog YAML files for structural and semantic errors
before deploying them.

Lint loads the files and builds a catalog from them, which runs the
full rule validation: required fields, exactly one requirements block
per rule, duplicate ids, RACC references, claim thresholds.

Examples:
  # Lint a single catalog file
  ceres lint --file rules.yaml

  # Lint a catalog directory
  ceres lint --file ./catalog/`,
	RunE:         runLint,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVar(&lintFlags.file, "file", "", "catalog file or directory to lint")
	lintCmd.MarkFlagRequired("file")
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	src := source.NewFileSource(lintFlags.file, logger)
	dataset, err := src.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("catalog lint failed: %w", err)
	}

	cat, err := dataset.Build()
	if err != nil {
		var ruleErr *catalog.RuleError
		if errors.As(err, &ruleErr) {
			fmt.Printf("✗ rule %s: %s (%s)\n", ruleErr.RuleID, ruleErr.Message, ruleErr.Field)
		}
		return fmt.Errorf("catalog lint failed: %w", err)
	}

	fmt.Printf("✓ %s is valid: %d rules, %d RACC categories (version %s)\n",
		lintFlags.file, cat.RuleCount(), len(cat.RACCCategories()), cat.Version())
	return nil
}
