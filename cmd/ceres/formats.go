package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ceres-hq/ceres/pkg/engine"
)

var formatsFlags struct {
	surfaceArea float64
	exception   bool
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Show eligible label formats for a package",
	Long: `Show which label formats a package is eligible for, given its
available surface area in square inches.

Examples:
  # Formats available to a 45 sq in package
  ceres formats --surface-area 45

  # Small package with a documented space constraint
  ceres formats --surface-area 30 --exception`,
	RunE:         runFormats,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(formatsCmd)

	formatsCmd.Flags().Float64Var(&formatsFlags.surfaceArea, "surface-area", 0, "package surface area in square inches")
	formatsCmd.Flags().BoolVar(&formatsFlags.exception, "exception", false, "package has a documented space-constraint exception")
	formatsCmd.MarkFlagRequired("surface-area")
}

func runFormats(cmd *cobra.Command, args []string) error {
	cat, closeSource, err := commandCatalog(cmd)
	if err != nil {
		return err
	}
	defer closeSource()

	validator, err := engine.NewValidator(cat)
	if err != nil {
		return err
	}

	area := formatsFlags.surfaceArea
	eligible := validator.Formats().EligibleFormats(&area, formatsFlags.exception)
	if len(eligible) == 0 {
		fmt.Printf("No formats eligible for %.1f sq in\n", area)
		return nil
	}

	fmt.Printf("Eligible formats for %.1f sq in:\n", area)
	for _, f := range eligible {
		fmt.Printf("  - %s\n", f)
	}
	return nil
}
