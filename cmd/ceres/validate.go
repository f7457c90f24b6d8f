package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ceres-hq/ceres/pkg/cli"
	"ceres-hq/ceres/pkg/engine"
	"ceres-hq/ceres/pkg/label"
)

var validateFlags struct {
	format string
}

var validateCmd = &cobra.Command{
	Use:   "validate [label.json ...]",
	Short: "Validate nutrition label documents",
	Long: `Evaluate one or more label documents against the rule catalog.

Each document is first checked against the label JSON schema, then
evaluated by every rule family: format eligibility, serving size,
mandatory nutrients, and nutrient content claims.

The command exits non-zero when any document has error-severity
findings. Warning-severity findings are reported but do not fail the
command.

Examples:
  # Validate a label against the built-in catalog
  ceres validate label.json

  # Validate several labels with a custom catalog
  ceres validate --config ceres.yaml labels/*.json

  # Machine-readable report
  ceres validate --format json label.json`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          runValidate,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	ctx := cmd.Context()
	cat, closeSource, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return cli.NewCommandError("validate", err)
	}
	defer closeSource()

	validator, err := engine.NewValidator(cat, engine.WithLogger(logger))
	if err != nil {
		return cli.NewCommandError("validate", err)
	}

	formatter := cli.NewFormatter(cli.OutputFormat(validateFlags.format))

	blocked := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return cli.NewCommandError("validate", fmt.Errorf("failed to read %q: %w", path, err))
		}

		l, issues, err := label.ParseDocument(data)
		if err != nil {
			return cli.NewCommandError("validate", fmt.Errorf("failed to parse %q: %w", path, err))
		}
		if len(issues) > 0 {
			printSchemaIssues(path, issues)
			blocked++
			continue
		}

		report, err := validator.Evaluate(ctx, l)
		if err != nil {
			return cli.NewCommandError("validate", fmt.Errorf("evaluation of %q failed: %w", path, err))
		}

		if cli.OutputFormat(validateFlags.format) == cli.FormatJSON {
			if err := formatter.FormatTo(os.Stdout, report); err != nil {
				return cli.NewCommandError("validate", err)
			}
		} else {
			printReport(path, report)
		}

		if report.Blocked() {
			blocked++
		}
	}

	if blocked > 0 {
		return fmt.Errorf("%d of %d documents failed validation", blocked, len(args))
	}
	return nil
}

// printSchemaIssues reports documents that never reached rule
// evaluation.
func printSchemaIssues(path string, issues []label.SchemaIssue) {
	fmt.Printf("%s: schema validation failed\n", path)
	for _, issue := range issues {
		fmt.Printf("  ✗ %s\n", issue.String())
	}
	fmt.Println()
}

// printReport renders a validation report as human-readable text.
func printReport(path string, report *engine.ValidationReport) {
	fmt.Printf("%s (catalog %s)\n", path, report.CatalogVersion)
	for _, r := range report.ValidationResults {
		fmt.Printf("  %s [%s] %s: %s\n", statusGlyph(r.Status), r.Severity, r.RuleID, r.Message)
		if r.CFRReference != "" && verbose {
			fmt.Printf("      %s\n", r.CFRReference)
		}
	}
	fmt.Printf("Overall: %s (%d errors, %d warnings)\n\n",
		report.OverallStatus, report.ErrorsCount, report.WarningsCount)
}

func statusGlyph(s engine.Status) string {
	switch s {
	case engine.StatusPass:
		return "✓"
	case engine.StatusWarning:
		return "!"
	default:
		return "✗"
	}
}
