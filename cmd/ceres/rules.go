package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ceres-hq/ceres/pkg/catalog"
	"ceres-hq/ceres/pkg/cli"
)

var rulesFlags struct {
	ruleType string
	format   string
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the rule catalog",
	Long:  `List and show the compliance rules in the active catalog.`,
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog rules",
	Long: `List the rules in the active catalog.

Examples:
  # All rules
  ceres rules list

  # Only nutrient content claim rules
  ceres rules list --type nutrient_content_claim

  # Machine-readable listing
  ceres rules list --format json`,
	RunE:         runRulesList,
	SilenceUsage: true,
}

var rulesShowCmd = &cobra.Command{
	Use:          "show <rule-id>",
	Short:        "Show one catalog rule in full",
	Args:         cobra.ExactArgs(1),
	RunE:         runRulesShow,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesShowCmd)

	rulesListCmd.Flags().StringVar(&rulesFlags.ruleType, "type", "", "filter by rule type")
	rulesListCmd.Flags().StringVar(&rulesFlags.format, "format", "text", "output format: text, json")
	rulesShowCmd.Flags().StringVar(&rulesFlags.format, "format", "json", "output format: text, json")
}

func runRulesList(cmd *cobra.Command, args []string) error {
	cat, closeSource, err := commandCatalog(cmd)
	if err != nil {
		return err
	}
	defer closeSource()

	rules := cat.Rules()
	if rulesFlags.ruleType != "" {
		t := catalog.RuleType(rulesFlags.ruleType)
		if !t.Valid() {
			return cli.NewConfigError("type", fmt.Sprintf("unknown rule type %q", rulesFlags.ruleType))
		}
		rules = cat.RulesByType(t)
	}

	if cli.OutputFormat(rulesFlags.format) == cli.FormatJSON {
		formatter := cli.NewFormatter(cli.FormatJSON)
		return formatter.FormatTo(os.Stdout, rules)
	}

	fmt.Printf("Catalog %s: %d rules\n\n", cat.Version(), cat.RuleCount())
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tSEVERITY\tNAME")
	for _, r := range rules {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.RuleType, r.Severity, r.Name)
	}
	return w.Flush()
}

func runRulesShow(cmd *cobra.Command, args []string) error {
	cat, closeSource, err := commandCatalog(cmd)
	if err != nil {
		return err
	}
	defer closeSource()

	rule := cat.Rule(args[0])
	if rule == nil {
		return fmt.Errorf("rule %q not found in catalog %s", args[0], cat.Version())
	}

	formatter := cli.NewFormatter(cli.OutputFormat(rulesFlags.format))
	return formatter.FormatTo(os.Stdout, rule)
}

// commandCatalog loads the catalog for a read-only inspection command.
func commandCatalog(cmd *cobra.Command) (*catalog.Catalog, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, cli.NewConfigError("", err.Error())
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, cli.NewConfigError("telemetry.logging", err.Error())
	}
	cat, closeSource, err := loadCatalog(cmd.Context(), cfg, logger)
	if err != nil {
		return nil, nil, cli.NewCommandError(cmd.Name(), err)
	}
	return cat, closeSource, nil
}
