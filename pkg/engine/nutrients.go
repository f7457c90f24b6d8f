package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"ceres-hq/ceres/pkg/catalog"
	"ceres-hq/ceres/pkg/label"
)

// NutrientChecker verifies the mandatory nutrient declarations for the
// label's panel format: presence of every required nutrient and, when
// the label supplies its rendered order, the canonical display order.
type NutrientChecker struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewNutrientChecker creates a mandatory-nutrient checker over the
// given catalog.
func NewNutrientChecker(cat *catalog.Catalog, logger *slog.Logger) *NutrientChecker {
	if logger == nil {
		logger = slog.Default()
	}
	return &NutrientChecker{catalog: cat, logger: logger.With("checker", "mandatory_nutrients")}
}

// listFor returns the mandatory-nutrient rule for the given format,
// nil when the catalog has none.
func (c *NutrientChecker) listFor(format label.Format) *catalog.ComplianceRule {
	for _, rule := range c.catalog.RulesByType(catalog.RuleTypeMandatoryNutrients) {
		if rule.MandatoryNutrients.Format == format {
			return rule
		}
	}
	return nil
}

// Check validates nutrient presence and display order against the
// format-specific requirement list. The list is selected by the
// declared format even when the format itself failed eligibility, so a
// label never loses its nutrient findings to a layout mistake. A rule
// whose applicability predicate excludes this package is skipped.
func (c *NutrientChecker) Check(l *label.LabelData) []ValidationResult {
	rule := c.listFor(l.Format)
	if rule == nil {
		c.logger.Warn("no mandatory nutrient list for format", "format", l.Format)
		return []ValidationResult{{
			RuleID:       "mn-unknown",
			RuleName:     "Mandatory nutrient list",
			RuleType:     catalog.RuleTypeMandatoryNutrients,
			Status:       StatusWarning,
			Severity:     catalog.SeverityWarning,
			CFRReference: "21 CFR 101.9(c)",
			Message:      fmt.Sprintf("no mandatory nutrient list defined for format %q", l.Format),
		}}
	}
	if ok, warn := ruleApplies(rule, l); !ok {
		if warn != nil {
			return []ValidationResult{*warn}
		}
		return nil
	}
	req := rule.MandatoryNutrients

	var results []ValidationResult

	// Presence: every required nutrient key must appear in the
	// declaration.
	var missing []string
	for _, n := range req.Nutrients {
		if _, ok := l.Nutrient(n.Key); !ok {
			missing = append(missing, n.DisplayName)
		}
	}
	if len(missing) > 0 {
		results = append(results, ValidationResult{
			RuleID:       rule.ID,
			RuleName:     rule.Name,
			RuleType:     rule.RuleType,
			Status:       StatusFail,
			Severity:     rule.Severity,
			CFRReference: rule.CFRReference,
			Message:      fmt.Sprintf("missing mandatory nutrient declarations: %s", strings.Join(missing, ", ")),
			Details:      map[string]any{"missing": missing},
		})
	} else {
		results = append(results, ValidationResult{
			RuleID:       rule.ID,
			RuleName:     rule.Name,
			RuleType:     rule.RuleType,
			Status:       StatusPass,
			Severity:     rule.Severity,
			CFRReference: rule.CFRReference,
			Message:      fmt.Sprintf("all %d mandatory nutrients are declared", len(req.Nutrients)),
		})
	}

	// Display order, only when the label reports its rendered order.
	if len(l.DeclaredOrder) > 0 {
		results = append(results, c.checkOrder(rule, l.DeclaredOrder))
	}

	return results
}

// checkOrder compares the label's rendered nutrient order against the
// canonical order, considering only required keys present in the
// declared order.
func (c *NutrientChecker) checkOrder(rule *catalog.ComplianceRule, declared []string) ValidationResult {
	req := rule.MandatoryNutrients

	position := make(map[string]int, len(req.Nutrients))
	for i, n := range req.Nutrients {
		position[n.Key] = i
	}

	last := -1
	for _, key := range declared {
		pos, required := position[key]
		if !required {
			continue
		}
		if pos < last {
			return ValidationResult{
				RuleID:       rule.ID,
				RuleName:     rule.Name,
				RuleType:     rule.RuleType,
				Status:       StatusFail,
				Severity:     rule.Severity,
				CFRReference: rule.CFRReference,
				Message:      fmt.Sprintf("nutrient %q is declared out of the required display order", key),
				Details:      map[string]any{"out_of_order": key},
			}
		}
		last = pos
	}

	return ValidationResult{
		RuleID:       rule.ID,
		RuleName:     rule.Name,
		RuleType:     rule.RuleType,
		Status:       StatusPass,
		Severity:     rule.Severity,
		CFRReference: rule.CFRReference,
		Message:      "nutrient display order matches the required order",
	}
}

// RequirementsFor exposes the format's nutrient requirement list
// (display names, units, Daily Value flags and indent levels) for
// callers that render the panel. Nil when no list covers the format.
func (c *NutrientChecker) RequirementsFor(format label.Format) []catalog.NutrientRequirement {
	rule := c.listFor(format)
	if rule == nil {
		return nil
	}
	out := make([]catalog.NutrientRequirement, len(rule.MandatoryNutrients.Nutrients))
	copy(out, rule.MandatoryNutrients.Nutrients)
	return out
}
