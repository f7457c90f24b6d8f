package engine

import (
	"fmt"

	"ceres-hq/ceres/pkg/catalog"
	"ceres-hq/ceres/pkg/label"
)

// ruleApplies reports whether a rule's applicability predicate admits
// the label's package. A skipped rule produces no findings, with one
// exception: when the rule is scoped to a surface-area range and the
// label does not state its area, a warning finding is returned so the
// skip is never silent.
func ruleApplies(rule *catalog.ComplianceRule, l *label.LabelData) (bool, *ValidationResult) {
	if rule.AppliesTo(l.PackageSurfaceArea, l.FormatException) {
		return true, nil
	}
	if l.PackageSurfaceArea == nil && rule.Applicability != nil && rule.Applicability.SurfaceArea != nil {
		return false, &ValidationResult{
			RuleID:       rule.ID,
			RuleName:     rule.Name,
			RuleType:     rule.RuleType,
			Status:       StatusWarning,
			Severity:     catalog.SeverityWarning,
			CFRReference: rule.CFRReference,
			Message:      fmt.Sprintf("package surface area not specified; rule %q applies only to certain package sizes and was skipped", rule.ID),
		}
	}
	return false, nil
}
