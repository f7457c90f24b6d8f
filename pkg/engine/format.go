package engine

import (
	"fmt"
	"log/slog"
	"sort"

	"ceres-hq/ceres/pkg/catalog"
	"ceres-hq/ceres/pkg/label"
)

// FormatChecker determines which panel layouts a package's surface area
// permits and validates the declared format against them.
type FormatChecker struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewFormatChecker creates a format checker over the given catalog.
func NewFormatChecker(cat *catalog.Catalog, logger *slog.Logger) *FormatChecker {
	if logger == nil {
		logger = slog.Default()
	}
	return &FormatChecker{catalog: cat, logger: logger.With("checker", "format")}
}

// eligible reports whether one format rule admits the given surface
// area and exception flag.
func eligible(req *catalog.FormatRequirements, surfaceArea float64, exception bool) bool {
	if req.MinSurfaceArea != nil && surfaceArea < *req.MinSurfaceArea {
		return false
	}
	if req.MaxSurfaceArea != nil && surfaceArea > *req.MaxSurfaceArea {
		return false
	}
	if req.RequiresException && !exception {
		return false
	}
	return true
}

// EligibleFormats returns the set of panel formats permitted for the
// given surface area, sorted for stable output. A nil surface area
// (unspecified) admits every format that does not depend on an
// exception flag the label did not assert.
func (c *FormatChecker) EligibleFormats(surfaceArea *float64, exception bool) []label.Format {
	var out []label.Format
	for _, rule := range c.catalog.RulesByType(catalog.RuleTypeFormat) {
		req := rule.Format
		if surfaceArea == nil {
			if !req.RequiresException || exception {
				out = append(out, req.Format)
			}
			continue
		}
		if eligible(req, *surfaceArea, exception) {
			out = append(out, req.Format)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Check validates the label's declared format. Only the rule governing
// the declared format produces a finding; an ineligible declaration
// fails at the rule's catalog severity. An unspecified surface area
// yields a warning-status finding because eligibility cannot be
// verified. Rules whose applicability predicate excludes this package
// are skipped.
func (c *FormatChecker) Check(l *label.LabelData) []ValidationResult {
	var results []ValidationResult
	matched := false

	for _, rule := range c.catalog.RulesByType(catalog.RuleTypeFormat) {
		req := rule.Format
		if req.Format != l.Format {
			continue
		}
		matched = true

		if ok, warn := ruleApplies(rule, l); !ok {
			if warn != nil {
				results = append(results, *warn)
			}
			continue
		}

		if l.PackageSurfaceArea == nil {
			results = append(results, ValidationResult{
				RuleID:       rule.ID,
				RuleName:     rule.Name,
				RuleType:     rule.RuleType,
				Status:       StatusWarning,
				Severity:     catalog.SeverityWarning,
				CFRReference: rule.CFRReference,
				Message:      fmt.Sprintf("package surface area not specified; %s format eligibility cannot be verified", l.Format),
			})
			results = append(results, c.checkRestrictedNutrients(rule, l)...)
			continue
		}

		area := *l.PackageSurfaceArea
		if !eligible(req, area, l.FormatException) {
			results = append(results, ValidationResult{
				RuleID:       rule.ID,
				RuleName:     rule.Name,
				RuleType:     rule.RuleType,
				Status:       StatusFail,
				Severity:     rule.Severity,
				CFRReference: rule.CFRReference,
				Message:      ineligibleMessage(req, area),
				Details: map[string]any{
					"package_surface_area": area,
					"eligible_formats":     c.EligibleFormats(l.PackageSurfaceArea, l.FormatException),
				},
			})
			continue
		}

		results = append(results, ValidationResult{
			RuleID:       rule.ID,
			RuleName:     rule.Name,
			RuleType:     rule.RuleType,
			Status:       StatusPass,
			Severity:     rule.Severity,
			CFRReference: rule.CFRReference,
			Message:      fmt.Sprintf("%s format is permitted at %.1f sq in", l.Format, area),
		})
		results = append(results, c.checkRestrictedNutrients(rule, l)...)
	}

	if !matched {
		c.logger.Warn("no format rule for declared format", "format", l.Format)
		results = append(results, ValidationResult{
			RuleID:       "fmt-unknown",
			RuleName:     "Format recognition",
			RuleType:     catalog.RuleTypeFormat,
			Status:       StatusFail,
			Severity:     catalog.SeverityError,
			CFRReference: "21 CFR 101.9(d)",
			Message:      fmt.Sprintf("declared format %q is not a recognized panel layout", l.Format),
		})
	}

	return results
}

// checkRestrictedNutrients enforces a format's restricted declaration
// set (the simplified panel only permits a short nutrient list).
func (c *FormatChecker) checkRestrictedNutrients(rule *catalog.ComplianceRule, l *label.LabelData) []ValidationResult {
	req := rule.Format
	if len(req.AllowedNutrients) == 0 {
		return nil
	}

	allowed := make(map[string]bool, len(req.AllowedNutrients))
	for _, k := range req.AllowedNutrients {
		allowed[k] = true
	}

	var extra []string
	for k := range l.NutritionData {
		if !allowed[k] {
			extra = append(extra, k)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)

	return []ValidationResult{{
		RuleID:       rule.ID,
		RuleName:     rule.Name,
		RuleType:     rule.RuleType,
		Status:       StatusFail,
		Severity:     rule.Severity,
		CFRReference: rule.CFRReference,
		Message:      fmt.Sprintf("%s format restricts the declared nutrients; not permitted: %v", req.Format, extra),
		Details:      map[string]any{"disallowed_nutrients": extra},
	}}
}

func ineligibleMessage(req *catalog.FormatRequirements, area float64) string {
	switch {
	case req.MinSurfaceArea != nil && area < *req.MinSurfaceArea:
		return fmt.Sprintf("%s format requires at least %.0f sq in of label space, package has %.1f",
			req.Format, *req.MinSurfaceArea, area)
	case req.MaxSurfaceArea != nil && area > *req.MaxSurfaceArea:
		return fmt.Sprintf("%s format is only permitted at or below %.0f sq in, package has %.1f",
			req.Format, *req.MaxSurfaceArea, area)
	case req.RequiresException:
		return fmt.Sprintf("%s format is only permitted when neither a vertical nor a tabular panel can be accommodated", req.Format)
	default:
		return fmt.Sprintf("%s format is not permitted for this package", req.Format)
	}
}
