package catalog

import (
	"fmt"
	"strings"
)

// NormalizeClaimTerm lowercases a claim phrase and collapses interior
// whitespace. Term lookup at evaluation time and the catalog's
// cross-rule uniqueness check both match on this form.
func NormalizeClaimTerm(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), " ")
}

// validateRule checks one rule at catalog build time. Exactly one
// requirements variant must be set and it must match RuleType; this is
// the fail-fast boundary for programmer errors in the rule dataset.
func validateRule(r *ComplianceRule) error {
	if r == nil {
		return &RuleError{Message: "nil rule"}
	}
	if r.ID == "" {
		return &RuleError{Message: "missing id"}
	}
	if r.Name == "" {
		return &RuleError{RuleID: r.ID, Field: "name", Message: "missing name"}
	}
	if !r.RuleType.Valid() {
		return &RuleError{RuleID: r.ID, Field: "rule_type", Message: fmt.Sprintf("unknown rule type %q", r.RuleType)}
	}
	if !r.RuleCategory.Valid() {
		return &RuleError{RuleID: r.ID, Field: "rule_category", Message: fmt.Sprintf("unknown rule category %q", r.RuleCategory)}
	}
	if !r.Severity.Valid() {
		return &RuleError{RuleID: r.ID, Field: "severity", Message: fmt.Sprintf("unknown severity %q", r.Severity)}
	}

	// Claim rules may omit the citation only because an unrecognized
	// claim has none to cite; every other family must carry one.
	if r.CFRReference == "" && r.RuleType != RuleTypeClaim {
		return &RuleError{RuleID: r.ID, Field: "cfr_reference", Message: "missing CFR reference"}
	}

	if err := validateVariant(r); err != nil {
		return err
	}
	return nil
}

func variantCount(r *ComplianceRule) int {
	n := 0
	if r.Format != nil {
		n++
	}
	if r.ServingSize != nil {
		n++
	}
	if r.MandatoryNutrients != nil {
		n++
	}
	if r.Claim != nil {
		n++
	}
	return n
}

func validateVariant(r *ComplianceRule) error {
	if n := variantCount(r); n != 1 {
		return &RuleError{RuleID: r.ID, Field: "requirements",
			Message: fmt.Sprintf("expected exactly one requirements variant, found %d", n)}
	}

	switch r.RuleType {
	case RuleTypeFormat:
		return validateFormatRequirements(r)
	case RuleTypeServingSize:
		return validateServingSizeRequirements(r)
	case RuleTypeMandatoryNutrients:
		return validateNutrientListRequirements(r)
	case RuleTypeClaim:
		return validateClaimRequirements(r)
	}
	return nil
}

func validateFormatRequirements(r *ComplianceRule) error {
	req := r.Format
	if req == nil {
		return &RuleError{RuleID: r.ID, Field: "format_requirements", Message: "format rule missing format requirements"}
	}
	if !req.Format.Valid() {
		return &RuleError{RuleID: r.ID, Field: "format_requirements.format",
			Message: fmt.Sprintf("unknown label format %q", req.Format)}
	}
	if req.MinSurfaceArea != nil && *req.MinSurfaceArea < 0 {
		return &RuleError{RuleID: r.ID, Field: "format_requirements.min_surface_area", Message: "must not be negative"}
	}
	if req.MinSurfaceArea != nil && req.MaxSurfaceArea != nil && *req.MinSurfaceArea > *req.MaxSurfaceArea {
		return &RuleError{RuleID: r.ID, Field: "format_requirements", Message: "min_surface_area exceeds max_surface_area"}
	}
	return nil
}

func validateServingSizeRequirements(r *ComplianceRule) error {
	req := r.ServingSize
	if req == nil {
		return &RuleError{RuleID: r.ID, Field: "serving_size_requirements", Message: "serving size rule missing serving size requirements"}
	}
	if req.MinPercentRACC <= 0 || req.MaxPercentRACC <= req.MinPercentRACC {
		return &RuleError{RuleID: r.ID, Field: "serving_size_requirements",
			Message: "percent-of-RACC band must satisfy 0 < min < max"}
	}
	if req.AdvisoryMinPercent <= 0 || req.AdvisoryMaxPercent <= req.AdvisoryMinPercent {
		return &RuleError{RuleID: r.ID, Field: "serving_size_requirements",
			Message: "advisory band must satisfy 0 < min < max"}
	}
	if req.SingleServingMaxRatio <= 0 || req.DualColumnMaxRatio <= req.SingleServingMaxRatio {
		return &RuleError{RuleID: r.ID, Field: "serving_size_requirements",
			Message: "ratio bounds must satisfy 0 < single < dual"}
	}
	return nil
}

func validateNutrientListRequirements(r *ComplianceRule) error {
	req := r.MandatoryNutrients
	if req == nil {
		return &RuleError{RuleID: r.ID, Field: "nutrient_requirements", Message: "mandatory nutrient rule missing nutrient requirements"}
	}
	if !req.Format.Valid() {
		return &RuleError{RuleID: r.ID, Field: "nutrient_requirements.format",
			Message: fmt.Sprintf("unknown label format %q", req.Format)}
	}
	if len(req.Nutrients) == 0 {
		return &RuleError{RuleID: r.ID, Field: "nutrient_requirements.nutrients", Message: "empty nutrient list"}
	}
	seen := make(map[string]bool, len(req.Nutrients))
	for i, n := range req.Nutrients {
		if n.Key == "" {
			return &RuleError{RuleID: r.ID, Field: fmt.Sprintf("nutrient_requirements.nutrients[%d].key", i), Message: "missing key"}
		}
		if n.DisplayName == "" {
			return &RuleError{RuleID: r.ID, Field: fmt.Sprintf("nutrient_requirements.nutrients[%d].display_name", i), Message: "missing display name"}
		}
		if seen[n.Key] {
			return &RuleError{RuleID: r.ID, Field: "nutrient_requirements.nutrients",
				Message: fmt.Sprintf("duplicate nutrient key %q", n.Key)}
		}
		seen[n.Key] = true
		if n.IndentLevel < 0 || n.IndentLevel > 2 {
			return &RuleError{RuleID: r.ID, Field: fmt.Sprintf("nutrient_requirements.nutrients[%d].indent_level", i),
				Message: "indent level must be 0, 1 or 2"}
		}
	}
	return nil
}

func validateClaimRequirements(r *ComplianceRule) error {
	req := r.Claim
	if req == nil {
		return &RuleError{RuleID: r.ID, Field: "claim_requirements", Message: "claim rule missing claim requirements"}
	}
	if len(req.Terms) == 0 {
		return &RuleError{RuleID: r.ID, Field: "claim_requirements.terms", Message: "empty term list"}
	}
	if req.Nutrient == "" {
		return &RuleError{RuleID: r.ID, Field: "claim_requirements.nutrient", Message: "missing nutrient key"}
	}
	if !req.Kind.Valid() {
		return &RuleError{RuleID: r.ID, Field: "claim_requirements.kind",
			Message: fmt.Sprintf("unknown claim kind %q", req.Kind)}
	}

	switch req.Kind {
	case ClaimAbsolute:
		if req.Threshold < 0 {
			return &RuleError{RuleID: r.ID, Field: "claim_requirements.threshold", Message: "must not be negative"}
		}
		if req.Compare != CompareLess && req.Compare != CompareLessEqual {
			return &RuleError{RuleID: r.ID, Field: "claim_requirements.compare",
				Message: fmt.Sprintf("unknown comparison %q", req.Compare)}
		}
	case ClaimReduction:
		if req.MinReductionPercent <= 0 || req.MinReductionPercent > 100 {
			return &RuleError{RuleID: r.ID, Field: "claim_requirements.min_reduction_percent",
				Message: "must be in (0, 100]"}
		}
	case ClaimDVRange:
		if req.DailyValue <= 0 {
			return &RuleError{RuleID: r.ID, Field: "claim_requirements.daily_value", Message: "must be positive"}
		}
		if req.MinPercentDV <= 0 {
			return &RuleError{RuleID: r.ID, Field: "claim_requirements.min_percent_dv", Message: "must be positive"}
		}
		if req.MaxPercentDV != 0 && req.MaxPercentDV < req.MinPercentDV {
			return &RuleError{RuleID: r.ID, Field: "claim_requirements.max_percent_dv",
				Message: "must not be below min_percent_dv"}
		}
	}
	return nil
}
