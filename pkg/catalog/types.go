package catalog

import (
	"ceres-hq/ceres/pkg/label"
)

// RuleType selects the requirements variant a rule carries and the
// evaluator responsible for it.
type RuleType string

const (
	// RuleTypeFormat covers label-layout eligibility by package size.
	RuleTypeFormat RuleType = "format"

	// RuleTypeServingSize covers serving-size and servings-per-container
	// requirements against the RACC reference.
	RuleTypeServingSize RuleType = "serving_size"

	// RuleTypeMandatoryNutrients covers required nutrient presence,
	// order, units and Daily Value flags.
	RuleTypeMandatoryNutrients RuleType = "mandatory_nutrients"

	// RuleTypeClaim covers nutrient content claim eligibility
	// thresholds.
	RuleTypeClaim RuleType = "nutrient_content_claim"
)

// EvaluationOrder is the fixed order rule families are evaluated and
// reported in.
var EvaluationOrder = []RuleType{
	RuleTypeFormat,
	RuleTypeServingSize,
	RuleTypeMandatoryNutrients,
	RuleTypeClaim,
}

// Valid reports whether t is a known rule type.
func (t RuleType) Valid() bool {
	switch t {
	case RuleTypeFormat, RuleTypeServingSize, RuleTypeMandatoryNutrients, RuleTypeClaim:
		return true
	}
	return false
}

// RuleCategory describes how a rule binds.
type RuleCategory string

const (
	CategoryRequired    RuleCategory = "required"
	CategoryConditional RuleCategory = "conditional"
	CategoryOptional    RuleCategory = "optional"
	CategoryProhibited  RuleCategory = "prohibited"
)

// Valid reports whether c is a known rule category.
func (c RuleCategory) Valid() bool {
	switch c {
	case CategoryRequired, CategoryConditional, CategoryOptional, CategoryProhibited:
		return true
	}
	return false
}

// Severity is the weight a failed rule carries in the report.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// SurfaceAreaRange is an inclusive surface-area band in square inches.
// Nil bounds are open.
type SurfaceAreaRange struct {
	// Min is the inclusive lower bound, nil for no lower bound.
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`

	// Max is the inclusive upper bound, nil for no upper bound.
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// Contains reports whether area falls inside the range.
func (r *SurfaceAreaRange) Contains(area float64) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && area < *r.Min {
		return false
	}
	if r.Max != nil && area > *r.Max {
		return false
	}
	return true
}

// Applicability is the closed set of predicates restricting when a rule
// applies. A nil Applicability applies unconditionally.
type Applicability struct {
	// SurfaceArea restricts the rule to packages whose label surface
	// falls in the range. Rules with this predicate are skipped when
	// the label's surface area is unspecified.
	SurfaceArea *SurfaceAreaRange `json:"surface_area,omitempty" yaml:"surface_area,omitempty"`

	// RequiresExceptionFlag restricts the rule to labels that assert a
	// data-provided exception (e.g. a linear panel because neither
	// vertical nor tabular fits). The flag is supplied by the caller,
	// not computed from geometry.
	RequiresExceptionFlag bool `json:"requires_exception_flag,omitempty" yaml:"requires_exception_flag,omitempty"`
}

// FormatRequirements is the requirements variant for format rules.
type FormatRequirements struct {
	// Format is the panel layout the rule governs.
	Format label.Format `json:"format" yaml:"format"`

	// MinSurfaceArea is the inclusive minimum surface area in square
	// inches the format requires, nil for none.
	MinSurfaceArea *float64 `json:"min_surface_area,omitempty" yaml:"min_surface_area,omitempty"`

	// MaxSurfaceArea is the inclusive maximum surface area in square
	// inches the format permits, nil for none.
	MaxSurfaceArea *float64 `json:"max_surface_area,omitempty" yaml:"max_surface_area,omitempty"`

	// RequiresException marks formats only permitted when the caller
	// asserts the standard layouts cannot be accommodated.
	RequiresException bool `json:"requires_exception,omitempty" yaml:"requires_exception,omitempty"`

	// AllowedNutrients restricts which nutrient keys the format may
	// declare. Empty means unrestricted.
	AllowedNutrients []string `json:"allowed_nutrients,omitempty" yaml:"allowed_nutrients,omitempty"`
}

// ServingSizeRequirements is the requirements variant for serving-size
// rules.
type ServingSizeRequirements struct {
	// MinPercentRACC and MaxPercentRACC bound the inclusive validity
	// band for serving size as a percentage of RACC.
	MinPercentRACC float64 `json:"min_percent_racc" yaml:"min_percent_racc"`
	MaxPercentRACC float64 `json:"max_percent_racc" yaml:"max_percent_racc"`

	// AdvisoryMinPercent and AdvisoryMaxPercent bound the looser
	// advisory "matches RACC" band used for UI feedback. Kept separate
	// from the validity band above.
	AdvisoryMinPercent float64 `json:"advisory_min_percent" yaml:"advisory_min_percent"`
	AdvisoryMaxPercent float64 `json:"advisory_max_percent" yaml:"advisory_max_percent"`

	// SingleServingMaxRatio is the container-to-RACC ratio at or below
	// which the whole container is one serving (21 CFR 101.9(b)(6)).
	SingleServingMaxRatio float64 `json:"single_serving_max_ratio" yaml:"single_serving_max_ratio"`

	// DualColumnMaxRatio is the container-to-RACC ratio at or below
	// which (and above SingleServingMaxRatio) a dual-column panel is
	// permitted (21 CFR 101.9(b)(11)).
	DualColumnMaxRatio float64 `json:"dual_column_max_ratio" yaml:"dual_column_max_ratio"`
}

// NutrientRequirement is one entry in a format's mandatory nutrient
// list.
type NutrientRequirement struct {
	// Key is the canonical nutrition_data key.
	Key string `json:"key" yaml:"key"`

	// DisplayName is the panel text (e.g. "Saturated Fat").
	DisplayName string `json:"display_name" yaml:"display_name"`

	// Unit is the declaration unit (e.g. "g", "mg", "mcg").
	Unit string `json:"unit" yaml:"unit"`

	// RequiresDV marks nutrients whose Daily Value percentage must show.
	RequiresDV bool `json:"requires_dv,omitempty" yaml:"requires_dv,omitempty"`

	// IndentLevel is the visual nesting depth on the panel (0 top
	// level, 1 indented, 2 doubly indented).
	IndentLevel int `json:"indent_level,omitempty" yaml:"indent_level,omitempty"`
}

// NutrientListRequirements is the requirements variant for
// mandatory-nutrient rules.
type NutrientListRequirements struct {
	// Format is the panel layout the list applies to.
	Format label.Format `json:"format" yaml:"format"`

	// Nutrients is the required list in canonical display order.
	Nutrients []NutrientRequirement `json:"nutrients" yaml:"nutrients"`
}

// ClaimKind selects how a claim rule's threshold is interpreted.
type ClaimKind string

const (
	// ClaimAbsolute compares the nutrient value against a fixed
	// ceiling ("free", "low" claims).
	ClaimAbsolute ClaimKind = "absolute"

	// ClaimReduction requires a minimum percentage reduction versus a
	// stated reference food ("reduced", "less" claims).
	ClaimReduction ClaimKind = "reduction"

	// ClaimLight is the light/lite rule: 50% fat reduction, or when
	// under half the reference's calories come from fat, either a 50%
	// fat reduction or a one-third calorie reduction.
	ClaimLight ClaimKind = "light"

	// ClaimDVRange requires the nutrient's Daily Value percentage to
	// fall in a band ("good source", "high" claims).
	ClaimDVRange ClaimKind = "dv_range"
)

// Valid reports whether k is a known claim kind.
func (k ClaimKind) Valid() bool {
	switch k {
	case ClaimAbsolute, ClaimReduction, ClaimLight, ClaimDVRange:
		return true
	}
	return false
}

// Comparison is the operator applied to an absolute claim threshold.
type Comparison string

const (
	// CompareLess passes when the value is strictly below the
	// threshold (e.g. sodium free: < 5 mg).
	CompareLess Comparison = "lt"

	// CompareLessEqual passes when the value is at or below the
	// threshold (e.g. low sodium: <= 140 mg).
	CompareLessEqual Comparison = "le"
)

// ClaimRequirements is the requirements variant for nutrient content
// claim rules.
type ClaimRequirements struct {
	// Terms are the recognized claim phrasings, lowercased
	// (e.g. "sodium free", "salt free", "no sodium").
	Terms []string `json:"terms" yaml:"terms"`

	// Nutrient is the canonical nutrition_data key the claim is about.
	Nutrient string `json:"nutrient" yaml:"nutrient"`

	// Kind selects the evaluation strategy.
	Kind ClaimKind `json:"kind" yaml:"kind"`

	// Threshold is the numeric ceiling for absolute claims, in the
	// nutrient's declaration unit.
	Threshold float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`

	// Compare is the operator for absolute claims.
	Compare Comparison `json:"compare,omitempty" yaml:"compare,omitempty"`

	// PerServing additionally checks the per-labeled-serving value
	// against the threshold (free/low claims).
	PerServing bool `json:"per_serving,omitempty" yaml:"per_serving,omitempty"`

	// MinReductionPercent is the required reduction versus the
	// reference food for reduction claims.
	MinReductionPercent float64 `json:"min_reduction_percent,omitempty" yaml:"min_reduction_percent,omitempty"`

	// MinPercentDV and MaxPercentDV bound the Daily Value band for
	// dv_range claims. MaxPercentDV of 0 means unbounded above.
	MinPercentDV float64 `json:"min_percent_dv,omitempty" yaml:"min_percent_dv,omitempty"`
	MaxPercentDV float64 `json:"max_percent_dv,omitempty" yaml:"max_percent_dv,omitempty"`

	// DailyValue is the nutrient's reference Daily Value in the
	// declaration unit, required for dv_range claims.
	DailyValue float64 `json:"daily_value,omitempty" yaml:"daily_value,omitempty"`
}

// ComplianceRule is one entry in the rule catalog. Exactly one
// requirements variant is non-nil, matching RuleType. Rules are created
// at catalog build time and never mutated.
type ComplianceRule struct {
	// ID uniquely identifies the rule in the catalog.
	ID string `json:"id" yaml:"id"`

	// Name is the short human-readable rule name.
	Name string `json:"name" yaml:"name"`

	// Description explains what the rule checks.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// RuleType selects the requirements variant and evaluator.
	RuleType RuleType `json:"rule_type" yaml:"rule_type"`

	// RuleCategory describes how the rule binds.
	RuleCategory RuleCategory `json:"rule_category" yaml:"rule_category"`

	// CFRReference is the regulatory citation (e.g. "21 CFR 101.9(b)(7)").
	CFRReference string `json:"cfr_reference" yaml:"cfr_reference"`

	// Severity is the weight a failure carries.
	Severity Severity `json:"severity" yaml:"severity"`

	// Applicability optionally restricts when the rule applies.
	Applicability *Applicability `json:"applicable_to,omitempty" yaml:"applicable_to,omitempty"`

	// Active rules participate in evaluation; inactive rules are
	// retained for versioning but skipped.
	Active bool `json:"active" yaml:"active"`

	// Requirements variants; exactly one is non-nil per RuleType.
	Format             *FormatRequirements       `json:"format_requirements,omitempty" yaml:"format_requirements,omitempty"`
	ServingSize        *ServingSizeRequirements  `json:"serving_size_requirements,omitempty" yaml:"serving_size_requirements,omitempty"`
	MandatoryNutrients *NutrientListRequirements `json:"nutrient_requirements,omitempty" yaml:"nutrient_requirements,omitempty"`
	Claim              *ClaimRequirements        `json:"claim_requirements,omitempty" yaml:"claim_requirements,omitempty"`
}

// AppliesTo reports whether the rule's applicability predicate admits a
// label with the given surface area and exception flag. A nil surface
// area skips rules carrying a surface-area predicate.
func (r *ComplianceRule) AppliesTo(surfaceArea *float64, exceptionFlag bool) bool {
	if r.Applicability == nil {
		return true
	}
	if r.Applicability.SurfaceArea != nil {
		if surfaceArea == nil {
			return false
		}
		if !r.Applicability.SurfaceArea.Contains(*surfaceArea) {
			return false
		}
	}
	if r.Applicability.RequiresExceptionFlag && !exceptionFlag {
		return false
	}
	return true
}
