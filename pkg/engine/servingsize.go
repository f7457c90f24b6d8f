package engine

import (
	"fmt"
	"log/slog"

	"ceres-hq/ceres/pkg/catalog"
	"ceres-hq/ceres/pkg/label"
)

// Classification is the container treatment derived from the
// container-to-RACC ratio.
type Classification string

const (
	// ClassificationSingle means the whole container must be declared
	// as one serving (21 CFR 101.9(b)(6)).
	ClassificationSingle Classification = "single"

	// ClassificationDual means the container may use a dual-column
	// panel with per-serving and per-container values
	// (21 CFR 101.9(b)(11)).
	ClassificationDual Classification = "dual"

	// ClassificationStandard means no special container handling.
	ClassificationStandard Classification = "standard"
)

// ServingSizeValidation bundles everything the serving-size check
// derives for one label: validity, the RACC reference, the computed
// percentage, classification, a corrected serving size suggestion and
// the message list.
type ServingSizeValidation struct {
	// IsValid is false when any check failed or the RACC category is
	// unknown.
	IsValid bool

	// RACC is the reference category, nil when unknown.
	RACC *catalog.RACCCategory

	// PercentOfRACC is the declared serving as a percentage of the
	// reference amount (0 when RACC is unknown).
	PercentOfRACC float64

	// Classification is the single/dual/standard container treatment.
	Classification Classification

	// SuggestedServingSize is the corrected serving size in grams: the
	// rounded container weight when the container is at most twice the
	// reference amount, otherwise the rounded reference amount.
	SuggestedServingSize float64

	// HouseholdMeasure is the category's consumer-facing measure text.
	HouseholdMeasure string

	// SuggestedServingsDisplay is the servings-per-container display
	// text when a count was supplied.
	SuggestedServingsDisplay string

	// Messages collects every check's explanation in order.
	Messages []string

	// Findings are the report entries for the aggregator.
	Findings []ValidationResult
}

// ServingSizeValidator checks declared serving sizes against the RACC
// reference table.
type ServingSizeValidator struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewServingSizeValidator creates a serving-size validator over the
// given catalog.
func NewServingSizeValidator(cat *catalog.Catalog, logger *slog.Logger) *ServingSizeValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &ServingSizeValidator{catalog: cat, logger: logger.With("checker", "serving_size")}
}

// rule returns the active serving-size rule, nil when the catalog has
// none.
func (v *ServingSizeValidator) rule() *catalog.ComplianceRule {
	rules := v.catalog.RulesByType(catalog.RuleTypeServingSize)
	if len(rules) == 0 {
		return nil
	}
	return rules[0]
}

// ValidateServingSize runs the full serving-size algorithm: RACC
// lookup, container classification, percent-of-RACC band, gram
// rounding, servings-per-container rounding and the corrected
// suggestion. An unknown RACC category yields an all-false result with
// a single error message; the function never fails.
func (v *ServingSizeValidator) ValidateServingSize(servingSizeG, totalProductWeight float64, raccCategoryID string, servingsPerContainer *float64) *ServingSizeValidation {
	rule := v.rule()
	if rule == nil {
		return &ServingSizeValidation{
			Classification: ClassificationStandard,
			Messages:       []string{"no serving size rule in catalog"},
		}
	}
	req := rule.ServingSize

	result := &ServingSizeValidation{IsValid: true, Classification: ClassificationStandard}

	racc := v.catalog.RACC(raccCategoryID)
	if racc == nil {
		msg := fmt.Sprintf("unknown RACC category %q; serving size cannot be validated", raccCategoryID)
		result.IsValid = false
		result.Messages = append(result.Messages, msg)
		result.Findings = append(result.Findings, v.finding(rule, StatusFail, rule.Severity, msg, map[string]any{
			"racc_category_id": raccCategoryID,
		}))
		return result
	}

	result.RACC = racc
	result.HouseholdMeasure = racc.HouseholdMeasure
	raccInGrams := racc.Grams()

	// Container classification from the container-to-RACC ratio.
	ratio := totalProductWeight / raccInGrams
	switch {
	case ratio <= req.SingleServingMaxRatio:
		result.Classification = ClassificationSingle
		msg := fmt.Sprintf("container holds %.1fx the reference amount; the entire container must be labeled as one serving", ratio)
		result.Messages = append(result.Messages, msg)
		result.Findings = append(result.Findings, ValidationResult{
			RuleID:       rule.ID,
			RuleName:     rule.Name,
			RuleType:     rule.RuleType,
			Status:       StatusPass,
			Severity:     catalog.SeverityInfo,
			CFRReference: "21 CFR 101.9(b)(6)",
			Message:      msg,
			Details:      map[string]any{"container_to_racc_ratio": ratio, "classification": string(ClassificationSingle)},
		})
	case ratio <= req.DualColumnMaxRatio:
		result.Classification = ClassificationDual
		msg := fmt.Sprintf("container holds %.1fx the reference amount; a dual-column panel with per-serving and per-container values is permitted", ratio)
		result.Messages = append(result.Messages, msg)
		result.Findings = append(result.Findings, ValidationResult{
			RuleID:       rule.ID,
			RuleName:     rule.Name,
			RuleType:     rule.RuleType,
			Status:       StatusPass,
			Severity:     catalog.SeverityInfo,
			CFRReference: "21 CFR 101.9(b)(11)",
			Message:      msg,
			Details:      map[string]any{"container_to_racc_ratio": ratio, "classification": string(ClassificationDual)},
		})
	}

	// Percent-of-RACC band, inclusive at both bounds.
	percent := servingSizeG / raccInGrams * 100
	result.PercentOfRACC = percent
	switch {
	case percent < req.MinPercentRACC:
		result.IsValid = false
		msg := fmt.Sprintf("serving size is %.1f%% of the %s reference amount (%.0f %s); consider increasing it",
			percent, racc.Category, racc.RACCAmount, racc.RACCUnit)
		result.Messages = append(result.Messages, msg)
		result.Findings = append(result.Findings, v.finding(rule, StatusWarning, catalog.SeverityWarning, msg, map[string]any{
			"percent_of_racc": percent,
		}))
	case percent > req.MaxPercentRACC:
		result.IsValid = false
		msg := fmt.Sprintf("serving size is %.1f%% of the %s reference amount (%.0f %s); consider decreasing it",
			percent, racc.Category, racc.RACCAmount, racc.RACCUnit)
		result.Messages = append(result.Messages, msg)
		result.Findings = append(result.Findings, v.finding(rule, StatusWarning, catalog.SeverityWarning, msg, map[string]any{
			"percent_of_racc": percent,
		}))
	default:
		msg := fmt.Sprintf("serving size is %.1f%% of the reference amount", percent)
		result.Messages = append(result.Messages, msg)
		result.Findings = append(result.Findings, v.finding(rule, StatusPass, rule.Severity, msg, map[string]any{
			"percent_of_racc": percent,
		}))
	}

	// Gram rounding. A mismatch is an error, not a warning.
	if rounding := ValidateGramRounding(servingSizeG); !rounding.IsValid {
		result.IsValid = false
		msg := fmt.Sprintf("serving size %.2fg does not satisfy the rounding increments; declare %.1fg", servingSizeG, rounding.SuggestedValue)
		result.Messages = append(result.Messages, msg)
		result.Findings = append(result.Findings, ValidationResult{
			RuleID:       rule.ID,
			RuleName:     rule.Name,
			RuleType:     rule.RuleType,
			Status:       StatusFail,
			Severity:     catalog.SeverityError,
			CFRReference: "21 CFR 101.9(b)(7)",
			Message:      msg,
			Details:      map[string]any{"suggested_value": rounding.SuggestedValue},
		})
	}

	// Servings-per-container rounding when supplied.
	if servingsPerContainer != nil {
		rounding := ValidateServingsPerContainerRounding(*servingsPerContainer)
		result.SuggestedServingsDisplay = rounding.SuggestedDisplay
		if !rounding.IsValid {
			result.IsValid = false
			msg := fmt.Sprintf("servings per container %.2f does not satisfy the rounding increments; declare %q",
				*servingsPerContainer, rounding.SuggestedDisplay)
			result.Messages = append(result.Messages, msg)
			result.Findings = append(result.Findings, ValidationResult{
				RuleID:       rule.ID,
				RuleName:     rule.Name,
				RuleType:     rule.RuleType,
				Status:       StatusFail,
				Severity:     catalog.SeverityError,
				CFRReference: "21 CFR 101.9(b)(8)",
				Message:      msg,
				Details:      map[string]any{"suggested_value": rounding.SuggestedValue, "suggested_display": rounding.SuggestedDisplay},
			})
		}
	}

	// Suggested serving size: the whole container when it is at most
	// twice the reference amount, otherwise the reference amount.
	if totalProductWeight <= req.SingleServingMaxRatio*raccInGrams {
		result.SuggestedServingSize = roundGram(totalProductWeight)
	} else {
		result.SuggestedServingSize = roundGram(raccInGrams)
	}

	return result
}

// CheckServingSizeMatchesRACC classifies a serving size as matching the
// reference amount when it falls within the advisory band (67%-150% of
// RACC). This is looser than the validity band and intended for UI
// feedback, not hard validation. ok is false when the category or the
// serving-size rule is unknown.
func (v *ServingSizeValidator) CheckServingSizeMatchesRACC(servingSizeG float64, raccCategoryID string) (matches bool, percent float64, ok bool) {
	rule := v.rule()
	racc := v.catalog.RACC(raccCategoryID)
	if rule == nil || racc == nil {
		return false, 0, false
	}
	req := rule.ServingSize
	percent = servingSizeG / racc.Grams() * 100
	return percent >= req.AdvisoryMinPercent && percent <= req.AdvisoryMaxPercent, percent, true
}

// Check adapts a label record to the serving-size contract, surfacing
// missing inputs as findings instead of skipping silently. A rule whose
// applicability predicate excludes this package is skipped.
func (v *ServingSizeValidator) Check(l *label.LabelData) []ValidationResult {
	rule := v.rule()
	if rule == nil {
		return nil
	}
	if ok, warn := ruleApplies(rule, l); !ok {
		if warn != nil {
			return []ValidationResult{*warn}
		}
		return nil
	}

	if l.ServingSizeG == nil {
		return []ValidationResult{v.finding(rule, StatusFail, rule.Severity,
			"serving size is not declared", nil)}
	}
	if l.RACCCategoryID == "" {
		return []ValidationResult{v.finding(rule, StatusWarning, catalog.SeverityWarning,
			"no RACC category assigned; serving size reference checks skipped", nil)}
	}

	totalWeight := *l.ServingSizeG
	if l.TotalProductWeightG != nil {
		totalWeight = *l.TotalProductWeightG
	} else if l.ServingsPerContainer != nil {
		totalWeight = *l.ServingSizeG * *l.ServingsPerContainer
	}

	validation := v.ValidateServingSize(*l.ServingSizeG, totalWeight, l.RACCCategoryID, l.ServingsPerContainer)
	return validation.Findings
}

func (v *ServingSizeValidator) finding(rule *catalog.ComplianceRule, status Status, severity catalog.Severity, msg string, details map[string]any) ValidationResult {
	return ValidationResult{
		RuleID:       rule.ID,
		RuleName:     rule.Name,
		RuleType:     rule.RuleType,
		Status:       status,
		Severity:     severity,
		CFRReference: rule.CFRReference,
		Message:      msg,
		Details:      details,
	}
}
