package engine

import (
	"fmt"
	"log/slog"

	"ceres-hq/ceres/pkg/catalog"
	"ceres-hq/ceres/pkg/label"
)

// ClaimEvaluator checks nutrient content claims attached to a label
// against their numeric eligibility thresholds.
type ClaimEvaluator struct {
	catalog *catalog.Catalog
	logger  *slog.Logger

	// byTerm resolves a normalized claim phrase to its rule.
	byTerm map[string]*catalog.ComplianceRule
}

// NewClaimEvaluator creates a claim evaluator over the given catalog.
// The term index is built once; the catalog is immutable and guarantees
// at construction that no normalized term is claimed by two rules.
func NewClaimEvaluator(cat *catalog.Catalog, logger *slog.Logger) *ClaimEvaluator {
	if logger == nil {
		logger = slog.Default()
	}
	e := &ClaimEvaluator{
		catalog: cat,
		logger:  logger.With("checker", "claims"),
		byTerm:  make(map[string]*catalog.ComplianceRule),
	}
	for _, rule := range cat.RulesByType(catalog.RuleTypeClaim) {
		for _, term := range rule.Claim.Terms {
			e.byTerm[catalog.NormalizeClaimTerm(term)] = rule
		}
	}
	return e
}

// Check evaluates every claim statement on the label, in label order.
// Unknown terms yield info findings; claims whose underlying nutrient
// value is missing yield warnings, never silent passes.
func (e *ClaimEvaluator) Check(l *label.LabelData) []ValidationResult {
	var results []ValidationResult
	for _, statement := range l.ClaimStatements {
		results = append(results, e.evaluate(statement, l))
	}
	return results
}

// evaluate checks a single claim statement.
func (e *ClaimEvaluator) evaluate(statement string, l *label.LabelData) ValidationResult {
	rule, ok := e.byTerm[catalog.NormalizeClaimTerm(statement)]
	if !ok {
		e.logger.Debug("unrecognized claim term", "claim", statement)
		return ValidationResult{
			RuleID:   "nc-unknown",
			RuleName: "Claim recognition",
			RuleType: catalog.RuleTypeClaim,
			Status:   StatusWarning,
			Severity: catalog.SeverityInfo,
			Message:  fmt.Sprintf("claim %q is not a recognized nutrient content claim", statement),
			Details:  map[string]any{"claim": statement},
		}
	}
	if ok, warn := ruleApplies(rule, l); !ok {
		if warn != nil {
			return *warn
		}
		return ValidationResult{
			RuleID:       rule.ID,
			RuleName:     rule.Name,
			RuleType:     rule.RuleType,
			Status:       StatusWarning,
			Severity:     catalog.SeverityInfo,
			CFRReference: rule.CFRReference,
			Message:      fmt.Sprintf("claim %q was not evaluated: rule %q does not apply to this package", statement, rule.ID),
			Details:      map[string]any{"claim": statement},
		}
	}
	req := rule.Claim

	value, ok := l.Nutrient(req.Nutrient)
	if !ok {
		return e.unverifiable(rule, statement,
			fmt.Sprintf("claim %q cannot be verified: %s is not declared in the nutrition data", statement, req.Nutrient))
	}

	switch req.Kind {
	case catalog.ClaimAbsolute:
		return e.evaluateAbsolute(rule, statement, value, l)
	case catalog.ClaimReduction:
		return e.evaluateReduction(rule, statement, value, l)
	case catalog.ClaimLight:
		return e.evaluateLight(rule, statement, l)
	case catalog.ClaimDVRange:
		return e.evaluateDVRange(rule, statement, value)
	}

	// Unreachable for a validated catalog.
	return e.unverifiable(rule, statement, fmt.Sprintf("claim %q has an unsupported evaluation kind", statement))
}

// perRACCValue scales a per-serving nutrient value to the reference
// amount. When the serving size or RACC category is unknown the
// per-serving value is used as is, and scaled is false.
func (e *ClaimEvaluator) perRACCValue(value float64, l *label.LabelData) (float64, bool) {
	if l.ServingSizeG == nil || *l.ServingSizeG <= 0 || l.RACCCategoryID == "" {
		return value, false
	}
	racc := e.catalog.RACC(l.RACCCategoryID)
	if racc == nil {
		return value, false
	}
	return value * racc.Grams() / *l.ServingSizeG, true
}

func compare(value, threshold float64, cmp catalog.Comparison) bool {
	if cmp == catalog.CompareLess {
		return value < threshold
	}
	return value <= threshold
}

func comparisonText(cmp catalog.Comparison) string {
	if cmp == catalog.CompareLess {
		return "below"
	}
	return "at or below"
}

func (e *ClaimEvaluator) evaluateAbsolute(rule *catalog.ComplianceRule, statement string, value float64, l *label.LabelData) ValidationResult {
	req := rule.Claim

	perRACC, scaled := e.perRACCValue(value, l)
	details := map[string]any{
		"claim":         statement,
		"threshold":     req.Threshold,
		"per_racc":      perRACC,
		"racc_adjusted": scaled,
	}

	if !compare(perRACC, req.Threshold, req.Compare) {
		return e.fail(rule, details,
			fmt.Sprintf("claim %q requires %s %s %g per reference amount; label has %g",
				statement, req.Nutrient, comparisonText(req.Compare), req.Threshold, perRACC))
	}

	if req.PerServing {
		details["per_serving"] = value
		if !compare(value, req.Threshold, req.Compare) {
			return e.fail(rule, details,
				fmt.Sprintf("claim %q requires %s %s %g per labeled serving; label has %g",
					statement, req.Nutrient, comparisonText(req.Compare), req.Threshold, value))
		}
	}

	return e.pass(rule, details,
		fmt.Sprintf("claim %q is supported: %s is %g per reference amount (threshold %g)",
			statement, req.Nutrient, perRACC, req.Threshold))
}

func (e *ClaimEvaluator) evaluateReduction(rule *catalog.ComplianceRule, statement string, value float64, l *label.LabelData) ValidationResult {
	req := rule.Claim

	ref, ok := l.ReferenceNutrient(req.Nutrient)
	if !ok || ref <= 0 {
		return e.unverifiable(rule, statement,
			fmt.Sprintf("claim %q cannot be verified: no reference food value for %s", statement, req.Nutrient))
	}

	reduction := (ref - value) / ref * 100
	details := map[string]any{
		"claim":             statement,
		"reference_value":   ref,
		"label_value":       value,
		"reduction_percent": reduction,
	}

	if reduction < req.MinReductionPercent {
		return e.fail(rule, details,
			fmt.Sprintf("claim %q requires at least %.0f%% less %s than the reference food; label shows %.1f%%",
				statement, req.MinReductionPercent, req.Nutrient, reduction))
	}
	return e.pass(rule, details,
		fmt.Sprintf("claim %q is supported: %.1f%% reduction versus the reference food", statement, reduction))
}

// evaluateLight implements the light/lite rule: when at least half the
// reference food's calories come from fat, only a 50% fat reduction
// qualifies; otherwise either a 50% fat reduction or a one-third
// calorie reduction does.
func (e *ClaimEvaluator) evaluateLight(rule *catalog.ComplianceRule, statement string, l *label.LabelData) ValidationResult {
	fat, fatOK := l.Nutrient(label.NutrientTotalFat)
	calories, calOK := l.Nutrient(label.NutrientCalories)
	refFat, refFatOK := l.ReferenceNutrient(label.NutrientTotalFat)
	refCal, refCalOK := l.ReferenceNutrient(label.NutrientCalories)

	if !fatOK || !calOK || !refFatOK || !refCalOK || refFat < 0 || refCal <= 0 {
		return e.unverifiable(rule, statement,
			fmt.Sprintf("claim %q cannot be verified: fat and calorie values are required for both the label and the reference food", statement))
	}

	fatReduction := 0.0
	if refFat > 0 {
		fatReduction = (refFat - fat) / refFat * 100
	}
	calorieReduction := (refCal - calories) / refCal * 100
	caloriesFromFatPct := refFat * 9 / refCal * 100

	details := map[string]any{
		"claim":                     statement,
		"fat_reduction_percent":     fatReduction,
		"calorie_reduction_percent": calorieReduction,
	}
	details["reference_calories_from_fat_percent"] = caloriesFromFatPct

	if fatReduction >= 50 {
		return e.pass(rule, details,
			fmt.Sprintf("claim %q is supported: %.1f%% fat reduction versus the reference food", statement, fatReduction))
	}
	if caloriesFromFatPct >= 50 {
		return e.fail(rule, details,
			fmt.Sprintf("claim %q requires a 50%% fat reduction when half or more of the reference food's calories come from fat; label shows %.1f%%",
				statement, fatReduction))
	}
	if calorieReduction >= 100.0/3 {
		return e.pass(rule, details,
			fmt.Sprintf("claim %q is supported: %.1f%% calorie reduction versus the reference food", statement, calorieReduction))
	}
	return e.fail(rule, details,
		fmt.Sprintf("claim %q requires a 50%% fat reduction or a one-third calorie reduction; label shows %.1f%% fat and %.1f%% calories",
			statement, fatReduction, calorieReduction))
}

func (e *ClaimEvaluator) evaluateDVRange(rule *catalog.ComplianceRule, statement string, value float64) ValidationResult {
	req := rule.Claim

	percentDV := value / req.DailyValue * 100
	details := map[string]any{
		"claim":      statement,
		"percent_dv": percentDV,
	}

	if percentDV < req.MinPercentDV {
		return e.fail(rule, details,
			fmt.Sprintf("claim %q requires at least %.0f%% of the Daily Value for %s; label provides %.1f%%",
				statement, req.MinPercentDV, req.Nutrient, percentDV))
	}
	if req.MaxPercentDV != 0 && percentDV > req.MaxPercentDV {
		return e.fail(rule, details,
			fmt.Sprintf("claim %q applies between %.0f%% and %.0f%% of the Daily Value for %s; label provides %.1f%%",
				statement, req.MinPercentDV, req.MaxPercentDV, req.Nutrient, percentDV))
	}
	return e.pass(rule, details,
		fmt.Sprintf("claim %q is supported: %.1f%% of the Daily Value for %s", statement, percentDV, req.Nutrient))
}

func (e *ClaimEvaluator) pass(rule *catalog.ComplianceRule, details map[string]any, msg string) ValidationResult {
	return ValidationResult{
		RuleID:       rule.ID,
		RuleName:     rule.Name,
		RuleType:     rule.RuleType,
		Status:       StatusPass,
		Severity:     rule.Severity,
		CFRReference: rule.CFRReference,
		Message:      msg,
		Details:      details,
	}
}

func (e *ClaimEvaluator) fail(rule *catalog.ComplianceRule, details map[string]any, msg string) ValidationResult {
	return ValidationResult{
		RuleID:       rule.ID,
		RuleName:     rule.Name,
		RuleType:     rule.RuleType,
		Status:       StatusFail,
		Severity:     rule.Severity,
		CFRReference: rule.CFRReference,
		Message:      msg,
		Details:      details,
	}
}

func (e *ClaimEvaluator) unverifiable(rule *catalog.ComplianceRule, statement string, msg string) ValidationResult {
	return ValidationResult{
		RuleID:       rule.ID,
		RuleName:     rule.Name,
		RuleType:     rule.RuleType,
		Status:       StatusWarning,
		Severity:     catalog.SeverityWarning,
		CFRReference: rule.CFRReference,
		Message:      msg,
		Details:      map[string]any{"claim": statement},
	}
}
