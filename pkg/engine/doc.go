// Package engine evaluates packaged-food nutrition labels against the
// compliance rule catalog and produces a traceable validation report.
//
// The engine is a pure, synchronous, stateless computation: one call to
// Validator.Evaluate takes one label record and returns one report. The
// catalog is injected at construction, never mutated, and may be shared
// across arbitrarily many concurrent evaluations.
//
// # Evaluation flow
//
//	LabelData
//	    |
//	Validator.Evaluate
//	    |
//	format eligibility  ->  serving size / RACC  ->  mandatory nutrients  ->  claims
//	    |
//	ValidationReport (findings in catalog order, counts, overall status)
//
// Format eligibility runs first because the mandatory-nutrient list is
// format specific; the families are otherwise independent. No single
// bad label ever aborts an evaluation: configuration problems (unknown
// RACC category, unknown claim term) and data-quality problems (missing
// nutrient values) surface as findings in the report. Only catalog
// construction is allowed to fail hard.
package engine
