package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ceres-hq/ceres/pkg/catalog"
	"ceres-hq/ceres/pkg/label"
)

// Recorder receives evaluation telemetry. Implementations live in
// pkg/telemetry/metrics; the engine itself stays free of metric
// backends.
type Recorder interface {
	// ObserveEvaluation records one completed evaluation.
	ObserveEvaluation(status OverallStatus, duration time.Duration)

	// ObserveFinding records one finding by rule family and status.
	ObserveFinding(ruleType catalog.RuleType, status Status)
}

// Validator orchestrates the four rule-family checkers against one
// label record and aggregates their findings into a report. It holds
// only immutable state and is safe for concurrent use.
type Validator struct {
	catalog   *catalog.Catalog
	logger    *slog.Logger
	recorder  Recorder
	now       func() time.Time
	format    *FormatChecker
	serving   *ServingSizeValidator
	nutrients *NutrientChecker
	claims    *ClaimEvaluator
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) { v.logger = logger }
}

// WithRecorder attaches an evaluation telemetry recorder.
func WithRecorder(r Recorder) Option {
	return func(v *Validator) { v.recorder = r }
}

// WithClock overrides the evaluation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// NewValidator creates a validator over an immutable catalog.
func NewValidator(cat *catalog.Catalog, opts ...Option) (*Validator, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	v := &Validator{
		catalog: cat,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With("component", "engine")
	v.format = NewFormatChecker(cat, v.logger)
	v.serving = NewServingSizeValidator(cat, v.logger)
	v.nutrients = NewNutrientChecker(cat, v.logger)
	v.claims = NewClaimEvaluator(cat, v.logger)
	return v, nil
}

// Catalog returns the catalog the validator evaluates against.
func (v *Validator) Catalog() *catalog.Catalog {
	return v.catalog
}

// Evaluate runs all checkers against one label and returns the
// aggregated report. Findings appear in catalog order: format rules,
// then serving size, then mandatory nutrients, then claims. Format
// eligibility runs before the nutrient checks because the nutrient
// list is format specific; an ineligible format does not suppress
// them. The evaluation never partially fails; missing data degrades to
// findings, and the only error is a nil label.
func (v *Validator) Evaluate(ctx context.Context, l *label.LabelData) (*ValidationReport, error) {
	if l == nil {
		return nil, ErrNilLabel
	}
	_ = ctx // evaluation is synchronous and bounded by catalog size

	start := v.now()
	var results []ValidationResult
	results = append(results, v.format.Check(l)...)
	results = append(results, v.serving.Check(l)...)
	results = append(results, v.nutrients.Check(l)...)
	results = append(results, v.claims.Check(l)...)

	report := buildReport(uuid.NewString(), v.catalog.Version(), results, start)

	v.logger.Info("label evaluated",
		"report_id", report.ID,
		"overall_status", report.OverallStatus,
		"findings", len(report.ValidationResults),
		"errors", report.ErrorsCount,
		"warnings", report.WarningsCount,
	)

	if v.recorder != nil {
		v.recorder.ObserveEvaluation(report.OverallStatus, v.now().Sub(start))
		for _, r := range report.ValidationResults {
			v.recorder.ObserveFinding(r.RuleType, r.Status)
		}
	}

	return report, nil
}

// ServingSize exposes the serving-size validator for callers that need
// the advisory RACC match check or the standalone contract.
func (v *Validator) ServingSize() *ServingSizeValidator {
	return v.serving
}

// Formats exposes the format checker for eligibility queries.
func (v *Validator) Formats() *FormatChecker {
	return v.format
}

// Nutrients exposes the mandatory-nutrient checker.
func (v *Validator) Nutrients() *NutrientChecker {
	return v.nutrients
}
