package engine

import (
	"time"

	"ceres-hq/ceres/pkg/catalog"
)

// Status is the outcome of one rule evaluation.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusWarning Status = "warning"
)

// OverallStatus is the derived status of a whole report.
type OverallStatus string

const (
	// StatusCompliant means no finding failed at any severity.
	StatusCompliant OverallStatus = "compliant"

	// StatusWarnings means warning-severity findings exist but no
	// errors.
	StatusWarnings OverallStatus = "warnings"

	// StatusErrors means at least one error-severity finding failed.
	StatusErrors OverallStatus = "errors"

	// StatusPending and StatusNotValidated are states of the caller's
	// persisted record before the engine has run. The engine never
	// emits them; they exist so callers share one vocabulary.
	StatusPending      OverallStatus = "pending"
	StatusNotValidated OverallStatus = "not_validated"
)

// ValidationResult is one finding: the outcome of evaluating a single
// rule against a label, traceable to its regulatory citation.
type ValidationResult struct {
	// RuleID identifies the catalog rule that produced the finding.
	RuleID string `json:"rule_id"`

	// RuleName is the rule's human-readable name.
	RuleName string `json:"rule_name"`

	// RuleType is the rule family.
	RuleType catalog.RuleType `json:"rule_type"`

	// Status is the evaluation outcome.
	Status Status `json:"status"`

	// Message explains the outcome.
	Message string `json:"message"`

	// Severity is the weight the finding carries, from the rule.
	Severity catalog.Severity `json:"severity"`

	// CFRReference is the regulatory citation. Non-empty for format,
	// serving size and mandatory nutrient findings; claim findings may
	// omit it only when the claim term is unrecognized.
	CFRReference string `json:"cfr_reference,omitempty"`

	// Details carries structured computation artifacts (computed
	// percentages, suggested values).
	Details map[string]any `json:"details,omitempty"`
}

// ValidationReport is the aggregated outcome of evaluating one label
// against the full catalog.
type ValidationReport struct {
	// ID uniquely identifies this evaluation run.
	ID string `json:"id"`

	// CatalogVersion is the rule dataset the label was evaluated
	// against.
	CatalogVersion string `json:"catalog_version,omitempty"`

	// OverallStatus is derived from the findings: errors if any
	// error-severity finding failed, else warnings if any
	// warning-severity finding failed, else compliant.
	OverallStatus OverallStatus `json:"overall_status"`

	// ValidationResults lists every finding in catalog order.
	ValidationResults []ValidationResult `json:"validation_results"`

	// ErrorsCount is the number of error-severity findings whose
	// status is not pass.
	ErrorsCount int `json:"errors_count"`

	// WarningsCount is the number of warning-severity findings whose
	// status is not pass.
	WarningsCount int `json:"warnings_count"`

	// ValidatedAt is when the evaluation ran.
	ValidatedAt time.Time `json:"validated_at"`
}

// buildReport derives counts and overall status from a finding list.
func buildReport(id, catalogVersion string, results []ValidationResult, at time.Time) *ValidationReport {
	report := &ValidationReport{
		ID:                id,
		CatalogVersion:    catalogVersion,
		ValidationResults: results,
		ValidatedAt:       at,
	}
	for _, r := range results {
		if r.Status == StatusPass {
			continue
		}
		switch r.Severity {
		case catalog.SeverityError:
			report.ErrorsCount++
		case catalog.SeverityWarning:
			report.WarningsCount++
		}
	}
	switch {
	case report.ErrorsCount > 0:
		report.OverallStatus = StatusErrors
	case report.WarningsCount > 0:
		report.OverallStatus = StatusWarnings
	default:
		report.OverallStatus = StatusCompliant
	}
	return report
}

// Blocked reports whether the surrounding application should block the
// label from export or publication. Warnings alone do not block.
func (r *ValidationReport) Blocked() bool {
	return r.ErrorsCount > 0
}
