package catalog

import (
	"fmt"
	"strings"
)

// RuleError reports a malformed catalog entry. Catalog construction is
// the only place in the engine allowed to fail hard, and it does so
// with the offending rule id attached.
type RuleError struct {
	// RuleID is the id of the offending rule ("" when the id itself is
	// missing).
	RuleID string

	// Field is the requirement field that failed validation.
	Field string

	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *RuleError) Error() string {
	parts := []string{"invalid catalog rule"}
	if e.RuleID != "" {
		parts = append(parts, fmt.Sprintf("%q", e.RuleID))
	}
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field %s:", e.Field))
	} else {
		parts[len(parts)-1] += ":"
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, " ")
}

// RACCError reports a malformed RACC table entry.
type RACCError struct {
	// CategoryID is the id of the offending category.
	CategoryID string

	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *RACCError) Error() string {
	return fmt.Sprintf("invalid RACC category %q: %s", e.CategoryID, e.Message)
}

// DuplicateError reports a duplicated rule or RACC category id.
type DuplicateError struct {
	// Kind is "rule" or "racc_category".
	Kind string

	// ID is the duplicated identifier.
	ID string
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s id %q in catalog", e.Kind, e.ID)
}
