package manager

import "fmt"

// LoadError indicates a catalog load or validation failure. The
// manager keeps the previous catalog active when a reload fails.
type LoadError struct {
	// Source describes where the load was attempted from.
	Source string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load catalog from %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}
