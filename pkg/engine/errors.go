package engine

import "errors"

var (
	// ErrNilLabel is returned when Evaluate receives a nil label.
	ErrNilLabel = errors.New("label data cannot be nil")

	// ErrNilCatalog is returned when a validator is constructed without
	// a catalog.
	ErrNilCatalog = errors.New("catalog cannot be nil")
)
