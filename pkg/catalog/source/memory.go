package source

import (
	"context"

	"ceres-hq/ceres/pkg/catalog"
)

// Dataset is one loaded rule catalog and RACC table, prior to
// validation.
type Dataset struct {
	// Version identifies the dataset revision (file hash, table
	// version, or the builtin constant).
	Version string

	// Rules are the compliance rules.
	Rules []*catalog.ComplianceRule

	// Categories are the RACC reference entries.
	Categories []*catalog.RACCCategory
}

// Build validates the dataset and constructs an immutable catalog.
func (d *Dataset) Build() (*catalog.Catalog, error) {
	return catalog.New(d.Version, d.Rules, d.Categories)
}

// Source loads a catalog dataset from some backing store.
type Source interface {
	// Load reads the full dataset. Implementations must not retain
	// references to the returned slices.
	Load(ctx context.Context) (*Dataset, error)
}

// MemorySource serves an in-memory dataset. It backs the compiled-in
// catalog and is handy in tests.
type MemorySource struct {
	dataset Dataset
}

// NewMemorySource creates a source over the given dataset.
func NewMemorySource(version string, rules []*catalog.ComplianceRule, categories []*catalog.RACCCategory) *MemorySource {
	return &MemorySource{dataset: Dataset{
		Version:    version,
		Rules:      rules,
		Categories: categories,
	}}
}

// Builtin returns a source over the compiled-in regulation dataset.
func Builtin() *MemorySource {
	return NewMemorySource(catalog.BuiltinVersion, catalog.Builtin(), catalog.BuiltinRACC())
}

// Load returns a copy of the in-memory dataset.
func (s *MemorySource) Load(ctx context.Context) (*Dataset, error) {
	rules := make([]*catalog.ComplianceRule, len(s.dataset.Rules))
	copy(rules, s.dataset.Rules)
	categories := make([]*catalog.RACCCategory, len(s.dataset.Categories))
	copy(categories, s.dataset.Categories)
	return &Dataset{
		Version:    s.dataset.Version,
		Rules:      rules,
		Categories: categories,
	}, nil
}
