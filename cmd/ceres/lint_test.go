package main

import (
	"os"
	"path/filepath"
	"testing"
)

const validCatalogYAML = `rules:
  - id: fmt-tabular
    name: Tabular eligibility
    rule_type: format
    rule_category: required
    cfr_reference: 21 CFR 101.9(d)(11)
    severity: error
    requirements:
      format: tabular
      min_surface_area: 20
      max_surface_area: 40
racc_categories:
  - id: cereal-test
    racc_amount: 40
    racc_unit: g
    category: Cereals
`

const invalidCatalogYAML = `rules:
  - id: fmt-tabular
    name: Tabular eligibility
    rule_type: format
    rule_category: required
    cfr_reference: 21 CFR 101.9(d)(11)
    severity: catastrophic
    requirements:
      format: tabular
`

func writeLintFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	return p
}

func TestRunLintValidFile(t *testing.T) {
	lintFlags.file = writeLintFile(t, validCatalogYAML)

	if err := runLint(lintCmd, nil); err != nil {
		t.Errorf("runLint() with valid file returned error: %v", err)
	}
}

func TestRunLintInvalidFile(t *testing.T) {
	lintFlags.file = writeLintFile(t, invalidCatalogYAML)

	if err := runLint(lintCmd, nil); err == nil {
		t.Error("runLint() with invalid file should return error")
	}
}

func TestRunLintNonexistentFile(t *testing.T) {
	lintFlags.file = filepath.Join(t.TempDir(), "absent.yaml")

	if err := runLint(lintCmd, nil); err == nil {
		t.Error("runLint() with nonexistent file should return error")
	}
}
