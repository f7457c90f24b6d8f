package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"ceres-hq/ceres/pkg/catalog"
)

// FileSource loads a catalog dataset from YAML files on disk. The path
// can be a single file or a directory; in a directory every .yaml and
// .yml file is loaded and merged.
type FileSource struct {
	path   string
	logger *slog.Logger
}

// NewFileSource creates a file-based catalog source.
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{
		path:   path,
		logger: logger.With("component", "catalog.source.file"),
	}
}

// Path returns the configured file or directory path.
func (s *FileSource) Path() string {
	return s.path
}

// catalogFile is the YAML document shape. Requirements decode lazily
// per rule_type so each rule only carries the variant it names.
type catalogFile struct {
	Version    string                  `yaml:"version"`
	Rules      []fileRule              `yaml:"rules"`
	Categories []*catalog.RACCCategory `yaml:"racc_categories"`
}

type fileRule struct {
	ID           string                 `yaml:"id"`
	Name         string                 `yaml:"name"`
	Description  string                 `yaml:"description"`
	RuleType     catalog.RuleType       `yaml:"rule_type"`
	RuleCategory catalog.RuleCategory   `yaml:"rule_category"`
	CFRReference string                 `yaml:"cfr_reference"`
	Severity     catalog.Severity       `yaml:"severity"`
	ApplicableTo *catalog.Applicability `yaml:"applicable_to"`
	Active       *bool                  `yaml:"active"`
	Requirements yaml.Node              `yaml:"requirements"`
}

// Load reads and merges all catalog files under the configured path.
// The dataset version is a content hash over every loaded file, so any
// edit produces a new version.
func (s *FileSource) Load(ctx context.Context) (*Dataset, error) {
	paths, err := s.collectPaths()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found under %q", s.path)
	}

	hash := sha256.New()
	dataset := &Dataset{}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file %q: %w", p, err)
		}
		hash.Write(data)

		var doc catalogFile
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse catalog file %q: %w", p, err)
		}

		for i := range doc.Rules {
			rule, err := doc.Rules[i].toRule()
			if err != nil {
				return nil, fmt.Errorf("catalog file %q: %w", p, err)
			}
			dataset.Rules = append(dataset.Rules, rule)
		}
		dataset.Categories = append(dataset.Categories, doc.Categories...)
	}

	dataset.Version = hex.EncodeToString(hash.Sum(nil))[:12]

	s.logger.Info("loaded catalog from files",
		"path", s.path,
		"files", len(paths),
		"rules", len(dataset.Rules),
		"racc_categories", len(dataset.Categories),
		"version", dataset.Version,
	)
	return dataset, nil
}

// collectPaths resolves the configured path to a sorted list of YAML
// files. Sorting keeps the content hash stable across walks.
func (s *FileSource) collectPaths() ([]string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalog path %q: %w", s.path, err)
	}
	if !info.IsDir() {
		return []string{s.path}, nil
	}

	var paths []string
	err = filepath.Walk(s.path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if ext := filepath.Ext(p); ext == ".yaml" || ext == ".yml" {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk catalog directory %q: %w", s.path, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// toRule converts a YAML rule entry into a typed compliance rule,
// decoding the requirements node into the variant named by rule_type.
func (r *fileRule) toRule() (*catalog.ComplianceRule, error) {
	rule := &catalog.ComplianceRule{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		RuleType:      r.RuleType,
		RuleCategory:  r.RuleCategory,
		CFRReference:  r.CFRReference,
		Severity:      r.Severity,
		Applicability: r.ApplicableTo,
		Active:        true,
	}
	if r.Active != nil {
		rule.Active = *r.Active
	}

	if r.Requirements.Kind == 0 {
		return nil, fmt.Errorf("rule %q has no requirements", r.ID)
	}

	switch r.RuleType {
	case catalog.RuleTypeFormat:
		rule.Format = &catalog.FormatRequirements{}
		if err := r.Requirements.Decode(rule.Format); err != nil {
			return nil, fmt.Errorf("rule %q: invalid format requirements: %w", r.ID, err)
		}
	case catalog.RuleTypeServingSize:
		rule.ServingSize = &catalog.ServingSizeRequirements{}
		if err := r.Requirements.Decode(rule.ServingSize); err != nil {
			return nil, fmt.Errorf("rule %q: invalid serving size requirements: %w", r.ID, err)
		}
	case catalog.RuleTypeMandatoryNutrients:
		rule.MandatoryNutrients = &catalog.NutrientListRequirements{}
		if err := r.Requirements.Decode(rule.MandatoryNutrients); err != nil {
			return nil, fmt.Errorf("rule %q: invalid nutrient requirements: %w", r.ID, err)
		}
	case catalog.RuleTypeClaim:
		rule.Claim = &catalog.ClaimRequirements{}
		if err := r.Requirements.Decode(rule.Claim); err != nil {
			return nil, fmt.Errorf("rule %q: invalid claim requirements: %w", r.ID, err)
		}
	default:
		return nil, fmt.Errorf("rule %q has unknown rule type %q", r.ID, r.RuleType)
	}

	return rule, nil
}
