package source

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	// Both SQLite drivers are supported: mattn/go-sqlite3 (cgo,
	// driver name "sqlite3") and modernc.org/sqlite (pure Go, driver
	// name "sqlite"). The config selects one.
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"ceres-hq/ceres/pkg/catalog"
)

// SQLiteConfig configures the SQLite catalog source.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// Driver selects the SQL driver: "sqlite3" (cgo) or "sqlite"
	// (pure Go). Default: "sqlite3".
	Driver string

	// BusyTimeout is how long to wait when the database is locked.
	// Default: 5 seconds.
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite source configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Driver:      "sqlite3",
		BusyTimeout: 5 * time.Second,
	}
}

// SQLiteSource reads the rule and RACC tables the surrounding
// application seeds and versions. The engine treats them as read-only
// inputs loaded once (or on scheduled refresh).
type SQLiteSource struct {
	db     *sql.DB
	config *SQLiteConfig
	logger *slog.Logger
}

// NewSQLiteSource opens the catalog database.
func NewSQLiteSource(config *SQLiteConfig, logger *slog.Logger) (*SQLiteSource, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}
	if config.Path == "" {
		return nil, errors.New("sqlite catalog source requires a database path")
	}
	if config.Driver == "" {
		config.Driver = "sqlite3"
	}
	if config.Driver != "sqlite3" && config.Driver != "sqlite" {
		return nil, fmt.Errorf("unknown sqlite driver %q (want sqlite3 or sqlite)", config.Driver)
	}
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open(config.Driver, config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database %q: %w", config.Path, err)
	}

	if config.BusyTimeout > 0 {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", config.BusyTimeout.Milliseconds())); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set busy timeout: %w", err)
		}
	}

	return &SQLiteSource{
		db:     db,
		config: config,
		logger: logger.With("component", "catalog.source.sqlite"),
	}, nil
}

// Close releases the database connection.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// Load reads the full rule and RACC tables.
func (s *SQLiteSource) Load(ctx context.Context) (*Dataset, error) {
	dataset := &Dataset{Version: s.loadVersion(ctx)}

	rules, err := s.loadRules(ctx)
	if err != nil {
		return nil, err
	}
	dataset.Rules = rules

	categories, err := s.loadCategories(ctx)
	if err != nil {
		return nil, err
	}
	dataset.Categories = categories

	s.logger.Info("loaded catalog from sqlite",
		"path", s.config.Path,
		"rules", len(dataset.Rules),
		"racc_categories", len(dataset.Categories),
		"version", dataset.Version,
	)
	return dataset, nil
}

// loadVersion reads the dataset version from the catalog_meta table.
// A missing table or row falls back to a timestamped version; the
// surrounding application owns catalog versioning.
func (s *SQLiteSource) loadVersion(ctx context.Context) string {
	var version string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM catalog_meta WHERE key = 'version'`).Scan(&version)
	if err != nil {
		return "sqlite-" + time.Now().UTC().Format("20060102T150405Z")
	}
	return version
}

func (s *SQLiteSource) loadRules(ctx context.Context) ([]*catalog.ComplianceRule, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, rule_type, rule_category, rule_name, description,
		       requirements, cfr_reference, severity, applicable_to, active
		FROM compliance_rules
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query compliance_rules: %w", err)
	}
	defer rows.Close()

	var rules []*catalog.ComplianceRule
	for rows.Next() {
		var (
			rule         catalog.ComplianceRule
			requirements []byte
			applicableTo sql.NullString
			description  sql.NullString
			cfr          sql.NullString
		)
		if err := rows.Scan(&rule.ID, &rule.RuleType, &rule.RuleCategory, &rule.Name,
			&description, &requirements, &cfr, &rule.Severity, &applicableTo, &rule.Active); err != nil {
			return nil, fmt.Errorf("failed to scan compliance rule: %w", err)
		}
		rule.Description = description.String
		rule.CFRReference = cfr.String

		if applicableTo.Valid && applicableTo.String != "" {
			rule.Applicability = &catalog.Applicability{}
			if err := json.Unmarshal([]byte(applicableTo.String), rule.Applicability); err != nil {
				return nil, fmt.Errorf("rule %q: invalid applicable_to: %w", rule.ID, err)
			}
		}

		if err := decodeRequirements(&rule, requirements); err != nil {
			return nil, err
		}
		rules = append(rules, &rule)
	}
	return rules, rows.Err()
}

// decodeRequirements unmarshals the requirements JSON column into the
// variant named by the rule's type.
func decodeRequirements(rule *catalog.ComplianceRule, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("rule %q has no requirements", rule.ID)
	}
	var target any
	switch rule.RuleType {
	case catalog.RuleTypeFormat:
		rule.Format = &catalog.FormatRequirements{}
		target = rule.Format
	case catalog.RuleTypeServingSize:
		rule.ServingSize = &catalog.ServingSizeRequirements{}
		target = rule.ServingSize
	case catalog.RuleTypeMandatoryNutrients:
		rule.MandatoryNutrients = &catalog.NutrientListRequirements{}
		target = rule.MandatoryNutrients
	case catalog.RuleTypeClaim:
		rule.Claim = &catalog.ClaimRequirements{}
		target = rule.Claim
	default:
		return fmt.Errorf("rule %q has unknown rule type %q", rule.ID, rule.RuleType)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("rule %q: invalid requirements: %w", rule.ID, err)
	}
	return nil
}

func (s *SQLiteSource) loadCategories(ctx context.Context) ([]*catalog.RACCCategory, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, racc_amount, racc_unit, category, subcategory,
		       household_measure, label_statement, product_examples, notes
		FROM racc_categories
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query racc_categories: %w", err)
	}
	defer rows.Close()

	var categories []*catalog.RACCCategory
	for rows.Next() {
		var (
			cat         catalog.RACCCategory
			subcategory sql.NullString
			household   sql.NullString
			statement   sql.NullString
			examples    sql.NullString
			notes       sql.NullString
		)
		if err := rows.Scan(&cat.ID, &cat.RACCAmount, &cat.RACCUnit, &cat.Category,
			&subcategory, &household, &statement, &examples, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan RACC category: %w", err)
		}
		cat.Subcategory = subcategory.String
		cat.HouseholdMeasure = household.String
		cat.LabelStatement = statement.String
		cat.Notes = notes.String

		if examples.Valid && examples.String != "" {
			if err := json.Unmarshal([]byte(examples.String), &cat.ProductExamples); err != nil {
				return nil, fmt.Errorf("RACC category %q: invalid product_examples: %w", cat.ID, err)
			}
		}
		categories = append(categories, &cat)
	}
	return categories, rows.Err()
}
