package config

// Default values applied to fields the file leaves unset.
const (
	// DefaultCatalogSource is the catalog source used when none is
	// configured. The builtin dataset needs no external files.
	DefaultCatalogSource = "builtin"

	// DefaultSQLiteDriver is the SQLite driver used when none is
	// configured.
	DefaultSQLiteDriver = "sqlite3"

	// DefaultLogLevel is the minimum log level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the log output format.
	DefaultLogFormat = "json"

	// DefaultMetricsNamespace is the Prometheus metric name prefix.
	DefaultMetricsNamespace = "ceres"
)

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in default values for unset fields. Explicitly
// configured values are left alone.
func ApplyDefaults(cfg *Config) {
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = DefaultCatalogSource
	}
	if cfg.Catalog.Driver == "" {
		cfg.Catalog.Driver = DefaultSQLiteDriver
	}
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
}
