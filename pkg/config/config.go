package config

// Config is the root configuration for the ceres validation tooling.
type Config struct {
	// Catalog configures where compliance rules and RACC data come
	// from and how they are refreshed.
	Catalog CatalogConfig `yaml:"catalog"`

	// Telemetry configures logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// CatalogConfig configures the rule catalog source and refresh.
type CatalogConfig struct {
	// Source selects the catalog source: "builtin", "file", or
	// "sqlite".
	Source string `yaml:"source"`

	// Path is the catalog location: a YAML file or directory for the
	// file source, a database file for the sqlite source. Unused by
	// the builtin source.
	Path string `yaml:"path"`

	// Driver selects the SQLite driver for the sqlite source:
	// "sqlite3" (cgo) or "sqlite" (pure Go).
	Driver string `yaml:"driver"`

	// Watch enables filesystem watching for the file source. Changed
	// catalog files trigger a validated reload.
	Watch bool `yaml:"watch"`

	// RefreshSchedule is an optional cron expression for periodic
	// catalog refresh (e.g. "0 3 * * *"). Empty disables it.
	RefreshSchedule string `yaml:"refresh_schedule"`
}

// TelemetryConfig configures observability.
type TelemetryConfig struct {
	// Logging configures structured logging.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures Prometheus metrics.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig configures structured logging output.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn",
	// "error".
	Level string `yaml:"level"`

	// Format is the output format: "json" or "text".
	Format string `yaml:"format"`

	// AddSource includes file and line number in log records.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig configures Prometheus metrics collection.
type MetricsConfig struct {
	// Enabled turns metric collection on.
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	Namespace string `yaml:"namespace"`

	// ListenAddress is the address long-running commands serve the
	// Prometheus /metrics endpoint on (e.g. ":9464"). Empty disables
	// the endpoint; metrics are still collected in-process.
	ListenAddress string `yaml:"listen_address"`
}
