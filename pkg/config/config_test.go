package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Catalog.Source != "builtin" {
		t.Errorf("Catalog.Source = %q, want builtin", cfg.Catalog.Source)
	}
	if cfg.Catalog.Driver != "sqlite3" {
		t.Errorf("Catalog.Driver = %q, want sqlite3", cfg.Catalog.Driver)
	}
	if cfg.Telemetry.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Telemetry.Logging.Level)
	}
	if cfg.Telemetry.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Telemetry.Logging.Format)
	}
	if cfg.Telemetry.Metrics.Namespace != "ceres" {
		t.Errorf("Metrics.Namespace = %q, want ceres", cfg.Telemetry.Metrics.Namespace)
	}

	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(DefaultConfig()) error = %v", err)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Catalog.Source = "file"
	cfg.Telemetry.Logging.Level = "debug"

	ApplyDefaults(cfg)

	if cfg.Catalog.Source != "file" {
		t.Errorf("Catalog.Source = %q, want file", cfg.Catalog.Source)
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Telemetry.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		wantFields []string
	}{
		{
			name: "valid file source",
			mutate: func(c *Config) {
				c.Catalog.Source = "file"
				c.Catalog.Path = "/etc/ceres/catalog"
				c.Catalog.Watch = true
			},
		},
		{
			name:   "valid sqlite source",
			mutate: func(c *Config) { c.Catalog.Source = "sqlite"; c.Catalog.Path = "catalog.db" },
		},
		{
			name:   "valid refresh schedule",
			mutate: func(c *Config) { c.Catalog.RefreshSchedule = "0 3 * * *" },
		},
		{
			name:       "unknown source",
			mutate:     func(c *Config) { c.Catalog.Source = "http" },
			wantFields: []string{"catalog.source"},
		},
		{
			name:       "file source without path",
			mutate:     func(c *Config) { c.Catalog.Source = "file" },
			wantFields: []string{"catalog.path"},
		},
		{
			name:       "builtin source with watch",
			mutate:     func(c *Config) { c.Catalog.Watch = true },
			wantFields: []string{"catalog.watch"},
		},
		{
			name: "sqlite with bad driver and watch",
			mutate: func(c *Config) {
				c.Catalog.Source = "sqlite"
				c.Catalog.Path = "catalog.db"
				c.Catalog.Driver = "postgres"
				c.Catalog.Watch = true
			},
			wantFields: []string{"catalog.driver", "catalog.watch"},
		},
		{
			name:       "bad refresh schedule",
			mutate:     func(c *Config) { c.Catalog.RefreshSchedule = "whenever" },
			wantFields: []string{"catalog.refresh_schedule"},
		},
		{
			name:       "bad log level",
			mutate:     func(c *Config) { c.Telemetry.Logging.Level = "trace" },
			wantFields: []string{"telemetry.logging.level"},
		},
		{
			name:       "bad log format",
			mutate:     func(c *Config) { c.Telemetry.Logging.Format = "logfmt" },
			wantFields: []string{"telemetry.logging.format"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want ValidationError", err)
			}
			if len(verr.Errors) != len(tt.wantFields) {
				t.Fatalf("Validate() errors = %v, want %d", verr.Errors, len(tt.wantFields))
			}
			for i, want := range tt.wantFields {
				if verr.Errors[i].Field != want {
					t.Errorf("Errors[%d].Field = %q, want %q", i, verr.Errors[i].Field, want)
				}
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	one := ValidationError{Errors: []FieldError{{Field: "catalog.path", Message: "file source requires a path"}}}
	if got := one.Error(); got != "configuration validation failed: catalog.path: file source requires a path" {
		t.Errorf("Error() = %q", got)
	}

	two := ValidationError{Errors: []FieldError{
		{Field: "catalog.path", Message: "file source requires a path"},
		{Field: "catalog.watch", Message: "watching requires the file source"},
	}}
	msg := two.Error()
	if !strings.Contains(msg, "2 errors") || !strings.Contains(msg, "catalog.watch") {
		t.Errorf("Error() = %q, want both errors listed", msg)
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return p
}

func TestLoadConfig(t *testing.T) {
	p := writeConfigFile(t, `
catalog:
  source: file
  path: /etc/ceres/catalog
  watch: true
telemetry:
  logging:
    level: debug
  metrics:
    enabled: true
`)

	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Catalog.Source != "file" || cfg.Catalog.Path != "/etc/ceres/catalog" || !cfg.Catalog.Watch {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Telemetry.Logging.Level)
	}
	// Defaults still fill unset fields.
	if cfg.Telemetry.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json default", cfg.Telemetry.Logging.Format)
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("Metrics.Enabled = false, want true")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfig() error = nil for missing file")
	}

	p := writeConfigFile(t, "catalog: [\n")
	if _, err := LoadConfig(p); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("LoadConfig() error = %v, want parse failure", err)
	}

	p = writeConfigFile(t, "catalog:\n  source: http\n")
	_, err := LoadConfig(p)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("LoadConfig() error = %v, want ValidationError", err)
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	p := writeConfigFile(t, `
catalog:
  source: builtin
telemetry:
  logging:
    level: info
`)

	t.Setenv("CERES_CATALOG_SOURCE", "file")
	t.Setenv("CERES_CATALOG_PATH", "/var/lib/ceres/catalog")
	t.Setenv("CERES_CATALOG_WATCH", "true")
	t.Setenv("CERES_TELEMETRY_LOGGING_LEVEL", "warn")
	t.Setenv("CERES_TELEMETRY_METRICS_ENABLED", "1")
	t.Setenv("CERES_TELEMETRY_METRICS_LISTEN_ADDRESS", ":9464")

	cfg, err := LoadConfigWithEnvOverrides(p)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() error = %v", err)
	}
	if cfg.Catalog.Source != "file" || cfg.Catalog.Path != "/var/lib/ceres/catalog" || !cfg.Catalog.Watch {
		t.Errorf("Catalog = %+v, want env overrides applied", cfg.Catalog)
	}
	if cfg.Telemetry.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Telemetry.Logging.Level)
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("Metrics.Enabled = false, want true")
	}
	if cfg.Telemetry.Metrics.ListenAddress != ":9464" {
		t.Errorf("Metrics.ListenAddress = %q, want :9464", cfg.Telemetry.Metrics.ListenAddress)
	}
}

func TestLoadConfigWithEnvOverridesRevalidates(t *testing.T) {
	p := writeConfigFile(t, "catalog:\n  source: builtin\n")

	t.Setenv("CERES_CATALOG_SOURCE", "file")
	// No path supplied; the override makes the config invalid.
	_, err := LoadConfigWithEnvOverrides(p)
	if err == nil || !strings.Contains(err.Error(), "after environment overrides") {
		t.Fatalf("LoadConfigWithEnvOverrides() error = %v, want revalidation failure", err)
	}
}
