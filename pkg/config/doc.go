// Package config defines the configuration for the ceres validation
// tooling: the catalog source (builtin data, YAML files, or a SQLite
// database), catalog refresh behavior, and telemetry.
//
// Configuration is loaded from a YAML file, filled in with defaults,
// optionally overridden by CERES_SECTION_FIELD environment variables,
// and validated before use. All validation errors are collected and
// reported together.
package config
