package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific
// configuration field.
type FieldError struct {
	// Field is the dotted path to the field (e.g. "catalog.source").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects all validation errors found in a
// configuration.
type ValidationError struct {
	// Errors contains all field errors.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate checks the whole configuration and returns a
// ValidationError when any rule fails. All errors are collected, not
// just the first.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateCatalog(&cfg.Catalog)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateCatalog(cfg *CatalogConfig) []FieldError {
	var errs []FieldError

	switch cfg.Source {
	case "builtin":
		if cfg.Watch {
			errs = append(errs, FieldError{
				Field:   "catalog.watch",
				Message: "watching requires the file source",
			})
		}
	case "file":
		if cfg.Path == "" {
			errs = append(errs, FieldError{
				Field:   "catalog.path",
				Message: "file source requires a path",
			})
		}
	case "sqlite":
		if cfg.Path == "" {
			errs = append(errs, FieldError{
				Field:   "catalog.path",
				Message: "sqlite source requires a database path",
			})
		}
		if cfg.Driver != "sqlite3" && cfg.Driver != "sqlite" {
			errs = append(errs, FieldError{
				Field:   "catalog.driver",
				Message: fmt.Sprintf("unknown driver %q (want sqlite3 or sqlite)", cfg.Driver),
			})
		}
		if cfg.Watch {
			errs = append(errs, FieldError{
				Field:   "catalog.watch",
				Message: "watching requires the file source",
			})
		}
	default:
		errs = append(errs, FieldError{
			Field:   "catalog.source",
			Message: fmt.Sprintf("unknown source %q (want builtin, file, or sqlite)", cfg.Source),
		})
	}

	if cfg.RefreshSchedule != "" {
		if _, err := cron.ParseStandard(cfg.RefreshSchedule); err != nil {
			errs = append(errs, FieldError{
				Field:   "catalog.refresh_schedule",
				Message: fmt.Sprintf("invalid cron expression: %v", err),
			})
		}
	}

	return errs
}

func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("unknown level %q (want debug, info, warn, or error)", cfg.Logging.Level),
		})
	}

	switch cfg.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("unknown format %q (want json or text)", cfg.Logging.Format),
		})
	}

	return errs
}
