// Package logging configures structured logging for the validation
// engine. It builds a log/slog logger from configuration: level,
// output format (json or text), source annotation, and writer.
package logging
