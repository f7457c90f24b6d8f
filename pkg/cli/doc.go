// Package cli provides shared helpers for the ceres command-line
// tool: typed command errors and output formatting (text and JSON).
package cli
