// Package metrics exposes Prometheus metrics for label validation. It
// provides a ValidationMetrics collector that satisfies the engine's
// Recorder interface, so the engine itself stays free of any metrics
// backend.
package metrics
