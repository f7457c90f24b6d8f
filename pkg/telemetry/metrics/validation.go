package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ceres-hq/ceres/pkg/catalog"
	"ceres-hq/ceres/pkg/engine"
)

// ValidationMetrics tracks label validation outcomes. It implements
// engine.Recorder.
//
// Metrics:
//   - ceres_validations_total: completed evaluations by overall status
//   - ceres_validation_duration_seconds: evaluation duration
//   - ceres_findings_total: findings by rule family and status
type ValidationMetrics struct {
	registry *prometheus.Registry

	validationsTotal   *prometheus.CounterVec
	validationDuration prometheus.Histogram
	findingsTotal      *prometheus.CounterVec
}

// Config contains configuration for validation metrics.
type Config struct {
	// Namespace is the metric name prefix (default "ceres").
	Namespace string
}

// NewValidationMetrics creates and registers validation metrics with
// the provided registry.
func NewValidationMetrics(cfg Config, registry *prometheus.Registry) *ValidationMetrics {
	if cfg.Namespace == "" {
		cfg.Namespace = "ceres"
	}

	vm := &ValidationMetrics{
		registry: registry,

		validationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "validations_total",
				Help:      "Total number of completed label evaluations",
			},
			[]string{"overall_status"},
		),

		validationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "validation_duration_seconds",
				Help:      "Duration of a full label evaluation in seconds",
				// Evaluation is in-memory rule matching, expected well
				// under a millisecond even for large catalogs.
				Buckets: prometheus.ExponentialBuckets(0.000001, 2, 15),
			},
		),

		findingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "findings_total",
				Help:      "Total number of rule findings by family and status",
			},
			[]string{"rule_type", "status"},
		),
	}

	registry.MustRegister(
		vm.validationsTotal,
		vm.validationDuration,
		vm.findingsTotal,
	)

	return vm
}

// ObserveEvaluation records one completed evaluation.
func (vm *ValidationMetrics) ObserveEvaluation(status engine.OverallStatus, duration time.Duration) {
	vm.validationsTotal.WithLabelValues(string(status)).Inc()
	vm.validationDuration.Observe(duration.Seconds())
}

// ObserveFinding records one finding by rule family and status.
func (vm *ValidationMetrics) ObserveFinding(ruleType catalog.RuleType, status engine.Status) {
	vm.findingsTotal.WithLabelValues(string(ruleType), string(status)).Inc()
}

// Handler returns an HTTP handler exposing the registry in Prometheus
// exposition format, for mounting at /metrics.
func (vm *ValidationMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(vm.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
