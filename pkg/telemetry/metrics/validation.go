package metrics

import "github.com/prometheus/client_golang/prometheus"

// ValidationMetrics tracks metrics emitted while validation runs consult
// the override registry and report violations.
//
// Metrics:
//   - beanlint_ignored_decisions_total: Override queries resolved to "ignore", by scope
//   - beanlint_violations_total: Violations recorded, by reason
type ValidationMetrics struct {
	// Override queries that resolved to "ignore"
	ignoredDecisionsTotal *prometheus.CounterVec

	// Violations recorded in a violation store
	violationsTotal *prometheus.CounterVec
}

// NewValidationMetrics creates and registers validation metrics with the
// provided registry.
func NewValidationMetrics(namespace string, registry *prometheus.Registry) *ValidationMetrics {
	vm := &ValidationMetrics{
		ignoredDecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ignored_decisions_total",
				Help:      "Total number of override queries resolved to ignore",
			},
			[]string{"scope"},
		),

		violationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "violations_total",
				Help:      "Total number of violations recorded",
			},
			[]string{"reason"},
		),
	}

	registry.MustRegister(
		vm.ignoredDecisionsTotal,
		vm.violationsTotal,
	)

	return vm
}

// IgnoreResolved implements ignore.Observer. The target is deliberately
// not a label; class and member names are unbounded.
func (vm *ValidationMetrics) IgnoreResolved(scope, target string) {
	vm.ignoredDecisionsTotal.WithLabelValues(scope).Inc()
}

// ViolationRecorded implements results.Observer.
func (vm *ValidationMetrics) ViolationRecorded(reason string) {
	vm.violationsTotal.WithLabelValues(reason).Inc()
}
