// Package metrics provides Prometheus metrics for the validation core.
//
// ValidationMetrics implements the observer interfaces of pkg/ignore and
// pkg/results, so wiring it up is a matter of passing it as an option:
//
//	registry := prometheus.NewRegistry()
//	vm := metrics.NewValidationMetrics("beanlint", registry)
//	reg := ignore.NewRegistry(logger, ignore.WithObserver(vm))
//	store := results.NewStore(results.WithObserver(vm))
package metrics
