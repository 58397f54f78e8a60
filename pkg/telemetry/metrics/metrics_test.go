package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestValidationMetrics_IgnoreResolved(t *testing.T) {
	registry := prometheus.NewRegistry()
	vm := NewValidationMetrics("test", registry)

	vm.IgnoreResolved("member", "com.acme.Customer#email")
	vm.IgnoreResolved("member", "com.acme.Customer#name")
	vm.IgnoreResolved("class", "com.acme.Customer")

	if got := testutil.ToFloat64(vm.ignoredDecisionsTotal.WithLabelValues("member")); got != 2 {
		t.Errorf("member counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(vm.ignoredDecisionsTotal.WithLabelValues("class")); got != 1 {
		t.Errorf("class counter = %v, want 1", got)
	}
}

func TestValidationMetrics_ViolationRecorded(t *testing.T) {
	registry := prometheus.NewRegistry()
	vm := NewValidationMetrics("test", registry)

	vm.ViolationRecorded("MANDATORY")
	vm.ViolationRecorded("MANDATORY")

	if got := testutil.ToFloat64(vm.violationsTotal.WithLabelValues("MANDATORY")); got != 2 {
		t.Errorf("violations counter = %v, want 2", got)
	}
}

func TestValidationMetrics_RegistersWithRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewValidationMetrics("test", registry)

	// Registering the same metrics twice must fail, proving they were
	// registered the first time.
	defer func() {
		if recover() == nil {
			t.Error("second registration should panic")
		}
	}()
	NewValidationMetrics("test", registry)
}
