package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunasearch/std/v1/observability"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "catalog-search"})

	assert.NotNil(t, m.Registry)
	assert.NotNil(t, m.Server)
	assert.Equal(t, DefaultMetricsAddress, m.Server.Addr)
	assert.NotNil(t, m.operationsTotal)
	assert.NotNil(t, m.operationDuration)
}

func TestObserverRecordsOperations(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "catalog-search"})
	obs := m.Observer()

	obs.ObserveOperation(observability.OperationContext{
		Component: "transport",
		Operation: "GET",
		Duration:  25 * time.Millisecond,
	})
	obs.ObserveOperation(observability.OperationContext{
		Component: "transport",
		Operation: "GET",
		Duration:  30 * time.Millisecond,
	})
	obs.ObserveOperation(observability.OperationContext{
		Component: "tasks",
		Operation: "wait_for_task",
		Duration:  120 * time.Millisecond,
		Error:     errors.New("timeout"),
	})

	assert.InDelta(t, 2.0, testutil.ToFloat64(
		m.operationsTotal.WithLabelValues("transport", "GET", "success")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(
		m.operationsTotal.WithLabelValues("tasks", "wait_for_task", "error")), 1e-9)
}

func TestMetricsExposedOnRegistry(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "catalog-search"})

	m.Observer().ObserveOperation(observability.OperationContext{
		Component: "transport",
		Operation: "POST",
		Duration:  5 * time.Millisecond,
	})

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, fam := range families {
		names[fam.GetName()] = true
	}
	assert.True(t, names["client_operations_total"])
	assert.True(t, names["client_operation_duration_seconds"])
}

func TestRegistriesAreIsolated(t *testing.T) {
	a := NewMetrics(Config{ServiceName: "a"})
	b := NewMetrics(Config{ServiceName: "b"})

	a.Observer().ObserveOperation(observability.OperationContext{
		Component: "transport",
		Operation: "GET",
	})

	assert.InDelta(t, 1.0, testutil.ToFloat64(
		a.operationsTotal.WithLabelValues("transport", "GET", "success")), 1e-9)
	assert.InDelta(t, 0.0, testutil.ToFloat64(
		b.operationsTotal.WithLabelValues("transport", "GET", "success")), 1e-9)
}
