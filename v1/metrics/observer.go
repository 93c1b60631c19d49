package metrics

import (
	"github.com/lunasearch/std/v1/observability"
)

// operationObserver adapts a Metrics instance to the observability.Observer
// interface so that transport and task operations flow into the built-in
// counters and histograms.
type operationObserver struct {
	metrics *Metrics
}

// Observer returns an observability.Observer backed by this Metrics instance.
// Pass it to the transport or client options to record every client
// operation as:
//
//	client_operations_total{component, operation, status}
//	client_operation_duration_seconds{component, operation}
func (m *Metrics) Observer() observability.Observer {
	return &operationObserver{metrics: m}
}

func (o *operationObserver) ObserveOperation(ctx observability.OperationContext) {
	status := "success"
	if ctx.Error != nil {
		status = "error"
	}

	o.metrics.operationsTotal.WithLabelValues(ctx.Component, ctx.Operation, status).Inc()
	o.metrics.operationDuration.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())
}
