package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing client metrics.
//
// Each Metrics instance keeps its own isolated registry so that several
// services (or several clients in one process) never collide on metric names.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	Registry *prometheus.Registry

	// Built-in client operation metrics, fed by the Observer returned from
	// Metrics.Observer().
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewMetrics initializes and returns a new Metrics instance.
// It sets up a dedicated Prometheus registry, registers default system
// collectors when enabled, wraps all metrics with a constant `service`
// label, and creates an HTTP server exposing the /metrics endpoint.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "catalog-search",
//	    EnableDefaultCollectors: true,
//	})
//	go m.Server.ListenAndServe()
//
// Access metrics at: http://localhost:9090/metrics
func NewMetrics(cfg Config) *Metrics {
	if cfg.Address == "" {
		cfg.Address = DefaultMetricsAddress
	}

	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically carry the label
	// service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.operationsTotal = createCounterVec(
		"client_operations_total",
		"Total number of client operations issued against the search service",
		[]string{"component", "operation", "status"},
	)
	m.operationDuration = createHistogramVec(
		"client_operation_duration_seconds",
		"Duration of client operations in seconds",
		[]string{"component", "operation"},
		prometheus.DefBuckets,
	)

	wrappedRegistry.MustRegister(
		m.operationsTotal,
		m.operationDuration,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return m
}
