// Package metrics exposes Prometheus metrics for the Luna Search client
// packages.
//
// It maintains an isolated Prometheus registry per instance, serves it over
// an HTTP /metrics endpoint, and implements observability.Observer so that
// every operation issued through the transport is recorded as a counter and
// a latency histogram:
//
//	client_operations_total{component, operation, status}
//	client_operation_duration_seconds{component, operation}
//
// Wiring the observer into a client:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:     ":9090",
//	    ServiceName: "catalog-search",
//	})
//	go m.Server.ListenAndServe()
//
//	c, err := client.New(cfg, client.WithObserver(m.Observer()))
//
// Custom metrics can be registered on the same registry via CreateCounter,
// CreateHistogram and CreateGauge.
package metrics
