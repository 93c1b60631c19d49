package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/lunasearch/std/v1/logger"
)

// FXModule defines the Fx module for the metrics package.
//
// The module:
//  1. Provides the NewMetrics factory function to the dependency injection
//     container, making the Metrics instance available to other components.
//  2. Provides the observability.Observer backed by the Metrics instance.
//  3. Invokes RegisterMetricsLifecycle to manage startup and graceful
//     shutdown of the Prometheus HTTP server.
//
// Dependencies required by this module:
//   - A metrics.Config instance must be available in the container
//   - A *logger.Logger instance for lifecycle logs
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{
//	            Address:                 ":9090",
//	            EnableDefaultCollectors: true,
//	            ServiceName:             "catalog-search",
//	        }
//	    }),
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		(*Metrics).Observer,
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle manages the startup and shutdown lifecycle of the
// Prometheus metrics HTTP server.
//
// The lifecycle hook:
//   - OnStart: launches the Prometheus HTTP server in a background goroutine
//   - OnStop: gracefully shuts down the metrics server
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting Prometheus metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})

				if err := m.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("Error starting Prometheus metrics server", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Prometheus metrics server", nil, nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
