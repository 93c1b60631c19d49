package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule defines the Fx module for the logger package.
//
// The module:
//  1. Provides the NewLoggerClient factory to the dependency injection
//     container, making *Logger available to other components
//  2. Invokes RegisterLoggerLifecycle to flush buffered logs on shutdown
//
// Dependencies required by this module:
//   - A logger.Config instance must be available in the container
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: "info", ServiceName: "luna-indexer"}
//	    }),
//	)
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle handles cleanup (sync) of the Zap logger.
// The OnStop hook calls Sync() on the underlying Zap logger so buffered
// entries reach their output destinations before the application exits.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Zap.Sync() // flushes any buffered logs
		},
	})
}
