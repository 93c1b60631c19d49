// Package logger provides structured logging for the Luna Search client
// packages.
//
// It wraps Uber's Zap with a small fixed surface (Debug, Info, Warn, Error,
// Fatal) that accepts an optional error and free-form field maps. Every
// client package in this module declares its own local Logger interface with
// exactly these methods; *logger.Logger satisfies all of them, so a single
// instance can be threaded through the whole SDK.
//
// Direct usage:
//
//	import "github.com/lunasearch/std/v1/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       "info",
//		ServiceName: "catalog-search",
//	})
//
//	log.Info("search issued", nil, map[string]interface{}{
//		"index": "movies",
//		"limit": 20,
//	})
//
// With Fx:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: "info", ServiceName: "catalog-search"}
//	    }),
//	)
package logger
