// Package tracer provides distributed tracing for the Luna Search client
// using OpenTelemetry.
//
// It wraps the OpenTelemetry TracerProvider behind a small API: StartSpan,
// RecordErrorOnSpan, SetAttributes, and carrier helpers for crossing service
// boundaries. The transport package creates one span per HTTP round trip, so
// a request issued through the SDK shows up in traces as a child of whatever
// span the caller holds.
//
//	log := logger.NewLoggerClient(logger.Config{Level: "info", ServiceName: "catalog-search"})
//
//	tracerClient := tracer.NewClient(tracer.Config{
//	    ServiceName:  "catalog-search",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	}, log)
//
//	ctx, span := tracerClient.StartSpan(ctx, "reindex-profiles")
//	defer span.End()
package tracer
