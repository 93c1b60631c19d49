// Package observability defines the minimal contract that client packages
// use to report per-operation telemetry without depending on a concrete
// metrics or tracing backend.
//
// Client packages (transport, tasks, ...) call Observer.ObserveOperation
// after every operation; implementations translate the OperationContext into
// whatever backend they serve (Prometheus counters, spans, test recorders).
// A nil observer is always legal and means "no observation".
package observability

import "time"

// OperationContext carries everything an observer needs to classify and
// record a single client operation.
type OperationContext struct {
	// Component identifies the client package emitting the observation,
	// e.g. "transport" or "tasks".
	Component string

	// Operation is the verb performed, e.g. "GET", "PATCH", "wait_for_task".
	Operation string

	// Resource is the primary resource the operation touched, typically the
	// request path or the index UID.
	Resource string

	// SubResource carries additional addressing context, e.g. a task UID or
	// an embedder name. May be empty.
	SubResource string

	// Duration is the wall-clock time the operation took.
	Duration time.Duration

	// Error is the error the operation returned, or nil on success.
	Error error

	// Size is the payload size in bytes where meaningful, otherwise 0.
	Size int64

	// Metadata carries operation-specific extras, e.g. HTTP status codes.
	Metadata map[string]interface{}
}

// Observer receives operation observations from client packages.
//
// Implementations must be safe for concurrent use; clients may emit
// observations from multiple goroutines.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
