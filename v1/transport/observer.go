package transport

import (
	"time"

	"github.com/lunasearch/std/v1/observability"
)

// observeOperation notifies the observer about a completed round trip if one
// is configured.
//
// Notes:
//   - operation: the HTTP method
//   - resource: the request path relative to the base URL
func (c *Client) observeOperation(operation, resource string, duration time.Duration, err error) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component: "transport",
		Operation: operation,
		Resource:  resource,
		Duration:  duration,
		Error:     err,
	})
}
