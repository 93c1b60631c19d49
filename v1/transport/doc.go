// Package transport implements the HTTP JSON layer shared by every Luna
// Search client package.
//
// The Client exposes one method per HTTP verb (Get, Post, Put, Patch,
// Delete), each taking a context, a path relative to the base URL, an
// optional request body, and an optional response target. Authentication is
// a bearer API key fixed at construction. Every request carries a generated
// X-Request-Id header and is traced as an OpenTelemetry span.
//
// Error model:
//   - Structured service rejections (non-2xx with an error document) are
//     returned as *APIError; errors.Is works against ErrUnauthorized and
//     ErrNotFound via APIError.Unwrap.
//   - Failures below HTTP (connection refused, timeout) wrap ErrTransport.
//
// Retry policy: idempotent GETs are retried with exponential backoff up to
// Config.MaxRetries on transport-level failures only. Mutating verbs are
// never retried, so a flaky network can never duplicate a side effect.
//
// Usage:
//
//	c, err := transport.NewClient(&transport.Config{
//	    BaseURL: "http://localhost:7700",
//	    APIKey:  os.Getenv("LUNA_API_KEY"),
//	})
//	if err != nil {
//	    return err
//	}
//
//	var health struct {
//	    Status string `json:"status"`
//	}
//	err = c.Get(ctx, "/health", &health)
package transport
