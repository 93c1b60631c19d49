package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// Common transport errors.
var (
	// ErrTransport is returned (wrapped) when the request never produced a
	// usable HTTP response: connection refused, DNS failure, timeout.
	ErrTransport = errors.New("transport: request failed")

	// ErrUnauthorized is returned (wrapped by APIError) when the service
	// rejects the API key.
	ErrUnauthorized = errors.New("transport: invalid or missing API key")

	// ErrNotFound is returned (wrapped by APIError) for 404 responses.
	ErrNotFound = errors.New("transport: resource not found")
)

// APIError is a structured error body returned by the search service for
// any non-2xx response.
type APIError struct {
	// StatusCode is the HTTP status of the response, not part of the body.
	StatusCode int `json:"-"`

	Message string `json:"message"`
	Code    string `json:"code"`
	Type    string `json:"type"`
	Link    string `json:"link"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("luna api: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("luna api: %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps well-known status codes onto sentinel errors so callers can
// use errors.Is without inspecting status codes themselves.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// AsAPIError extracts an *APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsTransportError checks whether the error is a transport-level failure
// (as opposed to a structured rejection by the service).
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}
