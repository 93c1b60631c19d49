package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/lunasearch/std/v1/observability"
)

const tracerName = "github.com/lunasearch/std/v1/transport"

// Logger defines the logging operations the transport package needs.
// *logger.Logger from v1/logger satisfies this interface.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Client issues JSON requests against the Luna Search HTTP API.
//
// It holds no mutable shared state beyond the connection configuration fixed
// at construction, so a single Client is safe for concurrent use across
// goroutines. Higher-level packages (tasks, features, embedders, search)
// all share one Client.
type Client struct {
	baseURL    string
	apiKey     string
	agent      string
	maxRetries uint64
	httpClient *http.Client

	logger   Logger
	observer observability.Observer
}

// NewClient constructs a Client from Config. It validates the config and
// normalizes the base URL (trailing slashes are removed).
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("transport: invalid config: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = DefaultMaxRetries
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		agent:      cfg.ClientAgent,
		maxRetries: maxRetries,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// WithLogger attaches a logger and returns the same client for chaining.
func (c *Client) WithLogger(logger Logger) *Client {
	c.logger = logger
	return c
}

// WithObserver attaches an operation observer and returns the same client
// for chaining. See v1/metrics for a Prometheus-backed implementation.
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.observer = observer
	return c
}

// BaseURL returns the normalized base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request and decodes the JSON response into out.
// GETs are idempotent and are retried with exponential backoff, up to the
// configured MaxRetries, when they fail at the transport level. Structured
// service rejections (4xx/5xx bodies) are never retried.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	op := func() error {
		err := c.do(ctx, http.MethodGet, path, nil, out)
		if err == nil {
			return nil
		}
		if _, ok := AsAPIError(err); ok {
			return backoff.Permanent(err)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxInterval = time.Second
	bo.MaxElapsedTime = 0 // bounded by retry count and ctx, not wall clock

	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, c.maxRetries), ctx))
}

// Post issues a POST request with a JSON body and decodes the response into
// out. Never retried: POSTs mutate state and a duplicate could double the
// side effect.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body. Never retried.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Patch issues a PATCH request with a JSON body. The service treats PATCH
// as a merge: only supplied keys change. Never retried.
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE request and decodes the response into out.
// Never retried.
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// do executes a single HTTP round trip: marshal body, set headers, send,
// map non-2xx responses to *APIError, decode the response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		c.observeOperation(method, path, time.Since(start), err)
	}()

	ctx, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("luna.%s %s", method, path))
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	var reader io.Reader
	if body != nil {
		data, merr := json.Marshal(body)
		if merr != nil {
			return fmt.Errorf("transport: encode request: %w", merr)
		}
		reader = bytes.NewReader(data)
	}

	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("transport: build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if c.agent != "" {
		req.Header.Set("User-Agent", c.agent)
	}

	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.target", path),
		attribute.String("request.id", requestID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("request failed", err, map[string]interface{}{
				"method":     method,
				"path":       path,
				"request_id": requestID,
			})
		}
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= 300 {
		return c.apiErrorFromResponse(resp, method, path, requestID)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if derr := json.NewDecoder(resp.Body).Decode(out); derr != nil {
		return fmt.Errorf("transport: decode response for %s %s: %w", method, path, derr)
	}

	return nil
}

// apiErrorFromResponse turns a non-2xx response into an *APIError. Bodies
// that are not the structured error document are kept verbatim in Message.
func (c *Client) apiErrorFromResponse(resp *http.Response, method, path, requestID string) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(resp.Body)
	if err == nil && len(raw) > 0 {
		if jerr := json.Unmarshal(raw, apiErr); jerr != nil || apiErr.Message == "" {
			if apiErr.Message == "" {
				apiErr.Message = strings.TrimSpace(string(raw))
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	if c.logger != nil {
		c.logger.Debug("service rejected request", apiErr, map[string]interface{}{
			"method":     method,
			"path":       path,
			"status":     resp.StatusCode,
			"code":       apiErr.Code,
			"request_id": requestID,
		})
	}

	return apiErr
}
