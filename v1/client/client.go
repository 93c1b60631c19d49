package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/lunasearch/std/v1/features"
	"github.com/lunasearch/std/v1/observability"
	"github.com/lunasearch/std/v1/tasks"
	"github.com/lunasearch/std/v1/transport"
)

// Logger defines the logging operations the client package needs.
// *logger.Logger from v1/logger satisfies this interface.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Client is the public entrypoint of the Luna Search SDK. It bundles the
// shared transport with the feature flag client and the task tracker, and
// hands out per-index handles via Index.
//
// A Client is safe for concurrent use: it holds no mutable state beyond the
// connection configuration fixed at construction.
type Client struct {
	http     *transport.Client
	features *features.Client
	tracker  *tasks.Tracker
	logger   Logger
}

// Option configures optional Client collaborators.
type Option func(*Client)

// WithLogger routes client and transport logs through the given logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.http.WithLogger(logger)
	}
}

// WithObserver records every transport and tracker operation on the given
// observer. See v1/metrics for a Prometheus-backed implementation.
func WithObserver(observer observability.Observer) Option {
	return func(c *Client) {
		c.http.WithObserver(observer)
		c.tracker.WithObserver(observer)
	}
}

// New constructs a Client from Config. It validates the config and wires
// the shared transport into the feature flag client and the task tracker.
func New(cfg *transport.Config, opts ...Option) (*Client, error) {
	http, err := transport.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}

	c := &Client{
		http:     http,
		features: features.NewClient(http),
		tracker:  tasks.NewTracker(http),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// ExperimentalFeatures returns the feature flag client.
func (c *Client) ExperimentalFeatures() *features.Client {
	return c.features
}

// Tasks returns the task tracker.
func (c *Client) Tasks() *tasks.Tracker {
	return c.tracker
}

// Index returns a handle on one index. The handle is cheap: no network
// round trip happens until one of its methods is called, and the index does
// not need to exist yet (the first mutation creates it implicitly).
func (c *Client) Index(uid string) *Index {
	return newIndex(c, uid)
}

// WaitForTask polls a task until it reaches a terminal state. Shorthand for
// Tasks().WaitForTask; see the tasks package for the full contract.
func (c *Client) WaitForTask(ctx context.Context, taskUID int64, opts ...tasks.WaitOption) (*tasks.Task, error) {
	return c.tracker.WaitForTask(ctx, taskUID, opts...)
}

// Health checks that the service is up and answering.
func (c *Client) Health(ctx context.Context) error {
	var health struct {
		Status string `json:"status"`
	}
	if err := c.http.Get(ctx, "/health", &health); err != nil {
		return err
	}
	if health.Status != "available" {
		return fmt.Errorf("client: service unhealthy: status %q", health.Status)
	}
	return nil
}

// Version reports the server build.
func (c *Client) Version(ctx context.Context) (*Version, error) {
	var version Version
	if err := c.http.Get(ctx, "/version", &version); err != nil {
		return nil, err
	}
	return &version, nil
}

// CreateIndex creates an index. primaryKey may be empty to let the service
// infer it from the first documents. Asynchronous: wait on the returned
// task before using the index in tests.
func (c *Client) CreateIndex(ctx context.Context, uid, primaryKey string) (*tasks.TaskInfo, error) {
	body := map[string]interface{}{
		"uid": uid,
	}
	if primaryKey != "" {
		body["primaryKey"] = primaryKey
	}

	var info tasks.TaskInfo
	if err := c.http.Post(ctx, "/indexes", body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// DeleteIndex deletes an index and all its documents. Asynchronous.
func (c *Client) DeleteIndex(ctx context.Context, uid string) (*tasks.TaskInfo, error) {
	var info tasks.TaskInfo
	if err := c.http.Delete(ctx, "/indexes/"+url.PathEscape(uid), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Version is the server build information reported by /version.
type Version struct {
	CommitSha  string `json:"commitSha"`
	CommitDate string `json:"commitDate"`
	PkgVersion string `json:"pkgVersion"`
}
