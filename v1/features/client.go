package features

import (
	"context"

	"github.com/lunasearch/std/v1/transport"
)

const experimentalFeaturesPath = "/experimental-features"

// Client reads and updates the server's experimental feature flags.
//
// The client keeps no cached copy: every Get re-fetches from the server, so
// the returned snapshot is always the server's current truth (flags are
// process-wide server state shared by all clients).
type Client struct {
	http *transport.Client
}

// NewClient constructs a feature flag client on top of a transport client.
func NewClient(http *transport.Client) *Client {
	return &Client{http: http}
}

// Get fetches the current state of all experimental features.
func (c *Client) Get(ctx context.Context) (*Snapshot, error) {
	var snapshot Snapshot
	if err := c.http.Get(ctx, experimentalFeaturesPath, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Update applies a partial flag update and returns the resulting full
// snapshot (read-your-writes: the response reflects the state immediately
// after the update). The update is atomic: either all supplied flags apply
// or the call fails without side effects. Re-applying the same values is a
// no-op and never errors.
func (c *Client) Update(ctx context.Context, flags Flags) (*Snapshot, error) {
	var snapshot Snapshot
	if err := c.http.Patch(ctx, experimentalFeaturesPath, flags, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// EnableMultimodal turns the multimodal feature on. Idempotent.
func (c *Client) EnableMultimodal(ctx context.Context) (*Snapshot, error) {
	return c.Update(ctx, Flags{Multimodal: boolPtr(true)})
}

// DisableMultimodal turns the multimodal feature off. Idempotent.
func (c *Client) DisableMultimodal(ctx context.Context) (*Snapshot, error) {
	return c.Update(ctx, Flags{Multimodal: boolPtr(false)})
}
