package client

import (
	"context"

	"go.uber.org/fx"

	"github.com/lunasearch/std/v1/transport"
)

// FXModule wires the SDK entrypoint into Fx.
//
// It provides:
//   - *transport.Config (from environment variables)
//   - *Client           (NewClientWithDI)
//
// and registers a startup health check so an application fails fast when
// the search service is unreachable.
//
// Usage:
//
//	app := fx.New(
//	    client.FXModule,
//	    fx.Invoke(func(c *client.Client) {
//	        // use the client
//	    }),
//	)
var FXModule = fx.Module(
	"client",

	fx.Provide(
		transport.NewConfig, // -> *transport.Config
		NewClientWithDI,     // -> *Client
	),

	fx.Invoke(RegisterClientLifecycle),
)

// ClientParams groups the dependencies needed to create a Client.
type ClientParams struct {
	fx.In

	Config *transport.Config
}

// NewClientWithDI creates a Client using dependency injection.
func NewClientWithDI(params ClientParams) (*Client, error) {
	return New(params.Config)
}

// RegisterClientLifecycle registers a startup hook that verifies the search
// service answers its health endpoint before the application starts serving.
func RegisterClientLifecycle(lc fx.Lifecycle, c *Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return c.Health(ctx)
		},
	})
}
