package features

import (
	"go.uber.org/fx"
)

// FXModule wires the feature flag client into Fx.
//
// Dependencies required by this module:
//   - A *transport.Client instance must be available in the container
var FXModule = fx.Module(
	"features",

	fx.Provide(
		NewClient, // -> *Client
	),
)
