package tasks

import (
	"go.uber.org/fx"
)

// FXModule wires the task tracker into Fx.
//
// It provides:
//   - *Tracker (NewTracker)
//
// Dependencies required by this module:
//   - A *transport.Client instance must be available in the container
//     (see transport.FXModule)
var FXModule = fx.Module(
	"tasks",

	fx.Provide(
		NewTracker, // -> *Tracker
	),
)
