package transport

import (
	"go.uber.org/fx"
)

// FXModule wires the transport client into Fx.
//
// It provides:
//   - *Config  (NewConfig, from environment variables)
//   - *Client  (NewClient)
//
// Applications that configure the client programmatically should provide
// their own *Config instead of relying on NewConfig:
//
//	app := fx.New(
//	    transport.FXModule,
//	    fx.Replace(&transport.Config{
//	        BaseURL: "http://localhost:7700",
//	        APIKey:  "masterKey",
//	    }),
//	)
var FXModule = fx.Module(
	"transport",

	fx.Provide(
		NewConfig, // -> *Config
		NewClient, // -> *Client
	),
)
