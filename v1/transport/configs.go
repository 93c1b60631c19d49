package transport

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default values for configuration.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
)

// Config holds connection settings for the Luna Search HTTP API.
//
// The configuration is immutable once a Client has been constructed from it;
// base URL and API key are fixed at construction, which keeps the client
// safe for concurrent use.
//
// Example (programmatic):
//
//	cfg := &transport.Config{
//	    BaseURL: "http://localhost:7700",
//	    APIKey:  os.Getenv("LUNA_API_KEY"),
//	    Timeout: 10 * time.Second,
//	}
type Config struct {
	// BaseURL is the root URL of the search service,
	// e.g. "http://localhost:7700". Required.
	BaseURL string `yaml:"base_url" envconfig:"LUNA_URL"`

	// APIKey is the bearer token sent in the Authorization header.
	// Optional: development servers may run without one.
	APIKey string `yaml:"api_key" envconfig:"LUNA_API_KEY"`

	// Timeout is the per-request HTTP timeout. Defaults to 30 seconds.
	Timeout time.Duration `yaml:"timeout" envconfig:"LUNA_HTTP_TIMEOUT"`

	// MaxRetries is the maximum number of retries for idempotent GET
	// requests that fail at the transport level. Mutating requests are
	// never retried. Defaults to 3.
	MaxRetries uint64 `yaml:"max_retries" envconfig:"LUNA_HTTP_MAX_RETRIES"`

	// ClientAgent is appended to the User-Agent header. Optional.
	ClientAgent string `yaml:"client_agent" envconfig:"LUNA_CLIENT_AGENT"`
}

// NewConfig reads configuration from environment variables.
func NewConfig() *Config {
	timeout := DefaultTimeout
	if v := os.Getenv("LUNA_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	return &Config{
		BaseURL:    os.Getenv("LUNA_URL"),
		APIKey:     os.Getenv("LUNA_API_KEY"),
		Timeout:    timeout,
		MaxRetries: DefaultMaxRetries,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("transport: missing LUNA_URL")
	}
	return nil
}
