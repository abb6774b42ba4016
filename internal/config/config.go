// Package config loads the browser's configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the configuration for the memory browser.
// Environment variables are parsed from the MEMORY_BROWSER_ prefix,
// e.g. MEMORY_BROWSER_HTTP_PORT, MEMORY_BROWSER_BACKEND_URL.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8000"`

	// Backend memory service
	BackendURL     string        `envconfig:"BACKEND_URL" default:"http://localhost:8080"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`

	// Fixed result page size for event/record listings
	MaxResults int `envconfig:"MAX_RESULTS" default:"50"`

	// Startup reachability probe of the backend
	StartupProbe        bool          `envconfig:"STARTUP_PROBE" default:"true"`
	StartupProbeTimeout time.Duration `envconfig:"STARTUP_PROBE_TIMEOUT" default:"30s"`

	// Logging
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	ConsoleLogs bool   `envconfig:"CONSOLE_LOGS" default:"false"`
}

// ResolveDefaults validates the loaded configuration.
func (c *Config) ResolveDefaults() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}
	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid BACKEND_URL: %q", c.BackendURL)
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("invalid MAX_RESULTS: %d", c.MaxResults)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("invalid REQUEST_TIMEOUT: %s", c.RequestTimeout)
	}
	return nil
}

// New creates a Config from environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("MEMORY_BROWSER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
