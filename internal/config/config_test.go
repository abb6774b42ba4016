package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.HTTPPort)
	assert.Equal(t, "http://localhost:8080", cfg.BackendURL)
	assert.Equal(t, 50, cfg.MaxResults)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.StartupProbe)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.ConsoleLogs)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MEMORY_BROWSER_HTTP_PORT", "9000")
	t.Setenv("MEMORY_BROWSER_BACKEND_URL", "http://backend:8080")
	t.Setenv("MEMORY_BROWSER_MAX_RESULTS", "25")
	t.Setenv("MEMORY_BROWSER_LOG_LEVEL", "debug")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, "http://backend:8080", cfg.BackendURL)
	assert.Equal(t, 25, cfg.MaxResults)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestResolveDefaultsRejectsInvalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.HTTPPort = -1 }},
		{"bad backend url", func(c *Config) { c.BackendURL = "not a url" }},
		{"bad max results", func(c *Config) { c.MaxResults = 0 }},
		{"bad timeout", func(c *Config) { c.RequestTimeout = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{
				HTTPPort:       8000,
				BackendURL:     "http://localhost:8080",
				MaxResults:     50,
				RequestTimeout: 30 * time.Second,
			}
			tc.mutate(&cfg)
			assert.Error(t, cfg.ResolveDefaults())
		})
	}
}
