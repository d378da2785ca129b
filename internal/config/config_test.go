package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Server.Port)
	require.False(t, cfg.Logging.Development)
	require.Equal(t, "https://www.tibia.com/community/", cfg.Upstream.BaseURL)
	require.Equal(t, 30, cfg.Upstream.TimeoutSeconds)
	require.Equal(t, 10, cfg.Residences.Concurrency)
	require.Equal(t, "fetch", cfg.Residences.ColdTownsPolicy)
}

func TestLoadWithFileOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	configYAML := `
server:
  port: 9090
logging:
  development: true
upstream:
  base_url: http://localhost:8123/community/
  timeout_seconds: 5
residences:
  concurrency: 4
  cold_towns_policy: empty
`
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.True(t, cfg.Logging.Development)
	require.Equal(t, "http://localhost:8123/community/", cfg.Upstream.BaseURL)
	require.Equal(t, 5, cfg.Upstream.TimeoutSeconds)
	require.Equal(t, 4, cfg.Residences.Concurrency)
	require.Equal(t, "empty", cfg.Residences.ColdTownsPolicy)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			Server:     Server{Port: 8080},
			Upstream:   Upstream{TimeoutSeconds: 30},
			Residences: Residences{Concurrency: 10, ColdTownsPolicy: "fetch"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too low", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"zero timeout", func(c *Config) { c.Upstream.TimeoutSeconds = 0 }},
		{"zero concurrency", func(c *Config) { c.Residences.Concurrency = 0 }},
		{"unknown cold towns policy", func(c *Config) { c.Residences.ColdTownsPolicy = "guess" }},
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
