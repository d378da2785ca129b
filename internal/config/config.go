// Package config loads service configuration from a file and the
// environment via viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full service configuration tree.
type Config struct {
	Server     Server     `mapstructure:"server"`
	Logging    Logging    `mapstructure:"logging"`
	Upstream   Upstream   `mapstructure:"upstream"`
	Residences Residences `mapstructure:"residences"`
}

// Server holds the HTTP listener settings.
type Server struct {
	Port int `mapstructure:"port"`
}

// Logging selects the logger flavor.
type Logging struct {
	Development bool `mapstructure:"development"`
}

// Upstream configures the tibia.com fetcher.
type Upstream struct {
	BaseURL        string `mapstructure:"base_url"`
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Residences tunes residence aggregation.
type Residences struct {
	Concurrency     int    `mapstructure:"concurrency"`
	ColdTownsPolicy string `mapstructure:"cold_towns_policy"`
}

// Load reads configuration from an optional file path, overlaid with
// TIBIA_API_* environment variables, on top of built-in defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TIBIA_API")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("logging.development", false)
	v.SetDefault("upstream.base_url", "https://www.tibia.com/community/")
	v.SetDefault("upstream.user_agent", "")
	v.SetDefault("upstream.timeout_seconds", 30)
	v.SetDefault("residences.concurrency", 10)
	v.SetDefault("residences.cold_towns_policy", "fetch")
}

// Validate rejects values the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Upstream.TimeoutSeconds <= 0 {
		return fmt.Errorf("upstream.timeout_seconds must be positive, got %d", c.Upstream.TimeoutSeconds)
	}
	if c.Residences.Concurrency <= 0 {
		return fmt.Errorf("residences.concurrency must be positive, got %d", c.Residences.Concurrency)
	}
	switch c.Residences.ColdTownsPolicy {
	case "fetch", "empty":
	default:
		return fmt.Errorf("residences.cold_towns_policy must be fetch or empty, got %q", c.Residences.ColdTownsPolicy)
	}
	return nil
}
