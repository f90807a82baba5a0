// Package config loads the finsight configuration from an optional TOML file
// plus environment variables.
package config

import (
	"errors"
	"fmt"
)

// Environment variables consulted when the config file leaves an API key
// empty. Missing keys degrade the related feature instead of failing: no
// exchange rate key means no live rates, no maps key means no map embeds.
const (
	EnvExchangeRateAPIKey = "EXCHANGERATE_API_KEY"
	EnvMapsAPIKey         = "GOOGLE_MAPS_API_KEY"
)

const defaultListenAddress = ":8420"

// Config is the process configuration.
type Config struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	Server       Server       `toml:"server"`
	ExchangeRate ExchangeRate `toml:"exchangerate"`
	Maps         Maps         `toml:"maps"`
}

// Server configures the MCP HTTP listener.
type Server struct {
	Listen string `toml:"listen"`
}

// ExchangeRate configures the ExchangeRate-API client.
type ExchangeRate struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// Maps configures the Google Maps embed integration.
type Maps struct {
	APIKey string `toml:"api_key"`
}

// Default returns a Config with defaults applied and no file loaded.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Server: Server{
			Listen: defaultListenAddress,
		},
	}
}

// Validate checks structural problems only. Absent API keys are not errors;
// they disable their feature.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Listen == "" {
		errs = append(errs, ErrMissingListenAddress)
	}

	switch c.LogFormat {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format: %s", c.LogFormat))
	}

	return errors.Join(errs...)
}

// String summarizes the config with secrets redacted.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config(listen: %s, rates: %s, maps: %s)",
		c.Server.Listen,
		presence(c.ExchangeRate.APIKey),
		presence(c.Maps.APIKey),
	)
}

func presence(key string) string {
	if key == "" {
		return "disabled"
	}
	return "enabled"
}
