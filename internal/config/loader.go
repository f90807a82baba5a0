package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/finsight-io/finsight/internal/interpolation"
	"github.com/pelletier/go-toml/v2"
)

// NewConfig loads configuration from a TOML file when path is non-empty,
// otherwise starts from defaults. String values support ${ENV_VAR} and
// ${ENV_VAR:default} interpolation. API keys left empty by the file are
// filled from the well-known environment variables.
func NewConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if ext := filepath.Ext(path); ext != ".toml" {
			return nil, fmt.Errorf("%w: %s, only .toml is supported", ErrUnsupportedConfigExt, ext)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
		}

		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
		}
	}

	if err := cfg.interpolate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// interpolate expands environment references in every string field that may
// carry them.
func (c *Config) interpolate() error {
	fields := []*string{
		&c.LogLevel,
		&c.LogFormat,
		&c.Server.Listen,
		&c.ExchangeRate.APIKey,
		&c.ExchangeRate.BaseURL,
		&c.Maps.APIKey,
	}

	for _, field := range fields {
		expanded, err := interpolation.ExpandEnvVars(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}

	return nil
}

// applyEnv fills API keys from the environment when the file left them empty.
func (c *Config) applyEnv() {
	if c.ExchangeRate.APIKey == "" {
		c.ExchangeRate.APIKey = os.Getenv(EnvExchangeRateAPIKey)
	}
	if c.Maps.APIKey == "" {
		c.Maps.APIKey = os.Getenv(EnvMapsAPIKey)
	}
}
