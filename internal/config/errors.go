package config

import "errors"

var (
	ErrFailedToLoadConfig   = errors.New("failed to load config")
	ErrUnsupportedConfigExt = errors.New("unsupported config format")
	ErrMissingListenAddress = errors.New("listen address cannot be empty")
)
