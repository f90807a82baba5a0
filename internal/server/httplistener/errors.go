package httplistener

import "errors"

var (
	ErrMissingAddress = errors.New("listen address is required")
	ErrMissingHandler = errors.New("MCP handler is required")
)
