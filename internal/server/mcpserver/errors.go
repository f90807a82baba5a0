package mcpserver

import "errors"

var ErrMissingDeps = errors.New("all lookup services are required")
