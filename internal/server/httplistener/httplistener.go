// Package httplistener serves the MCP endpoint over HTTP using a
// go-supervisor httpserver runnable.
package httplistener

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

// MCPPath is the route prefix the streamable MCP handler is mounted on.
const MCPPath = "/mcp"

// HealthPath answers liveness probes with a plain 200.
const HealthPath = "/healthz"

const (
	defaultReadTimeout  = 30 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	defaultDrainTimeout = 10 * time.Second
)

// Listener wraps an httpserver.Runner configured with the MCP route and a
// health probe.
type Listener struct {
	address string
	runner  *httpserver.Runner
	logger  *slog.Logger
}

// Interface guards
var (
	_ supervisor.Runnable   = (*Listener)(nil)
	_ supervisor.Reloadable = (*Listener)(nil)
	_ supervisor.Stateable  = (*Listener)(nil)
)

// New creates an HTTP listener serving the given MCP handler at MCPPath.
func New(address string, mcpHandler http.Handler, logger *slog.Logger) (*Listener, error) {
	if address == "" {
		return nil, ErrMissingAddress
	}
	if mcpHandler == nil {
		return nil, ErrMissingHandler
	}
	if logger == nil {
		logger = slog.Default().WithGroup("httplistener")
	}

	mcpRoute, err := httpserver.NewRouteFromHandlerFunc(
		"mcp",
		MCPPath,
		mcpHandler.ServeHTTP,
		accessLog(logger.WithGroup("http")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP route: %w", err)
	}

	healthRoute, err := httpserver.NewRouteFromHandlerFunc(
		"health",
		HealthPath,
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, "ok")
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health route: %w", err)
	}

	routes := []httpserver.Route{*mcpRoute, *healthRoute}

	configCallback := func() (*httpserver.Config, error) {
		return httpserver.NewConfig(
			address,
			routes,
			httpserver.WithReadTimeout(defaultReadTimeout),
			httpserver.WithWriteTimeout(defaultWriteTimeout),
			httpserver.WithIdleTimeout(defaultIdleTimeout),
			httpserver.WithDrainTimeout(defaultDrainTimeout),
		)
	}

	runner, err := httpserver.NewRunner(
		httpserver.WithConfigCallback(configCallback),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server runner: %w", err)
	}

	return &Listener{
		address: address,
		runner:  runner,
		logger:  logger,
	}, nil
}

// String returns a unique identifier for this listener
func (l *Listener) String() string {
	return fmt.Sprintf("HTTPListener[%s]", l.address)
}

// Run starts the HTTP listener and blocks until the context is canceled.
func (l *Listener) Run(ctx context.Context) error {
	l.logger.Info("Starting HTTP listener", "address", l.address, "mcp_path", MCPPath)
	return l.runner.Run(ctx)
}

// Stop signals the listener to shut down.
func (l *Listener) Stop() {
	l.logger.Debug("Stopping HTTP listener", "address", l.address)
	l.runner.Stop()
}

// Reload re-applies the listener configuration.
func (l *Listener) Reload() {
	l.runner.Reload()
}

// GetState returns the current state of the underlying runner.
func (l *Listener) GetState() string {
	return l.runner.GetState()
}

// GetStateChan returns a channel emitting state transitions.
func (l *Listener) GetStateChan(ctx context.Context) <-chan string {
	return l.runner.GetStateChan(ctx)
}

// IsRunning reports whether the underlying server is accepting requests.
func (l *Listener) IsRunning() bool {
	return l.runner.IsRunning()
}
