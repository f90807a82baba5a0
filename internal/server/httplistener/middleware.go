package httplistener

import (
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// accessLog logs one line per request after the rest of the chain has run.
// Each request gets a UUIDv6 so log lines from concurrent MCP sessions can be
// correlated.
func accessLog(logger *slog.Logger) httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		requestID := uuid.Must(uuid.NewV6())
		start := time.Now()

		rp.Next()

		logger.Info("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rp.Writer().Status(),
			"bytes", rp.Writer().Size(),
			"duration", time.Since(start),
		)
	}
}
