package httplistener

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/finsight-io/finsight/internal/aggregate"
	"github.com/finsight-io/finsight/internal/currency"
	"github.com/finsight-io/finsight/internal/maps"
	"github.com/finsight-io/finsight/internal/markets"
	"github.com/finsight-io/finsight/internal/server/mcpserver"
	"github.com/finsight-io/finsight/internal/testutil"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noQuotes struct{}

func (noQuotes) History(context.Context, string) (*markets.History, error) {
	return &markets.History{}, nil
}

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.Default()
	server, err := mcpserver.Compile(mcpserver.Deps{
		Currency: currency.NewService(currency.NewClient(""), logger),
		Markets:  markets.NewService(noQuotes{}, logger),
		Maps:     maps.NewService(""),
	}, "finsight", "test")
	require.NoError(t, err)
	return mcpserver.Handler(server)
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	t.Run("missing address", func(t *testing.T) {
		_, err := New("", testHandler(t), nil)
		require.ErrorIs(t, err, ErrMissingAddress)
	})

	t.Run("missing handler", func(t *testing.T) {
		_, err := New("localhost:0", nil, nil)
		require.ErrorIs(t, err, ErrMissingHandler)
	})

	t.Run("valid", func(t *testing.T) {
		listener, err := New("localhost:8420", testHandler(t), nil)
		require.NoError(t, err)
		assert.Equal(t, "HTTPListener[localhost:8420]", listener.String())
	})
}

func TestListenerServesMCP(t *testing.T) {
	addr := testutil.GetRandomListeningPort(t)
	listener, err := New(addr, testHandler(t), slog.Default())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- listener.Run(ctx)
	}()

	baseURL := fmt.Sprintf("http://%s", addr)

	// wait for the listener to come up
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + HealthPath)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, &mcpsdk.StreamableClientTransport{
		Endpoint: baseURL + MCPPath,
	}, nil)
	require.NoError(t, err)
	defer session.Close()

	listed, err := session.ListTools(ctx, nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range listed.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		aggregate.ToolCurrencyInfo,
		aggregate.ToolStockMarketInfo,
		aggregate.ToolExchangeLocation,
	}, names)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not shut down")
	}
}

func TestAccessLogMiddleware(t *testing.T) {
	// The middleware contract only needs a RequestProcessor, which is easier
	// to exercise through a full route than to construct directly.
	addr := testutil.GetRandomListeningPort(t)

	var logBuf testutil.ThreadSafeBuffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	listener, err := New(addr, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	go func() { _ = listener.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s%s", addr, MCPPath))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	require.Eventually(t, func() bool {
		out := logBuf.String()
		return strings.Contains(out, "request_id=") &&
			strings.Contains(out, "method=GET") &&
			strings.Contains(out, "path="+MCPPath)
	}, 2*time.Second, 50*time.Millisecond)
}
