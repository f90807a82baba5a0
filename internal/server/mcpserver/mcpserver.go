// Package mcpserver exposes the financial lookups as MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/finsight-io/finsight/internal/aggregate"
	"github.com/finsight-io/finsight/internal/currency"
	"github.com/finsight-io/finsight/internal/maps"
	"github.com/finsight-io/finsight/internal/markets"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Deps are the lookup services behind the tool surface.
type Deps struct {
	Currency *currency.Service
	Markets  *markets.Service
	Maps     *maps.Service
}

type countryArgs struct {
	CountryName string `json:"country_name" jsonschema:"Name of the country (e.g., 'Japan', 'India', 'United States')"`
}

type exchangeArgs struct {
	ExchangeName string `json:"exchange_name" jsonschema:"Name of the stock exchange (e.g., 'Tokyo Stock Exchange', 'New York Stock Exchange')"`
}

// locationResult is the JSON payload of the get_exchange_location tool.
type locationResult struct {
	Exchange  string  `json:"exchange"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	MapURL    string  `json:"map_url,omitempty"`
	MapHTML   string  `json:"map_html,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// Compile builds the MCP server with the three financial tools registered.
// Lookup failures become IsError tool results, never protocol errors.
func Compile(deps Deps, name, version string) (*mcpsdk.Server, error) {
	if deps.Currency == nil || deps.Markets == nil || deps.Maps == nil {
		return nil, ErrMissingDeps
	}

	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    name,
		Version: version,
	}, nil)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        aggregate.ToolCurrencyInfo,
		Description: "Get currency and exchange rate information for a country. Returns currency name, code, and real-time exchange rates to USD, EUR, GBP, and INR.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, args countryArgs) (*mcpsdk.CallToolResult, any, error) {
		rates, err := deps.Currency.RatesFor(ctx, args.CountryName)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return textResult(currency.FormatReport(rates)), nil, nil
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        aggregate.ToolStockMarketInfo,
		Description: "Get stock market information for a country including exchanges, major indices, and current index values.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, args countryArgs) (*mcpsdk.CallToolResult, any, error) {
		report, err := deps.Markets.CompleteInfo(ctx, args.CountryName)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return textResult(markets.FormatReport(report)), nil, nil
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        aggregate.ToolExchangeLocation,
		Description: "Get the location and maps embed URL for a stock exchange headquarters.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, args exchangeArgs) (*mcpsdk.CallToolResult, any, error) {
		info, err := deps.Maps.LocationInfo(args.ExchangeName)
		payload := locationResult{Exchange: args.ExchangeName}
		if info != nil {
			payload = locationResult{
				Exchange:  info.Exchange,
				Address:   info.Address,
				Latitude:  info.Latitude,
				Longitude: info.Longitude,
				MapURL:    info.MapURL,
				MapHTML:   info.MapHTML,
			}
		}

		isError := false
		if err != nil {
			payload.Error = err.Error()
			isError = true
		}

		body, merr := json.Marshal(payload)
		if merr != nil {
			return errorResult(merr), nil, nil
		}

		result := textResult(string(body))
		result.IsError = isError
		return result, nil, nil
	})

	return server, nil
}

// Handler wraps the compiled server in the SDK's streamable HTTP handler.
func Handler(server *mcpsdk.Server) http.Handler {
	return mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server {
		return server
	}, nil)
}

// ServeStdio runs the compiled server over stdin/stdout until the context is
// canceled or the client disconnects.
func ServeStdio(ctx context.Context, server *mcpsdk.Server) error {
	return server.Run(ctx, &mcpsdk.StdioTransport{})
}

func textResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
	}
}

func errorResult(err error) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: fmt.Sprintf("Error: %s", err)}},
		IsError: true,
	}
}
