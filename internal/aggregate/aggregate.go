// Package aggregate runs the sequential lookup pipeline for a country query
// and assembles the final report.
package aggregate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finsight-io/finsight/internal/countries"
	"github.com/finsight-io/finsight/internal/currency"
	"github.com/finsight-io/finsight/internal/maps"
	"github.com/finsight-io/finsight/internal/markets"
	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-loglater"
)

// Tool names as they appear in the step trace and on the MCP surface.
const (
	ToolCurrencyInfo     = "get_currency_info"
	ToolStockMarketInfo  = "get_stock_market_info"
	ToolExchangeLocation = "get_exchange_location"
)

// stepOutputLimit truncates step outputs in the trace for diagnostic display.
const stepOutputLimit = 200

// Step is one entry in the ordered diagnostic trace of a run.
type Step struct {
	Tool   string
	Input  string
	Output string
	Err    string
}

// Result is the outcome of one aggregation run. Steps holds the ordered
// trace; Report is the assembled text. OK is false only when no country
// could be resolved from the query — individual step failures still produce
// a report with their error text inline.
type Result struct {
	ID      uuid.UUID
	Query   string
	Country string
	OK      bool
	Report  string
	Steps   []Step

	logs *loglater.LogCollector
}

// PlayLogs replays the run's collected logs to the given handler.
func (r *Result) PlayLogs(handler slog.Handler) error {
	if r.logs == nil {
		return nil
	}
	return r.logs.PlayLogs(handler)
}

// Aggregator wires the three lookup services into the query pipeline.
type Aggregator struct {
	currency *currency.Service
	markets  *markets.Service
	maps     *maps.Service
	handler  slog.Handler
}

// New creates an Aggregator. The handler receives per-run logs as they
// happen; each run additionally collects them for later replay.
func New(
	currencySvc *currency.Service,
	marketsSvc *markets.Service,
	mapsSvc *maps.Service,
	handler slog.Handler,
) *Aggregator {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &Aggregator{
		currency: currencySvc,
		markets:  marketsSvc,
		maps:     mapsSvc,
		handler:  handler,
	}
}

// Run resolves a country from the free-text query and executes the lookup
// steps in order: currency, market, then location when the market step
// produced a primary exchange and maps are configured. Every step is wrapped
// individually; a failure is recorded in the trace and later steps still run.
func (a *Aggregator) Run(ctx context.Context, rawQuery string) *Result {
	result := &Result{
		ID:    uuid.Must(uuid.NewV6()),
		Query: rawQuery,
		logs:  loglater.NewLogCollector(a.handler),
	}

	logger := slog.New(result.logs).With("id", result.ID)

	country := countries.Resolve(rawQuery)
	if country == "" {
		logger.Warn("could not resolve a country from query", "query", rawQuery)
		result.Report = "Please specify a country name in your query."
		return result
	}

	result.Country = country
	result.OK = true
	logger.Info("processing query", "country", country)

	currencySection := a.runStep(result, logger, ToolCurrencyInfo, country, func() (string, error) {
		rates, err := a.currency.RatesFor(ctx, country)
		if err != nil {
			return "", err
		}
		return currency.FormatReport(rates), nil
	})

	var primaryExchange string
	marketSection := a.runStep(result, logger, ToolStockMarketInfo, country, func() (string, error) {
		report, err := a.markets.CompleteInfo(ctx, country)
		if err != nil {
			return "", err
		}
		primaryExchange = report.Info.PrimaryExchange
		return markets.FormatReport(report), nil
	})

	var location *maps.LocationInfo
	if primaryExchange != "" && a.maps.Enabled() {
		a.runStep(result, logger, ToolExchangeLocation, primaryExchange, func() (string, error) {
			info, err := a.maps.LocationInfo(primaryExchange)
			if err != nil {
				return "", err
			}
			location = info
			return info.Address, nil
		})
	}

	result.Report = buildReport(country, currencySection, marketSection, location)
	return result
}

// runStep executes one pipeline step, records it in the ordered trace, and
// converts any failure (error or panic) into error text. The returned string
// is the step's report section: the payload on success, the error text
// otherwise.
func (a *Aggregator) runStep(
	result *Result,
	logger *slog.Logger,
	tool, input string,
	fn func() (string, error),
) (section string) {
	step := Step{Tool: tool, Input: input}

	defer func() {
		if r := recover(); r != nil {
			step.Err = fmt.Sprintf("%v", r)
			section = "Error: " + step.Err
		}
		if step.Err != "" {
			logger.Warn("step failed", "tool", tool, "input", input, "error", step.Err)
		} else {
			logger.Info("step completed", "tool", tool, "input", input)
		}
		result.Steps = append(result.Steps, step)
	}()

	output, err := fn()
	if err != nil {
		step.Err = err.Error()
		return "Error: " + err.Error()
	}

	step.Output = truncate(output, stepOutputLimit)
	return output
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
