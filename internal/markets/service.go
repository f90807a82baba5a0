// Package markets resolves countries to their stock exchanges and fetches
// live index values from a quote provider.
package markets

import (
	"context"
	"log/slog"
)

// IndexQuote is the computed state of one index. Err is set instead of the
// numeric fields when the fetch for that index failed; one index failing
// never affects the others.
type IndexQuote struct {
	Name          string
	Symbol        string
	Value         float64
	PreviousClose float64
	Change        float64
	ChangePercent float64
	LastUpdated   string
	Err           error
}

// MarketReport is the full market record for a country: static exchange
// metadata plus one IndexQuote per configured index, in table order.
type MarketReport struct {
	Info    *ExchangeInfo
	Indices []IndexQuote
}

// Service composes the static exchange table with a quote provider.
type Service struct {
	provider QuoteProvider
	logger   *slog.Logger
}

// NewService creates a market lookup service.
func NewService(provider QuoteProvider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		provider: provider,
		logger:   logger.WithGroup("markets"),
	}
}

// IndexValues fetches the latest value for every index of a country. An
// unknown country is an error; a failing index fetch produces a per-index
// error entry without aborting the rest.
func (s *Service) IndexValues(ctx context.Context, country string) ([]IndexQuote, error) {
	info, err := LookupExchange(country)
	if err != nil {
		return nil, err
	}
	return s.quoteIndices(ctx, info), nil
}

// CompleteInfo returns exchange metadata and index values for a country.
func (s *Service) CompleteInfo(ctx context.Context, country string) (*MarketReport, error) {
	info, err := LookupExchange(country)
	if err != nil {
		return nil, err
	}
	return &MarketReport{
		Info:    info,
		Indices: s.quoteIndices(ctx, info),
	}, nil
}

func (s *Service) quoteIndices(ctx context.Context, info *ExchangeInfo) []IndexQuote {
	quotes := make([]IndexQuote, 0, len(info.Indices))
	for _, idx := range info.Indices {
		quotes = append(quotes, s.quoteIndex(ctx, idx))
	}
	return quotes
}

func (s *Service) quoteIndex(ctx context.Context, idx Index) IndexQuote {
	quote := IndexQuote{Name: idx.Name, Symbol: idx.Symbol}

	hist, err := s.provider.History(ctx, idx.Symbol)
	if err != nil {
		s.logger.Warn("index fetch failed", "index", idx.Name, "symbol", idx.Symbol, "error", err)
		quote.Err = err
		return quote
	}

	if len(hist.Closes) == 0 {
		quote.Err = ErrNoData
		return quote
	}

	latest := hist.Closes[len(hist.Closes)-1]

	// Previous close preference: provider metadata, then the prior historical
	// close, then the latest close itself when the series has a single point
	// (change is exactly zero in that case).
	previous := latest
	switch {
	case hist.HasPrevClose:
		previous = hist.PrevClose
	case len(hist.Closes) > 1:
		previous = hist.Closes[len(hist.Closes)-2]
	}

	change := latest - previous
	changePercent := 0.0
	if previous != 0 {
		changePercent = change / previous * 100
	}

	quote.Value = latest
	quote.PreviousClose = previous
	quote.Change = change
	quote.ChangePercent = changePercent
	if !hist.LastTimestamp.IsZero() {
		quote.LastUpdated = hist.LastTimestamp.Format("2006-01-02 15:04:05")
	}

	return quote
}
