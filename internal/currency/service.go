// Package currency resolves countries to their official currency and fetches
// live conversion rates from the ExchangeRate-API.
package currency

import (
	"context"
	"log/slog"
	"slices"
)

// defaultTargets are the reference currencies every report converts into. The
// base currency is removed from this set before the fetch, so the provider is
// never asked for a self-rate.
var defaultTargets = []string{"USD", "EUR", "GBP", "INR"}

// CountryRates is the merged currency record for a country. Snapshot is nil
// and FetchErr set when the live rate fetch failed; the static currency
// identity is still usable in that case.
type CountryRates struct {
	Currency CountryCurrency
	Snapshot *RateSnapshot
	FetchErr error
}

// Service composes the static currency table with the rate client.
type Service struct {
	client *Client
	logger *slog.Logger
}

// NewService creates a currency lookup service.
func NewService(client *Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client: client,
		logger: logger.WithGroup("currency"),
	}
}

// RatesFor returns the currency identity and live conversion rates for a
// country. An unknown country is an error and performs no network call. A
// failed rate fetch is recorded on the result rather than returned, so the
// static half of the record survives provider outages.
func (s *Service) RatesFor(ctx context.Context, country string) (*CountryRates, error) {
	cc, err := Lookup(country)
	if err != nil {
		return nil, err
	}

	targets := slices.DeleteFunc(slices.Clone(defaultTargets), func(code string) bool {
		return code == cc.Code
	})

	result := &CountryRates{Currency: cc}

	snapshot, err := s.client.LatestRates(ctx, cc.Code, targets)
	if err != nil {
		s.logger.Warn("rate fetch failed", "country", country, "base", cc.Code, "error", err)
		result.FetchErr = err
		return result, nil
	}

	result.Snapshot = snapshot
	return result, nil
}
