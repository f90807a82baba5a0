package main

import (
	"log/slog"

	"github.com/finsight-io/finsight/internal/config"
	"github.com/finsight-io/finsight/internal/currency"
	"github.com/finsight-io/finsight/internal/maps"
	"github.com/finsight-io/finsight/internal/markets"
	"github.com/finsight-io/finsight/internal/server/mcpserver"
)

// buildServices wires the lookup services from the loaded configuration.
func buildServices(cfg *config.Config, logger *slog.Logger) mcpserver.Deps {
	clientOpts := []currency.ClientOption{
		currency.WithLogger(logger.With("component", "exchangerate")),
	}
	if cfg.ExchangeRate.BaseURL != "" {
		clientOpts = append(clientOpts, currency.WithBaseURL(cfg.ExchangeRate.BaseURL))
	}

	rateClient := currency.NewClient(cfg.ExchangeRate.APIKey, clientOpts...)
	quoteClient := markets.NewYahooClient(
		markets.WithQuoteLogger(logger.With("component", "yahoo")),
	)

	return mcpserver.Deps{
		Currency: currency.NewService(rateClient, logger.With("component", "currency")),
		Markets:  markets.NewService(quoteClient, logger.With("component", "markets")),
		Maps:     maps.NewService(cfg.Maps.APIKey),
	}
}
