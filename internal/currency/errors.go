package currency

import "errors"

var (
	ErrUnknownCountry = errors.New("currency information not found for country")
	ErrMissingAPIKey  = errors.New("exchange rate API key not configured")
	ErrRateFetch      = errors.New("failed to fetch exchange rates")
)
