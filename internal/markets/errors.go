package markets

import "errors"

var (
	ErrUnknownCountry = errors.New("stock exchange information not found for country")
	ErrNoData         = errors.New("no data available")
	ErrQuoteFetch     = errors.New("failed to fetch data")
)
