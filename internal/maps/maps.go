// Package maps provides stock exchange HQ locations and Google Maps embed
// URLs for them.
package maps

import (
	"fmt"
	"strings"
)

const embedBaseURL = "https://www.google.com/maps/embed/v1/place"

// LocationInfo is the resolved location record for an exchange. For unknown
// exchanges only Exchange and MapURL are populated (best-effort name search).
type LocationInfo struct {
	Exchange  string
	Address   string
	Latitude  float64
	Longitude float64
	MapURL    string
	MapHTML   string
}

// Service builds maps embed URLs for exchange locations. An empty API key
// disables the feature: embed URLs come back empty and HTML snippets carry a
// placeholder notice, never an error.
type Service struct {
	apiKey string
}

// NewService creates a maps lookup service. The key may be empty.
func NewService(apiKey string) *Service {
	return &Service{apiKey: apiKey}
}

// Enabled reports whether a maps API key is configured.
func (s *Service) Enabled() bool {
	return s.apiKey != ""
}

// EmbedURL builds a place-mode embed URL for an exchange. Exchanges in the
// static table use their stored search query; anything else falls back to a
// raw name search. Returns "" when no API key is configured.
func (s *Service) EmbedURL(exchange string) string {
	if s.apiKey == "" {
		return ""
	}

	loc, ok := exchangeLocations[exchange]
	if !ok {
		query := strings.ReplaceAll(exchange, " ", "+")
		return fmt.Sprintf("%s?key=%s&q=%s", embedBaseURL, s.apiKey, query)
	}

	query := strings.ReplaceAll(loc.Query, " ", "+")
	return fmt.Sprintf("%s?key=%s&q=%s&zoom=15", embedBaseURL, s.apiKey, query)
}

// MapHTML builds an iframe snippet embedding the exchange map. Returns a
// placeholder paragraph when no API key is configured.
func (s *Service) MapHTML(exchange string, width, height int) string {
	embedURL := s.EmbedURL(exchange)
	if embedURL == "" {
		return "<p>Google Maps API key not configured</p>"
	}

	return fmt.Sprintf(`<iframe
    width="%d"
    height="%d"
    style="border:0"
    loading="lazy"
    allowfullscreen
    referrerpolicy="no-referrer-when-downgrade"
    src="%s">
</iframe>`, width, height, embedURL)
}

// LocationInfo returns the full location record for an exchange. An unknown
// exchange returns ErrUnknownExchange together with a partial record that
// still carries the best-effort map URL.
func (s *Service) LocationInfo(exchange string) (*LocationInfo, error) {
	loc, ok := exchangeLocations[exchange]
	if !ok {
		return &LocationInfo{
			Exchange: exchange,
			MapURL:   s.EmbedURL(exchange),
		}, fmt.Errorf("%w: %s", ErrUnknownExchange, exchange)
	}

	return &LocationInfo{
		Exchange:  exchange,
		Address:   loc.Address,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		MapURL:    s.EmbedURL(exchange),
		MapHTML:   s.MapHTML(exchange, 600, 450),
	}, nil
}
