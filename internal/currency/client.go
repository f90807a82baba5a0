package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const defaultBaseURL = "https://v6.exchangerate-api.com/v6"

// Rate is a single conversion rate entry. Available distinguishes a numeric
// rate from a target the provider did not report; unavailable targets are
// rendered as a literal rather than dropped.
type Rate struct {
	Code      string
	Value     float64
	Available bool
}

// RateSnapshot holds one fetch of conversion rates for a base currency. The
// update timestamps are passed through verbatim from the provider. Snapshots
// are not persisted; they exist only long enough to be formatted.
type RateSnapshot struct {
	BaseCurrency string
	Rates        []Rate
	LastUpdated  string
	NextUpdate   string
}

// Client fetches conversion rates from the ExchangeRate-API v6 endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates an ExchangeRate-API client. The key may be empty; fetch
// calls then fail with ErrMissingAPIKey without touching the network.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type latestResponse struct {
	Result            string             `json:"result"`
	ErrorType         string             `json:"error-type"`
	ConversionRates   map[string]float64 `json:"conversion_rates"`
	TimeLastUpdateUTC string             `json:"time_last_update_utc"`
	TimeNextUpdateUTC string             `json:"time_next_update_utc"`
}

// LatestRates fetches the latest conversion rates for the base currency and
// projects them onto the requested target codes, in target order. Targets the
// provider does not know are kept in the snapshot as unavailable entries.
func (c *Client) LatestRates(ctx context.Context, base string, targets []string) (*RateSnapshot, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRateFetch, err)
	}

	c.logger.Debug("fetching exchange rates", "base", base, "targets", targets)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRateFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrRateFetch, resp.Status)
	}

	var data latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRateFetch, err)
	}

	if data.Result != "success" {
		errType := data.ErrorType
		if errType == "" {
			errType = "Unknown error"
		}
		return nil, fmt.Errorf("%w: API error: %s", ErrRateFetch, errType)
	}

	snapshot := &RateSnapshot{
		BaseCurrency: base,
		Rates:        make([]Rate, 0, len(targets)),
		LastUpdated:  data.TimeLastUpdateUTC,
		NextUpdate:   data.TimeNextUpdateUTC,
	}

	for _, target := range targets {
		value, ok := data.ConversionRates[target]
		snapshot.Rates = append(snapshot.Rates, Rate{
			Code:      target,
			Value:     value,
			Available: ok,
		})
	}

	return snapshot, nil
}
