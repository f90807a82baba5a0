package markets

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// History is a short window of daily closes for one symbol, oldest first.
// PrevClose carries the provider's own previous-close metadata when it
// reports one; HasPrevClose distinguishes a reported zero from an absent
// value.
type History struct {
	Closes        []float64
	PrevClose     float64
	HasPrevClose  bool
	LastTimestamp time.Time
}

// QuoteProvider fetches a short historical price window for a ticker symbol.
type QuoteProvider interface {
	History(ctx context.Context, symbol string) (*History, error)
}

// YahooClient implements QuoteProvider against the Yahoo Finance chart API.
type YahooClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// YahooOption configures a YahooClient.
type YahooOption func(*YahooClient)

// WithChartURL overrides the chart API base URL.
func WithChartURL(baseURL string) YahooOption {
	return func(c *YahooClient) {
		c.baseURL = baseURL
	}
}

// WithQuoteTimeout sets the HTTP client timeout.
func WithQuoteTimeout(d time.Duration) YahooOption {
	return func(c *YahooClient) {
		c.httpClient.Timeout = d
	}
}

// WithQuoteLogger sets the logger.
func WithQuoteLogger(logger *slog.Logger) YahooOption {
	return func(c *YahooClient) {
		c.logger = logger
	}
}

// NewYahooClient creates a Yahoo Finance chart client. No API key is needed.
func NewYahooClient(opts ...YahooOption) *YahooClient {
	c := &YahooClient{
		baseURL: defaultChartURL,
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

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				ChartPreviousClose *float64 `json:"chartPreviousClose"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// History fetches a five-day daily window for the symbol. Null closes within
// the window (holidays, half-sessions) are skipped.
func (c *YahooClient) History(ctx context.Context, symbol string) (*History, error) {
	u := fmt.Sprintf("%s/%s?range=5d&interval=1d", c.baseURL, url.PathEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuoteFetch, err)
	}
	req.Header.Set("User-Agent", "finsight/1.0")

	c.logger.Debug("fetching price history", "symbol", symbol)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuoteFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s for %s", ErrQuoteFetch, resp.Status, symbol)
	}

	var data chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuoteFetch, err)
	}

	if data.Chart.Error != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrQuoteFetch, data.Chart.Error.Code, data.Chart.Error.Description)
	}

	if len(data.Chart.Result) == 0 {
		return &History{}, nil
	}

	result := data.Chart.Result[0]
	hist := &History{}

	if result.Meta.ChartPreviousClose != nil {
		hist.PrevClose = *result.Meta.ChartPreviousClose
		hist.HasPrevClose = true
	}

	if len(result.Indicators.Quote) > 0 {
		var lastTS int64
		for i, close := range result.Indicators.Quote[0].Close {
			if close == nil {
				continue
			}
			hist.Closes = append(hist.Closes, *close)
			if i < len(result.Timestamp) {
				lastTS = result.Timestamp[i]
			}
		}
		if lastTS > 0 {
			hist.LastTimestamp = time.Unix(lastTS, 0).UTC()
		}
	}

	return hist, nil
}
