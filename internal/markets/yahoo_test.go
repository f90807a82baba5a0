package markets

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartBody = `{
	"chart": {
		"result": [{
			"meta": {"chartPreviousClose": 38379.75},
			"timestamp": [1717545600, 1717632000, 1717718400],
			"indicators": {"quote": [{"close": [38100.0, null, 38500.25]}]}
		}],
		"error": null
	}
}`

func TestYahooHistory(t *testing.T) {
	t.Parallel()

	t.Run("success skips null closes", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/%5EN225", r.URL.EscapedPath())
			assert.Equal(t, "5d", r.URL.Query().Get("range"))
			assert.Equal(t, "1d", r.URL.Query().Get("interval"))
			_, err := w.Write([]byte(chartBody))
			assert.NoError(t, err)
		}))
		defer srv.Close()

		c := NewYahooClient(WithChartURL(srv.URL))
		hist, err := c.History(t.Context(), "^N225")
		require.NoError(t, err)

		assert.Equal(t, []float64{38100.0, 38500.25}, hist.Closes)
		assert.True(t, hist.HasPrevClose)
		assert.InDelta(t, 38379.75, hist.PrevClose, 1e-9)
		assert.Equal(t, time.Unix(1717718400, 0).UTC(), hist.LastTimestamp)
	})

	t.Run("chart error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"chart": {"result": null, "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}}}`))
			assert.NoError(t, err)
		}))
		defer srv.Close()

		c := NewYahooClient(WithChartURL(srv.URL))
		_, err := c.History(t.Context(), "^BOGUS")
		require.ErrorIs(t, err, ErrQuoteFetch)
		assert.ErrorContains(t, err, "Not Found")
	})

	t.Run("http error status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := NewYahooClient(WithChartURL(srv.URL))
		_, err := c.History(t.Context(), "^N225")
		require.ErrorIs(t, err, ErrQuoteFetch)
	})

	t.Run("empty result", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"chart": {"result": [], "error": null}}`))
			assert.NoError(t, err)
		}))
		defer srv.Close()

		c := NewYahooClient(WithChartURL(srv.URL))
		hist, err := c.History(t.Context(), "^N225")
		require.NoError(t, err)
		assert.Empty(t, hist.Closes)
		assert.False(t, hist.HasPrevClose)
	})
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	report := FormatReport(&MarketReport{
		Info: &ExchangeInfo{
			Country: "Japan",
			Exchange: Exchange{
				Exchanges:       []string{"Tokyo Stock Exchange (TSE)", "Osaka Exchange (OSE)"},
				PrimaryExchange: "Tokyo Stock Exchange",
				HQLocation:      "Tokyo, Japan",
			},
		},
		Indices: []IndexQuote{
			{
				Name:          "Nikkei 225",
				Symbol:        "^N225",
				Value:         38500.25,
				PreviousClose: 38379.75,
				Change:        120.50,
				ChangePercent: 0.31,
				LastUpdated:   "2024-06-07 15:00:00",
			},
			{
				Name:          "TOPIX",
				Symbol:        "^TOPX",
				Value:         2700.10,
				PreviousClose: 2710.60,
				Change:        -10.50,
				ChangePercent: -0.39,
				LastUpdated:   "2024-06-07 15:00:00",
			},
			{
				Name:   "JPX-Nikkei 400",
				Symbol: "^JPN400",
				Err:    ErrNoData,
			},
		},
	})

	assert.Contains(t, report, "**Stock Market Information for Japan**")
	assert.Contains(t, report, "- Tokyo Stock Exchange (TSE)")
	assert.Contains(t, report, "**Primary Exchange:** Tokyo Stock Exchange")
	assert.Contains(t, report, "**Headquarters Location:** Tokyo, Japan")
	assert.Contains(t, report, "**Nikkei 225** (^N225)")
	assert.Contains(t, report, "- Current Value: 38,500.25")
	assert.Contains(t, report, "- Change: ▲ 120.50 (+0.31%)")
	assert.Contains(t, report, "- Previous Close: 38,379.75")
	assert.Contains(t, report, "- Change: ▼ 10.50 (-0.39%)")
	assert.Contains(t, report, "**JPX-Nikkei 400** (^JPN400): no data available")
}
