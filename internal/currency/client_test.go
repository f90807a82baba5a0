package currency

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ratesBody = `{
	"result": "success",
	"base_code": "JPY",
	"conversion_rates": {"USD": 0.0067, "EUR": 0.0062, "GBP": 0.0053},
	"time_last_update_utc": "Fri, 07 Jun 2024 00:00:01 +0000",
	"time_next_update_utc": "Sat, 08 Jun 2024 00:00:01 +0000"
}`

func TestLatestRates(t *testing.T) {
	t.Parallel()

	t.Run("success with missing target", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/test-key/latest/JPY", r.URL.Path)
			_, err := w.Write([]byte(ratesBody))
			assert.NoError(t, err)
		}))
		defer srv.Close()

		c := NewClient("test-key", WithBaseURL(srv.URL))
		snap, err := c.LatestRates(t.Context(), "JPY", []string{"USD", "EUR", "GBP", "INR"})
		require.NoError(t, err)

		assert.Equal(t, "JPY", snap.BaseCurrency)
		assert.Equal(t, "Fri, 07 Jun 2024 00:00:01 +0000", snap.LastUpdated)
		assert.Equal(t, "Sat, 08 Jun 2024 00:00:01 +0000", snap.NextUpdate)
		require.Len(t, snap.Rates, 4)

		assert.Equal(t, Rate{Code: "USD", Value: 0.0067, Available: true}, snap.Rates[0])
		assert.Equal(t, Rate{Code: "EUR", Value: 0.0062, Available: true}, snap.Rates[1])
		assert.Equal(t, Rate{Code: "GBP", Value: 0.0053, Available: true}, snap.Rates[2])

		// INR is absent from the provider response but kept as unavailable.
		assert.Equal(t, Rate{Code: "INR", Available: false}, snap.Rates[3])
	})

	t.Run("missing api key performs no request", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer srv.Close()

		c := NewClient("", WithBaseURL(srv.URL))
		_, err := c.LatestRates(t.Context(), "JPY", []string{"USD"})
		require.ErrorIs(t, err, ErrMissingAPIKey)
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("non-success result", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"result": "error", "error-type": "invalid-key"}`))
			assert.NoError(t, err)
		}))
		defer srv.Close()

		c := NewClient("bad-key", WithBaseURL(srv.URL))
		_, err := c.LatestRates(t.Context(), "JPY", []string{"USD"})
		require.ErrorIs(t, err, ErrRateFetch)
		assert.ErrorContains(t, err, "invalid-key")
	})

	t.Run("http error status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c := NewClient("test-key", WithBaseURL(srv.URL))
		_, err := c.LatestRates(t.Context(), "JPY", []string{"USD"})
		require.ErrorIs(t, err, ErrRateFetch)
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := NewClient("test-key", WithBaseURL(srv.URL))
		_, err := c.LatestRates(t.Context(), "JPY", []string{"USD"})
		require.ErrorIs(t, err, ErrRateFetch)
	})
}
