package markets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider returns canned histories per symbol.
type fakeProvider struct {
	histories map[string]*History
	errs      map[string]error
	calls     []string
}

func (f *fakeProvider) History(_ context.Context, symbol string) (*History, error) {
	f.calls = append(f.calls, symbol)
	if err, ok := f.errs[symbol]; ok {
		return nil, err
	}
	if hist, ok := f.histories[symbol]; ok {
		return hist, nil
	}
	return &History{}, nil
}

func TestLookupExchange(t *testing.T) {
	t.Parallel()

	t.Run("known country", func(t *testing.T) {
		t.Parallel()
		info, err := LookupExchange("Japan")
		require.NoError(t, err)
		assert.Equal(t, "Japan", info.Country)
		assert.Equal(t, "Tokyo Stock Exchange", info.PrimaryExchange)
		assert.Equal(t, "Tokyo, Japan", info.HQLocation)
		require.Len(t, info.Indices, 3)
		assert.Equal(t, Index{Name: "Nikkei 225", Symbol: "^N225"}, info.Indices[0])
	})

	t.Run("unknown country", func(t *testing.T) {
		t.Parallel()
		_, err := LookupExchange("Atlantis")
		assert.ErrorIs(t, err, ErrUnknownCountry)
	})
}

func TestIndexValuesChangeMath(t *testing.T) {
	t.Parallel()

	lastTS := time.Date(2024, 6, 7, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		history      *History
		wantValue    float64
		wantPrevious float64
		wantChange   float64
		wantPercent  float64
	}{
		{
			name: "previous close from provider metadata",
			history: &History{
				Closes:        []float64{100, 102, 104},
				PrevClose:     103,
				HasPrevClose:  true,
				LastTimestamp: lastTS,
			},
			wantValue:    104,
			wantPrevious: 103,
			wantChange:   1,
			wantPercent:  1.0 / 103 * 100,
		},
		{
			name: "previous close from prior historical close",
			history: &History{
				Closes:        []float64{100, 104},
				LastTimestamp: lastTS,
			},
			wantValue:    104,
			wantPrevious: 100,
			wantChange:   4,
			wantPercent:  4,
		},
		{
			name: "single data point yields zero change",
			history: &History{
				Closes:        []float64{104},
				LastTimestamp: lastTS,
			},
			wantValue:    104,
			wantPrevious: 104,
			wantChange:   0,
			wantPercent:  0,
		},
		{
			name: "zero previous close yields zero percent",
			history: &History{
				Closes:        []float64{0, 104},
				LastTimestamp: lastTS,
			},
			wantValue:    104,
			wantPrevious: 0,
			wantChange:   104,
			wantPercent:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := &fakeProvider{histories: map[string]*History{
				"^FCHI": tt.history,
			}}
			svc := NewService(provider, nil)

			quotes, err := svc.IndexValues(t.Context(), "France")
			require.NoError(t, err)
			require.Len(t, quotes, 1)

			quote := quotes[0]
			require.NoError(t, quote.Err)
			assert.InDelta(t, tt.wantValue, quote.Value, 1e-9)
			assert.InDelta(t, tt.wantPrevious, quote.PreviousClose, 1e-9)
			assert.InDelta(t, tt.wantChange, quote.Change, 1e-9)
			assert.InDelta(t, tt.wantPercent, quote.ChangePercent, 1e-9)
			assert.Equal(t, "2024-06-07 15:00:00", quote.LastUpdated)
		})
	}
}

func TestIndexValuesPartialFailure(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		histories: map[string]*History{
			"^N225":  {Closes: []float64{38000, 38500}},
			"^JPN400": {Closes: []float64{26900, 27000}},
		},
		errs: map[string]error{
			"^TOPX": errors.New("boom"),
		},
	}
	svc := NewService(provider, nil)

	quotes, err := svc.IndexValues(t.Context(), "japan")
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	assert.NoError(t, quotes[0].Err, "Nikkei should succeed")
	assert.Error(t, quotes[1].Err, "TOPIX should carry its own error")
	assert.NoError(t, quotes[2].Err, "JPX-Nikkei 400 should still be fetched after the failure")
	assert.Equal(t, []string{"^N225", "^TOPX", "^JPN400"}, provider.calls)
}

func TestIndexValuesEmptyHistory(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{}
	svc := NewService(provider, nil)

	quotes, err := svc.IndexValues(t.Context(), "Singapore")
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.ErrorIs(t, quotes[0].Err, ErrNoData)
}

func TestIndexValuesUnknownCountry(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{}
	svc := NewService(provider, nil)

	_, err := svc.IndexValues(t.Context(), "Atlantis")
	require.ErrorIs(t, err, ErrUnknownCountry)
	assert.Empty(t, provider.calls, "unknown country must not hit the provider")
}
