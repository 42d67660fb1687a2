package market

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUniverseShape(t *testing.T) {
	u := DefaultUniverse()
	require.Len(t, u.Currencies, 8)
	require.Len(t, u.ValidPairs, 28)
	require.Len(t, u.MajorPairs, 7)

	for _, p := range u.MajorPairs {
		assert.True(t, u.IsValid(p), "major %s must be valid", p)
		assert.Contains(t, p, "USD")
	}
	// every valid pair is ordered by priority
	for _, p := range u.ValidPairs {
		assert.Equal(t, p, u.PairOf(Quote(p), Base(p)), "pair %s not in priority order", p)
	}
}

func TestPipMultiplier(t *testing.T) {
	for _, p := range DefaultUniverse().ValidPairs {
		want := 10000.0
		if strings.Contains(p, "JPY") {
			want = 100
		}
		assert.Equal(t, want, PipMultiplier(p), p)
	}
}

func TestPairOf(t *testing.T) {
	u := DefaultUniverse()
	assert.Equal(t, "EURJPY", u.PairOf(JPY, EUR))
	assert.Equal(t, "GBPUSD", u.PairOf(USD, GBP))
	assert.Equal(t, "USDCAD", u.PairOf(CAD, USD))
	assert.True(t, u.Precedes(NZD, USD))
	assert.False(t, u.Precedes(CHF, USD))
}

func TestFocusCurrency(t *testing.T) {
	assert.Equal(t, EUR, FocusCurrency("EURUSD"))
	assert.Equal(t, JPY, FocusCurrency("USDJPY"))
	assert.Equal(t, GBP, FocusCurrency("GBPJPY"))
}

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "EURUSD", NormalizeSymbol("eur/usd"))
	assert.Equal(t, "GBPUSD", NormalizeSymbol(" GBP USD "))
	assert.Equal(t, "PAIR", NormalizeSymbol("Pair"))
}

func TestCrossRate(t *testing.T) {
	rates := Rates{
		"EURUSD": 1.08,
		"GBPUSD": 1.27,
		"USDJPY": 150.0,
		"USDCHF": 0.90,
	}

	tests := []struct {
		name       string
		symbol     string
		want       float64
		calculated bool
		ok         bool
	}{
		{"direct", "EURUSD", 1.08, false, true},
		{"ratio of usd quoted legs", "EURGBP", 1.08 / 1.27, true, true},
		{"product", "EURJPY", 1.08 * 150.0, true, true},
		{"ratio of usd based legs", "CHFJPY", 150.0 / 0.90, true, true},
		{"missing leg", "AUDNZD", 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, calc, ok := CrossRate(tt.symbol, rates)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.calculated, calc)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDisplayPrecision(t *testing.T) {
	assert.Equal(t, 3, DisplayPrecision("GBPJPY"))
	assert.Equal(t, 5, DisplayPrecision("EURCHF"))
}
