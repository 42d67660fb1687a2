package signals

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FxPulse/internal/domain/market"
	"FxPulse/internal/domain/models"
)

func inactive(ccys ...string) []models.ActivityScore {
	out := make([]models.ActivityScore, 0, len(ccys))
	for _, c := range ccys {
		out = append(out, models.ActivityScore{Currency: c, Direction: models.DirectionInactive})
	}
	return out
}

func TestDerive_PrefersActivity(t *testing.T) {
	hot := models.VolatilityAlert{Pair: "USDJPY", EffectiveBias: models.BiasLong, SetupQuality: models.QualityPerfect}
	activity := []models.ActivityScore{
		{Currency: "GBP", Score: 50, Direction: models.DirectionStrength},
		{Currency: "JPY", Score: 40, Direction: models.DirectionStrength},
		{Currency: "EUR", Score: 30, Direction: models.DirectionStrength},
		{Currency: "AUD", Score: 20, Direction: models.DirectionWeakness},
	}
	strength := []models.CurrencyScore{{Currency: "NZD", Score: 9, Sentiment: models.SentimentStrong}}

	got, src := newEngine().Derive(hot, strength, activity)
	assert.Equal(t, models.SourceActivity, src)
	require.Len(t, got, 2)
	assert.Equal(t, "GBPJPY", got[0].Pair)
	assert.Equal(t, models.ActionBuy, got[0].Action)
	assert.Equal(t, "EURJPY", got[1].Pair)
	assert.Equal(t, models.ActionBuy, got[1].Action)
	assert.False(t, got[0].IsTemporary)
	assert.NotEmpty(t, got[0].Reason)
}

func TestDerive_FallsBackToStrength(t *testing.T) {
	hot := models.VolatilityAlert{Pair: "USDJPY", EffectiveBias: models.BiasLong, SetupQuality: models.QualityMixed}
	strength := []models.CurrencyScore{
		{Currency: "NZD", Score: 10, Sentiment: models.SentimentStrong},
		{Currency: "USD", Score: 9, Sentiment: models.SentimentStrong},
		{Currency: "CAD", Score: 8, Sentiment: models.SentimentStrong},
		{Currency: "CHF", Score: 7.5, Sentiment: models.SentimentStrong},
		{Currency: "JPY", Score: 0, Sentiment: models.SentimentWeak},
	}

	got, src := newEngine().Derive(hot, strength, inactive("EUR", "GBP", "JPY"))
	assert.Equal(t, models.SourceStrength, src)
	require.Len(t, got, 2)
	assert.Equal(t, "NZDJPY", got[0].Pair)
	assert.Equal(t, "CADJPY", got[1].Pair)
	for _, s := range got {
		assert.Equal(t, models.ActionBuy, s.Action)
	}
}

func TestDerive_ReversalInvertsFocus(t *testing.T) {
	hot := models.VolatilityAlert{Pair: "EURUSD", EffectiveBias: models.BiasShort, SetupQuality: models.QualityTemporarySell}
	activity := []models.ActivityScore{
		{Currency: "CHF", Score: 12, Direction: models.DirectionWeakness},
		{Currency: "GBP", Score: 10, Direction: models.DirectionStrength},
	}
	strength := []models.CurrencyScore{{Currency: "EUR", Score: 5, Sentiment: models.SentimentNeutral}}

	got, src := newEngine().Derive(hot, strength, activity)
	assert.Equal(t, models.SourceActivity, src)
	require.Len(t, got, 1)
	assert.Equal(t, "EURCHF", got[0].Pair)
	assert.Equal(t, models.ActionBuy, got[0].Action)
	assert.True(t, got[0].IsTemporary)
}

func TestDerive_SellWhenFocusIsWeakBase(t *testing.T) {
	hot := models.VolatilityAlert{Pair: "GBPUSD", EffectiveBias: models.BiasShort, SetupQuality: models.QualityPerfect}
	activity := []models.ActivityScore{{Currency: "JPY", Score: 10, Direction: models.DirectionStrength}}
	strength := []models.CurrencyScore{{Currency: "GBP", Score: 1, Sentiment: models.SentimentWeak}}

	got, _ := newEngine().Derive(hot, strength, activity)
	require.Len(t, got, 1)
	assert.Equal(t, "GBPJPY", got[0].Pair)
	assert.Equal(t, models.ActionSell, got[0].Action)
}

func TestDerive_NoOp(t *testing.T) {
	e := newEngine()
	strength := []models.CurrencyScore{{Currency: "NZD", Score: 9, Sentiment: models.SentimentStrong}}

	got, src := e.Derive(models.VolatilityAlert{Pair: "USDJPY", EffectiveBias: models.BiasLong, SetupQuality: models.QualityWaiting}, strength, nil)
	assert.Empty(t, got)
	assert.Equal(t, models.SourceStrength, src)

	got, _ = e.Derive(models.VolatilityAlert{Pair: "USDJPY", EffectiveBias: models.BiasLong, SetupQuality: models.QualityPerfect}, nil, nil)
	assert.Empty(t, got)
}

func TestDerive_Invariants(t *testing.T) {
	e := newEngine()
	batch := majorsBatch()
	strength := e.Strength(batch)
	activity := e.Activity(batch)
	ranked, err := e.Rank(batch)
	require.NoError(t, err)

	for _, r := range ranked {
		hot := e.Alert(r, indexBySymbol(batch)[r.Symbol])
		got, _ := e.Derive(hot, strength, activity)
		assert.LessOrEqual(t, len(got), 2)

		focus := string(market.FocusCurrency(r.Symbol))
		seen := map[string]bool{}
		for _, s := range got {
			assert.True(t, e.Universe().IsValid(s.Pair), s.Pair)
			assert.NotContains(t, s.Pair, "USD")
			assert.True(t, strings.Contains(s.Pair, focus))
			assert.NotEqual(t, focus+focus, s.Pair)
			assert.False(t, seen[s.Pair], "duplicate %s", s.Pair)
			seen[s.Pair] = true
		}
	}
}
