package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FxPulse/internal/domain/market"
	"FxPulse/internal/domain/models"
)

func TestEURUSDSentiment(t *testing.T) {
	idx := EURUSDSentiment(snap("EURUSD", levels{price: 1.08, fast: 1.07, mH: 1.12, mL: 1.03}))
	require.NotNil(t, idx)
	assert.Equal(t, models.SentimentStrong, idx.EURBias)
	assert.Equal(t, models.SentimentWeak, idx.USDBias)
	assert.Equal(t, models.ConfluenceHigh, idx.Confluence)

	idx = EURUSDSentiment(snap("EURUSD", levels{price: 1.07, fast: 1.06, mH: 1.12, mL: 1.03}))
	require.NotNil(t, idx)
	assert.Equal(t, models.SentimentWeak, idx.EURBias)
	assert.Equal(t, models.SentimentStrong, idx.USDBias)
	assert.Equal(t, models.ConfluenceLow, idx.Confluence)

	assert.Nil(t, EURUSDSentiment(snap("EURUSD", levels{price: 1.08, fast: 1.07})))
}

func opportunityMatrix() []models.CurrencyScore {
	return []models.CurrencyScore{
		{Currency: "EUR", Score: 10, Sentiment: models.SentimentStrong},
		{Currency: "GBP", Score: 9, Sentiment: models.SentimentStrong},
		{Currency: "JPY", Score: 8, Sentiment: models.SentimentStrong},
		{Currency: "AUD", Score: 5, Sentiment: models.SentimentNeutral},
		{Currency: "CHF", Score: 1, Sentiment: models.SentimentWeak},
		{Currency: "USD", Score: 0, Sentiment: models.SentimentWeak},
	}
}

func TestOpportunities_EURStrong(t *testing.T) {
	idx := models.EURUSDIndex{EURBias: models.SentimentStrong, USDBias: models.SentimentWeak}
	got := newEngine().Opportunities(idx, opportunityMatrix())

	want := []models.DerivedTradeOpportunity{
		{Pair: "EURCHF", Action: models.ActionBuy, Reason: "EUR Strong vs CHF Weak"},
		{Pair: "EURUSD", Action: models.ActionBuy, Reason: "EUR Strong vs USD Weak"},
		{Pair: "GBPUSD", Action: models.ActionBuy, Reason: "GBP Strong vs USD Weak"},
		{Pair: "USDJPY", Action: models.ActionSell, Reason: "JPY Strong vs USD Weak"},
	}
	assert.Equal(t, want, got)
}

func TestOpportunities_EURWeak(t *testing.T) {
	idx := models.EURUSDIndex{EURBias: models.SentimentWeak, USDBias: models.SentimentStrong}
	got := newEngine().Opportunities(idx, opportunityMatrix())

	want := []models.DerivedTradeOpportunity{
		{Pair: "EURGBP", Action: models.ActionSell, Reason: "GBP Strong vs EUR Weak"},
		{Pair: "EURJPY", Action: models.ActionSell, Reason: "JPY Strong vs EUR Weak"},
		{Pair: "USDCHF", Action: models.ActionBuy, Reason: "USD Strong vs CHF Weak"},
	}
	assert.Equal(t, want, got)
}

func TestUSDDashboard(t *testing.T) {
	batch := []models.PairSnapshot{
		snap("EURUSD", levels{price: 1.08, slow: 1.06, yH: 1.12, yL: 1.02}),
		snap("USDJPY", levels{price: 150, slow: 152, yH: 160, yL: 140}),
		snap("GBPUSD", levels{price: 1.27, slow: 1.26}),
	}
	e := newEngine()
	ranked, err := e.Rank(batch)
	require.NoError(t, err)

	rows := e.USDDashboard(batch, ranked)
	require.Len(t, rows, 2)

	assert.Equal(t, "USDJPY", rows[0].Pair)
	assert.Equal(t, models.ActionSell, rows[0].Action)
	assert.InDelta(t, 1000, rows[0].PotentialPips, 1e-6)
	assert.InDelta(t, 50, rows[0].Progress, 1e-6)

	assert.Equal(t, "EURUSD", rows[1].Pair)
	assert.Equal(t, models.ActionBuy, rows[1].Action)
	assert.InDelta(t, 60, rows[1].Progress, 1e-6)

	for _, r := range rows {
		assert.GreaterOrEqual(t, r.Progress, 0.0)
		assert.LessOrEqual(t, r.Progress, 100.0)
	}
}

func TestTicker(t *testing.T) {
	ticker := newEngine().Ticker(majorsBatch())
	require.Len(t, ticker, 28)

	byPair := map[string]models.CrossRate{}
	for _, r := range ticker {
		byPair[r.Pair] = r
		assert.True(t, r.Available, r.Pair)
	}
	assert.False(t, byPair["EURUSD"].IsCalculated)
	assert.True(t, byPair["EURJPY"].IsCalculated)
	assert.InDelta(t, 162, byPair["EURJPY"].Price, 1e-9)
	assert.Equal(t, 3, byPair["EURJPY"].Precision)
	assert.Equal(t, 5, byPair["EURGBP"].Precision)
}

func TestGuard(t *testing.T) {
	e := newEngine()
	assert.NoError(t, e.Guard(majorsBatch()))
	assert.ErrorIs(t, e.Guard(nil), models.ErrNoData)
	assert.ErrorIs(t, e.Guard([]models.PairSnapshot{snap("EURGBP", levels{price: 0.85})}), models.ErrNoData)
	assert.ErrorIs(t, e.Guard([]models.PairSnapshot{snap("EURUSD", levels{})}), models.ErrNoData)
}

func TestRun(t *testing.T) {
	batch := append(majorsBatch(), snap("EURGBP", levels{price: 0.85, slow: 0.80}))
	out, err := newEngine().Run(batch)
	require.NoError(t, err)

	assert.Len(t, out.Snapshots, 7, "crosses never reach the scoring stages")
	assert.Len(t, out.Ranked, 7)

	hot := out.HotPair
	assert.Equal(t, "USDJPY", hot.Pair)
	assert.Equal(t, models.SeverityExtreme, hot.Severity)
	assert.Equal(t, models.QualityPerfect, hot.SetupQuality)
	assert.Equal(t, models.BiasLong, hot.EffectiveBias)
	require.NotNil(t, hot.TradeSetup)
	assert.Equal(t, 1.23, hot.TradeSetup.RRRatio)
	assert.False(t, hot.TradeSetup.IsValid)
	assert.NotEmpty(t, hot.SuggestionSource)

	require.NotNil(t, out.RunnerUp)
	assert.Equal(t, "EURUSD", out.RunnerUp.Pair)
	assert.Equal(t, models.SeverityHigh, out.RunnerUp.Severity)
	assert.Nil(t, out.RunnerUp.TradeSetup)

	assert.Equal(t, market.JPY, out.FocusCurrency)
	assert.NotEmpty(t, out.FocusSentiment)

	require.NotNil(t, out.EURUSDIndex)
	assert.Equal(t, models.ConfluenceHigh, out.EURUSDIndex.Confluence)
	assert.NotNil(t, out.EURUSDTrades)
	assert.Len(t, out.Ticker, 28)
	assert.Len(t, out.Activity, 7)
	assert.Len(t, out.Strength, 8)
}

func TestRun_NoMajors(t *testing.T) {
	_, err := newEngine().Run([]models.PairSnapshot{snap("EURGBP", levels{price: 0.85})})
	assert.ErrorIs(t, err, models.ErrNoData)
}
