package signals

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FxPulse/internal/domain/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		primary models.Bias
		pos     Position
		bias    models.Bias
		quality models.SetupQuality
	}{
		{"long above median and fast", models.BiasLong, Position{Price: 1.08, MonthlyMedian: 1.075, WeeklyMedian: 1.07, FastMA: 1.07}, models.BiasLong, models.QualityPerfect},
		{"long below both medians flips", models.BiasLong, Position{Price: 1.07, MonthlyMedian: 1.075, WeeklyMedian: 1.08, FastMA: 1.06}, models.BiasShort, models.QualityTemporarySell},
		{"long below monthly only", models.BiasLong, Position{Price: 1.07, MonthlyMedian: 1.075, WeeklyMedian: 1.06, FastMA: 1.06}, models.BiasLong, models.QualityWaiting},
		{"long above median under fast", models.BiasLong, Position{Price: 1.08, MonthlyMedian: 1.075, WeeklyMedian: 1.07, FastMA: 1.09}, models.BiasLong, models.QualityMixed},
		{"long at median", models.BiasLong, Position{Price: 150, MonthlyMedian: 150, WeeklyMedian: 151, FastMA: 149}, models.BiasLong, models.QualityMixed},
		{"short below median and fast", models.BiasShort, Position{Price: 1.07, MonthlyMedian: 1.075, WeeklyMedian: 1.08, FastMA: 1.08}, models.BiasShort, models.QualityPerfect},
		{"short above both medians flips", models.BiasShort, Position{Price: 1.08, MonthlyMedian: 1.075, WeeklyMedian: 1.07, FastMA: 1.09}, models.BiasLong, models.QualityTemporaryBuy},
		{"short above monthly only", models.BiasShort, Position{Price: 1.08, MonthlyMedian: 1.075, WeeklyMedian: 1.09, FastMA: 1.09}, models.BiasShort, models.QualityWaiting},
		{"short below median over fast", models.BiasShort, Position{Price: 1.07, MonthlyMedian: 1.075, WeeklyMedian: 1.08, FastMA: 1.06}, models.BiasShort, models.QualityMixed},
		{"short at median", models.BiasShort, Position{Price: 150, MonthlyMedian: 150, WeeklyMedian: 149, FastMA: 151}, models.BiasShort, models.QualityMixed},
		{"unknown median", models.BiasShort, Position{Price: 1.08, FastMA: 1.09}, models.BiasShort, models.QualityMixed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bias, q := Classify(tt.primary, tt.pos)
			assert.Equal(t, tt.bias, bias)
			assert.Equal(t, tt.quality, q)
		})
	}
}

func TestDeviation_MedianBoundaryIsStrict(t *testing.T) {
	// monthly median is exactly 150.0
	long := Deviation(snap("USDJPY", levels{price: 150, slow: 149, fast: 149.5, wH: 151, wL: 147, mH: 152, mL: 148}))
	require.Equal(t, 150.0, 0.5*(152.0+148.0))
	assert.Equal(t, models.BiasLong, long.Bias)
	assert.Equal(t, models.QualityMixed, long.SetupQuality)
	assert.Equal(t, models.BiasLong, long.EffectiveBias)

	short := Deviation(snap("USDJPY", levels{price: 150, slow: 151, fast: 150.5, wH: 153, wL: 149, mH: 152, mL: 148}))
	assert.Equal(t, models.BiasShort, short.Bias)
	assert.Equal(t, models.QualityMixed, short.SetupQuality)
}

func TestDeviation_EURUSDScenario(t *testing.T) {
	s := snap("EURUSD", levels{price: 1.08, slow: 1.06, fast: 1.075, wH: 1.09, wL: 1.07, mH: 1.12, mL: 1.03})
	d := Deviation(s)

	assert.InDelta(t, 200, d.PipDifference, 1e-6)
	assert.InDelta(t, 900, d.MonthlyRangePips, 1e-6)
	assert.Equal(t, models.BiasLong, d.Bias)
	assert.Equal(t, models.TrendBullish, d.Type)
	// 1.0800 sits above the 1.0750 monthly median, so the strict comparison passes
	assert.Equal(t, models.QualityPerfect, d.SetupQuality)
	assert.Zero(t, d.YearlyPotentialPips)
}

func TestYearlyPotential(t *testing.T) {
	s := snap("EURUSD", levels{price: 1.08, yH: 1.12, yL: 1.02})
	assert.InDelta(t, 400, YearlyPotential(s, models.BiasLong), 1e-6)
	assert.InDelta(t, 600, YearlyPotential(s, models.BiasShort), 1e-6)

	past := snap("EURUSD", levels{price: 1.13, yH: 1.12, yL: 1.02})
	assert.Zero(t, YearlyPotential(past, models.BiasLong))

	missing := snap("EURUSD", levels{price: 1.08, yH: 1.12})
	assert.Zero(t, YearlyPotential(missing, models.BiasLong))
}

func TestRank_SortedPermutation(t *testing.T) {
	batch := majorsBatch()
	ranked, err := newEngine().Rank(batch)
	require.NoError(t, err)
	require.Len(t, ranked, len(batch))

	assert.True(t, sort.SliceIsSorted(ranked, func(i, j int) bool {
		return ranked[i].PipDifference > ranked[j].PipDifference
	}))

	in := make([]string, 0, len(batch))
	for _, s := range batch {
		in = append(in, s.Symbol)
	}
	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Symbol)
	}
	assert.ElementsMatch(t, in, out)
	assert.Equal(t, "USDJPY", ranked[0].Symbol)
	assert.True(t, ranked[0].IsOverExtended)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	same := levels{price: 1.1, slow: 1.09}
	batch := []models.PairSnapshot{snap("GBPUSD", same), snap("EURUSD", same), snap("NZDUSD", same)}

	ranked, err := newEngine().Rank(batch)
	require.NoError(t, err)
	assert.Equal(t, "GBPUSD", ranked[0].Symbol)
	assert.Equal(t, "EURUSD", ranked[1].Symbol)
	assert.Equal(t, "NZDUSD", ranked[2].Symbol)
}

func TestRank_Empty(t *testing.T) {
	_, err := newEngine().Rank(nil)
	assert.ErrorIs(t, err, models.ErrNoData)
}
