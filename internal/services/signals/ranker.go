package signals

import (
	"math"
	"sort"

	"FxPulse/internal/domain/market"
	"FxPulse/internal/domain/models"
)

// Position is where the price sits relative to the levels that grade a setup.
type Position struct {
	Price         float64
	MonthlyMedian float64
	WeeklyMedian  float64
	FastMA        float64
}

// Classify maps a primary bias and a price position to the effective bias and setup quality.
// An unknown monthly median leaves the bias unchanged and grades the setup MIXED.
func Classify(primary models.Bias, p Position) (models.Bias, models.SetupQuality) {
	if p.MonthlyMedian <= 0 {
		return primary, models.QualityMixed
	}
	if primary == models.BiasLong {
		switch {
		case p.Price > p.MonthlyMedian && p.Price > p.FastMA:
			return primary, models.QualityPerfect
		case p.Price < p.MonthlyMedian && p.Price < p.WeeklyMedian:
			return models.BiasShort, models.QualityTemporarySell
		case p.Price < p.MonthlyMedian:
			return primary, models.QualityWaiting
		}
		return primary, models.QualityMixed
	}
	switch {
	case p.Price < p.MonthlyMedian && p.Price < p.FastMA:
		return primary, models.QualityPerfect
	case p.Price > p.MonthlyMedian && p.Price > p.WeeklyMedian:
		return models.BiasLong, models.QualityTemporaryBuy
	case p.Price > p.MonthlyMedian:
		return primary, models.QualityWaiting
	}
	return primary, models.QualityMixed
}

// Deviation builds the ranking record of one snapshot.
func Deviation(s models.PairSnapshot) models.DeviationRecord {
	mult := market.PipMultiplier(s.Symbol)
	diff := math.Abs(s.CurrentPrice-s.SMASlow) * mult

	primary, trend := models.BiasShort, models.TrendBearish
	if s.CurrentPrice > s.SMASlow {
		primary, trend = models.BiasLong, models.TrendBullish
	}
	eff, quality := Classify(primary, Position{
		Price:         s.CurrentPrice,
		MonthlyMedian: s.MonthlyMedian,
		WeeklyMedian:  s.WeeklyMedian,
		FastMA:        s.SMAFast,
	})

	return models.DeviationRecord{
		Symbol:              s.Symbol,
		PipDifference:       diff,
		MonthlyRangePips:    math.Abs(s.MonthlyHigh-s.MonthlyLow) * mult,
		YearlyPotentialPips: YearlyPotential(s, eff),
		IsOverExtended:      diff > overExtendedPips,
		Type:                trend,
		Bias:                primary,
		EffectiveBias:       eff,
		SetupQuality:        quality,
	}
}

// YearlyPotential is the pip distance left to the yearly extreme in the bias direction.
// Zero when either yearly bound is unknown or the extreme was already passed.
func YearlyPotential(s models.PairSnapshot, bias models.Bias) float64 {
	if s.YearlyHigh <= 0 || s.YearlyLow <= 0 {
		return 0
	}
	mult := market.PipMultiplier(s.Symbol)
	switch {
	case bias == models.BiasLong && s.CurrentPrice < s.YearlyHigh:
		return (s.YearlyHigh - s.CurrentPrice) * mult
	case bias == models.BiasShort && s.CurrentPrice > s.YearlyLow:
		return (s.CurrentPrice - s.YearlyLow) * mult
	}
	return 0
}

// Rank orders the batch by pip distance from the slow average, widest first.
// Equal distances keep input order. Index 0 is the hot pair.
func (e *Engine) Rank(snaps []models.PairSnapshot) ([]models.DeviationRecord, error) {
	if len(snaps) == 0 {
		return nil, models.ErrNoData
	}
	out := make([]models.DeviationRecord, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, Deviation(s))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PipDifference > out[j].PipDifference
	})
	return out, nil
}
