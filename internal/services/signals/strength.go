package signals

import (
	"sort"

	"FxPulse/internal/domain/market"
	"FxPulse/internal/domain/models"
)

// Strength scores every universe currency from weighted moving-average deviations,
// normalized onto [0,10]. Snapshots missing either average are skipped.
func (e *Engine) Strength(snaps []models.PairSnapshot) []models.CurrencyScore {
	raw := make(map[market.Currency]float64, len(e.u.Currencies))
	for _, c := range e.u.Currencies {
		raw[c] = 0
	}
	for _, s := range snaps {
		if s.SMASlow == 0 || s.SMAFast == 0 {
			continue
		}
		mult := market.PipMultiplier(s.Symbol)
		diffSlow := (s.CurrentPrice - s.SMASlow) * mult
		diffFast := (s.CurrentPrice - s.SMAFast) * mult
		w := (slowWeight*diffSlow + fastWeight*diffFast) / strengthDampening

		if b := market.Base(s.Symbol); e.u.Has(b) {
			raw[b] += w
		}
		if q := market.Quote(s.Symbol); e.u.Has(q) {
			raw[q] -= w
		}
	}
	if len(e.u.Currencies) == 0 {
		return nil
	}

	lo, hi := raw[e.u.Currencies[0]], raw[e.u.Currencies[0]]
	for _, c := range e.u.Currencies {
		lo = minf(lo, raw[c])
		hi = maxf(hi, raw[c])
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	out := make([]models.CurrencyScore, 0, len(e.u.Currencies))
	for _, c := range e.u.Currencies {
		norm := (raw[c] - lo) / span * strengthScaleMax
		out = append(out, models.CurrencyScore{
			Currency:  string(c),
			Score:     round(norm, 1),
			Sentiment: SentimentFor(norm),
			Delta:     raw[c],
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// SentimentFor classifies a normalized score. Both thresholds are strict.
func SentimentFor(score float64) models.Sentiment {
	switch {
	case score > strongAbove:
		return models.SentimentStrong
	case score < weakBelow:
		return models.SentimentWeak
	}
	return models.SentimentNeutral
}

func minf(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func maxf(a, b float64) float64 {
	if b > a {
		return b
	}
	return a
}
