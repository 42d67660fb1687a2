package signals

import (
	"sort"

	"FxPulse/internal/domain/market"
	"FxPulse/internal/domain/models"
)

// Activity attributes monthly-range breakouts to the currencies of each pair.
// USD is the numeraire and is never scored.
func (e *Engine) Activity(snaps []models.PairSnapshot) []models.ActivityScore {
	score := make(map[market.Currency]float64, len(e.u.Currencies))
	net := make(map[market.Currency]int, len(e.u.Currencies))

	for _, s := range snaps {
		if s.MonthlyHigh <= s.MonthlyLow {
			continue
		}
		mult := market.PipMultiplier(s.Symbol)
		rangePips := (s.MonthlyHigh - s.MonthlyLow) * mult

		var breakout float64
		var dir int
		switch {
		case s.CurrentPrice > s.MonthlyHigh:
			breakout, dir = (s.CurrentPrice-s.MonthlyHigh)*mult, 1
		case s.CurrentPrice < s.MonthlyLow:
			breakout, dir = (s.MonthlyLow-s.CurrentPrice)*mult, -1
		}
		if breakout <= 0 || rangePips <= 0 {
			continue
		}

		pct := breakout / rangePips * 100
		base, quote := market.Base(s.Symbol), market.Quote(s.Symbol)
		if e.u.Has(base) {
			score[base] += pct
			net[base] += dir
		}
		if e.u.Has(quote) {
			score[quote] += pct
			net[quote] -= dir
		}
	}

	out := make([]models.ActivityScore, 0, len(e.u.Currencies))
	for _, c := range e.u.Currencies {
		if c == market.USD {
			continue
		}
		out = append(out, models.ActivityScore{
			Currency:  string(c),
			Score:     score[c],
			Direction: directionOf(score[c], net[c]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func directionOf(score float64, net int) models.ActivityDirection {
	switch {
	case score == 0:
		return models.DirectionInactive
	case net > 0:
		return models.DirectionStrength
	case net < 0:
		return models.DirectionWeakness
	}
	return models.DirectionMixed
}
