package signals

import (
	"sort"
	"strings"

	"FxPulse/internal/domain/market"
	"FxPulse/internal/domain/models"
)

// USDDashboard expresses the yearly potential of every USD pair as progress
// through its yearly range, lowest progress first.
func (e *Engine) USDDashboard(snaps []models.PairSnapshot, ranked []models.DeviationRecord) []models.USDPotential {
	bySymbol := make(map[string]models.DeviationRecord, len(ranked))
	for _, r := range ranked {
		if _, dup := bySymbol[r.Symbol]; !dup {
			bySymbol[r.Symbol] = r
		}
	}

	out := make([]models.USDPotential, 0, len(snaps))
	for _, s := range snaps {
		if !strings.Contains(s.Symbol, string(market.USD)) || s.YearlyHigh <= 0 || s.YearlyLow <= 0 {
			continue
		}
		rec, ok := bySymbol[s.Symbol]
		if !ok {
			continue
		}
		span := (s.YearlyHigh - s.YearlyLow) * market.PipMultiplier(s.Symbol)
		var progress float64
		if span > 0 {
			progress = 100 - rec.YearlyPotentialPips/span*100
		}
		out = append(out, models.USDPotential{
			Pair:          s.Symbol,
			Action:        models.ActionFor(rec.EffectiveBias),
			PotentialPips: rec.YearlyPotentialPips,
			Progress:      progress,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Progress < out[j].Progress })
	return out
}
