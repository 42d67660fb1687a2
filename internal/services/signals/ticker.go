package signals

import (
	"FxPulse/internal/domain/market"
	"FxPulse/internal/domain/models"
)

// Ticker prices the whole tradable universe from the batch, synthesizing
// crosses from USD legs.
func (e *Engine) Ticker(snaps []models.PairSnapshot) []models.CrossRate {
	rates := make(market.Rates, len(snaps))
	for _, s := range snaps {
		if s.CurrentPrice > 0 {
			rates[s.Symbol] = s.CurrentPrice
		}
	}
	out := make([]models.CrossRate, 0, len(e.u.ValidPairs))
	for _, pair := range e.u.ValidPairs {
		price, calc, ok := market.CrossRate(pair, rates)
		out = append(out, models.CrossRate{
			Pair:         pair,
			Price:        price,
			IsCalculated: calc,
			Available:    ok,
			Precision:    market.DisplayPrecision(pair),
		})
	}
	return out
}
