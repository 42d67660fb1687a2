package signals

import (
	"FxPulse/internal/domain/market"
	"FxPulse/internal/domain/models"
)

type levels struct {
	price, slow, fast float64
	wH, wL            float64
	mH, mL            float64
	yH, yL            float64
}

func snap(symbol string, l levels) models.PairSnapshot {
	return models.PairSnapshot{
		Symbol:       symbol,
		CurrentPrice: l.price,
		SMASlow:      l.slow,
		SMAFast:      l.fast,
		WeeklyHigh:   l.wH,
		WeeklyLow:    l.wL,
		MonthlyHigh:  l.mH,
		MonthlyLow:   l.mL,
		YearlyHigh:   l.yH,
		YearlyLow:    l.yL,
	}.WithMedians()
}

// majorsBatch is a full batch where USDJPY is stretched furthest from its slow average.
func majorsBatch() []models.PairSnapshot {
	return []models.PairSnapshot{
		snap("EURUSD", levels{price: 1.08, slow: 1.061, fast: 1.075, wH: 1.09, wL: 1.07, mH: 1.12, mL: 1.03, yH: 1.12, yL: 1.02}),
		snap("GBPUSD", levels{price: 1.27, slow: 1.26, fast: 1.265, wH: 1.28, wL: 1.26, mH: 1.29, mL: 1.25, yH: 1.31, yL: 1.20}),
		snap("USDJPY", levels{price: 150, slow: 147, fast: 149, wH: 151, wL: 149, mH: 152, mL: 146, yH: 152, yL: 140}),
		snap("AUDUSD", levels{price: 0.66, slow: 0.665, fast: 0.662}),
		snap("USDCAD", levels{price: 1.36, slow: 1.35, fast: 1.355}),
		snap("USDCHF", levels{price: 0.90, slow: 0.89, fast: 0.895}),
		snap("NZDUSD", levels{price: 0.60, slow: 0.61, fast: 0.605}),
	}
}

func newEngine() *Engine { return NewEngine(market.DefaultUniverse()) }
