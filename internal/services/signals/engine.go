// Package signals turns a batch of pair snapshots into ranked trading signals.
// Every stage is a pure function of its inputs.
package signals

import (
	"github.com/shopspring/decimal"

	"FxPulse/internal/domain/market"
	"FxPulse/internal/domain/models"
)

const (
	overExtendedPips  = 200.0
	stopLossPips      = 50.0
	targetBufferPips  = 15.0
	minRewardToRisk   = 2.0
	strongAbove       = 7.0
	weakBelow         = 3.0
	strengthScaleMax  = 10.0
	slowWeight        = 0.7
	fastWeight        = 0.3
	strengthDampening = 10.0
)

// Engine runs the derivation stages over one universe.
type Engine struct {
	u *market.Universe
}

func NewEngine(u *market.Universe) *Engine {
	if u == nil {
		u = market.DefaultUniverse()
	}
	return &Engine{u: u}
}

func (e *Engine) Universe() *market.Universe { return e.u }

// Output holds every numeric product of one run. Annotation fields are filled later.
type Output struct {
	Snapshots      []models.PairSnapshot
	Ranked         []models.DeviationRecord
	HotPair        models.VolatilityAlert
	RunnerUp       *models.VolatilityAlert
	Strength       []models.CurrencyScore
	Activity       []models.ActivityScore
	USDDashboard   []models.USDPotential
	EURUSDIndex    *models.EURUSDIndex
	EURUSDTrades   []models.DerivedTradeOpportunity
	Ticker         []models.CrossRate
	FocusCurrency  market.Currency
	FocusSentiment models.Sentiment
}

// Filter keeps the major pairs of a batch, in input order.
func (e *Engine) Filter(batch []models.PairSnapshot) []models.PairSnapshot {
	out := make([]models.PairSnapshot, 0, len(batch))
	for _, s := range batch {
		if e.u.IsMajor(s.Symbol) {
			out = append(out, s)
		}
	}
	return out
}

// Guard rejects a batch that has no major pair with a positive price.
func (e *Engine) Guard(batch []models.PairSnapshot) error {
	for _, s := range batch {
		if e.u.IsMajor(s.Symbol) && s.CurrentPrice > 0 {
			return nil
		}
	}
	return models.ErrNoData
}

// Run executes every stage in dependency order.
func (e *Engine) Run(batch []models.PairSnapshot) (*Output, error) {
	snaps := e.Filter(batch)
	ranked, err := e.Rank(snaps)
	if err != nil {
		return nil, err
	}
	strength := e.Strength(snaps)
	activity := e.Activity(snaps)

	bySymbol := indexBySymbol(snaps)
	hot := e.Alert(ranked[0], bySymbol[ranked[0].Symbol])
	hot.DerivedPairs, hot.SuggestionSource = e.Derive(hot, strength, activity)

	out := &Output{
		Snapshots:    snaps,
		Ranked:       ranked,
		HotPair:      hot,
		Strength:     strength,
		Activity:     activity,
		USDDashboard: e.USDDashboard(snaps, ranked),
		Ticker:       e.Ticker(snaps),
	}
	if len(ranked) > 1 {
		// the runner-up is informational and carries no setup
		ru := e.Alert(ranked[1], bySymbol[ranked[1].Symbol])
		ru.TradeSetup = nil
		out.RunnerUp = &ru
	}
	if eu, ok := bySymbol["EURUSD"]; ok {
		if idx := EURUSDSentiment(eu); idx != nil {
			out.EURUSDIndex = idx
			out.EURUSDTrades = e.Opportunities(*idx, strength)
		}
	}
	if out.EURUSDTrades == nil {
		out.EURUSDTrades = []models.DerivedTradeOpportunity{}
	}
	out.FocusCurrency = market.FocusCurrency(hot.Pair)
	out.FocusSentiment = sentimentOf(strength, out.FocusCurrency)
	return out, nil
}

// Alert frames a ranked record as a trade candidate with its setup.
func (e *Engine) Alert(rec models.DeviationRecord, snap models.PairSnapshot) models.VolatilityAlert {
	sev := models.SeverityHigh
	if rec.PipDifference > overExtendedPips {
		sev = models.SeverityExtreme
	}
	setup := Setup(snap, rec.EffectiveBias)
	return models.VolatilityAlert{
		Pair:          rec.Symbol,
		Deviation:     rec.PipDifference,
		Bias:          rec.Bias,
		EffectiveBias: rec.EffectiveBias,
		Severity:      sev,
		SetupQuality:  rec.SetupQuality,
		TradeSetup:    &setup,
	}
}

// PresentedStrength drops USD from the strength ranking for display.
func PresentedStrength(all []models.CurrencyScore) []models.CurrencyScore {
	out := make([]models.CurrencyScore, 0, len(all))
	for _, c := range all {
		if c.Currency != string(market.USD) {
			out = append(out, c)
		}
	}
	return out
}

func indexBySymbol(snaps []models.PairSnapshot) map[string]models.PairSnapshot {
	m := make(map[string]models.PairSnapshot, len(snaps))
	for _, s := range snaps {
		if _, dup := m[s.Symbol]; !dup {
			m[s.Symbol] = s
		}
	}
	return m
}

func sentimentOf(scores []models.CurrencyScore, c market.Currency) models.Sentiment {
	for _, s := range scores {
		if s.Currency == string(c) {
			return s.Sentiment
		}
	}
	return ""
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
