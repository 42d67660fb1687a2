package signals

import (
	"fmt"

	"FxPulse/internal/domain/market"
	"FxPulse/internal/domain/models"
)

const maxDerived = 2

// Derive proposes up to two pairs that trade the hot pair's focus currency against
// currencies moving the other way. Breakout activity is preferred over strength.
func (e *Engine) Derive(hot models.VolatilityAlert, strength []models.CurrencyScore, activity []models.ActivityScore) ([]models.TradeSuggestion, models.SuggestionSource) {
	if hot.SetupQuality == models.QualityWaiting || len(strength) == 0 {
		return []models.TradeSuggestion{}, models.SourceStrength
	}

	focus := market.FocusCurrency(hot.Pair)
	reversal := hot.SetupQuality.IsReversal()
	focusStrong := hot.EffectiveBias == models.BiasLong
	if focus != market.Base(hot.Pair) {
		focusStrong = !focusStrong
	}
	if reversal {
		focusStrong = !focusStrong
	}

	candidates, source := activityCandidates(activity, focusStrong), models.SourceActivity
	if len(candidates) == 0 {
		candidates, source = strengthCandidates(strength, focusStrong), models.SourceStrength
	}

	picked := make([]market.Currency, 0, maxDerived)
	for _, c := range candidates {
		if c == focus || c == market.USD {
			continue
		}
		picked = append(picked, c)
		if len(picked) == maxDerived {
			break
		}
	}

	out := make([]models.TradeSuggestion, 0, len(picked))
	seen := make(map[string]struct{}, len(picked))
	for _, other := range picked {
		pair := e.u.PairOf(other, focus)
		if !e.u.IsValid(pair) {
			continue
		}
		if _, dup := seen[pair]; dup {
			continue
		}
		seen[pair] = struct{}{}

		action := models.ActionSell
		if focusStrong == (market.Base(pair) == focus) {
			action = models.ActionBuy
		}
		out = append(out, models.TradeSuggestion{
			Pair:        pair,
			Action:      action,
			IsTemporary: reversal,
			Reason:      derivedReason(focus, other, focusStrong, source),
		})
	}
	return out, source
}

func activityCandidates(activity []models.ActivityScore, focusStrong bool) []market.Currency {
	want := models.DirectionStrength
	if focusStrong {
		want = models.DirectionWeakness
	}
	var out []market.Currency
	for _, a := range activity {
		if a.Direction == want {
			out = append(out, market.Currency(a.Currency))
		}
	}
	return out
}

func strengthCandidates(strength []models.CurrencyScore, focusStrong bool) []market.Currency {
	want := models.SentimentStrong
	if focusStrong {
		want = models.SentimentWeak
	}
	var out []market.Currency
	for _, s := range strength {
		if s.Sentiment == want {
			out = append(out, market.Currency(s.Currency))
		}
	}
	return out
}

func derivedReason(focus, other market.Currency, focusStrong bool, source models.SuggestionSource) string {
	fs, os := "Weak", "Strong"
	if focusStrong {
		fs, os = "Strong", "Weak"
	}
	basis := "strength ranking"
	if source == models.SourceActivity {
		basis = "monthly breakout"
	}
	return fmt.Sprintf("%s %s vs %s %s (%s)", focus, fs, other, os, basis)
}
