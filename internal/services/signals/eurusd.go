package signals

import (
	"fmt"

	"FxPulse/internal/domain/market"
	"FxPulse/internal/domain/models"
)

// EURUSDSentiment reads EUR and USD bias from EURUSD against its monthly median.
// Nil when the median is unknown.
func EURUSDSentiment(s models.PairSnapshot) *models.EURUSDIndex {
	if s.MonthlyMedian <= 0 {
		return nil
	}
	above := s.CurrentPrice > s.MonthlyMedian
	idx := &models.EURUSDIndex{
		EURBias:    models.SentimentWeak,
		USDBias:    models.SentimentStrong,
		Confluence: models.ConfluenceLow,
	}
	if above {
		idx.EURBias, idx.USDBias = models.SentimentStrong, models.SentimentWeak
	}
	if (above && s.CurrentPrice > s.SMAFast) || (!above && s.CurrentPrice < s.SMAFast) {
		idx.Confluence = models.ConfluenceHigh
	}
	return idx
}

// Opportunities pairs EUR and USD with every currency the strength matrix marks
// as their opposite. Invalid pairs are dropped, first occurrence of a pair wins.
func (e *Engine) Opportunities(idx models.EURUSDIndex, strength []models.CurrencyScore) []models.DerivedTradeOpportunity {
	var out []models.DerivedTradeOpportunity
	out = append(out, e.against(market.EUR, idx.EURBias, strength)...)
	out = append(out, e.against(market.USD, idx.USDBias, strength)...)

	seen := make(map[string]struct{}, len(out))
	kept := make([]models.DerivedTradeOpportunity, 0, len(out))
	for _, op := range out {
		if !e.u.IsValid(op.Pair) {
			continue
		}
		if _, dup := seen[op.Pair]; dup {
			continue
		}
		seen[op.Pair] = struct{}{}
		kept = append(kept, op)
	}
	return kept
}

// against trades anchor versus each currency holding the opposite sentiment.
// The action buys whichever side is strong.
func (e *Engine) against(anchor market.Currency, bias models.Sentiment, strength []models.CurrencyScore) []models.DerivedTradeOpportunity {
	anchorStrong := bias == models.SentimentStrong
	want := models.SentimentStrong
	if anchorStrong {
		want = models.SentimentWeak
	}

	var out []models.DerivedTradeOpportunity
	for _, s := range strength {
		other := market.Currency(s.Currency)
		if s.Sentiment != want || other == anchor {
			continue
		}
		pair := e.u.PairOf(anchor, other)
		baseIsAnchor := market.Base(pair) == anchor

		action := models.ActionSell
		if baseIsAnchor == anchorStrong {
			action = models.ActionBuy
		}
		strong, weak := other, anchor
		if anchorStrong {
			strong, weak = anchor, other
		}
		out = append(out, models.DerivedTradeOpportunity{
			Pair:   pair,
			Action: action,
			Reason: fmt.Sprintf("%s Strong vs %s Weak", strong, weak),
		})
	}
	return out
}
