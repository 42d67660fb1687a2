package models

// Bias is a trade direction.
type Bias string

const (
	BiasLong  Bias = "Long"
	BiasShort Bias = "Short"
)

// Opposite returns the reverse direction.
func (b Bias) Opposite() Bias {
	if b == BiasLong {
		return BiasShort
	}
	return BiasLong
}

// Trend labels the primary bias in ranking output.
type Trend string

const (
	TrendBullish Trend = "Bullish"
	TrendBearish Trend = "Bearish"
)

// SetupQuality grades how well the short-term position agrees with the primary bias.
type SetupQuality string

const (
	QualityPerfect       SetupQuality = "PERFECT"
	QualityMixed         SetupQuality = "MIXED"
	QualityWaiting       SetupQuality = "WAITING"
	QualityTemporarySell SetupQuality = "TEMPORARY_SELL"
	QualityTemporaryBuy  SetupQuality = "TEMPORARY_BUY"
)

// IsReversal reports whether the quality flipped the primary bias.
func (q SetupQuality) IsReversal() bool {
	return q == QualityTemporarySell || q == QualityTemporaryBuy
}

type Sentiment string

const (
	SentimentStrong  Sentiment = "Strong"
	SentimentNeutral Sentiment = "Neutral"
	SentimentWeak    Sentiment = "Weak"
)

type ActivityDirection string

const (
	DirectionStrength ActivityDirection = "Strength"
	DirectionWeakness ActivityDirection = "Weakness"
	DirectionMixed    ActivityDirection = "Mixed"
	DirectionInactive ActivityDirection = "Inactive"
)

type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// ActionFor maps a bias to the order side that trades it.
func ActionFor(b Bias) Action {
	if b == BiasLong {
		return ActionBuy
	}
	return ActionSell
}

type TradeStatus string

const (
	StatusActive  TradeStatus = "ACTIVE"
	StatusWaiting TradeStatus = "WAITING"
	StatusInvalid TradeStatus = "INVALID"
)

type Severity string

const (
	SeverityExtreme  Severity = "Extreme"
	SeverityHigh     Severity = "High"
	SeverityModerate Severity = "Moderate"
)

type SuggestionSource string

const (
	SourceActivity SuggestionSource = "ACTIVITY"
	SourceStrength SuggestionSource = "STRENGTH"
)

type Confluence string

const (
	ConfluenceHigh Confluence = "High"
	ConfluenceLow  Confluence = "Low"
)

// PairSnapshot is one pair's price levels for a single analysis run.
type PairSnapshot struct {
	Symbol        string  `json:"symbol"`
	CurrentPrice  float64 `json:"currentPrice"`
	SMASlow       float64 `json:"sma135"`
	SMAFast       float64 `json:"sma27"`
	WeeklyHigh    float64 `json:"weeklyHigh"`
	WeeklyLow     float64 `json:"weeklyLow"`
	MonthlyHigh   float64 `json:"monthlyHigh"`
	MonthlyLow    float64 `json:"monthlyLow"`
	YearlyHigh    float64 `json:"yearlyHigh"`
	YearlyLow     float64 `json:"yearlyLow"`
	WeeklyMedian  float64 `json:"weeklyMedian"`
	MonthlyMedian float64 `json:"monthlyMedian"`
}

// WithMedians returns a copy with the weekly and monthly medians derived from their ranges.
func (s PairSnapshot) WithMedians() PairSnapshot {
	s.WeeklyMedian = median(s.WeeklyHigh, s.WeeklyLow)
	s.MonthlyMedian = median(s.MonthlyHigh, s.MonthlyLow)
	return s
}

func median(high, low float64) float64 {
	if high <= 0 || low <= 0 {
		return 0
	}
	return (high + low) / 2
}

// DeviationRecord is one row of the ranking table.
type DeviationRecord struct {
	Symbol              string       `json:"symbol"`
	PipDifference       float64      `json:"pipDifference"`
	MonthlyRangePips    float64      `json:"monthlyRangePips"`
	YearlyPotentialPips float64      `json:"yearlyPotentialPips"`
	IsOverExtended      bool         `json:"isOverExtended"`
	Type                Trend        `json:"type"`
	Bias                Bias         `json:"bias"`
	EffectiveBias       Bias         `json:"effectiveBias"`
	SetupQuality        SetupQuality `json:"setupQuality"`
}

type CurrencyScore struct {
	Currency  string    `json:"currency"`
	Score     float64   `json:"score"`
	Sentiment Sentiment `json:"sentiment"`
	Delta     float64   `json:"delta"`
}

type ActivityScore struct {
	Currency  string            `json:"currency"`
	Score     float64           `json:"score"`
	Direction ActivityDirection `json:"direction"`
}

type TradeSetup struct {
	Entry      float64     `json:"entry"`
	StopLoss   float64     `json:"stopLoss"`
	Target     float64     `json:"target"`
	RiskPips   float64     `json:"riskPips"`
	RewardPips float64     `json:"rewardPips"`
	RRRatio    float64     `json:"rrRatio"`
	IsValid    bool        `json:"isValid"`
	Status     TradeStatus `json:"status"`
	Note       string      `json:"note,omitempty"`
}

type TradeSuggestion struct {
	Pair        string `json:"pair"`
	Action      Action `json:"action"`
	IsTemporary bool   `json:"isTemporary,omitempty"`
	Reason      string `json:"reason"`
}

// VolatilityAlert describes a ranked pair as a trade candidate.
type VolatilityAlert struct {
	Pair             string            `json:"pair"`
	Deviation        float64           `json:"deviation"`
	Bias             Bias              `json:"bias"`
	EffectiveBias    Bias              `json:"effectiveBias"`
	Severity         Severity          `json:"severity"`
	SetupQuality     SetupQuality      `json:"setupQuality"`
	TradeSetup       *TradeSetup       `json:"tradeSetup,omitempty"`
	DerivedPairs     []TradeSuggestion `json:"derivedPairs,omitempty"`
	SuggestionSource SuggestionSource  `json:"suggestionSource,omitempty"`
}

type EURUSDIndex struct {
	EURBias    Sentiment  `json:"eurBias"`
	USDBias    Sentiment  `json:"usdBias"`
	Confluence Confluence `json:"confluence"`
}

type DerivedTradeOpportunity struct {
	Pair   string `json:"pair"`
	Action Action `json:"action"`
	Reason string `json:"reason"`
}

type USDPotential struct {
	Pair          string  `json:"pair"`
	Action        Action  `json:"action"`
	PotentialPips float64 `json:"potentialPips"`
	Progress      float64 `json:"progress"`
}

// CrossRate is one ticker entry. Available is false when no legs were known.
type CrossRate struct {
	Pair         string  `json:"pair"`
	Price        float64 `json:"price"`
	IsCalculated bool    `json:"isCalculated"`
	Available    bool    `json:"available"`
	Precision    int     `json:"precision"`
}

type Diagnostics struct {
	MatchedInstruments []string `json:"matchedInstruments"`
	UnmatchedEntries   []string `json:"unmatchedEntries"`
}
