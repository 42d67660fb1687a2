package models

import "time"

// AnalysisResult is the full output of one analysis run.
// Note: no transport (http) concerns here beyond json field names.
type AnalysisResult struct {
	RunID                   string                    `json:"runId"`
	RawMarketData           []PairSnapshot            `json:"rawMarketData"`
	AnalysisTimestamp       time.Time                 `json:"analysisTimestamp"`
	RankedPairs             []DeviationRecord         `json:"rankedPairs"`
	HotPair                 VolatilityAlert           `json:"hotPair"`
	RunnerUpPair            *VolatilityAlert          `json:"runnerUpPair,omitempty"`
	FocusCurrency           string                    `json:"focusCurrency"`
	FocusCurrencyStrength   Sentiment                 `json:"focusCurrencyStrength,omitempty"`
	CurrencyStrengthRanking []CurrencyScore           `json:"currencyStrengthRanking"`
	ActivityMatrix          []ActivityScore           `json:"activityMatrix"`
	USDDashboardData        []USDPotential            `json:"usdDashboardData"`
	AIReasoning             string                    `json:"aiReasoning,omitempty"`
	EURUSDIndex             *EURUSDIndex              `json:"eurusdIndex,omitempty"`
	EURUSDDerivedTrades     []DerivedTradeOpportunity `json:"eurusdDerivedTrades"`
	Ticker                  []CrossRate               `json:"ticker"`
	Diagnostics             *Diagnostics              `json:"diagnostics,omitempty"`
}

// Corroboration is the annotation returned by the external reviewer of a run.
type Corroboration struct {
	HotPair               string    `json:"hotPair"`
	FocusCurrency         string    `json:"focusCurrency"`
	FocusCurrencyStrength Sentiment `json:"focusCurrencyStrength"`
	Reasoning             string    `json:"aiReasoning"`
}

// CorroborationRequest carries the batch and the locally computed hot pair.
type CorroborationRequest struct {
	Snapshots     []PairSnapshot
	HotPair       string
	EffectiveBias Bias
	SetupQuality  SetupQuality
}

// UniverseView lists the static currency and pair sets served by the API.
type UniverseView struct {
	Currencies []string `json:"currencies"`
	Priority   []string `json:"priority"`
	MajorPairs []string `json:"majorPairs"`
	ValidPairs []string `json:"validPairs"`
}
