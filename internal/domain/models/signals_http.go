package models

import "strings"

// Requests for analysis HTTP endpoints. Defined in domain for consistency and reuse.

type PairInput struct {
	Symbol       string  `json:"symbol" validate:"required,min=6,max=7"`
	CurrentPrice float64 `json:"currentPrice" validate:"gte=0"`
	SMASlow      float64 `json:"sma135" validate:"gte=0"`
	SMAFast      float64 `json:"sma27" validate:"gte=0"`
	WeeklyHigh   float64 `json:"weeklyHigh" validate:"gte=0"`
	WeeklyLow    float64 `json:"weeklyLow" validate:"gte=0"`
	MonthlyHigh  float64 `json:"monthlyHigh" validate:"gte=0"`
	MonthlyLow   float64 `json:"monthlyLow" validate:"gte=0"`
	YearlyHigh   float64 `json:"yearlyHigh" validate:"gte=0"`
	YearlyLow    float64 `json:"yearlyLow" validate:"gte=0"`
}

// Snapshot converts the input row, deriving the medians.
func (p PairInput) Snapshot(symbol string) PairSnapshot {
	return PairSnapshot{
		Symbol:       symbol,
		CurrentPrice: p.CurrentPrice,
		SMASlow:      p.SMASlow,
		SMAFast:      p.SMAFast,
		WeeklyHigh:   p.WeeklyHigh,
		WeeklyLow:    p.WeeklyLow,
		MonthlyHigh:  p.MonthlyHigh,
		MonthlyLow:   p.MonthlyLow,
		YearlyHigh:   p.YearlyHigh,
		YearlyLow:    p.YearlyLow,
	}.WithMedians()
}

type AnalyzeRequest struct {
	Pairs []PairInput `json:"pairs" validate:"required,min=1,max=64,dive"`
	// Corroborate toggles the external annotation call for this run.
	Corroborate *bool `json:"corroborate" default:"true"`
}

// WantsCorroboration is true unless the caller explicitly opted out.
func (r *AnalyzeRequest) WantsCorroboration() bool {
	return r.Corroborate == nil || *r.Corroborate
}

// Labels returns the trimmed symbol of every input row, in order.
func (r *AnalyzeRequest) Labels() []string {
	out := make([]string, 0, len(r.Pairs))
	for _, p := range r.Pairs {
		out = append(out, strings.TrimSpace(p.Symbol))
	}
	return out
}
