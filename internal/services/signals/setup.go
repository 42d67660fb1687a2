package signals

import (
	"math"

	"FxPulse/internal/domain/market"
	"FxPulse/internal/domain/models"
)

const missingLevelsNote = "Missing key level data (SMA27 or Monthly Range)."

// Setup frames entry, stop and target for a snapshot traded in the given direction.
// Missing levels give an INVALID setup with a note rather than an error.
func Setup(s models.PairSnapshot, bias models.Bias) models.TradeSetup {
	if s.SMAFast <= 0 || s.MonthlyHigh <= 0 || s.MonthlyLow <= 0 {
		return models.TradeSetup{
			Entry:  s.CurrentPrice,
			Status: models.StatusInvalid,
			Note:   missingLevelsNote,
		}
	}

	mult := market.PipMultiplier(s.Symbol)
	stopDist := stopLossPips / mult
	buffer := targetBufferPips / mult

	var target, stop float64
	if bias == models.BiasLong {
		target = s.MonthlyHigh - buffer
		stop = s.SMAFast - stopDist
	} else {
		target = s.MonthlyLow + buffer
		stop = s.SMAFast + stopDist
	}

	reward := math.Abs(target-s.CurrentPrice) * mult
	risk := math.Abs(s.CurrentPrice-stop) * mult
	var rr float64
	if risk > 0 {
		rr = reward / risk
	}

	sane := s.CurrentPrice > stop && s.CurrentPrice < target
	if bias == models.BiasShort {
		sane = s.CurrentPrice > target && s.CurrentPrice < stop
	}
	valid := rr >= minRewardToRisk && sane

	status := models.StatusInvalid
	if valid {
		status = models.StatusActive
	}
	return models.TradeSetup{
		Entry:      s.CurrentPrice,
		StopLoss:   stop,
		Target:     target,
		RiskPips:   risk,
		RewardPips: reward,
		RRRatio:    round(rr, 2),
		IsValid:    valid,
		Status:     status,
	}
}
