package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FxPulse/internal/domain/models"
)

const sample = `Pair,Price,SMA135,SMA27,WeeklyHigh,WeeklyLow,MonthlyHigh,MonthlyLow,YearlyHigh,YearlyLow
EUR/USD,1.0800,1.0600,1.0750,1.0900,1.0700,1.1200,1.0300,1.1200,1.0200

gbp usd, 1.27, 1.25, 1.26, 1.28, 1.26, 1.29, 1.24, 1.31, 1.20
XAUUSD,2300,2250,2280,2320,2280,2350,2200,2450,1900
Currency Pair,Price,Notes
USDJPY,152
notes
EURUSD,1.0810,1.0610,1.0755,1.0910,1.0710,1.1210,1.0310,1.1210,1.0210
`

func TestParse(t *testing.T) {
	snaps, diag, err := NewParser(nil).Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, snaps, 2)

	assert.Equal(t, "EURUSD", snaps[0].Symbol)
	assert.Equal(t, 1.0810, snaps[0].CurrentPrice, "later duplicate overwrites values")
	assert.InDelta(t, 1.076, snaps[0].MonthlyMedian, 1e-9)
	assert.InDelta(t, 1.081, snaps[0].WeeklyMedian, 1e-9)

	assert.Equal(t, "GBPUSD", snaps[1].Symbol)
	assert.Equal(t, 1.25, snaps[1].SMASlow)

	assert.Equal(t, []string{"EURUSD", "GBPUSD"}, diag.MatchedInstruments)
	assert.Equal(t, []string{"XAUUSD"}, diag.UnmatchedEntries)
}

func TestParse_LenientCells(t *testing.T) {
	snaps, _, err := NewParser(nil).Parse([]byte("USDJPY,152.5,,abc\n"))
	require.NoError(t, err)
	require.Len(t, snaps, 1)

	s := snaps[0]
	assert.Equal(t, 152.5, s.CurrentPrice)
	assert.Zero(t, s.SMASlow)
	assert.Zero(t, s.SMAFast)
	assert.Zero(t, s.MonthlyMedian, "missing range leaves the median unknown")
}

func TestParse_FirstLineLabelIsNotReported(t *testing.T) {
	_, diag, err := NewParser(nil).Parse([]byte("Symbol,Last,MA\nAUDUSD,0.66,0.65\n"))
	require.NoError(t, err)
	assert.Empty(t, diag.UnmatchedEntries)
}

func TestParse_NoMatches(t *testing.T) {
	_, diag, err := NewParser(nil).Parse([]byte("Pair,Price,SMA\nBTCUSD,60000,58000\n"))
	assert.ErrorIs(t, err, models.ErrNoData)
	require.NotNil(t, diag)
	assert.Equal(t, []string{"BTCUSD"}, diag.UnmatchedEntries)
}
