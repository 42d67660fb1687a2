package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"FxPulse/internal/domain/market"
	"FxPulse/internal/domain/models"
	"FxPulse/pkg/util"
)

// Column order of the sheet export.
const (
	colPair = iota
	colPrice
	colSMASlow
	colSMAFast
	colWeeklyHigh
	colWeeklyLow
	colMonthlyHigh
	colMonthlyLow
	colYearlyHigh
	colYearlyLow
)

const minColumns = 3

// Parser turns the sheet CSV into snapshots of the major pairs.
type Parser struct {
	u *market.Universe
}

func NewParser(u *market.Universe) *Parser {
	if u == nil {
		u = market.DefaultUniverse()
	}
	return &Parser{u: u}
}

// Parse reads rows of the 10-column layout. Rows with fewer than three
// columns are skipped. A repeated pair keeps its first position but takes the
// values of its last row. Labels that are not major pairs are reported raw,
// except on the first line and for header-like labels containing "pair".
func (p *Parser) Parse(data []byte) ([]models.PairSnapshot, *models.Diagnostics, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	diag := &models.Diagnostics{MatchedInstruments: []string{}, UnmatchedEntries: []string{}}
	index := make(map[string]int)
	var out []models.PairSnapshot

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", models.ErrParse, err)
		}
		line, _ := r.FieldPos(0)
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if len(rec) < minColumns {
			continue
		}

		symbol := market.NormalizeSymbol(rec[colPair])
		if !p.u.IsMajor(symbol) {
			if symbol != "" && line != 1 && !strings.Contains(strings.ToLower(symbol), "pair") {
				diag.UnmatchedEntries = append(diag.UnmatchedEntries, rec[colPair])
			}
			continue
		}

		snap := snapshotOf(symbol, rec)
		if i, ok := index[symbol]; ok {
			out[i] = snap
			continue
		}
		index[symbol] = len(out)
		out = append(out, snap)
		diag.MatchedInstruments = append(diag.MatchedInstruments, symbol)
	}

	if len(out) == 0 {
		return nil, diag, fmt.Errorf("%w: no matching forex instruments, check the symbol names", models.ErrNoData)
	}
	return out, diag, nil
}

func snapshotOf(symbol string, rec []string) models.PairSnapshot {
	cell := func(i int) float64 {
		if i >= len(rec) {
			return 0
		}
		return util.ParseFloatDefault(rec[i], 0)
	}
	return models.PairSnapshot{
		Symbol:       symbol,
		CurrentPrice: cell(colPrice),
		SMASlow:      cell(colSMASlow),
		SMAFast:      cell(colSMAFast),
		WeeklyHigh:   cell(colWeeklyHigh),
		WeeklyLow:    cell(colWeeklyLow),
		MonthlyHigh:  cell(colMonthlyHigh),
		MonthlyLow:   cell(colMonthlyLow),
		YearlyHigh:   cell(colYearlyHigh),
		YearlyLow:    cell(colYearlyLow),
	}.WithMedians()
}
