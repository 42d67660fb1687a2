package market

import "strings"

// Currency is an ISO 4217 three-letter code.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	AUD Currency = "AUD"
	CAD Currency = "CAD"
	CHF Currency = "CHF"
	NZD Currency = "NZD"
)

// Universe is the static set of currencies and pairs every stage works over.
type Universe struct {
	// Currencies in canonical scoring order. Ties in ranked output keep this order.
	Currencies []Currency
	// Priority decides which currency is the base when two are joined into a pair.
	Priority []Currency
	// MajorPairs are the only symbols fed into the scoring stages.
	MajorPairs []string
	// ValidPairs is the tradable 28-pair universe.
	ValidPairs []string

	major map[string]struct{}
	valid map[string]struct{}
	rank  map[Currency]int
}

// NewUniverse builds a Universe and its lookup indexes.
func NewUniverse(currencies, priority []Currency, major, valid []string) *Universe {
	u := &Universe{
		Currencies: currencies,
		Priority:   priority,
		MajorPairs: major,
		ValidPairs: valid,
		major:      make(map[string]struct{}, len(major)),
		valid:      make(map[string]struct{}, len(valid)),
		rank:       make(map[Currency]int, len(priority)),
	}
	for _, p := range major {
		u.major[p] = struct{}{}
	}
	for _, p := range valid {
		u.valid[p] = struct{}{}
	}
	for i, c := range priority {
		u.rank[c] = i
	}
	return u
}

// DefaultUniverse returns the 8-currency, 28-pair forex universe.
func DefaultUniverse() *Universe {
	return NewUniverse(
		[]Currency{USD, EUR, GBP, JPY, AUD, CAD, CHF, NZD},
		[]Currency{EUR, GBP, AUD, NZD, USD, CAD, CHF, JPY},
		[]string{"EURUSD", "GBPUSD", "USDJPY", "AUDUSD", "USDCAD", "USDCHF", "NZDUSD"},
		[]string{
			"EURUSD", "EURGBP", "EURAUD", "EURNZD", "EURCAD", "EURCHF", "EURJPY",
			"GBPUSD", "GBPAUD", "GBPNZD", "GBPCAD", "GBPCHF", "GBPJPY",
			"AUDUSD", "AUDNZD", "AUDCAD", "AUDCHF", "AUDJPY",
			"NZDUSD", "NZDCAD", "NZDCHF", "NZDJPY",
			"USDCAD", "USDCHF", "USDJPY",
			"CADCHF", "CADJPY",
			"CHFJPY",
		},
	)
}

// IsMajor reports whether symbol may be fed into the scoring stages.
func (u *Universe) IsMajor(symbol string) bool {
	_, ok := u.major[symbol]
	return ok
}

// IsValid reports whether symbol is part of the tradable universe.
func (u *Universe) IsValid(symbol string) bool {
	_, ok := u.valid[symbol]
	return ok
}

// Has reports whether c is one of the universe currencies.
func (u *Universe) Has(c Currency) bool {
	_, ok := u.rank[c]
	return ok
}

// Precedes reports whether a sorts before b in the priority list.
// Unknown currencies sort last.
func (u *Universe) Precedes(a, b Currency) bool {
	return u.priorityOf(a) < u.priorityOf(b)
}

func (u *Universe) priorityOf(c Currency) int {
	if r, ok := u.rank[c]; ok {
		return r
	}
	return len(u.rank)
}

// PairOf joins two currencies into a symbol, higher priority currency first.
func (u *Universe) PairOf(a, b Currency) string {
	if u.Precedes(b, a) {
		a, b = b, a
	}
	return string(a) + string(b)
}

// Base returns the first three letters of a pair symbol.
func Base(symbol string) Currency {
	if len(symbol) < 6 {
		return ""
	}
	return Currency(symbol[:3])
}

// Quote returns letters four to six of a pair symbol.
func Quote(symbol string) Currency {
	if len(symbol) < 6 {
		return ""
	}
	return Currency(symbol[3:6])
}

// PipMultiplier converts a price difference of symbol into pips.
func PipMultiplier(symbol string) float64 {
	if strings.Contains(symbol, string(JPY)) {
		return 100
	}
	return 10000
}

// FocusCurrency is the non-USD leg of a pair: the base unless the base is USD.
func FocusCurrency(symbol string) Currency {
	if b := Base(symbol); b != USD {
		return b
	}
	return Quote(symbol)
}

// NormalizeSymbol upper-cases a raw pair label and strips whitespace and slashes,
// so "eur/usd" and " EUR USD" both become "EURUSD".
func NormalizeSymbol(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToUpper(raw) {
		switch r {
		case ' ', '\t', '\r', '\n', '/':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
