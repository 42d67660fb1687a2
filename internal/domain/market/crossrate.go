package market

// Rates maps an observed pair symbol to its current price.
type Rates map[string]float64

func (r Rates) get(symbol string) (float64, bool) {
	v, ok := r[symbol]
	return v, ok && v != 0
}

// rateRule prices base/quote from USD legs. ok is false when a leg is missing.
type rateRule func(r Rates, base, quote Currency) (float64, bool)

// crossRules are tried in order after a direct lookup fails.
var crossRules = []rateRule{
	// base/USD ÷ quote/USD
	func(r Rates, base, quote Currency) (float64, bool) {
		b, okB := r.get(string(base) + string(USD))
		q, okQ := r.get(string(quote) + string(USD))
		if !okB || !okQ {
			return 0, false
		}
		return b / q, true
	},
	// base/USD × USD/quote
	func(r Rates, base, quote Currency) (float64, bool) {
		b, okB := r.get(string(base) + string(USD))
		q, okQ := r.get(string(USD) + string(quote))
		if !okB || !okQ {
			return 0, false
		}
		return b * q, true
	},
	// USD/quote ÷ USD/base
	func(r Rates, base, quote Currency) (float64, bool) {
		q, okQ := r.get(string(USD) + string(quote))
		b, okB := r.get(string(USD) + string(base))
		if !okB || !okQ {
			return 0, false
		}
		return q / b, true
	},
}

// CrossRate prices symbol from known rates. calculated is true when the price was
// synthesized from USD legs rather than observed directly.
func CrossRate(symbol string, rates Rates) (price float64, calculated bool, ok bool) {
	if v, found := rates.get(symbol); found {
		return v, false, true
	}
	base, quote := Base(symbol), Quote(symbol)
	if base == "" || quote == "" {
		return 0, false, false
	}
	for _, rule := range crossRules {
		if v, found := rule(rates, base, quote); found {
			return v, true, true
		}
	}
	return 0, false, false
}

// DisplayPrecision is the number of decimals a quote for symbol is shown with.
func DisplayPrecision(symbol string) int {
	if PipMultiplier(symbol) == 100 {
		return 3
	}
	return 5
}
