package view

import "github.com/shopspring/decimal"

// Formatter renders base-unit prices in the display currency. Conversion
// and formatting live here, on the view side; the core only ever sees base
// decimal units.
type Formatter struct {
	symbol string
	rate   decimal.Decimal
}

// NewFormatter creates a price formatter with the given display symbol and
// base-to-display conversion rate.
func NewFormatter(symbol string, rate float64) Formatter {
	return Formatter{
		symbol: symbol,
		rate:   decimal.NewFromFloat(rate),
	}
}

// Price renders a base-unit price as a whole display-currency amount,
// e.g. 5.99 at rate 83 -> "₹497".
func (f Formatter) Price(p decimal.Decimal) string {
	return f.symbol + p.Mul(f.rate).Round(0).StringFixed(0)
}
