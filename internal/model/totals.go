package model

import "github.com/shopspring/decimal"

// Totals holds values derived from the cart: the summed line quantities and
// the summed line prices in the base currency unit. Totals are always
// recomputed from cart state, never stored independently.
type Totals struct {
	ItemCount  int
	TotalPrice decimal.Decimal
}

// ZeroTotals returns the totals of an empty cart.
func ZeroTotals() Totals {
	return Totals{ItemCount: 0, TotalPrice: decimal.Zero}
}

// Equal reports whether two totals are equal, comparing prices as decimals.
func (t Totals) Equal(other Totals) bool {
	return t.ItemCount == other.ItemCount && t.TotalPrice.Equal(other.TotalPrice)
}
