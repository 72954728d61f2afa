package model

// SortMode selects the ordering of the visible product list.
type SortMode string

const (
	// SortDefault preserves catalogue order.
	SortDefault SortMode = "default"
	// SortPriceAsc orders by ascending price, catalogue order on ties.
	SortPriceAsc SortMode = "price_asc"
	// SortPriceDesc orders by descending price, catalogue order on ties.
	SortPriceDesc SortMode = "price_desc"
)

// Valid reports whether m is a known sort mode.
func (m SortMode) Valid() bool {
	switch m {
	case SortDefault, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// FilterCriteria is the current product filter state. It is a plain value:
// updated wholesale on every filter interaction, never mutated in place by
// the engine.
type FilterCriteria struct {
	Query    string
	Category Category
	Sort     SortMode
}

// DefaultCriteria returns the criteria in effect at session start:
// no query, all categories, catalogue order.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Category: CategoryAll,
		Sort:     SortDefault,
	}
}
