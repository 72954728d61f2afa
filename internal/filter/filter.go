// Package filter computes the visible product list from the catalogue and
// the current filter criteria. It is purely functional: no state, no
// mutation of its inputs, safe to call on every keystroke.
package filter

import (
	"sort"
	"strings"

	"storefront/internal/catalog"
	"storefront/internal/model"
)

// Visible returns the products matching the criteria, ordered per the sort
// mode. Text matching is a case-insensitive substring test against name or
// description; an empty query matches everything. Category matching is
// exact unless the category is the CategoryAll sentinel. Both predicates
// must hold. Price sorts are stable: equal prices keep catalogue order.
func Visible(c *catalog.Catalog, criteria model.FilterCriteria) []model.Product {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))

	visible := make([]model.Product, 0, c.Len())
	for _, p := range c.Products() {
		if !matchesText(p, query) {
			continue
		}
		if !matchesCategory(p, criteria.Category) {
			continue
		}
		visible = append(visible, p)
	}

	switch criteria.Sort {
	case model.SortPriceAsc:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Price.LessThan(visible[j].Price)
		})
	case model.SortPriceDesc:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Price.GreaterThan(visible[j].Price)
		})
	}

	return visible
}

func matchesText(p model.Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

func matchesCategory(p model.Product, category model.Category) bool {
	return category == "" || category == model.CategoryAll || p.Category == category
}
