package catalog

import (
	"fmt"

	"storefront/internal/model"
)

// Catalog is the immutable set of purchasable products for a session.
// It preserves declaration order, which is the canonical display order.
type Catalog struct {
	products []model.Product
	byID     map[string]*model.Product
}

// New builds a catalogue from the given products, validating the catalogue
// invariants: non-empty unique IDs, non-negative price and stock, and a
// known category for every product.
func New(products []model.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]model.Product, len(products)),
		byID:     make(map[string]*model.Product, len(products)),
	}
	copy(c.products, products)

	for i := range c.products {
		p := &c.products[i]
		if p.ID == "" {
			return nil, fmt.Errorf("product %d: id is required", i)
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("product %q: name is required", p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %q: price must not be negative", p.ID)
		}
		if p.Stock < 0 {
			return nil, fmt.Errorf("product %q: stock must not be negative", p.ID)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("product %q: unknown category %q", p.ID, p.Category)
		}
		c.byID[p.ID] = p
	}

	return c, nil
}

// Products returns the products in catalogue order. The returned slice is a
// copy; the catalogue itself is never exposed for mutation.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given id, or false if unknown.
func (c *Catalog) Get(id string) (*model.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of products in the catalogue.
func (c *Catalog) Len() int {
	return len(c.products)
}
