package model

import "github.com/shopspring/decimal"

// Category classifies a product in the catalogue.
type Category string

// The fixed set of product categories.
const (
	CategoryPizza    Category = "Pizza"
	CategoryBurgers  Category = "Burgers"
	CategorySalads   Category = "Salads"
	CategoryIndian   Category = "Indian"
	CategoryDesserts Category = "Desserts"
)

// CategoryAll is the filter sentinel that matches every category.
// It is never a valid product category.
const CategoryAll Category = "All"

// Categories lists the valid product categories in display order.
var Categories = []Category{
	CategoryPizza,
	CategoryBurgers,
	CategorySalads,
	CategoryIndian,
	CategoryDesserts,
}

// Valid reports whether c is one of the fixed product categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product represents a food product in the catalogue.
// Products are immutable for the session once the catalogue is built.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	ImageRef    string          `json:"imageRef"`
	Stock       int             `json:"stock"`
}
