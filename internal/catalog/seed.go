package catalog

import (
	"github.com/shopspring/decimal"

	"storefront/internal/model"
)

// Seed returns the built-in product catalogue, used when no catalogue file
// is configured.
func Seed() []model.Product {
	return []model.Product{
		{
			ID:          "p1",
			Name:        "Margherita Pizza",
			Description: "Classic cheese and tomato pizza.",
			Price:       decimal.RequireFromString("5.99"),
			Category:    model.CategoryPizza,
			ImageRef:    "https://i.pinimg.com/736x/cc/54/dd/cc54dd8f45ed9cdd514e57c0e2afccd3.jpg",
			Stock:       20,
		},
		{
			ID:          "p2",
			Name:        "Veggie Burger",
			Description: "Delicious vegetable patty with fresh salad.",
			Price:       decimal.RequireFromString("3.49"),
			Category:    model.CategoryBurgers,
			ImageRef:    "https://i.pinimg.com/736x/27/ab/5e/27ab5edd0885b823023a2b5ba47a1f04.jpg",
			Stock:       15,
		},
		{
			ID:          "p3",
			Name:        "Caesar Salad",
			Description: "Fresh lettuce with Caesar dressing.",
			Price:       decimal.RequireFromString("3.99"),
			Category:    model.CategorySalads,
			ImageRef:    "https://i.pinimg.com/736x/fd/35/0d/fd350dbea5b3b14ce39d97c5eb8e1335.jpg",
			Stock:       12,
		},
		{
			ID:          "p4",
			Name:        "Chicken Biryani",
			Description: "Aromatic spiced chicken and rice.",
			Price:       decimal.RequireFromString("9.99"),
			Category:    model.CategoryIndian,
			ImageRef:    "https://i.pinimg.com/736x/c5/d2/62/c5d262f3377da91a7229772026a2ec5c.jpg",
			Stock:       10,
		},
		{
			ID:          "p5",
			Name:        "Chocolate Cake",
			Description: "Rich chocolate layered cake slice.",
			Price:       decimal.RequireFromString("5.00"),
			Category:    model.CategoryDesserts,
			ImageRef:    "https://i.pinimg.com/736x/d0/2c/fd/d02cfdbc13aef67e3f01531a137b2d82.jpg",
			Stock:       8,
		},
	}
}
