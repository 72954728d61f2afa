package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), "category %s", c)
	}
	assert.False(t, CategoryAll.Valid(), "the All sentinel is not a product category")
	assert.False(t, Category("Sushi").Valid())
}

func TestSortMode_Valid(t *testing.T) {
	assert.True(t, SortDefault.Valid())
	assert.True(t, SortPriceAsc.Valid())
	assert.True(t, SortPriceDesc.Valid())
	assert.False(t, SortMode("alphabetical").Valid())
}

func TestTheme(t *testing.T) {
	assert.True(t, ThemeDark.Valid())
	assert.True(t, ThemeLight.Valid())
	assert.False(t, Theme("solarized").Valid())

	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
}

func TestTotals(t *testing.T) {
	zero := ZeroTotals()
	assert.Equal(t, 0, zero.ItemCount)
	assert.True(t, zero.TotalPrice.IsZero())

	a := Totals{ItemCount: 2, TotalPrice: decimal.RequireFromString("10.00")}
	b := Totals{ItemCount: 2, TotalPrice: decimal.RequireFromString("10")}
	assert.True(t, a.Equal(b), "decimal comparison ignores trailing zeros")
	assert.False(t, a.Equal(Totals{ItemCount: 3, TotalPrice: a.TotalPrice}))
}

func TestDomainError(t *testing.T) {
	err := NewDomainError(ErrCodeInvalidQuantity, "bad quantity")

	assert.Equal(t, "bad quantity", err.Error())
	assert.Equal(t, ErrCodeInvalidQuantity, err.Code)
	assert.Equal(t, ErrCodeProductNotFound, ErrProductNotFound.Code)
}
