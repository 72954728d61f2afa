package view

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/model"
	"storefront/internal/session"
)

// MockController is a mock implementation of Controller.
type MockController struct {
	mock.Mock
}

func (m *MockController) Subscribe(fn func(session.ViewState)) {
	m.Called(fn)
}

func (m *MockController) Search(text string) {
	m.Called(text)
}

func (m *MockController) SetCategory(category model.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockController) SetSortMode(mode model.SortMode) error {
	args := m.Called(mode)
	return args.Error(0)
}

func (m *MockController) AddToCart(productID string, quantity int) error {
	args := m.Called(productID, quantity)
	return args.Error(0)
}

func (m *MockController) SetQuantity(productID string, quantity int) error {
	args := m.Called(productID, quantity)
	return args.Error(0)
}

func (m *MockController) RemoveItem(productID string) {
	m.Called(productID)
}

func (m *MockController) InitiateCheckout() checkout.State {
	args := m.Called()
	return args.Get(0).(checkout.State)
}

func (m *MockController) ConfirmCheckout() (*checkout.Receipt, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Receipt), args.Error(1)
}

func (m *MockController) CancelCheckout() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockController) Acknowledge() {
	m.Called()
}

func newMockView(t *testing.T) (*View, *MockController, *bytes.Buffer) {
	t.Helper()
	controller := new(MockController)
	controller.On("Subscribe", mock.Anything).Return()

	out := &bytes.Buffer{}
	v := New(controller, strings.NewReader(""), out, NewFormatter("₹", 83.0), model.ThemeLight, zerolog.Nop())
	return v, controller, out
}

func TestView_DispatchForwardsCommands(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		setup func(c *MockController)
	}{
		{
			name:  "search joins arguments",
			line:  "search chicken rice",
			setup: func(c *MockController) { c.On("Search", "chicken rice").Return() },
		},
		{
			name:  "category",
			line:  "category Pizza",
			setup: func(c *MockController) { c.On("SetCategory", model.CategoryPizza).Return(nil) },
		},
		{
			name:  "sort",
			line:  "sort price_asc",
			setup: func(c *MockController) { c.On("SetSortMode", model.SortPriceAsc).Return(nil) },
		},
		{
			name:  "add with quantity",
			line:  "add p1 3",
			setup: func(c *MockController) { c.On("AddToCart", "p1", 3).Return(nil) },
		},
		{
			name:  "add defaults to one",
			line:  "add p2",
			setup: func(c *MockController) { c.On("AddToCart", "p2", 1).Return(nil) },
		},
		{
			name:  "qty",
			line:  "qty p1 7",
			setup: func(c *MockController) { c.On("SetQuantity", "p1", 7).Return(nil) },
		},
		{
			name:  "remove",
			line:  "remove p1",
			setup: func(c *MockController) { c.On("RemoveItem", "p1").Return() },
		},
		{
			name:  "checkout",
			line:  "checkout",
			setup: func(c *MockController) { c.On("InitiateCheckout").Return(checkout.StateConfirmPending) },
		},
		{
			name:  "confirm",
			line:  "confirm",
			setup: func(c *MockController) { c.On("ConfirmCheckout").Return(nil, nil) },
		},
		{
			name:  "cancel",
			line:  "cancel",
			setup: func(c *MockController) { c.On("CancelCheckout").Return(nil) },
		},
		{
			name:  "ok acknowledges",
			line:  "ok",
			setup: func(c *MockController) { c.On("Acknowledge").Return() },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, controller, _ := newMockView(t)
			tc.setup(controller)

			v.dispatch(tc.line)

			controller.AssertExpectations(t)
		})
	}
}

func TestView_DispatchReportsErrors(t *testing.T) {
	v, controller, out := newMockView(t)
	controller.On("AddToCart", "p1", 99).Return(model.ErrInvalidQuantity)

	v.dispatch("add p1 99")

	assert.Contains(t, out.String(), model.ErrInvalidQuantity.Message)
	controller.AssertExpectations(t)
}

func TestView_DispatchRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "unknown command", line: "frobnicate", want: "unknown command"},
		{name: "add without id", line: "add", want: "usage: add"},
		{name: "add with bad quantity", line: "add p1 lots", want: "invalid quantity"},
		{name: "qty missing argument", line: "qty p1", want: "usage: qty"},
		{name: "category missing argument", line: "category", want: "usage: category"},
		{name: "sort missing argument", line: "sort", want: "usage: sort"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, controller, out := newMockView(t)

			v.dispatch(tc.line)

			assert.Contains(t, out.String(), tc.want)
			// Nothing besides the constructor subscription reaches the core.
			controller.AssertExpectations(t)
		})
	}
}

func TestView_RendersSessionState(t *testing.T) {
	cat, err := catalog.New(catalog.Seed())
	require.NoError(t, err)
	sess := session.New(cat, zerolog.Nop())

	out := &bytes.Buffer{}
	input := strings.NewReader("add p1 3\ncheckout\nconfirm\nok\nquit\n")
	v := New(sess, input, out, NewFormatter("₹", 83.0), model.ThemeLight, zerolog.Nop())

	require.NoError(t, v.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Margherita Pizza")
	assert.Contains(t, output, "3 items, total ₹1492")
	assert.Contains(t, output, "Proceed with checkout? Total: ₹1492")
	assert.Contains(t, output, "Thank you for your purchase!")
	assert.Contains(t, output, "0 items, total ₹0")
}

func TestView_RunStopsOnCancelWhileBlockedOnInput(t *testing.T) {
	controller := new(MockController)
	controller.On("Subscribe", mock.Anything).Return()

	// A pipe with nothing written keeps the read blocked indefinitely.
	pr, pw := io.Pipe()
	defer pw.Close()

	v := New(controller, pr, &bytes.Buffer{}, NewFormatter("₹", 83.0), model.ThemeLight, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- v.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("view loop did not stop on cancellation")
	}
}

func TestView_ThemeTogglePicksPlainHeadingsOnLight(t *testing.T) {
	cat, err := catalog.New(catalog.Seed())
	require.NoError(t, err)
	sess := session.New(cat, zerolog.Nop())

	out := &bytes.Buffer{}
	v := New(sess, strings.NewReader(""), out, NewFormatter("₹", 83.0), model.ThemeDark, zerolog.Nop())
	assert.Contains(t, out.String(), "\x1b[1mPRODUCTS\x1b[0m")

	out.Reset()
	v.dispatch("theme")
	assert.Contains(t, out.String(), "PRODUCTS")
	assert.NotContains(t, out.String(), "\x1b[1m")
}
