package checkout

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/cart"
	"storefront/internal/model"
)

func testProduct(id, price string, stock int) *model.Product {
	return &model.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    decimal.RequireFromString(price),
		Category: model.CategoryPizza,
		Stock:    stock,
	}
}

func TestFlow_StartsIdle(t *testing.T) {
	flow := NewFlow(cart.NewStore(zerolog.Nop()), zerolog.Nop())

	assert.Equal(t, StateIdle, flow.State())
}

func TestFlow_InitiateOnEmptyCart(t *testing.T) {
	store := cart.NewStore(zerolog.Nop())
	flow := NewFlow(store, zerolog.Nop())

	state := flow.Initiate()

	assert.Equal(t, StateEmpty, state)
	assert.True(t, store.IsEmpty())

	flow.Acknowledge()
	assert.Equal(t, StateIdle, flow.State())
}

func TestFlow_ConfirmClearsCartAndIssuesReceipt(t *testing.T) {
	store := cart.NewStore(zerolog.Nop())
	require.NoError(t, store.Add(testProduct("p1", "5.99", 20), 3))
	require.NoError(t, store.Add(testProduct("p2", "3.49", 15), 2))
	flow := NewFlow(store, zerolog.Nop())

	require.Equal(t, StateConfirmPending, flow.Initiate())
	assert.Equal(t, 5, flow.PendingTotals().ItemCount)

	receipt, err := flow.Confirm()

	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, StateCompleted, flow.State())
	assert.NotEqual(t, uuid.Nil, receipt.ID)
	assert.False(t, receipt.CreatedAt.IsZero())
	assert.Len(t, receipt.Lines, 2)
	assert.Equal(t, 5, receipt.Totals.ItemCount)
	assert.True(t, receipt.Totals.TotalPrice.Equal(decimal.RequireFromString("24.95")),
		"got total %s", receipt.Totals.TotalPrice)

	assert.True(t, store.IsEmpty())
	assert.True(t, store.Totals().Equal(model.ZeroTotals()))
}

func TestFlow_ReceiptUsesInitiationSnapshot(t *testing.T) {
	store := cart.NewStore(zerolog.Nop())
	p1 := testProduct("p1", "5.99", 20)
	require.NoError(t, store.Add(p1, 3))
	flow := NewFlow(store, zerolog.Nop())

	flow.Initiate()

	// The cart changes while confirmation is pending; the committed totals
	// are the ones that were shown.
	require.NoError(t, store.Add(p1, 5))

	receipt, err := flow.Confirm()
	require.NoError(t, err)
	assert.Equal(t, 3, receipt.Totals.ItemCount)
	assert.True(t, receipt.Totals.TotalPrice.Equal(decimal.RequireFromString("17.97")))
}

func TestFlow_CancelLeavesCartIntact(t *testing.T) {
	store := cart.NewStore(zerolog.Nop())
	require.NoError(t, store.Add(testProduct("p1", "5.99", 20), 3))
	flow := NewFlow(store, zerolog.Nop())

	flow.Initiate()
	require.NoError(t, flow.Cancel())

	assert.Equal(t, StateCancelled, flow.State())
	assert.Equal(t, 3, store.Totals().ItemCount)

	flow.Acknowledge()
	assert.Equal(t, StateIdle, flow.State())
}

func TestFlow_ConfirmAndCancelRequirePending(t *testing.T) {
	store := cart.NewStore(zerolog.Nop())
	flow := NewFlow(store, zerolog.Nop())

	_, err := flow.Confirm()
	assert.ErrorIs(t, err, model.ErrCheckoutNotPending)
	assert.ErrorIs(t, flow.Cancel(), model.ErrCheckoutNotPending)

	// Terminal states reject confirmation too.
	require.NoError(t, store.Add(testProduct("p1", "5.99", 20), 1))
	flow.Initiate()
	_, err = flow.Confirm()
	require.NoError(t, err)

	_, err = flow.Confirm()
	assert.ErrorIs(t, err, model.ErrCheckoutNotPending)
}

func TestFlow_AcknowledgeIsNoOpOutsideTerminalStates(t *testing.T) {
	store := cart.NewStore(zerolog.Nop())
	require.NoError(t, store.Add(testProduct("p1", "5.99", 20), 1))
	flow := NewFlow(store, zerolog.Nop())

	flow.Acknowledge()
	assert.Equal(t, StateIdle, flow.State())

	flow.Initiate()
	flow.Acknowledge()
	assert.Equal(t, StateConfirmPending, flow.State())
}
