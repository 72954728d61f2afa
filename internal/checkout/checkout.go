// Package checkout drives the confirmation flow between the cart and the
// view: Idle -> ConfirmPending -> Completed or Cancelled, with an Empty
// notice when checkout starts on an empty cart.
package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"storefront/internal/cart"
	"storefront/internal/model"
)

// State is the checkout flow state.
type State string

const (
	// StateIdle means no checkout is in progress.
	StateIdle State = "idle"
	// StateConfirmPending means a checkout awaits user confirmation.
	StateConfirmPending State = "confirm_pending"
	// StateCompleted means the last checkout was confirmed and committed.
	StateCompleted State = "completed"
	// StateCancelled means the last checkout was abandoned without mutation.
	StateCancelled State = "cancelled"
	// StateEmpty is the terminal notice for checking out an empty cart.
	StateEmpty State = "empty"
)

// Receipt records a confirmed purchase: the lines and totals as they stood
// when the checkout was initiated.
type Receipt struct {
	ID        uuid.UUID
	Lines     []cart.Line
	Totals    model.Totals
	CreatedAt time.Time
}

// Flow is the checkout state machine. Initiate snapshots the cart so the
// totals shown for confirmation are exactly the totals committed, even if
// the cart is touched in between.
type Flow struct {
	store   *cart.Store
	state   State
	pending cart.Snapshot
	logger  zerolog.Logger
}

// NewFlow creates a checkout flow over the given cart store, starting Idle.
func NewFlow(store *cart.Store, logger zerolog.Logger) *Flow {
	return &Flow{
		store:  store,
		state:  StateIdle,
		logger: logger.With().Str("component", "checkout").Logger(),
	}
}

// State returns the current flow state.
func (f *Flow) State() State {
	return f.state
}

// PendingTotals returns the totals snapshotted at initiation. Only
// meaningful in StateConfirmPending.
func (f *Flow) PendingTotals() model.Totals {
	return f.pending.Totals
}

// Initiate starts a checkout. An empty cart goes straight to the Empty
// notice state without touching anything; otherwise the cart is
// snapshotted and the flow awaits confirmation.
func (f *Flow) Initiate() State {
	if f.store.IsEmpty() {
		f.state = StateEmpty
		f.logger.Debug().Msg("checkout initiated on empty cart")
		return f.state
	}

	f.pending = f.store.Snapshot()
	f.state = StateConfirmPending
	f.logger.Info().
		Int("item_count", f.pending.Totals.ItemCount).
		Str("total_price", f.pending.Totals.TotalPrice.String()).
		Msg("checkout awaiting confirmation")
	return f.state
}

// Confirm commits the pending checkout: the cart is cleared and a receipt
// built from the initiation snapshot is returned. Fails with
// ErrCheckoutNotPending unless a checkout is awaiting confirmation.
func (f *Flow) Confirm() (*Receipt, error) {
	if f.state != StateConfirmPending {
		return nil, model.ErrCheckoutNotPending
	}

	receipt := &Receipt{
		ID:        uuid.New(),
		Lines:     f.pending.Lines,
		Totals:    f.pending.Totals,
		CreatedAt: time.Now(),
	}

	// State flips before the clear so observers of the clear notification
	// never see a stale ConfirmPending.
	f.state = StateCompleted
	f.pending = cart.Snapshot{}
	f.store.Clear()

	f.logger.Info().
		Str("receipt_id", receipt.ID.String()).
		Int("item_count", receipt.Totals.ItemCount).
		Str("total_price", receipt.Totals.TotalPrice.String()).
		Msg("checkout completed")

	return receipt, nil
}

// Cancel abandons the pending checkout without mutating the cart. Fails
// with ErrCheckoutNotPending unless a checkout is awaiting confirmation.
func (f *Flow) Cancel() error {
	if f.state != StateConfirmPending {
		return model.ErrCheckoutNotPending
	}

	f.state = StateCancelled
	f.pending = cart.Snapshot{}
	f.logger.Debug().Msg("checkout cancelled")
	return nil
}

// Acknowledge returns the flow to Idle from any terminal state. A no-op in
// Idle or ConfirmPending.
func (f *Flow) Acknowledge() {
	switch f.state {
	case StateCompleted, StateCancelled, StateEmpty:
		f.state = StateIdle
	}
}
