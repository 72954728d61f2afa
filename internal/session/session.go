// Package session is the inbound surface of the storefront core. The view
// layer forwards every user action here and renders the ViewState pushed
// back through its subscription; it never reaches into the cart or the
// checkout flow directly.
package session

import (
	"github.com/rs/zerolog"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/filter"
	"storefront/internal/model"
)

// ViewState is the full render input pushed to subscribers after every
// state change: the visible products under the current criteria, the cart
// snapshot with its totals, and the checkout state. Receipt is non-nil
// only while the checkout state is Completed.
type ViewState struct {
	Criteria model.FilterCriteria
	Visible  []model.Product
	Cart     cart.Snapshot
	Checkout checkout.State
	Receipt  *checkout.Receipt
}

// Session wires the catalogue, filter engine, cart store and checkout flow
// together behind the operations the view is allowed to invoke. All
// operations are synchronous; subscribers always observe fully-updated
// state, in mutation order.
type Session struct {
	catalog     *catalog.Catalog
	store       *cart.Store
	flow        *checkout.Flow
	criteria    model.FilterCriteria
	receipt     *checkout.Receipt
	subscribers []func(ViewState)
	logger      zerolog.Logger
}

// New creates a session over the given catalogue with an empty cart,
// default filter criteria and an idle checkout flow.
func New(cat *catalog.Catalog, logger zerolog.Logger) *Session {
	logger = logger.With().Str("component", "session").Logger()
	store := cart.NewStore(logger)

	s := &Session{
		catalog:  cat,
		store:    store,
		flow:     checkout.NewFlow(store, logger),
		criteria: model.DefaultCriteria(),
		logger:   logger,
	}

	// Every cart mutation, however triggered, reaches the view through
	// this one subscription.
	store.Subscribe(func(cart.Snapshot) {
		s.publish()
	})

	return s
}

// Subscribe registers a view-state listener and immediately pushes the
// current state so the subscriber starts rendered.
func (s *Session) Subscribe(fn func(ViewState)) {
	s.subscribers = append(s.subscribers, fn)
	fn(s.ViewState())
}

// ViewState assembles the current render input.
func (s *Session) ViewState() ViewState {
	return ViewState{
		Criteria: s.criteria,
		Visible:  filter.Visible(s.catalog, s.criteria),
		Cart:     s.store.Snapshot(),
		Checkout: s.flow.State(),
		Receipt:  s.receipt,
	}
}

// Search sets the free-text query and recomputes the visible products.
func (s *Session) Search(text string) {
	s.criteria.Query = text
	s.publish()
}

// SetCategory sets the category filter. CategoryAll shows every category;
// anything else must be a known category.
func (s *Session) SetCategory(category model.Category) error {
	if category != model.CategoryAll && !category.Valid() {
		s.logger.Warn().Str("category", string(category)).Msg("unknown category filter")
		return model.NewDomainError(model.ErrCodeInvalidCatalog, "Unknown category")
	}
	s.criteria.Category = category
	s.publish()
	return nil
}

// SetSortMode sets the ordering of the visible products.
func (s *Session) SetSortMode(mode model.SortMode) error {
	if !mode.Valid() {
		s.logger.Warn().Str("sort", string(mode)).Msg("unknown sort mode")
		return model.NewDomainError(model.ErrCodeInvalidCatalog, "Unknown sort mode")
	}
	s.criteria.Sort = mode
	s.publish()
	return nil
}

// AddToCart adds the requested quantity of a catalogue product to the cart.
func (s *Session) AddToCart(productID string, quantity int) error {
	product, ok := s.catalog.Get(productID)
	if !ok {
		s.logger.Warn().Str("product_id", productID).Msg("add to cart for unknown product")
		return model.ErrProductNotFound
	}
	return s.store.Add(product, quantity)
}

// SetQuantity overwrites a cart line's quantity.
func (s *Session) SetQuantity(productID string, quantity int) error {
	return s.store.SetQuantity(productID, quantity)
}

// RemoveItem deletes a cart line; absent products are a no-op.
func (s *Session) RemoveItem(productID string) {
	s.store.Remove(productID)
}

// InitiateCheckout starts the checkout flow and returns the resulting state:
// ConfirmPending with snapshotted totals, or the Empty notice.
func (s *Session) InitiateCheckout() checkout.State {
	s.receipt = nil
	state := s.flow.Initiate()
	s.publish()
	return state
}

// ConfirmCheckout commits the pending checkout. On success the cart is
// empty, the state is Completed and the receipt is exposed in the next
// ViewState.
func (s *Session) ConfirmCheckout() (*checkout.Receipt, error) {
	receipt, err := s.flow.Confirm()
	if err != nil {
		return nil, err
	}
	// Clearing the cart already notified; publish again so subscribers see
	// the Completed state and the receipt.
	s.receipt = receipt
	s.publish()
	return receipt, nil
}

// CancelCheckout abandons the pending checkout without touching the cart.
func (s *Session) CancelCheckout() error {
	if err := s.flow.Cancel(); err != nil {
		return err
	}
	s.publish()
	return nil
}

// Acknowledge dismisses a terminal checkout state and returns to Idle.
func (s *Session) Acknowledge() {
	s.flow.Acknowledge()
	s.receipt = nil
	s.publish()
}

func (s *Session) publish() {
	state := s.ViewState()
	for _, fn := range s.subscribers {
		fn(state)
	}
}
