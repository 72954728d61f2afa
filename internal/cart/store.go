package cart

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"storefront/internal/model"
)

// Line is one product's entry in the cart. The product reference is shared
// read-only with the catalogue; only the quantity is mutable, and only
// through the store. A live line always satisfies 1 <= Quantity <= Stock.
type Line struct {
	Product  *model.Product
	Quantity int
}

// Total returns the line's price contribution in the base currency unit.
func (l Line) Total() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Snapshot is a point-in-time copy of the cart handed to subscribers:
// the lines in insertion order and the totals derived from them.
type Snapshot struct {
	Lines  []Line
	Totals model.Totals
}

// Store is the session shopping cart: a productID -> line mapping with
// insertion order as the canonical display order. All mutations go through
// the store's methods, which keep the line invariant and notify subscribers
// synchronously, in mutation order, once per operation. A mutex serializes
// mutations so clear and add-merge stay atomic under concurrent callers.
type Store struct {
	mu          sync.Mutex
	lines       map[string]*Line
	order       []string
	subscribers []func(Snapshot)
	logger      zerolog.Logger
}

// NewStore creates an empty cart store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		lines:  make(map[string]*Line),
		logger: logger.With().Str("component", "cart").Logger(),
	}
}

// Subscribe registers a change listener. Listeners are invoked after every
// completed operation with a snapshot of the fully-updated cart. Intended
// to be called once per consumer at construction time.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Add puts quantity units of the product into the cart. A first add creates
// the line; later adds merge into it. The resulting quantity is clamped to
// the product's stock, silently dropping the excess. A quantity below 1,
// or a product with no stock at all, is rejected with ErrInvalidQuantity
// and leaves the cart untouched.
func (s *Store) Add(product *model.Product, quantity int) error {
	if quantity < 1 || product.Stock < 1 {
		s.logger.Warn().
			Str("product_id", product.ID).
			Int("quantity", quantity).
			Int("stock", product.Stock).
			Msg("rejected add outside stock range")
		return model.ErrInvalidQuantity
	}

	s.mu.Lock()
	line, exists := s.lines[product.ID]
	if exists {
		line.Quantity = clamp(line.Quantity+quantity, product.Stock)
	} else {
		s.lines[product.ID] = &Line{
			Product:  product,
			Quantity: clamp(quantity, product.Stock),
		}
		s.order = append(s.order, product.ID)
	}
	final := s.lines[product.ID].Quantity
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug().
		Str("product_id", product.ID).
		Int("requested", quantity).
		Int("quantity", final).
		Msg("added to cart")

	s.publish(snap)
	return nil
}

// SetQuantity overwrites a line's quantity with an explicitly chosen value.
// It fails with ErrInvalidQuantity outside [1, stock] and with
// ErrProductNotFound when no line exists; on failure nothing changes and no
// notification is sent.
func (s *Store) SetQuantity(productID string, quantity int) error {
	s.mu.Lock()
	line, exists := s.lines[productID]
	if !exists {
		s.mu.Unlock()
		s.logger.Warn().Str("product_id", productID).Msg("set quantity for unknown line")
		return model.ErrProductNotFound
	}
	if quantity < 1 || quantity > line.Product.Stock {
		s.mu.Unlock()
		s.logger.Warn().
			Str("product_id", productID).
			Int("quantity", quantity).
			Int("stock", line.Product.Stock).
			Msg("rejected quantity outside stock range")
		return model.ErrInvalidQuantity
	}
	line.Quantity = quantity
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return nil
}

// Remove deletes the line for the given product. Removing an absent product
// is not an error; subscribers are notified either way.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	if _, exists := s.lines[productID]; exists {
		delete(s.lines, productID)
		for i, id := range s.order {
			if id == productID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug().Str("product_id", productID).Msg("removed from cart")
	s.publish(snap)
}

// Clear empties the cart in one step and notifies once, not once per line.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = make(map[string]*Line)
	s.order = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug().Msg("cart cleared")
	s.publish(snap)
}

// IsEmpty reports whether the cart has no lines.
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// Totals computes the derived totals from current cart state.
func (s *Store) Totals() model.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalsLocked()
}

// Snapshot returns a copy of the current lines, in insertion order, with
// their totals.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) totalsLocked() model.Totals {
	totals := model.ZeroTotals()
	for _, line := range s.lines {
		totals.ItemCount += line.Quantity
		totals.TotalPrice = totals.TotalPrice.Add(line.Total())
	}
	return totals
}

func (s *Store) snapshotLocked() Snapshot {
	lines := make([]Line, 0, len(s.order))
	for _, id := range s.order {
		lines = append(lines, *s.lines[id])
	}
	return Snapshot{
		Lines:  lines,
		Totals: s.totalsLocked(),
	}
}

// clamp caps a quantity at the product's stock ceiling.
func clamp(quantity, stock int) int {
	if quantity > stock {
		return stock
	}
	return quantity
}

// publish runs outside the lock so a subscriber may call back into the
// store without deadlocking.
func (s *Store) publish(snap Snapshot) {
	s.mu.Lock()
	subscribers := s.subscribers
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(snap)
	}
}
