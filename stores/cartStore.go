// Package stores holds the client-side application state containers. They
// are injected into the embedding application rather than living as
// package-level singletons, and every container is safe for concurrent use.
package stores

import (
	"sync"

	"github.com/chakula-app/chakula-client/models"
	"github.com/chakula-app/chakula-client/pricing"
)

// CartStore is the authoritative local view of the cart. Mutations recompute
// the derived totals; Set replaces the whole state with a server snapshot
// and performs no recomputation because the server payload is authoritative.
// The store does no I/O; remote persistence belongs to the cart service.
type CartStore struct {
	mu   sync.RWMutex
	cart models.Cart
	calc pricing.Calculator

	subMu   sync.Mutex
	subs    map[int]func(models.Cart)
	nextSub int
}

func NewCartStore(calc pricing.Calculator) *CartStore {
	return &CartStore{
		cart: models.Cart{Items: []models.CartItem{}},
		calc: calc,
		subs: map[int]func(models.Cart){},
	}
}

// Cart returns a snapshot of the current state.
func (s *CartStore) Cart() models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCart(s.cart)
}

// Items returns a snapshot of the current line items in insertion order.
func (s *CartStore) Items() []models.CartItem {
	return s.Cart().Items
}

// Set replaces the entire cart with a server-authoritative snapshot.
func (s *CartStore) Set(cart models.Cart) {
	s.mu.Lock()
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	s.cart = copyCart(cart)
	snapshot := copyCart(s.cart)
	s.mu.Unlock()
	s.notify(snapshot)
}

// AddItem appends the item, or merges by summing quantities when an item
// with the same menu reference is already present.
func (s *CartStore) AddItem(item models.CartItem) error {
	if item.Quantity < 1 {
		return models.ValidationError("cart.AddItem", "quantity", "quantity must be at least 1")
	}

	s.mu.Lock()
	merged := false
	for i := range s.cart.Items {
		if s.cart.Items[i].MenuItemID == item.MenuItemID {
			s.cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.cart.Items = append(s.cart.Items, item)
	}
	s.recompute()
	snapshot := copyCart(s.cart)
	s.mu.Unlock()

	s.notify(snapshot)
	return nil
}

// RemoveItem drops the line with the given id. Removing an absent item is
// not an error; the resulting state is the same.
func (s *CartStore) RemoveItem(itemID string) {
	s.mu.Lock()
	items := s.cart.Items[:0]
	for _, item := range s.cart.Items {
		if item.ID != itemID {
			items = append(items, item)
		}
	}
	s.cart.Items = items
	s.recompute()
	snapshot := copyCart(s.cart)
	s.mu.Unlock()

	s.notify(snapshot)
}

// UpdateQuantity replaces the quantity of the matching line. Quantities
// below 1 are rejected: routing a zero quantity to removal is the caller's
// contract, the store never silently floors.
func (s *CartStore) UpdateQuantity(itemID string, quantity int) error {
	if quantity < 1 {
		return models.ValidationError("cart.UpdateQuantity", "quantity", "quantity must be at least 1; remove the item instead")
	}

	s.mu.Lock()
	found := false
	for i := range s.cart.Items {
		if s.cart.Items[i].ID == itemID {
			s.cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return &models.APIError{Op: "cart.UpdateQuantity", Message: itemID, Err: models.ErrItemNotFound}
	}
	s.recompute()
	snapshot := copyCart(s.cart)
	s.mu.Unlock()

	s.notify(snapshot)
	return nil
}

// SetSpecialInstructions attaches a free-text note to the matching line.
// Instructions do not affect price, so totals stay untouched.
func (s *CartStore) SetSpecialInstructions(itemID, instructions string) error {
	s.mu.Lock()
	found := false
	for i := range s.cart.Items {
		if s.cart.Items[i].ID == itemID {
			s.cart.Items[i].SpecialInstructions = instructions
			found = true
			break
		}
	}
	snapshot := copyCart(s.cart)
	s.mu.Unlock()

	if !found {
		return &models.APIError{Op: "cart.SetSpecialInstructions", Message: itemID, Err: models.ErrItemNotFound}
	}
	s.notify(snapshot)
	return nil
}

// Clear resets the cart to its empty state.
func (s *CartStore) Clear() {
	s.mu.Lock()
	s.cart = models.Cart{Items: []models.CartItem{}}
	snapshot := copyCart(s.cart)
	s.mu.Unlock()
	s.notify(snapshot)
}

// Subscribe registers fn to run after every state change with the new
// snapshot. The returned function unsubscribes.
func (s *CartStore) Subscribe(fn func(models.Cart)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// recompute refreshes the derived totals. Caller holds the write lock.
func (s *CartStore) recompute() {
	totals := s.calc.CartTotals(s.cart.Items)
	s.cart.Subtotal = totals.Subtotal
	s.cart.Tax = totals.Tax
	s.cart.Total = totals.Total
}

func (s *CartStore) notify(snapshot models.Cart) {
	s.subMu.Lock()
	fns := make([]func(models.Cart), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(snapshot)
	}
}

func copyCart(c models.Cart) models.Cart {
	out := c
	out.Items = make([]models.CartItem, len(c.Items))
	copy(out.Items, c.Items)
	return out
}
