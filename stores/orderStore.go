package stores

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/chakula-app/chakula-client/models"
)

// OrderAPI is the slice of the remote order service the store needs.
type OrderAPI interface {
	Create(ctx context.Context, req models.CreateOrderRequest) (models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	Cancel(ctx context.Context, orderID string) (models.Order, error)
}

// OrderStore holds the current user's orders, newest first. Orders are never
// removed: cancellation is a status transition, and the entry is updated in
// place.
type OrderStore struct {
	mu      sync.RWMutex
	orders  []models.Order
	api     OrderAPI
	session *Session

	loading  atomic.Bool
	creating atomic.Bool
}

func NewOrderStore(api OrderAPI, session *Session) *OrderStore {
	return &OrderStore{api: api, session: session}
}

// Orders returns a snapshot of the local list.
func (s *OrderStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Loading reports whether a fetch or create is in flight, so the UI can
// show progress and disable its controls.
func (s *OrderStore) Loading() bool {
	return s.loading.Load() || s.creating.Load()
}

// CreateOrder persists the order remotely and prepends it to the local list.
// A second call while one is still in flight is rejected to prevent
// duplicate submissions.
func (s *OrderStore) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	if !s.creating.CompareAndSwap(false, true) {
		return models.Order{}, &models.APIError{Op: "orders.Create", Message: "order submission in progress", Err: models.ErrSubmitInFlight}
	}
	defer s.creating.Store(false)

	order, err := s.api.Create(ctx, req)
	if err != nil {
		return models.Order{}, err
	}

	s.mu.Lock()
	s.orders = append([]models.Order{order}, s.orders...)
	s.mu.Unlock()
	return order, nil
}

// FetchOrders replaces the local list with the user's orders. The endpoint
// may be over-broad, so the result is defensively filtered to the
// authenticated customer before it is stored.
func (s *OrderStore) FetchOrders(ctx context.Context) error {
	s.loading.Store(true)
	defer s.loading.Store(false)

	orders, err := s.api.List(ctx)
	if err != nil {
		return err
	}

	user, ok := s.session.User()
	filtered := make([]models.Order, 0, len(orders))
	if ok {
		for _, order := range orders {
			if order.CustomerID == user.ID {
				filtered = append(filtered, order)
			}
		}
	}

	s.mu.Lock()
	s.orders = filtered
	s.mu.Unlock()
	return nil
}

// CancelOrder transitions a pending order to cancelled. Orders past pending
// are rejected locally; the server enforces the same policy and stays the
// final authority.
func (s *OrderStore) CancelOrder(ctx context.Context, orderID string) error {
	s.mu.RLock()
	var status models.OrderStatus
	found := false
	for _, order := range s.orders {
		if order.ID == orderID {
			status = order.Status
			found = true
			break
		}
	}
	s.mu.RUnlock()

	if found && !status.Cancellable() {
		return &models.APIError{Op: "orders.Cancel", Message: string(status) + " orders cannot be cancelled", Err: models.ErrNotCancellable}
	}

	updated, err := s.api.Cancel(ctx, orderID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return nil
}
