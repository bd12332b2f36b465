package services

import (
	"context"

	"github.com/chakula-app/chakula-client/models"
	"github.com/chakula-app/chakula-client/stores"
)

// CartFlow binds the remote cart service to the local store. On every
// successful sync the server snapshot replaces local state; on failure local
// state is left untouched and the error propagates to the caller, who
// decides whether to retry.
type CartFlow struct {
	service *CartService
	store   *stores.CartStore
}

func NewCartFlow(service *CartService, store *stores.CartStore) *CartFlow {
	return &CartFlow{service: service, store: store}
}

// Refresh pulls the server cart and replaces local state.
func (f *CartFlow) Refresh(ctx context.Context) error {
	cart, err := f.service.Fetch(ctx)
	if err != nil {
		return err
	}
	f.store.Set(cart)
	return nil
}

// Add posts the item to the server and replaces local state with the
// returned snapshot.
func (f *CartFlow) Add(ctx context.Context, menuItemID, quantity int) error {
	if quantity < 1 {
		return models.ValidationError("cart.Add", "quantity", "quantity must be at least 1")
	}
	cart, err := f.service.Add(ctx, menuItemID, quantity)
	if err != nil {
		return err
	}
	f.store.Set(cart)
	return nil
}

// ChangeQuantity is the boundary where a quantity dropping to zero or below
// becomes a removal; the store and the service only ever see quantities of
// at least 1.
func (f *CartFlow) ChangeQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity < 1 {
		return f.Remove(ctx, itemID)
	}
	cart, err := f.service.UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		return err
	}
	f.store.Set(cart)
	return nil
}

// SetInstructions attaches a note to a line item on the server and mirrors
// the result locally.
func (f *CartFlow) SetInstructions(ctx context.Context, itemID, instructions string) error {
	cart, err := f.service.SetInstructions(ctx, itemID, instructions)
	if err != nil {
		return err
	}
	f.store.Set(cart)
	return nil
}

// Remove deletes the line item remotely, then locally. The DELETE endpoint
// returns no cart body, so the local mutation recomputes totals itself.
func (f *CartFlow) Remove(ctx context.Context, itemID string) error {
	if err := f.service.Remove(ctx, itemID); err != nil {
		return err
	}
	f.store.RemoveItem(itemID)
	return nil
}

// Clear empties the cart remotely, then locally.
func (f *CartFlow) Clear(ctx context.Context) error {
	if err := f.service.Clear(ctx); err != nil {
		return err
	}
	f.store.Clear()
	return nil
}
