// Package services contains the remote API services. Every method performs
// a network call through the shared api.Client and returns the server's
// authoritative payload or a mapped error; nothing is swallowed here and no
// local state is touched. Binding server responses to the stores is the job
// of the flow types.
package services

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/chakula-app/chakula-client/api"
	"github.com/chakula-app/chakula-client/models"
)

const cartPath = "/api/v1/cart/"

// CartService syncs cart mutations against the remote cart API. The server
// is authoritative: every successful response carries the full cart
// snapshot, which callers use to replace local state.
type CartService struct {
	client *api.Client
}

func NewCartService(client *api.Client) *CartService {
	return &CartService{client: client}
}

// Fetch returns the current server-side cart for the authenticated session.
func (s *CartService) Fetch(ctx context.Context) (models.Cart, error) {
	var cart models.Cart
	err := s.client.Execute("cart.Fetch", s.client.R(ctx), resty.MethodGet, cartPath, &cart)
	return cart, err
}

// Add posts a menu item reference and quantity; returns the updated cart.
func (s *CartService) Add(ctx context.Context, menuItemID, quantity int) (models.Cart, error) {
	req := s.client.R(ctx).SetBody(models.AddToCartRequest{
		MenuItemID: menuItemID,
		Quantity:   quantity,
	})

	var cart models.Cart
	err := s.client.Execute("cart.Add", req, resty.MethodPost, cartPath, &cart)
	return cart, err
}

// UpdateQuantity patches a single line item's quantity.
func (s *CartService) UpdateQuantity(ctx context.Context, itemID string, quantity int) (models.Cart, error) {
	req := s.client.R(ctx).SetBody(models.UpdateCartItemRequest{Quantity: &quantity})

	var cart models.Cart
	err := s.client.Execute("cart.UpdateQuantity", req, resty.MethodPatch, cartItemPath(itemID), &cart)
	return cart, err
}

// SetInstructions patches a line item's special instructions.
func (s *CartService) SetInstructions(ctx context.Context, itemID, instructions string) (models.Cart, error) {
	req := s.client.R(ctx).SetBody(models.UpdateCartItemRequest{SpecialInstructions: &instructions})

	var cart models.Cart
	err := s.client.Execute("cart.SetInstructions", req, resty.MethodPatch, cartItemPath(itemID), &cart)
	return cart, err
}

// Remove deletes one line item.
func (s *CartService) Remove(ctx context.Context, itemID string) error {
	return s.client.Execute("cart.Remove", s.client.R(ctx), resty.MethodDelete, cartItemPath(itemID), nil)
}

// Clear deletes every line item for the session.
func (s *CartService) Clear(ctx context.Context) error {
	return s.client.Execute("cart.Clear", s.client.R(ctx), resty.MethodDelete, cartPath, nil)
}

func cartItemPath(itemID string) string {
	return fmt.Sprintf("%s%s/", cartPath, itemID)
}
