package models

// CartItem is one line in the cart. MenuItemID is the menu reference used
// for identity when merging; ID is the server-side line id used for
// PATCH/DELETE routing and is empty until the server has seen the item.
type CartItem struct {
	ID                  string  `json:"id"`
	MenuItemID          int     `json:"menuItemId"`
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
	Image               string  `json:"image,omitempty"`
}

// Cart mirrors the server-side cart. Subtotal, Tax and Total are always
// derived from Items, never mutated independently.
type Cart struct {
	Items       []CartItem `json:"items"`
	Subtotal    float64    `json:"subtotal"`
	Tax         float64    `json:"tax"`
	Total       float64    `json:"total"`
	DeliveryFee float64    `json:"deliveryFee,omitempty"`
}

type AddToCartRequest struct {
	MenuItemID int `json:"menuitem"`
	Quantity   int `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity            *int    `json:"quantity,omitempty"`
	SpecialInstructions *string `json:"specialInstructions,omitempty"`
}
