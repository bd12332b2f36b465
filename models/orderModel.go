package models

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// orderTransitions is the forward lifecycle. Cancellation is handled
// separately because it is only reachable from pending.
var orderTransitions = map[OrderStatus]OrderStatus{
	OrderPending:   OrderConfirmed,
	OrderConfirmed: OrderPreparing,
	OrderPreparing: OrderReady,
	OrderReady:     OrderDelivered,
}

// CanTransition reports whether moving from s to next is a legal lifecycle
// step.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if next == OrderCancelled {
		return s.Cancellable()
	}
	return orderTransitions[s] == next
}

// Cancellable reports whether an order in this status may still be
// cancelled. Once the kitchen has confirmed, cancellation is rejected.
func (s OrderStatus) Cancellable() bool {
	return s == OrderPending
}

type PaymentMethod string

const (
	PayCard   PaymentMethod = "card"
	PayCash   PaymentMethod = "cash"
	PayWallet PaymentMethod = "wallet"
)

type DeliveryType string

const (
	TypeDelivery DeliveryType = "delivery"
	TypePickup   DeliveryType = "pickup"
	TypeDineIn   DeliveryType = "dine-in"
)

// OrderItem is a snapshot of the cart line at order time. Price is frozen
// here; later menu price changes never touch it.
type OrderItem struct {
	ID                  string  `json:"id"`
	MenuItemID          int     `json:"menuItemId"`
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
}

type DeliveryInfo struct {
	Type          DeliveryType `json:"type" validate:"required,oneof=delivery pickup dine-in"`
	Address       string       `json:"address,omitempty" validate:"required_if=Type delivery"`
	ContactNumber string       `json:"contactNumber" validate:"required"`
	Instructions  string       `json:"instructions,omitempty"`
	PreferredTime string       `json:"preferredTime,omitempty"`
}

type Order struct {
	ID            string        `json:"id"`
	Reference     string        `json:"reference"`
	CustomerID    string        `json:"customerId"`
	Items         []OrderItem   `json:"items"`
	Status        OrderStatus   `json:"status"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	DeliveryFee   float64       `json:"deliveryFee"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Delivery      DeliveryInfo  `json:"delivery"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// CreateOrderRequest is the POST /orders payload assembled at checkout.
type CreateOrderRequest struct {
	Items         []OrderItem   `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	DeliveryFee   float64       `json:"deliveryFee"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Delivery      DeliveryInfo  `json:"delivery"`
}

type OrderResponse struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}
