package services

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/chakula-app/chakula-client/api"
	"github.com/chakula-app/chakula-client/models"
)

const ordersPath = "/api/v1/orders/"

// OrderService talks to the remote order API. It implements
// stores.OrderAPI.
type OrderService struct {
	client *api.Client
}

func NewOrderService(client *api.Client) *OrderService {
	return &OrderService{client: client}
}

// Create submits the assembled checkout payload and returns the created
// order.
func (s *OrderService) Create(ctx context.Context, orderData models.CreateOrderRequest) (models.Order, error) {
	req := s.client.R(ctx).SetBody(orderData)

	var resp models.OrderResponse
	if err := s.client.Execute("orders.Create", req, resty.MethodPost, ordersPath, &resp); err != nil {
		return models.Order{}, err
	}
	return resp.Order, nil
}

// List returns all orders visible to the caller. The endpoint may be
// over-broad; the order store filters to the authenticated user.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.client.Execute("orders.List", s.client.R(ctx), resty.MethodGet, ordersPath, &orders)
	return orders, err
}

// Get fetches one order by id.
func (s *OrderService) Get(ctx context.Context, orderID string) (models.Order, error) {
	var order models.Order
	err := s.client.Execute("orders.Get", s.client.R(ctx), resty.MethodGet, orderPath(orderID), &order)
	return order, err
}

// UpdateStatus patches the order's lifecycle status. Used by the manager
// dashboard; customers only ever cancel.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (models.Order, error) {
	req := s.client.R(ctx).SetBody(models.UpdateOrderStatusRequest{Status: status})

	var order models.Order
	err := s.client.Execute("orders.UpdateStatus", req, resty.MethodPatch, orderPath(orderID), &order)
	return order, err
}

// Cancel transitions the order to cancelled.
func (s *OrderService) Cancel(ctx context.Context, orderID string) (models.Order, error) {
	return s.UpdateStatus(ctx, orderID, models.OrderCancelled)
}

func orderPath(orderID string) string {
	return fmt.Sprintf("%s%s/", ordersPath, orderID)
}
