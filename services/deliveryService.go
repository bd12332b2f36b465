package services

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/chakula-app/chakula-client/api"
	"github.com/chakula-app/chakula-client/models"
)

const deliveriesPath = "/api/v1/deliveries/"

// DeliveryService backs the delivery-staff dashboard: active runs, status
// and location updates, and aggregate metrics.
type DeliveryService struct {
	client *api.Client
}

func NewDeliveryService(client *api.Client) *DeliveryService {
	return &DeliveryService{client: client}
}

// Active lists in-progress deliveries, optionally scoped to one driver.
func (s *DeliveryService) Active(ctx context.Context, driverID string) ([]models.DeliveryOrder, error) {
	req := s.client.R(ctx)
	if driverID != "" {
		req.SetQueryParam("driverId", driverID)
	}

	var deliveries []models.DeliveryOrder
	err := s.client.Execute("deliveries.Active", req, resty.MethodGet, deliveriesPath+"active/", &deliveries)
	return deliveries, err
}

// UpdateStatus patches a delivery's status, with the driver's current
// location when available.
func (s *DeliveryService) UpdateStatus(ctx context.Context, deliveryID string, status models.DeliveryStatus, location *models.GeoPoint) (models.DeliveryOrder, error) {
	body := map[string]any{"status": status}
	if location != nil {
		body["location"] = location
	}
	req := s.client.R(ctx).SetBody(body)

	var delivery models.DeliveryOrder
	err := s.client.Execute("deliveries.UpdateStatus", req, resty.MethodPatch, fmt.Sprintf("%s%s/", deliveriesPath, deliveryID), &delivery)
	return delivery, err
}

// Metrics returns the aggregate delivery figures for the dashboard header.
func (s *DeliveryService) Metrics(ctx context.Context) (models.DeliveryMetrics, error) {
	var metrics models.DeliveryMetrics
	err := s.client.Execute("deliveries.Metrics", s.client.R(ctx), resty.MethodGet, deliveriesPath+"metrics/", &metrics)
	return metrics, err
}
