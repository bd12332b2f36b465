package models

import "time"

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryAssigned  DeliveryStatus = "assigned"
	DeliveryPickedUp  DeliveryStatus = "picked_up"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
)

type GeoPoint struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

type DeliveryZone struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	BaseDeliveryFee       float64 `json:"baseDeliveryFee"`
	EstimatedDeliveryTime int     `json:"estimatedDeliveryTime"`
}

type DeliveryOrder struct {
	ID                    string         `json:"id"`
	OrderID               string         `json:"orderId"`
	DriverID              string         `json:"driverId,omitempty"`
	Status                DeliveryStatus `json:"status"`
	PickupAddress         string         `json:"pickupAddress"`
	DeliveryAddress       string         `json:"deliveryAddress"`
	CustomerName          string         `json:"customerName"`
	CustomerPhone         string         `json:"customerPhone"`
	EstimatedDeliveryTime string         `json:"estimatedDeliveryTime"`
	ActualDeliveryTime    string         `json:"actualDeliveryTime,omitempty"`
	CurrentLocation       *GeoPoint      `json:"currentLocation,omitempty"`
	Zone                  DeliveryZone   `json:"zone"`
	SpecialInstructions   string         `json:"specialInstructions,omitempty"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
}

type DeliveryMetrics struct {
	TotalDeliveries     int     `json:"totalDeliveries"`
	CompletedDeliveries int     `json:"completedDeliveries"`
	AverageDeliveryTime float64 `json:"averageDeliveryTime"`
	OnTimeDeliveryRate  float64 `json:"onTimeDeliveryRate"`
}
