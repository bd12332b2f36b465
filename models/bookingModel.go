package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type Table struct {
	ID          string `json:"id"`
	Number      int    `json:"number"`
	Capacity    int    `json:"capacity"`
	IsAvailable bool   `json:"is_available"`
}

type TableBooking struct {
	ID              string        `json:"id"`
	CustomerID      string        `json:"customer"`
	TableID         string        `json:"table"`
	BookingDate     string        `json:"booking_date"`
	BookingTime     string        `json:"booking_time"`
	NumberOfGuests  int           `json:"number_of_guests"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type BookingRequest struct {
	BookingDate     string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	BookingTime     string `json:"booking_time" validate:"required,datetime=15:04"`
	NumberOfGuests  int    `json:"number_of_guests" validate:"required,gte=1"`
	TableID         string `json:"table" validate:"required"`
	SpecialRequests string `json:"special_requests,omitempty"`
}
