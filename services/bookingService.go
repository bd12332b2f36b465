package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"

	"github.com/chakula-app/chakula-client/api"
	"github.com/chakula-app/chakula-client/models"
)

const (
	tablesPath   = "/api/v1/tables/"
	bookingsPath = "/api/v1/table-bookings/"
)

// BookingService manages table bookings.
type BookingService struct {
	client   *api.Client
	validate *validator.Validate
}

func NewBookingService(client *api.Client) *BookingService {
	return &BookingService{
		client:   client,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Tables lists every table.
func (s *BookingService) Tables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	err := s.client.Execute("bookings.Tables", s.client.R(ctx), resty.MethodGet, tablesPath, &tables)
	return tables, err
}

// AvailableTables lists tables free at the given date and time that seat the
// party.
func (s *BookingService) AvailableTables(ctx context.Context, date, timeOfDay string, guests int) ([]models.Table, error) {
	req := s.client.R(ctx).SetQueryParams(map[string]string{
		"date":   date,
		"time":   timeOfDay,
		"guests": strconv.Itoa(guests),
	})

	var tables []models.Table
	err := s.client.Execute("bookings.AvailableTables", req, resty.MethodGet, bookingsPath+"available_tables/", &tables)
	return tables, err
}

// Bookings lists the caller's bookings.
func (s *BookingService) Bookings(ctx context.Context) ([]models.TableBooking, error) {
	var bookings []models.TableBooking
	err := s.client.Execute("bookings.List", s.client.R(ctx), resty.MethodGet, bookingsPath, &bookings)
	return bookings, err
}

// Booking fetches one booking by id.
func (s *BookingService) Booking(ctx context.Context, bookingID string) (models.TableBooking, error) {
	var booking models.TableBooking
	err := s.client.Execute("bookings.Get", s.client.R(ctx), resty.MethodGet, bookingPath(bookingID), &booking)
	return booking, err
}

// Create validates the request locally, then books the table. Validation
// failures surface as field-level errors with no network call made.
func (s *BookingService) Create(ctx context.Context, bookingData models.BookingRequest) (models.TableBooking, error) {
	if err := s.validate.Struct(bookingData); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return models.TableBooking{}, models.ValidationError("bookings.Create", fe.Field(), fmt.Sprintf("failed %s validation", fe.Tag()))
		}
		return models.TableBooking{}, models.ValidationError("bookings.Create", "", err.Error())
	}

	req := s.client.R(ctx).SetBody(bookingData)

	var booking models.TableBooking
	err := s.client.Execute("bookings.Create", req, resty.MethodPost, bookingsPath, &booking)
	return booking, err
}

// UpdateStatus patches the booking status.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) (models.TableBooking, error) {
	req := s.client.R(ctx).SetBody(map[string]models.BookingStatus{"status": status})

	var booking models.TableBooking
	err := s.client.Execute("bookings.UpdateStatus", req, resty.MethodPatch, bookingPath(bookingID), &booking)
	return booking, err
}

// Cancel marks the booking cancelled. Like orders, bookings are status
// transitions, not deletions.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) (models.TableBooking, error) {
	return s.UpdateStatus(ctx, bookingID, models.BookingCancelled)
}

// Delete removes the booking entirely. Manager surface only.
func (s *BookingService) Delete(ctx context.Context, bookingID string) error {
	return s.client.Execute("bookings.Delete", s.client.R(ctx), resty.MethodDelete, bookingPath(bookingID), nil)
}

func bookingPath(bookingID string) string {
	return fmt.Sprintf("%s%s/", bookingsPath, bookingID)
}
