// Package payment integrates the external payment collaborator. The
// collaborator reports through a callback/onClose pair; Collect folds that
// pair into a single awaited result, and Verify asks our own server to
// confirm the transaction by reference, because a client-reported success is
// never trusted on its own.
package payment

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/chakula-app/chakula-client/api"
	"github.com/chakula-app/chakula-client/models"
	"github.com/chakula-app/chakula-client/pricing"
)

type Status string

const (
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Response is what the gateway reports back through its callback.
type Response struct {
	Reference   string `json:"reference"`
	Status      Status `json:"status"`
	Transaction string `json:"transaction"`
	Message     string `json:"message"`
}

// Config is handed to the gateway when a charge is opened. Amount is in
// minor currency units.
type Config struct {
	Key       string
	Email     string
	Amount    int
	Currency  string
	Reference string
	Callback  func(Response)
	OnClose   func()
}

// Gateway is the external payment collaborator. Implementations open the
// charge UI and report through Config.Callback, or Config.OnClose when the
// user abandons it.
type Gateway interface {
	Open(cfg Config) error
}

type Service struct {
	client   *api.Client
	key      string
	currency string
}

func NewService(client *api.Client, key, currency string) *Service {
	return &Service{client: client, key: key, currency: currency}
}

// NewConfig builds a charge config for the given amount in major units,
// with a fresh unique reference.
func (s *Service) NewConfig(email string, amount float64) Config {
	return Config{
		Key:       s.key,
		Email:     email,
		Amount:    pricing.MinorUnits(amount),
		Currency:  s.currency,
		Reference: uuid.NewString(),
	}
}

// Collect opens the charge and waits for the gateway to settle it. The
// callback/onClose pair becomes one result: a close without a callback is a
// cancellation. Context cancellation abandons the wait.
func (s *Service) Collect(ctx context.Context, gateway Gateway, cfg Config) (Response, error) {
	settled := make(chan Response, 1)
	closed := make(chan struct{}, 1)

	cfg.Callback = func(resp Response) {
		select {
		case settled <- resp:
		default:
		}
	}
	cfg.OnClose = func() {
		select {
		case closed <- struct{}{}:
		default:
		}
	}

	if err := gateway.Open(cfg); err != nil {
		return Response{}, models.NetworkError("payment.Collect", err)
	}

	select {
	case resp := <-settled:
		return resp, nil
	case <-closed:
		return Response{Reference: cfg.Reference, Status: StatusCancelled}, nil
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}
}

// Verify confirms the transaction server-side by reference. Only a verified
// success counts as paid.
func (s *Service) Verify(ctx context.Context, reference string) error {
	var result struct {
		Status string `json:"status"`
	}
	path := fmt.Sprintf("/api/v1/payments/verify/%s/", reference)
	if err := s.client.Execute("payment.Verify", s.client.R(ctx), resty.MethodGet, path, &result); err != nil {
		return err
	}
	if result.Status != string(StatusSuccess) {
		return &models.APIError{
			Op:      "payment.Verify",
			Message: fmt.Sprintf("reference %s reported %q", reference, result.Status),
			Err:     models.ErrPaymentVerification,
		}
	}
	return nil
}
