// Package checkout assembles and submits orders. The sequence is: validate
// locally, snapshot the cart into immutable order items, create the order,
// then settle payment. A failed or abandoned card payment cancels the order
// it just created rather than leaving it pending forever; the cart survives
// every failure and is only cleared once the flow completes.
package checkout

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/go-playground/validator/v10"

	"github.com/chakula-app/chakula-client/models"
	"github.com/chakula-app/chakula-client/payment"
	"github.com/chakula-app/chakula-client/pricing"
	"github.com/chakula-app/chakula-client/stores"
)

// Request is the checkout form state.
type Request struct {
	PaymentMethod models.PaymentMethod `validate:"required,oneof=card cash wallet"`
	Delivery      models.DeliveryInfo  `validate:"required"`

	// Gateway is the external payment collaborator, required for card
	// payments.
	Gateway payment.Gateway `validate:"-"`
}

// Result reports a completed submission.
type Result struct {
	Order            models.Order
	PaymentReference string
}

type Flow struct {
	cart     *stores.CartStore
	orders   *stores.OrderStore
	session  *stores.Session
	payments *payment.Service
	calc     pricing.Calculator
	fee      float64
	validate *validator.Validate

	inFlight atomic.Bool
}

func NewFlow(cart *stores.CartStore, orders *stores.OrderStore, session *stores.Session, payments *payment.Service, calc pricing.Calculator, deliveryFee float64) *Flow {
	return &Flow{
		cart:     cart,
		orders:   orders,
		session:  session,
		payments: payments,
		calc:     calc,
		fee:      deliveryFee,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// InFlight reports whether a submission is currently running, so the UI can
// disable its submit control.
func (f *Flow) InFlight() bool { return f.inFlight.Load() }

// Submit runs the full checkout sequence. A second call while one is in
// flight is rejected immediately: the re-entrancy guard against duplicate
// orders from rapid repeated clicks.
func (f *Flow) Submit(ctx context.Context, req Request) (Result, error) {
	if !f.inFlight.CompareAndSwap(false, true) {
		return Result{}, &models.APIError{Op: "checkout.Submit", Message: "submission already in progress", Err: models.ErrSubmitInFlight}
	}
	defer f.inFlight.Store(false)

	// Step 1: fail fast on bad input; no network call is made past here
	// until the payload is known good.
	if err := f.validateRequest(req); err != nil {
		return Result{}, err
	}

	// Step 2: snapshot the cart. Prices are frozen into the order items
	// here; later menu changes never touch a created order.
	payload := f.buildPayload(req)

	// Step 3: create the order.
	order, err := f.orders.CreateOrder(ctx, payload)
	if err != nil {
		return Result{}, err
	}

	// Steps 4-5: settle payment. Cash and wallet complete immediately.
	if req.PaymentMethod != models.PayCard {
		f.cart.Clear()
		return Result{Order: order}, nil
	}
	return f.collectCardPayment(ctx, req.Gateway, order)
}

func (f *Flow) validateRequest(req Request) error {
	if len(f.cart.Items()) == 0 {
		return models.ValidationError("checkout.Submit", "items", "cart is empty")
	}
	if req.PaymentMethod == models.PayCard && req.Gateway == nil {
		return models.ValidationError("checkout.Submit", "gateway", "card payments need a payment gateway")
	}
	if err := f.validate.Struct(req); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return models.ValidationError("checkout.Submit", fe.Field(), fmt.Sprintf("failed %s validation", fe.Tag()))
		}
		return models.ValidationError("checkout.Submit", "", err.Error())
	}
	return nil
}

func (f *Flow) buildPayload(req Request) models.CreateOrderRequest {
	items := f.cart.Items()
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ID:                  item.ID,
			MenuItemID:          item.MenuItemID,
			Name:                item.Name,
			Price:               item.Price,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	totals := f.calc.CartTotals(items)
	var fee float64
	if req.Delivery.Type == models.TypeDelivery {
		fee = f.fee
	}

	return models.CreateOrderRequest{
		Items:         orderItems,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		DeliveryFee:   fee,
		Total:         pricing.Round2(totals.Total + fee),
		PaymentMethod: req.PaymentMethod,
		Delivery:      req.Delivery,
	}
}

func (f *Flow) collectCardPayment(ctx context.Context, gateway payment.Gateway, order models.Order) (Result, error) {
	email := ""
	if user, ok := f.session.User(); ok {
		email = user.Email
	}
	cfg := f.payments.NewConfig(email, order.Total)

	resp, err := f.payments.Collect(ctx, gateway, cfg)
	if err != nil {
		f.compensate(ctx, order.ID)
		return Result{}, err
	}
	if resp.Status != payment.StatusSuccess {
		f.compensate(ctx, order.ID)
		return Result{}, &models.APIError{
			Op:      "checkout.Submit",
			Message: fmt.Sprintf("payment %s", resp.Status),
			Err:     models.ErrPaymentFailed,
		}
	}

	// Step 4b: the gateway said success, but only the server's word counts.
	// An unverified payment leaves the order pending and the cart intact;
	// no automatic retry.
	if err := f.payments.Verify(ctx, resp.Reference); err != nil {
		return Result{}, err
	}

	f.cart.Clear()
	return Result{Order: order, PaymentReference: resp.Reference}, nil
}

// compensate cancels the order created earlier in this submission so a
// failed or abandoned payment does not leave it pending indefinitely.
func (f *Flow) compensate(ctx context.Context, orderID string) {
	if err := f.orders.CancelOrder(ctx, orderID); err != nil {
		log.Printf("checkout: failed to cancel order %s after payment failure: %v", orderID, err)
	}
}
