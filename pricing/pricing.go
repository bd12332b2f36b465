// Package pricing computes cart totals. All functions are pure: intermediate
// sums keep full float64 precision and rounding to cents happens once, at
// the boundary.
package pricing

import (
	"math"

	"github.com/chakula-app/chakula-client/models"
)

const (
	// DefaultTaxRate is the platform-wide rate applied to the subtotal.
	DefaultTaxRate = 0.10

	// DeliveryFee is the flat fee charged when the order type is delivery.
	DeliveryFee = 5.00
)

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Calculator computes totals at a fixed tax rate.
type Calculator struct {
	TaxRate float64
}

func NewCalculator(taxRate float64) Calculator {
	return Calculator{TaxRate: taxRate}
}

// CartTotals sums price × quantity over items, applies the tax rate and
// rounds each figure to two decimals. An empty slice yields all zeros.
func (c Calculator) CartTotals(items []models.CartItem) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	tax := subtotal * c.TaxRate
	return Totals{
		Subtotal: Round2(subtotal),
		Tax:      Round2(tax),
		Total:    Round2(subtotal + tax),
	}
}

// CalculateCartTotals computes totals at the default rate.
func CalculateCartTotals(items []models.CartItem) Totals {
	return Calculator{TaxRate: DefaultTaxRate}.CartTotals(items)
}

// ItemTotal is the line total for a single cart item, rounded to cents.
func ItemTotal(item models.CartItem) float64 {
	return Round2(item.Price * float64(item.Quantity))
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MinorUnits converts a major-currency amount to integer minor units
// (e.g. 28.05 -> 2805) for the payment gateway.
func MinorUnits(amount float64) int {
	return int(math.Round(amount * 100))
}
