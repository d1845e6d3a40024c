package finance

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// GSTRate is the flat GST applied on top of the discounted amount.
const GSTRate = 0.18

// DefaultInvoiceAmount is substituted when an account is created without
// an invoice amount.
const DefaultInvoiceAmount float64 = 1000

var gstRate = decimal.NewFromFloat(GSTRate)

// Sanitize maps NaN and infinities to zero so derived figures stay finite.
func Sanitize(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// ParseAmount converts raw user input into an invoice amount. Anything
// that does not parse as a finite float becomes zero; parse failures are
// recovered locally, never surfaced.
func ParseAmount(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return Sanitize(value)
}

// DiscountAmount returns the absolute discount for an amount and a
// discount percentage, rounded to two decimals.
func DiscountAmount(amount, discount float64) float64 {
	amount = Sanitize(amount)
	discount = Sanitize(discount)
	if amount == 0 || discount == 0 {
		return 0
	}
	result, _ := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(discount)).
		Div(decimal.NewFromInt(100)).
		Round(2).
		Float64()
	return result
}

// DiscountedTotal returns the amount after applying the discount
// percentage. The amount passes through unchanged when either input is
// zero.
func DiscountedTotal(amount, discount float64) float64 {
	amount = Sanitize(amount)
	discount = Sanitize(discount)
	if amount == 0 || discount == 0 {
		return amount
	}
	result, _ := decimal.NewFromFloat(amount).
		Sub(decimal.NewFromFloat(DiscountAmount(amount, discount))).
		Round(2).
		Float64()
	return result
}

// GST returns the GST due on the discounted amount.
func GST(amount, discount float64) float64 {
	result, _ := decimal.NewFromFloat(DiscountedTotal(amount, discount)).
		Mul(gstRate).
		Round(2).
		Float64()
	return result
}

// FinalAmount returns the discounted amount plus GST.
func FinalAmount(amount, discount float64) float64 {
	result, _ := decimal.NewFromFloat(DiscountedTotal(amount, discount)).
		Add(decimal.NewFromFloat(GST(amount, discount))).
		Round(2).
		Float64()
	return result
}
