// Package pricing implements the order total calculation.
//
// Totals follow one rule: total = unit price x quantity + delivery fee.
// Inputs arriving as text (form fields, query params) are coerced with
// ParseAmount and ParseQuantity, which default to zero on malformed input so
// a partially filled form still renders a sane total instead of failing.
package pricing

import (
	"strconv"
	"strings"
)

// ComputeTotal returns the order total for the given unit price, quantity,
// and delivery fee. Negative operands are treated as zero, matching the
// coercion rule for malformed input.
func ComputeTotal(unitPrice float64, quantity int, deliveryFee float64) float64 {
	if unitPrice < 0 {
		unitPrice = 0
	}
	if quantity < 0 {
		quantity = 0
	}
	if deliveryFee < 0 {
		deliveryFee = 0
	}
	return unitPrice*float64(quantity) + deliveryFee
}

// ParseAmount converts a textual monetary amount to a float64.
// Absent, malformed, or negative input yields zero.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseQuantity converts a textual quantity to an int.
// Absent, malformed, or negative input yields zero.
func ParseQuantity(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
