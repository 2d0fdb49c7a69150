package model

import (
	"math"
)

// Breakdown itemizes the displayed cost of a selection. Every intermediate is
// kept because the storefront renders each line, not just the total. Values
// hold full float64 precision; rounding is a render-time concern only.
type Breakdown struct {
	BaseFare   float64 `json:"base_fare"`
	Tax        float64 `json:"tax"`
	Subtotal   float64 `json:"subtotal"`
	Commission float64 `json:"commission"`
	VAT        float64 `json:"vat"`
	Total      float64 `json:"total"`
}

// Compose applies the commission/VAT markup in fixed order: the subtotal is
// fare plus tax, commission is a percentage of the subtotal, VAT is a
// percentage of the commission, and the total sums all three.
func Compose(baseFare, tax, commissionPercent, vatPercent float64) Breakdown {
	subtotal := baseFare + tax
	commission := subtotal * commissionPercent / 100
	vat := commission * vatPercent / 100

	return Breakdown{
		BaseFare:   baseFare,
		Tax:        tax,
		Subtotal:   subtotal,
		Commission: commission,
		VAT:        vat,
		Total:      subtotal + commission + vat,
	}
}

// Round2 rounds to two decimals for display.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
