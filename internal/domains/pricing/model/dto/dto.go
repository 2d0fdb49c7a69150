package dto

import (
	"voyago/internal/domains/pricing/model"
)

type QuoteRequest struct {
	BaseFare float64 `json:"base_fare" validate:"gte=0"`
	Tax      float64 `json:"tax"       validate:"gte=0"`
}

// QuoteResponse itemizes the markup lines. Amounts are rounded to two
// decimals here and only here; the composed breakdown keeps full precision.
type QuoteResponse struct {
	BaseFare          float64 `json:"base_fare"`
	Tax               float64 `json:"tax"`
	Subtotal          float64 `json:"subtotal"`
	Commission        float64 `json:"commission"`
	CommissionPercent float64 `json:"commission_percent"`
	VAT               float64 `json:"vat"`
	VATPercent        float64 `json:"vat_percent"`
	Total             float64 `json:"total"`
}

func (r *QuoteResponse) FromBreakdown(b model.Breakdown, commissionPercent, vatPercent float64) {
	r.BaseFare = model.Round2(b.BaseFare)
	r.Tax = model.Round2(b.Tax)
	r.Subtotal = model.Round2(b.Subtotal)
	r.Commission = model.Round2(b.Commission)
	r.CommissionPercent = commissionPercent
	r.VAT = model.Round2(b.VAT)
	r.VATPercent = vatPercent
	r.Total = model.Round2(b.Total)
}
