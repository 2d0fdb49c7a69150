package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voyago/internal/domains/pricing/model"
)

func TestCompose(t *testing.T) {
	breakdown := model.Compose(248, 111.95, 5, 15)

	assert.InDelta(t, 248, breakdown.BaseFare, 1e-9)
	assert.InDelta(t, 111.95, breakdown.Tax, 1e-9)
	assert.InDelta(t, 359.95, breakdown.Subtotal, 1e-9)
	assert.InDelta(t, 17.9975, breakdown.Commission, 1e-9)
	assert.InDelta(t, 2.699625, breakdown.VAT, 1e-9)
	assert.InDelta(t, 380.647125, breakdown.Total, 1e-9)
}

func TestCompose_ZeroPercentages(t *testing.T) {
	breakdown := model.Compose(100, 20, 0, 0)

	assert.InDelta(t, 120, breakdown.Subtotal, 1e-9)
	assert.Zero(t, breakdown.Commission)
	assert.Zero(t, breakdown.VAT)
	assert.InDelta(t, 120, breakdown.Total, 1e-9)
}

func TestCompose_ZeroFare(t *testing.T) {
	breakdown := model.Compose(0, 0, 5, 15)

	assert.Zero(t, breakdown.Subtotal)
	assert.Zero(t, breakdown.Total)
}

func TestCompose_VATAppliesToCommissionOnly(t *testing.T) {
	breakdown := model.Compose(1000, 0, 10, 20)

	// Commission 100, VAT 20% of the commission, never of the subtotal.
	assert.InDelta(t, 100, breakdown.Commission, 1e-9)
	assert.InDelta(t, 20, breakdown.VAT, 1e-9)
	assert.InDelta(t, 1120, breakdown.Total, 1e-9)
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 380.65, model.Round2(380.647125), 1e-9)
	assert.InDelta(t, 17.99, model.Round2(17.9949), 1e-9)
	assert.InDelta(t, 0.13, model.Round2(0.125), 1e-9)
	assert.InDelta(t, 0, model.Round2(0), 1e-9)
}
