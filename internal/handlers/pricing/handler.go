package pricing

import (
	"net/http"
	"strconv"
	"voyago/infras/otel"
	"voyago/internal/domains/pricing/model/dto"
	"voyago/internal/domains/pricing/service"
	"voyago/shared/constant"
	"voyago/shared/failure"
	"voyago/shared/validator"
	"voyago/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	queryParamBaseFare = "base_fare"
	queryParamTax      = "tax"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pricing", func(routerGroup chi.Router) {
		routerGroup.Get("/quote", handler.GetQuote)
	})
}

// GetQuote composes the displayed price breakdown for a fare selection.
// @Summary Get a price quote
// @Description Compose the itemized price (subtotal, commission, VAT, total) for the given fare inputs.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param base_fare query number true "Base fare amount"
// @Param tax query number true "Tax amount"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Price breakdown"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/quote [get]
func (handler *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuote")
	defer scope.End()

	baseFare, err := strconv.ParseFloat(r.URL.Query().Get(queryParamBaseFare), 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("base_fare must be a number"))

		return
	}

	tax, err := strconv.ParseFloat(r.URL.Query().Get(queryParamTax), 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("tax must be a number"))

		return
	}

	req := dto.QuoteRequest{BaseFare: baseFare, Tax: tax}
	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate quote request")

		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compose quote")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quote)
}
