package verification

import (
	"net/http"
	"voyago/infras/otel"
	"voyago/internal/domains/verification/model/dto"
	"voyago/internal/domains/verification/service"
	"voyago/shared/constant"
	"voyago/shared/validator"
	"voyago/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Verification
	otel    otel.Otel
}

func New(service service.Verification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/verifications", func(routerGroup chi.Router) {
		routerGroup.Get("/{email}", handler.GetStatus)
		routerGroup.Post("/{email}/resend", handler.Resend)
		routerGroup.Post("/{email}/verify", handler.Verify)
	})
}

// GetStatus reports the current resend countdown for an address.
// @Summary Get verification status
// @Description Report whether the resend countdown for this address is idle or running, with the seconds remaining.
// @Tags Verification
// @Accept json
// @Produce json
// @Param email path string true "Email address"
// @Success 200 {object} response.Data[dto.StatusResponse] "Countdown state"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/verifications/{email} [get]
func (handler *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatus")
	defer scope.End()

	email := chi.URLParam(r, constant.RequestParamEmail)
	if err := validator.ValidateVar(email, "required,email"); err != nil {
		response.WithError(w, err)

		return
	}

	status, err := handler.service.Status(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get verification status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, status)
}

// Resend sends a fresh verification code, subject to the countdown.
// @Summary Resend the verification code
// @Description Send a fresh code to the address and start the resend countdown. Rejected with 429 while a countdown runs.
// @Tags Verification
// @Accept json
// @Produce json
// @Param email path string true "Email address"
// @Success 200 {object} response.Data[dto.ResendResponse] "Code sent, countdown started"
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/verifications/{email}/resend [post]
func (handler *Handler) Resend(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Resend")
	defer scope.End()

	email := chi.URLParam(r, constant.RequestParamEmail)
	if err := validator.ValidateVar(email, "required,email"); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Resend(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resend verification code")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Verification code sent")

	response.WithJSON(w, http.StatusOK, res)
}

// Verify checks a submitted code against the pending one.
// @Summary Verify a code
// @Description Check the submitted code for this address. Success clears the pending code and the countdown.
// @Tags Verification
// @Accept json
// @Produce json
// @Param email path string true "Email address"
// @Param request body dto.VerifyRequest true "Verify Request"
// @Success 200 {object} response.Message "Address verified"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/verifications/{email}/verify [post]
func (handler *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Verify")
	defer scope.End()

	email := chi.URLParam(r, constant.RequestParamEmail)
	if err := validator.ValidateVar(email, "required,email"); err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.VerifyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Verify(ctx, email, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify code")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Email address verified")

	response.WithMessage(w, http.StatusOK, "Email address verified successfully")
}
