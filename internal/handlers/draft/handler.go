package draft

import (
	"net/http"
	"voyago/infras/otel"
	"voyago/internal/domains/draft/model/dto"
	"voyago/internal/domains/draft/service"
	"voyago/shared/constant"
	"voyago/shared/validator"
	"voyago/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Draft
	otel    otel.Otel
}

func New(service service.Draft, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/drafts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDraft)
		routerGroup.Get("/{id}", handler.GetDraft)
		routerGroup.Patch("/{id}/guests", handler.UpdateGuest)
		routerGroup.Post("/{id}/submit", handler.SubmitDraft)
	})
}

// CreateDraft opens a new booking session sized from the search occupancy.
// @Summary Create a booking draft
// @Description Create a booking draft with an empty guest roster sized from the room occupancy.
// @Tags Draft
// @Accept json
// @Produce json
// @Param request body dto.CreateDraftRequest true "Create Draft Request"
// @Success 201 {object} response.Data[dto.DraftResponse] "Draft created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drafts [post]
func (handler *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDraft")
	defer scope.End()

	req := dto.CreateDraftRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	draft, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create draft")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Draft created successfully")

	response.WithJSON(w, http.StatusCreated, draft)
}

// GetDraft retrieves a booking draft by its ID.
// @Summary Get a draft by ID
// @Description Retrieve the current roster state of a booking draft.
// @Tags Draft
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.DraftResponse] "Draft details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drafts/{id} [get]
func (handler *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	draft, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get draft")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, draft)
}

// UpdateGuest applies one guest field edit to the draft roster.
// @Summary Update one guest field
// @Description Apply a single field edit to one guest of the roster and return the field verdict.
// @Tags Draft
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.UpdateGuestRequest true "Update Guest Request"
// @Success 200 {object} response.Data[dto.UpdateGuestResponse] "Field applied"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/drafts/{id}/guests [patch]
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateGuestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateGuest(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SubmitDraft validates the roster and converts the draft into a booking.
// @Summary Submit a draft
// @Description Validate the full roster and create a confirmed booking from it. Field errors come back per guest.
// @Tags Draft
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Success 201 {object} response.Data[dto.SubmitResponse] "Booking created"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Data[dto.SubmitResponse] "Roster has validation errors"
// @Failure 500 {object} response.Error
// @Router /v1/drafts/{id}/submit [post]
func (handler *Handler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitDraft")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Submit(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit draft")

		response.WithError(w, err)

		return
	}

	if len(res.Errors) > 0 {
		scope.AddEvent("Draft submission rejected with field errors")

		response.WithJSON(w, http.StatusUnprocessableEntity, res)

		return
	}

	scope.AddEvent("Draft submitted successfully")

	response.WithJSON(w, http.StatusCreated, res)
}
