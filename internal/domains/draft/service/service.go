package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"voyago/config"
	"voyago/infras/otel"
	bookingService "voyago/internal/domains/booking/service"
	"voyago/internal/domains/draft/model"
	"voyago/internal/domains/draft/model/dto"
	"voyago/internal/domains/draft/repository"
	pricingService "voyago/internal/domains/pricing/service"
	"voyago/shared/constant"
	"voyago/shared/failure"

	"github.com/rs/zerolog/log"
)

// Draft manages booking sessions: roster creation from the search occupancy,
// per-keystroke guest edits, and final submission into a booking.
type Draft interface {
	Create(ctx context.Context, req dto.CreateDraftRequest) (dto.DraftResponse, error)
	Get(ctx context.Context, id string) (dto.DraftResponse, error)
	UpdateGuest(ctx context.Context, id string, req dto.UpdateGuestRequest) (dto.UpdateGuestResponse, error)
	Submit(ctx context.Context, id string) (dto.SubmitResponse, error)
}

type serviceImpl struct {
	repo    repository.Draft
	pricing pricingService.Pricing
	booking bookingService.Booking
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Draft, pricing pricingService.Pricing, booking bookingService.Booking, cfg *config.Config, otel otel.Otel) Draft {
	return &serviceImpl{
		repo:    repo,
		pricing: pricing,
		booking: booking,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDraftRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	draft := req.ToModel(user)

	if err = s.repo.Save(ctx, draft, s.cfg.Booking.DraftTTLSeconds); err != nil {
		log.Error().Err(err).Msg("failed to create draft")

		return res, fmt.Errorf("failed to create draft: %w", err)
	}

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(draft)

	return res, nil
}

// UpdateGuest applies one field edit to the roster and persists the result.
// A verdict is not an error: invalid input still answers 200 with the current
// validation message, the way a form reports while typing.
func (s *serviceImpl) UpdateGuest(ctx context.Context, id string, req dto.UpdateGuestRequest) (res dto.UpdateGuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	guestType := model.GuestType(req.GuestType)

	roster, verdict, err := model.Update(draft.Roster, req.Room, guestType, req.Index, req.Field, req.Value)

	switch {
	case errors.Is(err, model.ErrGuestOutOfRange):
		return res, failure.BadRequestFromString("guest address is out of range") //nolint:wrapcheck
	case errors.Is(err, model.ErrContactOnLeadOnly):
		return res, failure.BadRequestFromString("contact fields belong to the lead guest only") //nolint:wrapcheck
	case err != nil:
		return res, failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	draft.Roster = roster

	// Saving refreshes the session TTL, so an actively edited draft stays
	// alive.
	if err = s.repo.Save(ctx, draft, s.cfg.Booking.DraftTTLSeconds); err != nil {
		log.Error().Err(err).Str("draftID", id).Msg("failed to save draft")

		return res, fmt.Errorf("failed to save draft: %w", err)
	}

	guest, _ := roster.Person(req.Room, guestType, req.Index)

	res = dto.UpdateGuestResponse{
		Field:      req.Field,
		Verdict:    verdict,
		Guest:      guest,
		IsComplete: roster.IsComplete(),
	}

	return res, nil
}

// Submit validates the whole roster, composes the final price, and hands the
// payload to the booking service. Validation failures come back in the
// response, not as an error, so the caller can render them per field. The
// draft is deleted only after the booking is stored.
func (s *serviceImpl) Submit(ctx context.Context, id string) (res dto.SubmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if fieldErrors := model.ValidateAll(draft.Roster); len(fieldErrors) > 0 {
		log.Info().Str("draftID", id).Strs("fields", fieldErrors.Keys()).Msg("draft submission rejected")

		res.Errors = fieldErrors.Flatten()

		return res, nil
	}

	breakdown := s.pricing.Compose(ctx, draft.BaseFare, draft.Tax)
	submission := model.BuildSubmission(draft.Roster, breakdown.Total)

	booking, err := s.booking.CreateFromSubmission(ctx, submission, breakdown)
	if err != nil {
		return res, fmt.Errorf("failed to submit draft: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn().Err(err).Str("draftID", id).Msg("failed to delete submitted draft")
	}

	res.Booking = &booking

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Draft, error) {
	draft, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Draft{}, failure.NotFound("draft not found") //nolint:wrapcheck
	}

	if err != nil {
		return model.Draft{}, fmt.Errorf("failed to load draft: %w", err)
	}

	return draft, nil
}
