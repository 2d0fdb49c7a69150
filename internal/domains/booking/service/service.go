package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"voyago/config"
	"voyago/infras/kafka"
	"voyago/infras/otel"
	"voyago/infras/s3"
	"voyago/internal/domains/booking/model"
	"voyago/internal/domains/booking/model/dto"
	"voyago/internal/domains/booking/repository"
	draftModel "voyago/internal/domains/draft/model"
	pricingModel "voyago/internal/domains/pricing/model"
	"voyago/shared"
	"voyago/shared/cache"
	"voyago/shared/constant"
	gDto "voyago/shared/dto"
	"voyago/shared/failure"
	"voyago/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	itineraryDirectory = "itineraries"
)

// bookingConfirmedEvent is published to Kafka after a booking is stored.
type bookingConfirmedEvent struct {
	BookingID    string    `json:"booking_id"`
	Reference    string    `json:"reference"`
	ContactEmail string    `json:"contact_email"`
	Total        float64   `json:"total"`
	Travellers   int       `json:"travellers"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type Booking interface {
	CreateFromSubmission(ctx context.Context, sub draftModel.Submission, breakdown pricingModel.Breakdown) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	producer kafka.Producer
	storage  s3.S3
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Booking, producer kafka.Producer, storage s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		producer: producer,
		storage:  storage,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// CreateFromSubmission persists the submitted roster as a confirmed booking,
// uploads the itinerary snapshot, and publishes the confirmation event. The
// snapshot and the event are best effort; the stored booking is the source of
// truth.
func (s *serviceImpl) CreateFromSubmission(ctx context.Context, sub draftModel.Submission, breakdown pricingModel.Breakdown) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateFromSubmission")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, travellers := dto.NewModels(user, sub, breakdown)
	booking.ItineraryURL = s.uploadItinerary(ctx, booking, sub)

	if err = s.repo.CreateWithTravellers(ctx, booking, travellers); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking, travellers)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishConfirmed(c, booking, len(travellers))
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	travellers, err := s.repo.GetTravellers(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking travellers")

		return res, fmt.Errorf("failed to get booking travellers: %w", err)
	}

	res.FromModel(booking, travellers)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	return nil
}

// uploadItinerary stores the submitted payload as a JSON document and returns
// its public URL, or an empty string when the upload fails.
func (s *serviceImpl) uploadItinerary(ctx context.Context, booking model.Booking, sub draftModel.Submission) string {
	document := map[string]any{
		"reference":  booking.Reference,
		"contact":    sub.Contact,
		"rooms":      sub.Rooms,
		"total":      sub.Total,
		"created_at": booking.CreatedAt,
	}

	data, err := json.Marshal(document)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal itinerary document")

		return constant.Empty
	}

	url, err := s.storage.UploadFileBytes(ctx, constant.Empty, itineraryDirectory, booking.ID+".json", constant.ContentTypeJSON, data)
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to upload itinerary document")

		return constant.Empty
	}

	return url
}

func (s *serviceImpl) publishConfirmed(ctx context.Context, booking model.Booking, travellers int) {
	event := bookingConfirmedEvent{
		BookingID:    booking.ID,
		Reference:    booking.Reference,
		ContactEmail: booking.ContactEmail,
		Total:        booking.Total,
		Travellers:   travellers,
		OccurredAt:   timezone.Now(),
	}

	message := kafka.Message{Key: booking.ID, Value: event}

	if err := s.producer.SendMessages(ctx, s.cfg.Kafka.BookingTopic, message); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking confirmed event")
	}
}
