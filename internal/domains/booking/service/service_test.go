package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"voyago/config"
	kafkaMocks "voyago/infras/kafka/mocks"
	"voyago/infras/otel/mocks"
	s3Mocks "voyago/infras/s3/mocks"
	bookingMocks "voyago/internal/domains/booking/mocks"
	"voyago/internal/domains/booking/model"
	"voyago/internal/domains/booking/service"
	draftModel "voyago/internal/domains/draft/model"
	pricingModel "voyago/internal/domains/pricing/model"
	cacheMocks "voyago/shared/cache/mocks"
	"voyago/shared/constant"
	gDto "voyago/shared/dto"
	"voyago/shared/failure"
)

func testSubmission() draftModel.Submission {
	return draftModel.Submission{
		Rooms: []draftModel.RoomEntry{
			{
				Travellers: []draftModel.TravellerEntry{
					{Title: "Mr", FirstName: "John", LastName: "Smith", Type: draftModel.GuestTypeAdult},
					{Title: "Miss", FirstName: "Emma", LastName: "Smith", Type: draftModel.GuestTypeChild},
				},
			},
		},
		Contact: draftModel.Contact{
			Email:            "john@example.com",
			PhoneCountryCode: "44",
			PhoneNumber:      "7700900123",
		},
		Total: 380.647125,
	}
}

func TestBookingService_CreateFromSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)
	mockStorage := s3Mocks.NewMockS3(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.BookingTopic = "booking-confirmed"

	svc := service.New(mockRepo, mockProducer, mockStorage, cfg, mockCache, mockOtel)

	breakdown := pricingModel.Compose(248, 111.95, 5, 15)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantURL   string
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockStorage.EXPECT().
					UploadFileBytes(gomock.Any(), constant.Empty, "itineraries", gomock.Any(), constant.ContentTypeJSON, gomock.Any()).
					Return("https://cdn.example.com/itineraries/doc.json", nil)
				mockRepo.EXPECT().
					CreateWithTravellers(gomock.Any(), gomock.Any(), gomock.Len(2)).
					Return(nil)
				mockProducer.EXPECT().
					SendMessages(gomock.Any(), "booking-confirmed", gomock.Any()).
					Return(nil).
					AnyTimes()
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantURL: "https://cdn.example.com/itineraries/doc.json",
		},
		{
			name: "upload failure still stores the booking",
			setupMock: func() {
				mockStorage.EXPECT().
					UploadFileBytes(gomock.Any(), constant.Empty, "itineraries", gomock.Any(), constant.ContentTypeJSON, gomock.Any()).
					Return("", errors.New("bucket unavailable"))
				mockRepo.EXPECT().
					CreateWithTravellers(gomock.Any(), gomock.Any(), gomock.Len(2)).
					Return(nil)
				mockProducer.EXPECT().
					SendMessages(gomock.Any(), "booking-confirmed", gomock.Any()).
					Return(nil).
					AnyTimes()
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockStorage.EXPECT().
					UploadFileBytes(gomock.Any(), constant.Empty, "itineraries", gomock.Any(), constant.ContentTypeJSON, gomock.Any()).
					Return("https://cdn.example.com/itineraries/doc.json", nil)
				mockRepo.EXPECT().
					CreateWithTravellers(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.CreateFromSubmission(ctx, testSubmission(), breakdown)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusConfirmed, res.Status)
			assert.Regexp(t, `^VYG-[0-9A-F]{8}$`, res.Reference)
			assert.Equal(t, "john@example.com", res.Contact.Email)
			assert.Equal(t, tt.wantURL, res.ItineraryURL)
			assert.Len(t, res.Travellers, 2)
			assert.InDelta(t, 380.65, res.Price.Total, 1e-9)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)
	mockStorage := s3Mocks.NewMockS3(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockProducer, mockStorage, cfg, mockCache, mockOtel)

	bookingID := "0f1e2d3c-0000-0000-0000-000000000000"
	stored := model.Booking{
		ID:           bookingID,
		Reference:    "VYG-0F1E2D3C",
		Status:       model.StatusConfirmed,
		ContactEmail: "john@example.com",
		Total:        380.647125,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache miss loads booking and travellers",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)
				mockRepo.EXPECT().
					GetTravellers(gomock.Any(), bookingID).
					Return([]model.Traveller{
						{BookingID: bookingID, RoomIndex: 0, Position: 0, FirstName: "John", GuestType: "adult"},
						{BookingID: bookingID, RoomIndex: 0, Position: 1, FirstName: "Emma", GuestType: "child"},
					}, nil)
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), bookingID)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "VYG-0F1E2D3C", res.Reference)
			assert.Len(t, res.Travellers, 2)
			assert.Equal(t, "John", res.Travellers[0].FirstName)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)
	mockStorage := s3Mocks.NewMockS3(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockProducer, mockStorage, cfg, mockCache, mockOtel)

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)
	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.Booking{
			{ID: "a", Reference: "VYG-AAAAAAAA", Status: model.StatusConfirmed},
			{ID: "b", Reference: "VYG-BBBBBBBB", Status: model.StatusCancelled},
		}, nil)
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), params, filter)

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Bookings, 2)
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)
	mockStorage := s3Mocks.NewMockS3(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockProducer, mockStorage, cfg, mockCache, mockOtel)

	bookingID := "0f1e2d3c-0000-0000-0000-000000000000"

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful cancellation",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

						return nil
					})
				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Cancel(ctx, bookingID)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
