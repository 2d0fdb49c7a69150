package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"voyago/config"
	"voyago/infras/mail"
	mailMocks "voyago/infras/mail/mocks"
	"voyago/infras/otel/mocks"
	verificationMocks "voyago/internal/domains/verification/mocks"
	"voyago/internal/domains/verification/model"
	"voyago/internal/domains/verification/model/dto"
	"voyago/internal/domains/verification/service"
	"voyago/shared/failure"
	"voyago/shared/timezone"
)

const testEmail = "guest@example.com"

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Verification.ResendWaitSeconds = 600
	cfg.Verification.CodeTTLSeconds = 900

	return cfg
}

func TestVerificationService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := verificationMocks.NewMockVerification(ctrl)
	mockMail := mailMocks.NewMockGateway(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockMail, newTestConfig(), mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantState model.State
	}{
		{
			name: "no snapshot means idle",
			setupMock: func() {
				mockRepo.EXPECT().
					GetSnapshot(gomock.Any(), testEmail).
					Return(model.Snapshot{}, errors.New("not found"))
			},
			wantState: model.StateIdle,
		},
		{
			name: "running snapshot reports remaining seconds",
			setupMock: func() {
				mockRepo.EXPECT().
					GetSnapshot(gomock.Any(), testEmail).
					Return(model.NewSnapshot(600, timezone.Now()), nil)
			},
			wantState: model.StateRunning,
		},
		{
			name: "expired snapshot is cleared and reports idle",
			setupMock: func() {
				mockRepo.EXPECT().
					GetSnapshot(gomock.Any(), testEmail).
					Return(model.NewSnapshot(600, timezone.Now().Add(-700*time.Second)), nil)
				mockRepo.EXPECT().
					DeleteSnapshot(gomock.Any(), testEmail).
					Return(nil)
			},
			wantState: model.StateIdle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Status(context.Background(), testEmail)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantState, res.State)

			if tt.wantState == model.StateRunning {
				assert.Greater(t, res.SecondsRemaining, 0)
				assert.LessOrEqual(t, res.SecondsRemaining, 600)
			} else {
				assert.Zero(t, res.SecondsRemaining)
			}
		})
	}
}

func TestVerificationService_Resend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := verificationMocks.NewMockVerification(ctrl)
	mockMail := mailMocks.NewMockGateway(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockMail, newTestConfig(), mockOtel)

	tests := []struct {
		name        string
		setupMock   func()
		wantErr     bool
		wantCode    int
		wantSeconds int
	}{
		{
			name: "running countdown rejects without calling mail",
			setupMock: func() {
				mockRepo.EXPECT().
					GetSnapshot(gomock.Any(), testEmail).
					Return(model.NewSnapshot(600, timezone.Now()), nil)
			},
			wantErr:  true,
			wantCode: http.StatusTooManyRequests,
		},
		{
			name: "successful resend stores code and starts countdown",
			setupMock: func() {
				mockRepo.EXPECT().
					GetSnapshot(gomock.Any(), testEmail).
					Return(model.Snapshot{}, errors.New("not found"))
				mockRepo.EXPECT().
					SaveCode(gomock.Any(), testEmail, gomock.Any(), 900).
					Return(nil)
				mockMail.EXPECT().
					SendVerificationCode(gomock.Any(), testEmail, gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					SaveSnapshot(gomock.Any(), testEmail, gomock.Any(), 600).
					Return(nil)
			},
			wantSeconds: 600,
		},
		{
			name: "throttled send adopts upstream retry after",
			setupMock: func() {
				mockRepo.EXPECT().
					GetSnapshot(gomock.Any(), testEmail).
					Return(model.Snapshot{}, errors.New("not found"))
				mockRepo.EXPECT().
					SaveCode(gomock.Any(), testEmail, gomock.Any(), 900).
					Return(nil)
				mockMail.EXPECT().
					SendVerificationCode(gomock.Any(), testEmail, gomock.Any()).
					Return(&mail.RateLimitError{Message: "retry after 120 seconds"})
				mockRepo.EXPECT().
					SaveSnapshot(gomock.Any(), testEmail, gomock.Any(), 120).
					Return(nil)
			},
			wantErr:  true,
			wantCode: http.StatusTooManyRequests,
		},
		{
			name: "send failure leaves countdown untouched",
			setupMock: func() {
				mockRepo.EXPECT().
					GetSnapshot(gomock.Any(), testEmail).
					Return(model.Snapshot{}, errors.New("not found"))
				mockRepo.EXPECT().
					SaveCode(gomock.Any(), testEmail, gomock.Any(), 900).
					Return(nil)
				mockMail.EXPECT().
					SendVerificationCode(gomock.Any(), testEmail, gomock.Any()).
					Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name: "code store failure",
			setupMock: func() {
				mockRepo.EXPECT().
					GetSnapshot(gomock.Any(), testEmail).
					Return(model.Snapshot{}, errors.New("not found"))
				mockRepo.EXPECT().
					SaveCode(gomock.Any(), testEmail, gomock.Any(), 900).
					Return(errors.New("redis down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Resend(context.Background(), testEmail)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantSeconds, res.SecondsRemaining)
		})
	}
}

func TestVerificationService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := verificationMocks.NewMockVerification(ctrl)
	mockMail := mailMocks.NewMockGateway(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockMail, newTestConfig(), mockOtel)

	tests := []struct {
		name      string
		code      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "matching code clears state",
			code: "123456",
			setupMock: func() {
				mockRepo.EXPECT().
					GetCode(gomock.Any(), testEmail).
					Return("123456", nil)
				mockRepo.EXPECT().
					DeleteCode(gomock.Any(), testEmail).
					Return(nil)
				mockRepo.EXPECT().
					DeleteSnapshot(gomock.Any(), testEmail).
					Return(nil)
			},
		},
		{
			name: "mismatched code",
			code: "654321",
			setupMock: func() {
				mockRepo.EXPECT().
					GetCode(gomock.Any(), testEmail).
					Return("123456", nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "no pending code",
			code: "123456",
			setupMock: func() {
				mockRepo.EXPECT().
					GetCode(gomock.Any(), testEmail).
					Return("", errors.New("not found"))
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Verify(context.Background(), testEmail, dto.VerifyRequest{Code: tt.code})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
