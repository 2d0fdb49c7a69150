package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"voyago/config"
	"voyago/infras/mail"
	"voyago/infras/otel"
	"voyago/internal/domains/verification/model"
	"voyago/internal/domains/verification/model/dto"
	"voyago/internal/domains/verification/repository"
	"voyago/shared/constant"
	"voyago/shared/failure"
	"voyago/shared/timezone"

	"github.com/rs/zerolog/log"
)

const codeDigits = 6

// Verification drives the resend/verify flow: a countdown persisted per email
// gates the resend action, and a pending code is checked on verify.
type Verification interface {
	Status(ctx context.Context, email string) (dto.StatusResponse, error)
	Resend(ctx context.Context, email string) (dto.ResendResponse, error)
	Verify(ctx context.Context, email string, req dto.VerifyRequest) error
}

type serviceImpl struct {
	repo repository.Verification
	mail mail.Gateway
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Verification, mailGateway mail.Gateway, cfg *config.Config, otel otel.Otel) Verification {
	return &serviceImpl{
		repo: repo,
		mail: mailGateway,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Status(ctx context.Context, email string) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Status")
	defer scope.End()
	defer scope.TraceIfError(err)

	countdown := s.reconstruct(ctx, email)
	res.FromCountdown(countdown)

	return res, nil
}

func (s *serviceImpl) Resend(ctx context.Context, email string) (res dto.ResendResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resend")
	defer scope.End()
	defer scope.TraceIfError(err)

	// While the countdown runs, reject locally without calling the mail
	// service and surface the remaining time.
	if countdown := s.reconstruct(ctx, email); countdown.State == model.StateRunning {
		return res, failure.TooManyRequests( //nolint:wrapcheck
			fmt.Sprintf("please wait %d seconds before requesting a new code", countdown.SecondsRemaining))
	}

	code, err := generateCode()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate verification code")

		return res, fmt.Errorf("failed to generate verification code: %w", err)
	}

	if err = s.repo.SaveCode(ctx, email, code, s.cfg.Verification.CodeTTLSeconds); err != nil {
		log.Error().Err(err).Msg("failed to store verification code")

		return res, fmt.Errorf("failed to store verification code: %w", err)
	}

	err = s.mail.SendVerificationCode(ctx, email, code)

	var rateLimited *mail.RateLimitError

	switch {
	case errors.As(err, &rateLimited):
		// The delivery service throttled us; adopt its retry-after duration
		// when the message carries one, otherwise the default wait.
		seconds := model.ParseRetryAfter(rateLimited.Message, s.cfg.Verification.ResendWaitSeconds)

		s.startCountdown(ctx, email, seconds)

		return res, failure.TooManyRequests( //nolint:wrapcheck
			fmt.Sprintf("please wait %d seconds before requesting a new code", seconds))
	case err != nil:
		// No optimistic transition: the countdown stays wherever it was
		// before the attempt.
		log.Error().Err(err).Str("email", email).Msg("failed to send verification code")

		return res, fmt.Errorf("failed to send verification code: %w", err)
	}

	seconds := s.cfg.Verification.ResendWaitSeconds
	s.startCountdown(ctx, email, seconds)

	res.SecondsRemaining = seconds

	return res, nil
}

func (s *serviceImpl) Verify(ctx context.Context, email string, req dto.VerifyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	stored, err := s.repo.GetCode(ctx, email)
	if err != nil {
		return failure.BadRequestFromString("no verification code pending for this address") //nolint:wrapcheck
	}

	if stored != req.Code {
		return failure.BadRequestFromString("invalid verification code") //nolint:wrapcheck
	}

	// Terminal success clears both the code and the countdown.
	if err = s.repo.DeleteCode(ctx, email); err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to clear verification code")

		return fmt.Errorf("failed to clear verification code: %w", err)
	}

	if err = s.repo.DeleteSnapshot(ctx, email); err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to clear countdown snapshot")

		return fmt.Errorf("failed to clear countdown snapshot: %w", err)
	}

	return nil
}

// reconstruct loads the persisted snapshot and rebuilds the countdown from
// the elapsed time. Expired snapshots are cleared eagerly; corrupt or missing
// ones just mean Idle.
func (s *serviceImpl) reconstruct(ctx context.Context, email string) model.Countdown {
	snapshot, err := s.repo.GetSnapshot(ctx, email)
	if err != nil {
		return model.Idle()
	}

	countdown := snapshot.Reconstruct(timezone.Now())
	if countdown.State == model.StateIdle {
		if err := s.repo.DeleteSnapshot(ctx, email); err != nil {
			log.Warn().Err(err).Str("email", email).Msg("failed to clear expired countdown snapshot")
		}
	}

	return countdown
}

func (s *serviceImpl) startCountdown(ctx context.Context, email string, seconds int) {
	snapshot := model.NewSnapshot(seconds, timezone.Now())

	// The snapshot expires with the countdown itself, so an abandoned timer
	// cleans itself up.
	if err := s.repo.SaveSnapshot(ctx, email, snapshot, seconds); err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to persist countdown snapshot")
	}
}

func generateCode() (string, error) {
	max := big.NewInt(1)
	for range codeDigits {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to read random source: %w", err)
	}

	return fmt.Sprintf("%0*d", codeDigits, n), nil
}
