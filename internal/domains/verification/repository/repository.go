package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"voyago/infras/otel"
	"voyago/internal/domains/verification/model"
	"voyago/shared"
	"voyago/shared/cache"
	"voyago/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	keyPrefixTimer = "verification:timer"
	keyPrefixCode  = "verification:code"
)

var ErrNotFound = errors.New("verification state not found")

// Verification persists countdown snapshots and pending codes in Redis,
// keyed by the email address being verified. Snapshot reads treat corrupt or
// missing values as absent, never as failures.
type Verification interface {
	SaveSnapshot(ctx context.Context, email string, snapshot model.Snapshot, ttlSeconds int) error
	GetSnapshot(ctx context.Context, email string) (model.Snapshot, error)
	DeleteSnapshot(ctx context.Context, email string) error
	SaveCode(ctx context.Context, email, code string, ttlSeconds int) error
	GetCode(ctx context.Context, email string) (string, error)
	DeleteCode(ctx context.Context, email string) error
}

type repositoryImpl struct {
	cache cache.RedisCache
	otel  otel.Otel
}

func New(cache cache.RedisCache, otel otel.Otel) Verification {
	return &repositoryImpl{
		cache: cache,
		otel:  otel,
	}
}

func (repo *repositoryImpl) SaveSnapshot(ctx context.Context, email string, snapshot model.Snapshot, ttlSeconds int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".verification.SaveSnapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := shared.BuildCacheKey(keyPrefixTimer, email)

	if err = repo.cache.Save(ctx, key, snapshot, ttlSeconds); err != nil {
		return fmt.Errorf("failed to save countdown snapshot: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetSnapshot(ctx context.Context, email string) (model.Snapshot, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".verification.GetSnapshot")
	defer scope.End()

	key := shared.BuildCacheKey(keyPrefixTimer, email)

	var snapshot model.Snapshot

	if err := repo.cache.Get(ctx, key, &snapshot); err != nil {
		// Missing and unparseable snapshots both mean "no active timer".
		log.Debug().Str("email", email).Msg("no countdown snapshot found")

		return model.Snapshot{}, ErrNotFound
	}

	return snapshot, nil
}

func (repo *repositoryImpl) DeleteSnapshot(ctx context.Context, email string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".verification.DeleteSnapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.cache.Delete(ctx, shared.BuildCacheKey(keyPrefixTimer, email)); err != nil {
		return fmt.Errorf("failed to delete countdown snapshot: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) SaveCode(ctx context.Context, email, code string, ttlSeconds int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".verification.SaveCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.cache.Save(ctx, shared.BuildCacheKey(keyPrefixCode, email), code, ttlSeconds); err != nil {
		return fmt.Errorf("failed to save verification code: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetCode(ctx context.Context, email string) (string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".verification.GetCode")
	defer scope.End()

	var code string

	if err := repo.cache.Get(ctx, shared.BuildCacheKey(keyPrefixCode, email), &code); err != nil {
		return constant.Empty, ErrNotFound
	}

	return code, nil
}

func (repo *repositoryImpl) DeleteCode(ctx context.Context, email string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".verification.DeleteCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.cache.Delete(ctx, shared.BuildCacheKey(keyPrefixCode, email)); err != nil {
		return fmt.Errorf("failed to delete verification code: %w", err)
	}

	return nil
}
