package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"voyago/infras/otel"
	"voyago/internal/domains/draft/model"
	"voyago/shared"
	"voyago/shared/cache"
	"voyago/shared/constant"

	"github.com/rs/zerolog/log"
)

const keyPrefixDraft = "draft:session"

var ErrNotFound = errors.New("draft not found")

// Draft stores booking sessions in Redis for the session lifetime. A missing
// or unparseable entry reads as ErrNotFound; expiry is handled by the TTL set
// on save.
type Draft interface {
	Save(ctx context.Context, draft model.Draft, ttlSeconds int) error
	Get(ctx context.Context, id string) (model.Draft, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	cache cache.RedisCache
	otel  otel.Otel
}

func New(cache cache.RedisCache, otel otel.Otel) Draft {
	return &repositoryImpl{
		cache: cache,
		otel:  otel,
	}
}

func (repo *repositoryImpl) Save(ctx context.Context, draft model.Draft, ttlSeconds int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".draft.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := shared.BuildCacheKey(keyPrefixDraft, draft.ID)

	if err = repo.cache.Save(ctx, key, draft, ttlSeconds); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id string) (model.Draft, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".draft.Get")
	defer scope.End()

	var draft model.Draft

	if err := repo.cache.Get(ctx, shared.BuildCacheKey(keyPrefixDraft, id), &draft); err != nil {
		log.Debug().Str("draftID", id).Msg("no draft found")

		return model.Draft{}, ErrNotFound
	}

	return draft, nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".draft.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.cache.Delete(ctx, shared.BuildCacheKey(keyPrefixDraft, id)); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	return nil
}
