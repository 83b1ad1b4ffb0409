package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"railbook/infras/otel"
	"railbook/internal/domains/workflow/model"
	"railbook/shared"
	"railbook/shared/cache"
	"railbook/shared/constant"
	"railbook/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

const keyPrefix = "attempt"

// Attempt stores in-flight booking attempts in Redis. An attempt that is not touched within
// its ttl disappears together with its seat holds.
type Attempt interface {
	Save(ctx context.Context, attempt model.Attempt, ttl time.Duration) error
	Get(ctx context.Context, id string) (model.Attempt, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	cache cache.RedisCache
	otel  otel.Otel
}

func New(cache cache.RedisCache, otel otel.Otel) Attempt {
	return &repositoryImpl{
		cache: cache,
		otel:  otel,
	}
}

func key(id string) string {
	return shared.BuildCacheKey(keyPrefix, id)
}

func (r *repositoryImpl) Save(ctx context.Context, attempt model.Attempt, ttl time.Duration) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SaveAttempt")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.cache.Save(ctx, key(attempt.ID), attempt, int(ttl.Seconds())); err != nil {
		log.Error().Err(err).Str("attempt_id", attempt.ID).Msg("failed to save attempt")

		return fmt.Errorf("failed to save attempt: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (attempt model.Attempt, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAttempt")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == constant.Empty {
		return attempt, failure.NotFound(model.EntityName + " not found")
	}

	if err = r.cache.Get(ctx, key(id), &attempt); err != nil {
		if errors.Is(err, cache.Nil) {
			return attempt, failure.NotFound(fmt.Sprintf("%s %s not found or expired", model.EntityName, id))
		}

		log.Error().Err(err).Str("attempt_id", id).Msg("failed to load attempt")

		return attempt, fmt.Errorf("failed to load attempt: %w", err)
	}

	return attempt, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteAttempt")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.cache.Delete(ctx, key(id)) //nolint:wrapcheck
}
