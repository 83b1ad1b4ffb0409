package repository_test

import (
	"context"
	"errors"
	"fmt"
	"railbook/infras/otel/mocks"
	"railbook/internal/domains/workflow/model"
	"railbook/internal/domains/workflow/repository"
	"railbook/shared/cache"
	cacheMocks "railbook/shared/cache/mocks"
	"railbook/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAttempt_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	repo := repository.New(redisCache, mocks.NewOtel())

	attempt := model.Attempt{ID: "attempt-1", State: model.StateDrafting}

	redisCache.EXPECT().Save(gomock.Any(), "attempt:attempt-1", attempt, 600).Return(nil)

	require.NoError(t, repo.Save(context.Background(), attempt, 10*time.Minute))
}

func TestAttempt_Get(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		setupMock  func(c *cacheMocks.MockRedisCache)
		wantReason string
		wantErr    bool
	}{
		{
			name: "found",
			id:   "attempt-1",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "attempt:attempt-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*model.Attempt) = model.Attempt{ID: "attempt-1", State: model.StateSeatsPending}

						return nil
					})
			},
		},
		{
			name: "expired",
			id:   "attempt-2",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "attempt:attempt-2", gomock.Any()).
					Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
			},
			wantReason: failure.ReasonNotFound,
			wantErr:    true,
		},
		{
			name:       "blank id",
			setupMock:  func(*cacheMocks.MockRedisCache) {},
			wantReason: failure.ReasonNotFound,
			wantErr:    true,
		},
		{
			name: "redis down",
			id:   "attempt-3",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "attempt:attempt-3", gomock.Any()).Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redisCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(redisCache)

			attempt, err := repository.New(redisCache, mocks.NewOtel()).Get(context.Background(), tt.id)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantReason, failure.GetReason(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StateSeatsPending, attempt.State)
		})
	}
}
