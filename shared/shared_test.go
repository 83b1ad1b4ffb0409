package shared_test

import (
	"context"
	"errors"
	"railbook/shared"
	cacheMocks "railbook/shared/cache/mocks"
	"railbook/shared/constant"
	"railbook/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "remainder rounds up", total: 101, limit: 10, expected: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestFilterByID(t *testing.T) {
	got := shared.FilterByID("AB12CD34EF", "pnr", "bookings")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "pnr",
				Value:    "AB12CD34EF",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
		},
	}, got)
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{name: "prefix only", prefix: "stations", expected: "stations"},
		{name: "with parts", prefix: "booking:get", parts: []string{"AB12CD34EF"}, expected: "booking:get:AB12CD34EF"},
		{name: "empty parts skipped", prefix: "trains", parts: []string{"NDLS", "", "BCT"}, expected: "trains:NDLS:BCT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "booking:mine:*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "booking:mine")

	mockCache.EXPECT().Clear(gomock.Any(), "booking:all:*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "booking:all")
}

func TestUserFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)

	assert.Equal(t, "user-1", shared.UserFromContext(ctx))
	assert.True(t, shared.IsAdmin(ctx))

	assert.Empty(t, shared.UserFromContext(context.Background()))
	assert.False(t, shared.IsAdmin(context.Background()))
}
