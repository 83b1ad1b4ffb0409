package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"railbook/infras/metrics"
	"railbook/infras/otel/mocks"
	catalog "railbook/internal/domains/catalog/model"
	seatMocks "railbook/internal/domains/seat/mocks"
	"railbook/internal/domains/seat/model"
	"railbook/internal/domains/seat/service"
	"railbook/shared/failure"
	"railbook/shared/lock"
	lockMocks "railbook/shared/lock/mocks"
)

func TestSeatService_Coach(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := seatMocks.NewMockSeat(ctrl)
	svc := service.New(mockRepo, lock.NewMemoryLocker(time.Now), metrics.New(), mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "coach ensured",
			setupMock: func() {
				mockRepo.EXPECT().
					EnsureCoach(gomock.Any(), "train-1", catalog.ClassThirdAC, "2026-10-24", 72).
					Return(model.Coach{ID: "coach-1", TotalSeats: 72, AvailableSeats: 72}, nil)
			},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					EnsureCoach(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Coach{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			coach, err := svc.Coach(context.Background(), "train-1", catalog.ClassThirdAC, "2026-10-24", 72)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "coach-1", coach.ID)
		})
	}
}

func TestSeatService_Hold(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mtr := metrics.New()
	svc := service.New(seatMocks.NewMockSeat(ctrl), lock.NewMemoryLocker(time.Now), mtr, mocks.NewOtel())

	require.NoError(t, svc.Hold(ctx, "coach-1", []string{"LB1", "MB3"}, "attempt-a", time.Minute))

	// same owner refreshes its own hold
	require.NoError(t, svc.Hold(ctx, "coach-1", []string{"LB1", "MB3"}, "attempt-a", time.Minute))

	err := svc.Hold(ctx, "coach-1", []string{"UB5", "MB3"}, "attempt-b", time.Minute)
	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.ReasonSeatUnavailable))
	assert.Contains(t, err.Error(), "MB3")
	assert.InDelta(t, 1, testutil.ToFloat64(mtr.SeatHoldConflicts), 0)

	// UB5 must not be held after the failed attempt
	require.NoError(t, svc.Hold(ctx, "coach-1", []string{"UB5"}, "attempt-c", time.Minute))

	// the same seat number on another coach is a different hold
	require.NoError(t, svc.Hold(ctx, "coach-2", []string{"MB3"}, "attempt-b", time.Minute))

	require.NoError(t, svc.ReleaseHold(ctx, "coach-1", []string{"LB1", "MB3"}, "attempt-a"))
	assert.NoError(t, svc.Hold(ctx, "coach-1", []string{"MB3"}, "attempt-b", time.Minute))
}

func TestSeatService_HoldLockerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLocker := lockMocks.NewMockLocker(ctrl)
	mtr := metrics.New()
	svc := service.New(seatMocks.NewMockSeat(ctrl), mockLocker, mtr, mocks.NewOtel())

	mockLocker.EXPECT().
		Acquire(gomock.Any(), []string{"seat_hold:{coach-1}:LB1"}, "attempt-a", time.Minute).
		Return(errors.New("redis down"))

	err := svc.Hold(context.Background(), "coach-1", []string{"LB1"}, "attempt-a", time.Minute)

	require.Error(t, err)
	assert.False(t, failure.Is(err, failure.ReasonSeatUnavailable))
	assert.InDelta(t, 0, testutil.ToFloat64(mtr.SeatHoldConflicts), 0)
}

func TestSeatService_ReserveTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := seatMocks.NewMockSeat(ctrl)
	svc := service.New(mockRepo, lock.NewMemoryLocker(time.Now), metrics.New(), mocks.NewOtel())

	mockRepo.EXPECT().
		ReserveTx(gomock.Any(), gomock.Nil(), "coach-1", []string{"LB1"}, "AB12CD34EF").
		Return(failure.SeatUnavailable("one or more selected seats are no longer available"))

	err := svc.ReserveTx(context.Background(), nil, "coach-1", []string{"LB1"}, "AB12CD34EF")

	assert.True(t, failure.Is(err, failure.ReasonSeatUnavailable))
}
