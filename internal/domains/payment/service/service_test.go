package service_test

import (
	"context"
	"errors"
	"railbook/config"
	"railbook/infras/otel/mocks"
	"railbook/internal/domains/payment/model"
	"railbook/internal/domains/payment/service"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(delayMillis int) service.Gateway {
	cfg := &config.Config{}
	cfg.Payment.SimulatedDelayMillis = delayMillis

	return service.NewSimulatedGateway(cfg, mocks.NewOtel())
}

func TestSimulatedGateway_Charge(t *testing.T) {
	tests := []struct {
		name         string
		delay        int
		amount       int64
		ctx          func() (context.Context, context.CancelFunc)
		wantApproved bool
		wantErr      error
	}{
		{
			name:         "approves after delay",
			delay:        5,
			amount:       3230,
			ctx:          func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
			wantApproved: true,
		},
		{
			name:   "declines non positive amount",
			delay:  5,
			amount: 0,
			ctx:    func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
		},
		{
			name:    "gives up when the deadline passes",
			delay:   1000,
			amount:  3230,
			ctx:     func() (context.Context, context.CancelFunc) { return context.WithTimeout(context.Background(), 10*time.Millisecond) },
			wantErr: context.DeadlineExceeded,
		},
		{
			name:   "gives up when the caller cancels",
			delay:  1000,
			amount: 3230,
			ctx: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()

				return ctx, cancel
			},
			wantErr: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			defer cancel()

			res, err := newGateway(tt.delay).Charge(ctx, service.ChargeRequest{
				AttemptID: "attempt-1",
				Amount:    tt.amount,
				Method:    model.MethodUPI,
			})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantApproved, res.Approved)

			if tt.wantApproved {
				assert.True(t, strings.HasPrefix(res.Reference, "PAY-"))
			} else {
				assert.NotEmpty(t, res.DeclineReason)
			}
		})
	}
}
