package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"railbook/config"
	"railbook/infras/otel"
	"railbook/internal/domains/payment/model"
	"railbook/shared/constant"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const referencePrefix = "PAY-"

type ChargeRequest struct {
	AttemptID string
	Amount    int64
	Method    model.Method
}

// Result is the gateway verdict. A declined charge is not an error.
type Result struct {
	Approved      bool
	Reference     string
	DeclineReason string
}

// Gateway charges the payer. Implementations must return promptly once ctx is done.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (Result, error)
}

type simulatedGateway struct {
	delay time.Duration
	otel  otel.Otel
}

// NewSimulatedGateway approves every charge after the configured delay.
func NewSimulatedGateway(cfg *config.Config, otel otel.Otel) Gateway {
	return &simulatedGateway{
		delay: time.Duration(cfg.Payment.SimulatedDelayMillis) * time.Millisecond,
		otel:  otel,
	}
}

func (g *simulatedGateway) Charge(ctx context.Context, req ChargeRequest) (res Result, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Charge")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"payment.attempt_id": req.AttemptID,
		"payment.amount":     req.Amount,
		"payment.method":     string(req.Method),
	})

	if req.Amount <= 0 {
		return Result{DeclineReason: "amount must be positive"}, nil
	}

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		log.Warn().Err(ctx.Err()).Str("attempt_id", req.AttemptID).Msg("payment wait interrupted")

		return res, fmt.Errorf("payment wait interrupted: %w", ctx.Err())
	case <-timer.C:
	}

	return Result{
		Approved:  true,
		Reference: referencePrefix + uuid.NewString(),
	}, nil
}
