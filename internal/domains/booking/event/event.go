package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"railbook/config"
	"railbook/infras/kafka"
	"railbook/infras/otel"
	"railbook/internal/domains/booking/model"
	"railbook/shared/constant"
	"railbook/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

type Type string

const (
	TypeBookingConfirmed Type = "booking.confirmed"
	TypeBookingCancelled Type = "booking.cancelled"

	headerEventType = "event_type"
)

// Event is the payload published on the booking topics. It is keyed by PNR so every event of
// one booking lands on the same partition.
type Event struct {
	Type        Type      `json:"type"`
	PNR         string    `json:"pnr"`
	BookingID   string    `json:"booking_id"`
	TrainID     string    `json:"train_id"`
	ClassType   string    `json:"class_type"`
	JourneyDate string    `json:"journey_date"`
	SeatNumbers []string  `json:"seat_numbers"`
	TotalFare   int64     `json:"total_fare"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func New(eventType Type, booking model.Booking, now time.Time) Event {
	return Event{
		Type:        eventType,
		PNR:         booking.PNR,
		BookingID:   booking.ID,
		TrainID:     booking.TrainID,
		ClassType:   string(booking.ClassType),
		JourneyDate: booking.JourneyDate.Format(constant.JourneyDateFormat),
		SeatNumbers: []string(booking.SeatNumbers),
		TotalFare:   booking.TotalFare,
		Status:      string(booking.Status),
		OccurredAt:  now,
	}
}

type Publisher interface {
	Confirmed(ctx context.Context, booking model.Booking) error
	Cancelled(ctx context.Context, booking model.Booking) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) Confirmed(ctx context.Context, booking model.Booking) error {
	return p.publish(ctx, p.cfg.Kafka.Topics.BookingConfirmed, New(TypeBookingConfirmed, booking, timezone.Now()))
}

func (p *publisherImpl) Cancelled(ctx context.Context, booking model.Booking) error {
	return p.publish(ctx, p.cfg.Kafka.Topics.BookingCancelled, New(TypeBookingCancelled, booking, timezone.Now()))
}

func (p *publisherImpl) publish(ctx context.Context, topic string, evt Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+string(evt.Type))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"topic": topic,
		"pnr":   evt.PNR,
	})

	err = p.client.SendMessages(ctx, topic, kafka.Message{
		Key:     evt.PNR,
		Value:   evt,
		Headers: map[string]string{headerEventType: string(evt.Type)},
	})
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Str("pnr", evt.PNR).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish %s: %w", evt.Type, err)
	}

	return nil
}
