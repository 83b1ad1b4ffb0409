package event

import (
	"context"
	"fmt"

	"railbook/config"
	"railbook/infras/kafka"
	"railbook/infras/otel"
	bookingEvent "railbook/internal/domains/booking/event"
	"railbook/internal/domains/ticket/service"
	"railbook/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

// Consumer keeps the ticket archive in step with the booking topics.
type Consumer struct {
	client kafka.Client
	ticket service.Ticket
	cfg    *config.Config
	otel   otel.Otel
}

func NewConsumer(client kafka.Client, ticket service.Ticket, cfg *config.Config, otel otel.Otel) *Consumer {
	return &Consumer{
		client: client,
		ticket: ticket,
		cfg:    cfg,
		otel:   otel,
	}
}

// Run blocks until ctx is done or a consumer stops with an error.
func (c *Consumer) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topics.BookingConfirmed, c.HandleConfirmed) //nolint:wrapcheck
	})

	group.Go(func() error {
		return c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topics.BookingCancelled, c.HandleCancelled) //nolint:wrapcheck
	})

	return group.Wait() //nolint:wrapcheck
}

func (c *Consumer) Close() error {
	return c.client.Close() //nolint:wrapcheck
}

func (c *Consumer) HandleConfirmed(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleConfirmed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := decode(msg, bookingEvent.TypeBookingConfirmed)
	if err != nil || event.PNR == constant.Empty {
		return nil
	}

	_, err = c.ticket.Archive(ctx, event.PNR)

	return err //nolint:wrapcheck
}

func (c *Consumer) HandleCancelled(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleCancelled")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := decode(msg, bookingEvent.TypeBookingCancelled)
	if err != nil || event.PNR == constant.Empty {
		return nil
	}

	return c.ticket.Remove(ctx, event.PNR) //nolint:wrapcheck
}

// decode drops poison messages: retrying a payload that cannot be parsed never helps.
func decode(msg kafkaGo.Message, want bookingEvent.Type) (bookingEvent.Event, error) {
	event, err := kafka.Decode[bookingEvent.Event](msg)
	if err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("dropping undecodable booking event")

		return event, err //nolint:wrapcheck
	}

	if event.Type != want {
		log.Warn().Str("key", string(msg.Key)).Str("type", string(event.Type)).Msg("dropping booking event of unexpected type")

		return event, fmt.Errorf("unexpected event type %q", event.Type)
	}

	return event, nil
}
