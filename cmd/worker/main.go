package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"railbook/config"
	"railbook/di"
	"railbook/shared/logger"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeWorker()
	defer func() {
		if err := consumer.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}
	}()

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("group", cfg.Kafka.ConsumerGroup).Msg("Starting ticket worker.")

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("Ticket worker stopped")
	}

	log.Info().Msg("Ticket worker shut down.")
}
