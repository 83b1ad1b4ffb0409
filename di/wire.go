//go:build wireinject
// +build wireinject

package di

import (
	"railbook/config"
	"railbook/infras/jwt"
	"railbook/infras/kafka"
	"railbook/infras/metrics"
	"railbook/infras/otel"
	"railbook/infras/postgres"
	"railbook/infras/redis"
	"railbook/infras/s3"
	"railbook/permissions"
	"railbook/shared/cache"
	"railbook/shared/lock"
	"railbook/transport/http"
	"railbook/transport/http/middleware"
	"railbook/transport/http/router"

	bookingEvent "railbook/internal/domains/booking/event"
	bookingRepository "railbook/internal/domains/booking/repository"
	bookingService "railbook/internal/domains/booking/service"
	catalogRepository "railbook/internal/domains/catalog/repository"
	catalogService "railbook/internal/domains/catalog/service"
	crowdService "railbook/internal/domains/crowd/service"
	paymentService "railbook/internal/domains/payment/service"
	seatRepository "railbook/internal/domains/seat/repository"
	seatService "railbook/internal/domains/seat/service"
	ticketEvent "railbook/internal/domains/ticket/event"
	ticketService "railbook/internal/domains/ticket/service"
	workflowRepository "railbook/internal/domains/workflow/repository"
	workflowService "railbook/internal/domains/workflow/service"

	assessmentHandler "railbook/internal/handlers/assessment"
	attemptHandler "railbook/internal/handlers/attempt"
	bookingHandler "railbook/internal/handlers/booking"
	catalogHandler "railbook/internal/handlers/catalog"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	lock.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
	crowdService.New,
)

var seatDomain = wire.NewSet(
	seatRepository.New,
	seatService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.NewPublisher,
	bookingService.New,
)

var workflowDomain = wire.NewSet(
	workflowRepository.New,
	paymentService.NewSimulatedGateway,
	workflowService.New,
)

var ticketDomain = wire.NewSet(
	bookingRepository.New,
	ticketService.New,
	ticketEvent.NewConsumer,
)

var domains = wire.NewSet(
	catalogDomain,
	seatDomain,
	bookingDomain,
	workflowDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	assessmentHandler.New,
	attemptHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *ticketEvent.Consumer {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		kafka.New,
		s3.New,
		ticketDomain,
	)

	return &ticketEvent.Consumer{}
}
