package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"railbook/config"
	"railbook/infras/metrics"
	"railbook/infras/otel"
	"railbook/infras/postgres"
	"railbook/internal/domains/booking/event"
	"railbook/internal/domains/booking/model"
	"railbook/internal/domains/booking/model/dto"
	"railbook/internal/domains/booking/repository"
	seat "railbook/internal/domains/seat/service"
	"railbook/shared"
	"railbook/shared/cache"
	"railbook/shared/constant"
	gDto "railbook/shared/dto"
	"railbook/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const cacheGetBooking = "booking:get"

type Booking interface {
	Get(ctx context.Context, pnr string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, pnr string) (dto.BookingResponse, error)
	ListAll(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	ListMine(ctx context.Context) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	ledger     repository.Ledger
	seat       seat.Seat
	transactor postgres.Transactor
	publisher  event.Publisher
	metrics    *metrics.Metrics
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	ledger repository.Ledger,
	seat seat.Seat,
	transactor postgres.Transactor,
	publisher event.Publisher,
	mtr *metrics.Metrics,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		ledger:     ledger,
		seat:       seat,
		transactor: transactor,
		publisher:  publisher,
		metrics:    mtr,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func canAccess(ctx context.Context, owner string) bool {
	return shared.IsAdmin(ctx) || (owner != constant.Empty && owner == shared.UserFromContext(ctx))
}

// Get is readable by the booking owner and by admins only.
func (s *serviceImpl) Get(ctx context.Context, pnr string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !model.ValidPNR(pnr) {
		return res, failure.BadRequestFromString("pnr must be 10 uppercase letters or digits")
	}

	cacheKey := shared.BuildCacheKey(cacheGetBooking, pnr)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		booking, err := s.ledger.FindByPNR(ctx, pnr)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		res.FromModel(booking)

		// A confirmed booking can still be cancelled, so only the final state is cached.
		if booking.Status == model.StatusCancelled {
			if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Str("pnr", pnr).Msg("failed to save booking to cache")
			}
		}
	}

	if !canAccess(ctx, res.CreatedBy) {
		return dto.BookingResponse{}, failure.ResourceRestrictedError
	}

	return res, nil
}

// Cancel flips the booking to cancelled and returns its seats to the coach in one
// transaction. A booking that is not confirmed any more is rejected with InvalidTransition.
func (s *serviceImpl) Cancel(ctx context.Context, pnr string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !model.ValidPNR(pnr) {
		return res, failure.BadRequestFromString("pnr must be 10 uppercase letters or digits")
	}

	booking, err := s.ledger.FindByPNR(ctx, pnr)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if !canAccess(ctx, booking.CreatedBy) {
		return res, failure.ResourceRestrictedError
	}

	user := shared.UserFromContext(ctx)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.ledger.CancelTx(ctx, tx, pnr, user); err != nil {
			return err //nolint:wrapcheck
		}

		released, err := s.seat.ReleaseTx(ctx, tx, booking.CoachID, pnr)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if released != len(booking.SeatNumbers) {
			log.Warn().Str("pnr", pnr).Int("released", released).Int("booked", len(booking.SeatNumbers)).Msg("released seat count differs from booking")
		}

		return nil
	})
	if err != nil {
		if failure.GetReason(err) == constant.Empty {
			log.Error().Err(err).Str("pnr", pnr).Msg("failed to cancel booking")
		}

		return res, err //nolint:wrapcheck
	}

	s.metrics.BookingsCancelled.WithLabelValues(string(booking.ClassType)).Inc()

	booking.Status = model.StatusCancelled
	res.FromModel(booking)

	if err := s.cache.Delete(context.WithoutCancel(ctx), shared.BuildCacheKey(cacheGetBooking, pnr)); err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to invalidate booking cache")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Cancelled(c, booking); err != nil {
			log.Error().Err(err).Str("pnr", pnr).Msg("failed to publish booking cancellation")
		}
	}()

	return res, nil
}

// ListAll is the admin view of the ledger in insertion order.
func (s *serviceImpl) ListAll(ctx context.Context, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsAdmin(ctx) {
		return res, failure.ForbiddenError
	}

	total, err := s.ledger.CountAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.ledger.ListAll(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	return res, nil
}

// ListMine returns the caller's bookings, most recent first.
func (s *serviceImpl) ListMine(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.UserFromContext(ctx)
	if user == constant.Empty {
		return res, failure.Unauthorized("missing user")
	}

	bookings, err := s.ledger.ListByUser(ctx, user)
	if err != nil {
		log.Error().Err(err).Str("user", user).Msg("failed to list user bookings")

		return res, fmt.Errorf("failed to list user bookings: %w", err)
	}

	slices.SortStableFunc(bookings, func(a, b model.Booking) int {
		return cmp.Compare(b.BookedAt.UnixNano(), a.BookedAt.UnixNano())
	})

	res.FromModels(bookings, len(bookings), len(bookings))

	return res, nil
}
