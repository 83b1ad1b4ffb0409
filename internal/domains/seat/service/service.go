package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Seat=MockSeatService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"railbook/infras/metrics"
	"railbook/infras/otel"
	catalog "railbook/internal/domains/catalog/model"
	"railbook/internal/domains/seat/model"
	"railbook/internal/domains/seat/repository"
	"railbook/shared/constant"
	"railbook/shared/failure"
	"railbook/shared/lock"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Seat allocates seats: coach inventory, short-lived holds while a booking attempt pays, and
// the authoritative claim inside the booking transaction.
type Seat interface {
	Coach(ctx context.Context, trainID string, class catalog.ClassType, journeyDate string, totalSeats int) (model.Coach, error)
	GetCoach(ctx context.Context, coachID string) (model.Coach, error)
	Layout(ctx context.Context, coachID string) ([]model.Seat, error)
	Hold(ctx context.Context, coachID string, seatNumbers []string, owner string, ttl time.Duration) error
	ReleaseHold(ctx context.Context, coachID string, seatNumbers []string, owner string) error
	ReserveTx(ctx context.Context, tx *sqlx.Tx, coachID string, seatNumbers []string, pnr string) error
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, coachID, pnr string) (int, error)
}

type serviceImpl struct {
	repo    repository.Seat
	locker  lock.Locker
	metrics *metrics.Metrics
	otel    otel.Otel
}

func New(repo repository.Seat, locker lock.Locker, mtr *metrics.Metrics, otel otel.Otel) Seat {
	return &serviceImpl{
		repo:    repo,
		locker:  locker,
		metrics: mtr,
		otel:    otel,
	}
}

func (s *serviceImpl) Coach(ctx context.Context, trainID string, class catalog.ClassType, journeyDate string, totalSeats int) (coach model.Coach, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Coach")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	coach, err = s.repo.EnsureCoach(ctx, trainID, class, journeyDate, totalSeats)
	if err != nil {
		log.Error().Err(err).Str("train_id", trainID).Str("class_type", string(class)).Str("journey_date", journeyDate).Msg("failed to ensure coach")

		return coach, fmt.Errorf("failed to ensure coach: %w", err)
	}

	return coach, nil
}

func (s *serviceImpl) GetCoach(ctx context.Context, coachID string) (coach model.Coach, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCoach")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.GetCoach(ctx, coachID) //nolint:wrapcheck
}

func (s *serviceImpl) Layout(ctx context.Context, coachID string) (seats []model.Seat, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Layout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	seats, err = s.repo.Layout(ctx, coachID)
	if err != nil {
		log.Error().Err(err).Str("coach_id", coachID).Msg("failed to load layout")

		return nil, fmt.Errorf("failed to load layout: %w", err)
	}

	return seats, nil
}

// Hold takes every seat for owner or none of them. Holding seats the owner already holds
// refreshes their ttl.
func (s *serviceImpl) Hold(ctx context.Context, coachID string, seatNumbers []string, owner string, ttl time.Duration) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Hold")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.locker.Acquire(ctx, model.HoldKeys(coachID, seatNumbers), owner, ttl)
	if err == nil {
		return nil
	}

	var held *lock.HeldError
	if errors.As(err, &held) {
		s.metrics.SeatHoldConflicts.Inc()

		return failure.SeatUnavailable(fmt.Sprintf("seat %s is held by another booking", model.SeatNumberFromHoldKey(held.Key)))
	}

	log.Error().Err(err).Str("coach_id", coachID).Str("owner", owner).Msg("failed to hold seats")

	return fmt.Errorf("failed to hold seats: %w", err)
}

func (s *serviceImpl) ReleaseHold(ctx context.Context, coachID string, seatNumbers []string, owner string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReleaseHold")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.locker.Release(ctx, model.HoldKeys(coachID, seatNumbers), owner); err != nil {
		log.Error().Err(err).Str("coach_id", coachID).Str("owner", owner).Msg("failed to release seat hold")

		return fmt.Errorf("failed to release seat hold: %w", err)
	}

	return nil
}

func (s *serviceImpl) ReserveTx(ctx context.Context, tx *sqlx.Tx, coachID string, seatNumbers []string, pnr string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReserveTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.ReserveTx(ctx, tx, coachID, seatNumbers, pnr) //nolint:wrapcheck
}

func (s *serviceImpl) ReleaseTx(ctx context.Context, tx *sqlx.Tx, coachID, pnr string) (released int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReleaseTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.ReleaseTx(ctx, tx, coachID, pnr) //nolint:wrapcheck
}
