package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"railbook/config"
	"railbook/infras/metrics"
	"railbook/infras/otel"
	"railbook/infras/postgres"
	"railbook/internal/domains/booking/event"
	bookingModel "railbook/internal/domains/booking/model"
	bookingRepo "railbook/internal/domains/booking/repository"
	catalogModel "railbook/internal/domains/catalog/model"
	catalog "railbook/internal/domains/catalog/service"
	crowdDto "railbook/internal/domains/crowd/model/dto"
	crowd "railbook/internal/domains/crowd/service"
	paymentModel "railbook/internal/domains/payment/model"
	payment "railbook/internal/domains/payment/service"
	seatModel "railbook/internal/domains/seat/model"
	seatDto "railbook/internal/domains/seat/model/dto"
	seat "railbook/internal/domains/seat/service"
	"railbook/internal/domains/workflow/model"
	"railbook/internal/domains/workflow/model/dto"
	"railbook/internal/domains/workflow/repository"
	"railbook/shared"
	"railbook/shared/constant"
	"railbook/shared/failure"
	"railbook/shared/lock"
	"railbook/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	attemptLockPrefix = "attempt_lock"
	attemptLockGrace  = 30 * time.Second

	reasonAbandonedByUser = "abandoned by user"
	reasonCallerCancelled = "payment cancelled by caller"
	reasonGatewayTimeout  = "payment gateway timed out"
	reasonGatewayFailure  = "payment gateway unavailable"
	reasonDeclined        = "payment declined"
	reasonCommitFailed    = "booking could not be recorded"

	integrityPNRExhausted = "pnr_exhausted"
)

// Workflow drives one booking attempt from class selection to a confirmed booking. Every
// change of an attempt runs under a per-attempt lock; a second concurrent change is refused
// with Conflict instead of waiting.
type Workflow interface {
	Start(ctx context.Context, req dto.StartAttemptRequest) (dto.AttemptResponse, error)
	Get(ctx context.Context, id string) (dto.AttemptResponse, error)
	SubmitPassengers(ctx context.Context, id string, passengers []bookingModel.Passenger) (dto.AttemptResponse, error)
	Seats(ctx context.Context, id string) (seatDto.LayoutResponse, error)
	ToggleSeat(ctx context.Context, id, seatNumber string) (seatDto.LayoutResponse, error)
	ConfirmSeats(ctx context.Context, id string) (dto.AttemptResponse, error)
	Pay(ctx context.Context, id string, details paymentModel.Details) (dto.ConfirmationResponse, error)
	Abandon(ctx context.Context, id string) (dto.AttemptResponse, error)
}

type serviceImpl struct {
	repo       repository.Attempt
	catalog    catalog.Catalog
	seat       seat.Seat
	crowd      crowd.Crowd
	ledger     bookingRepo.Ledger
	transactor postgres.Transactor
	gateway    payment.Gateway
	locker     lock.Locker
	publisher  event.Publisher
	metrics    *metrics.Metrics
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Attempt,
	catalog catalog.Catalog,
	seat seat.Seat,
	crowd crowd.Crowd,
	ledger bookingRepo.Ledger,
	transactor postgres.Transactor,
	gateway payment.Gateway,
	locker lock.Locker,
	publisher event.Publisher,
	mtr *metrics.Metrics,
	cfg *config.Config,
	otel otel.Otel,
) Workflow {
	return &serviceImpl{
		repo:       repo,
		catalog:    catalog,
		seat:       seat,
		crowd:      crowd,
		ledger:     ledger,
		transactor: transactor,
		gateway:    gateway,
		locker:     locker,
		publisher:  publisher,
		metrics:    mtr,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) holdTTL() time.Duration {
	return time.Duration(s.cfg.Booking.HoldTTLSeconds) * time.Second
}

func (s *serviceImpl) paymentTimeout() time.Duration {
	return time.Duration(s.cfg.Booking.PaymentTimeoutSeconds) * time.Second
}

func (s *serviceImpl) pricing() paymentModel.Pricing {
	return paymentModel.Pricing{
		GSTRate:           s.cfg.Booking.GSTRate,
		ReservationCharge: s.cfg.Booking.ReservationCharge,
	}
}

func (s *serviceImpl) Start(ctx context.Context, req dto.StartAttemptRequest) (res dto.AttemptResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Start")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.UserFromContext(ctx)
	if user == constant.Empty {
		return res, failure.Unauthorized("missing user")
	}

	offer, err := s.catalog.Offer(ctx, req.TrainID, catalogModel.ClassType(req.ClassType), req.JourneyDate)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	attempt := model.NewAttempt(uuid.NewString(), user, offer, timezone.Now())

	if err = s.repo.Save(ctx, attempt, s.holdTTL()); err != nil {
		return res, err //nolint:wrapcheck
	}

	s.metrics.AttemptTransitions.WithLabelValues(string(model.StateDrafting)).Inc()

	res.FromModel(attempt)
	res.Assessment = &crowdDto.AssessmentResponse{}
	res.Assessment.FromModel(s.crowd.Assess(offer.FareClass, offer.Train.DepartureTime, offer.JourneyDate))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AttemptResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	attempt, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(attempt)

	return res, nil
}

func (s *serviceImpl) SubmitPassengers(ctx context.Context, id string, passengers []bookingModel.Passenger) (res dto.AttemptResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitPassengers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	attempt, err := s.mutate(ctx, id, func(attempt *model.Attempt) error {
		return attempt.SubmitPassengers(passengers, timezone.Now())
	})
	if err != nil {
		return res, err
	}

	s.metrics.AttemptTransitions.WithLabelValues(string(attempt.State)).Inc()

	res.FromModel(attempt)

	return res, nil
}

func (s *serviceImpl) Seats(ctx context.Context, id string) (res seatDto.LayoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Seats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	attempt, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	layout, err := s.seat.Layout(ctx, attempt.CoachID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(layout, attempt.Selection(layout))

	return res, nil
}

// ToggleSeat always works on the freshly loaded layout so seats booked by others since the
// last call drop out of the selection.
func (s *serviceImpl) ToggleSeat(ctx context.Context, id, seatNumber string) (res seatDto.LayoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleSeat")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var layout []seatModel.Seat

	attempt, err := s.mutate(ctx, id, func(attempt *model.Attempt) error {
		if attempt.State != model.StateSeatsPending {
			return failure.InvalidTransition(fmt.Sprintf("cannot change seats while the attempt is %s", attempt.State))
		}

		seats, err := s.seat.Layout(ctx, attempt.CoachID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		layout = seats

		_, err = attempt.ToggleSeat(seats, seatNumber, timezone.Now())

		return err //nolint:wrapcheck
	})
	if err != nil {
		return res, err
	}

	res.FromModel(layout, attempt.Selection(layout))

	return res, nil
}

// ConfirmSeats holds the picked seats for the attempt and freezes the fare. When any seat
// cannot be held nothing is held and the attempt stays in seat selection.
func (s *serviceImpl) ConfirmSeats(ctx context.Context, id string) (res dto.AttemptResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmSeats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var held []string

	attempt, err := s.mutate(ctx, id, func(attempt *model.Attempt) error {
		if attempt.State != model.StateSeatsPending {
			return failure.InvalidTransition(fmt.Sprintf("cannot confirm seats while the attempt is %s", attempt.State))
		}

		layout, err := s.seat.Layout(ctx, attempt.CoachID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		attempt.SelectedSeats = attempt.Selection(layout).Selected()

		offer, err := s.catalog.Offer(ctx, attempt.TrainID, attempt.ClassType, attempt.JourneyDate)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if err = attempt.ConfirmSeats(offer.FareClass.Fare, s.pricing(), timezone.Now()); err != nil {
			return err //nolint:wrapcheck
		}

		if err = s.seat.Hold(ctx, attempt.CoachID, attempt.SelectedSeats, attempt.ID, s.holdTTL()); err != nil {
			return err //nolint:wrapcheck
		}

		held = attempt.SelectedSeats

		return nil
	})
	if err != nil {
		if len(held) > 0 {
			s.releaseHolds(context.WithoutCancel(ctx), attempt.CoachID, held, id)
		}

		return res, err
	}

	s.metrics.AttemptTransitions.WithLabelValues(string(attempt.State)).Inc()

	res.FromModel(attempt)

	return res, nil
}

// Pay charges the frozen fare and commits the booking.
//
// A decline, gateway error or timeout keeps the attempt payment pending with its holds
// refreshed. A caller that goes away during the charge abandons the attempt. Once the charge
// is approved the commit no longer follows the caller's cancellation. Paying a confirmed
// attempt again returns the same confirmation.
func (s *serviceImpl) Pay(ctx context.Context, id string, details paymentModel.Details) (res dto.ConfirmationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Pay")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = details.Validate(); err != nil {
		return res, err //nolint:wrapcheck
	}

	unlock, err := s.lockAttempt(ctx, id)
	if err != nil {
		return res, err
	}
	defer unlock()

	attempt, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if attempt.State == model.StateConfirmed {
		return s.confirmation(ctx, attempt)
	}

	if attempt.State != model.StatePaymentPending || attempt.Snapshot == nil {
		return res, failure.InvalidTransition(fmt.Sprintf("cannot pay while the attempt is %s", attempt.State))
	}

	committed, err := s.committedBooking(ctx, attempt)
	if err != nil {
		return res, err
	}

	if committed != nil {
		return s.reconcile(context.WithoutCancel(ctx), attempt, *committed)
	}

	result, chargeErr := s.charge(ctx, attempt, details.Method)
	approved := chargeErr == nil && result.Approved

	if !approved && ctx.Err() != nil {
		s.metrics.PaymentAttempts.WithLabelValues(string(details.Method), metrics.OutcomeAbandoned).Inc()
		s.abandon(context.WithoutCancel(ctx), &attempt, reasonCallerCancelled)

		return res, fmt.Errorf("payment interrupted: %w", ctx.Err())
	}

	if !approved {
		return res, s.decline(ctx, attempt, details.Method, declineReason(result, chargeErr))
	}

	ctx = context.WithoutCancel(ctx)

	booking, err := s.commit(ctx, &attempt, details.Method, result.Reference)
	if err != nil {
		s.metrics.PaymentAttempts.WithLabelValues(string(details.Method), metrics.OutcomeFailed).Inc()
		s.abandon(ctx, &attempt, reasonCommitFailed)

		return res, err
	}

	if err := s.repo.Save(ctx, attempt, s.holdTTL()); err != nil {
		log.Error().Err(err).Str("attempt_id", id).Str("pnr", booking.PNR).Msg("failed to save confirmed attempt")
	}

	s.releaseHolds(ctx, attempt.CoachID, attempt.SelectedSeats, attempt.ID)

	s.metrics.PaymentAttempts.WithLabelValues(string(details.Method), metrics.OutcomeConfirmed).Inc()
	s.metrics.BookingsConfirmed.WithLabelValues(string(booking.ClassType), booking.PaymentMethod).Inc()
	s.metrics.AttemptTransitions.WithLabelValues(string(model.StateConfirmed)).Inc()

	go func() {
		if err := s.publisher.Confirmed(ctx, booking); err != nil {
			log.Error().Err(err).Str("pnr", booking.PNR).Msg("failed to publish booking confirmation")
		}
	}()

	res.Attempt.FromModel(attempt)
	res.Booking.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Abandon(ctx context.Context, id string) (res dto.AttemptResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Abandon")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var holding bool

	attempt, err := s.mutate(ctx, id, func(attempt *model.Attempt) error {
		holding = attempt.HoldsSeats()

		return attempt.Abandon(reasonAbandonedByUser, timezone.Now())
	})
	if err != nil {
		return res, err
	}

	if holding {
		s.releaseHolds(context.WithoutCancel(ctx), attempt.CoachID, attempt.SelectedSeats, attempt.ID)
	}

	s.metrics.AttemptTransitions.WithLabelValues(string(model.StateAbandoned)).Inc()

	res.FromModel(attempt)

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Attempt, error) {
	attempt, err := s.repo.Get(ctx, id)
	if err != nil {
		return attempt, err //nolint:wrapcheck
	}

	if attempt.UserID == constant.Empty || attempt.UserID != shared.UserFromContext(ctx) {
		return model.Attempt{}, failure.ResourceRestrictedError
	}

	return attempt, nil
}

// lockAttempt takes the per-attempt lock. The lock outlives the longest payment wait so a
// slow gateway cannot let a second Pay in.
func (s *serviceImpl) lockAttempt(ctx context.Context, id string) (func(), error) {
	keys := []string{shared.BuildCacheKey(attemptLockPrefix, id)}
	token := uuid.NewString()

	if err := s.locker.Acquire(ctx, keys, token, s.paymentTimeout()+attemptLockGrace); err != nil {
		if errors.Is(err, lock.ErrHeld) {
			return nil, failure.Conflict(fmt.Sprintf("%s %s is being changed by another request", model.EntityName, id))
		}

		log.Error().Err(err).Str("attempt_id", id).Msg("failed to lock attempt")

		return nil, fmt.Errorf("failed to lock attempt: %w", err)
	}

	return func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), keys, token); err != nil {
			log.Error().Err(err).Str("attempt_id", id).Msg("failed to unlock attempt")
		}
	}, nil
}

// mutate loads the attempt under its lock, applies fn and saves the result. Nothing is saved
// when fn fails.
func (s *serviceImpl) mutate(ctx context.Context, id string, fn func(attempt *model.Attempt) error) (model.Attempt, error) {
	unlock, err := s.lockAttempt(ctx, id)
	if err != nil {
		return model.Attempt{}, err
	}
	defer unlock()

	attempt, err := s.load(ctx, id)
	if err != nil {
		return attempt, err
	}

	if err = fn(&attempt); err != nil {
		return attempt, err
	}

	if err = s.repo.Save(ctx, attempt, s.holdTTL()); err != nil {
		return attempt, err //nolint:wrapcheck
	}

	return attempt, nil
}

func (s *serviceImpl) charge(ctx context.Context, attempt model.Attempt, method paymentModel.Method) (payment.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.paymentTimeout())
	defer cancel()

	start := time.Now()
	defer func() { s.metrics.PaymentLatency.Observe(time.Since(start).Seconds()) }()

	return s.gateway.Charge(ctx, payment.ChargeRequest{ //nolint:wrapcheck
		AttemptID: attempt.ID,
		Amount:    attempt.Snapshot.TotalFare,
		Method:    method,
	})
}

func declineReason(result payment.Result, err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return reasonGatewayTimeout
	case err != nil:
		return reasonGatewayFailure
	case result.DeclineReason != constant.Empty:
		return result.DeclineReason
	default:
		return reasonDeclined
	}
}

// decline keeps the attempt payable: the holds are refreshed and the reason is recorded.
func (s *serviceImpl) decline(ctx context.Context, attempt model.Attempt, method paymentModel.Method, reason string) error {
	s.metrics.PaymentAttempts.WithLabelValues(string(method), metrics.OutcomeDeclined).Inc()

	if err := attempt.DeclinePayment(reason, timezone.Now()); err != nil {
		return err //nolint:wrapcheck
	}

	if err := s.seat.Hold(ctx, attempt.CoachID, attempt.SelectedSeats, attempt.ID, s.holdTTL()); err != nil {
		log.Warn().Err(err).Str("attempt_id", attempt.ID).Msg("failed to refresh seat holds after decline")
	}

	if err := s.repo.Save(ctx, attempt, s.holdTTL()); err != nil {
		log.Error().Err(err).Str("attempt_id", attempt.ID).Msg("failed to save declined attempt")
	}

	return failure.PaymentDeclined(reason)
}

// commit writes the seat claims and the booking in one transaction and confirms the attempt.
func (s *serviceImpl) commit(ctx context.Context, attempt *model.Attempt, method paymentModel.Method, reference string) (bookingModel.Booking, error) {
	pnr, err := s.allocatePNR(ctx)
	if err != nil {
		return bookingModel.Booking{}, err
	}

	now := timezone.Now()

	booking, err := attempt.Booking(pnr, now, model.Payment{Method: method, Reference: reference})
	if err != nil {
		return booking, err //nolint:wrapcheck
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.seat.ReserveTx(ctx, tx, booking.CoachID, booking.SeatNumbers, pnr); err != nil {
			return err //nolint:wrapcheck
		}

		return s.ledger.CreateTx(ctx, tx, booking) //nolint:wrapcheck
	})
	if err != nil {
		if failure.Is(err, failure.ReasonDuplicatePNR) {
			s.metrics.IntegrityFailures.WithLabelValues(failure.ReasonDuplicatePNR).Inc()
		}

		log.Error().Err(err).Str("attempt_id", attempt.ID).Str("pnr", pnr).Msg("failed to commit booking")

		return booking, err //nolint:wrapcheck
	}

	return booking, attempt.Confirm(pnr, reference, now) //nolint:wrapcheck
}

// allocatePNR draws a reference and regenerates it while the ledger already knows it. The
// UNIQUE constraint still guards the insert against a concurrent writer.
func (s *serviceImpl) allocatePNR(ctx context.Context) (string, error) {
	for range s.cfg.Booking.PNRMaxAttempts + 1 {
		pnr, err := bookingModel.GeneratePNR()
		if err != nil {
			return constant.Empty, err //nolint:wrapcheck
		}

		exists, err := s.ledger.ExistsPNR(ctx, pnr)
		if err != nil {
			return constant.Empty, fmt.Errorf("failed to check pnr: %w", err)
		}

		if !exists {
			return pnr, nil
		}

		log.Warn().Str("pnr", pnr).Msg("generated pnr already exists, regenerating")
	}

	s.metrics.IntegrityFailures.WithLabelValues(integrityPNRExhausted).Inc()

	return constant.Empty, failure.InternalError(errors.New("could not allocate a unique booking reference"))
}

// abandon is best effort: the attempt is already lost for the caller.
func (s *serviceImpl) abandon(ctx context.Context, attempt *model.Attempt, reason string) {
	if err := attempt.Abandon(reason, timezone.Now()); err != nil {
		log.Error().Err(err).Str("attempt_id", attempt.ID).Msg("failed to abandon attempt")

		return
	}

	s.releaseHolds(ctx, attempt.CoachID, attempt.SelectedSeats, attempt.ID)

	if err := s.repo.Save(ctx, *attempt, s.holdTTL()); err != nil {
		log.Error().Err(err).Str("attempt_id", attempt.ID).Msg("failed to save abandoned attempt")
	}

	s.metrics.AttemptTransitions.WithLabelValues(string(model.StateAbandoned)).Inc()
}

func (s *serviceImpl) releaseHolds(ctx context.Context, coachID string, seats []string, owner string) {
	if len(seats) == 0 {
		return
	}

	if err := s.seat.ReleaseHold(ctx, coachID, seats, owner); err != nil {
		log.Error().Err(err).Str("attempt_id", owner).Msg("failed to release seat holds")
	}
}

// committedBooking returns the booking an earlier Pay of this attempt already committed, when
// the attempt itself could not be saved as confirmed afterwards.
func (s *serviceImpl) committedBooking(ctx context.Context, attempt model.Attempt) (*bookingModel.Booking, error) {
	booking, err := s.ledger.FindByID(ctx, attempt.ID)
	if failure.Is(err, failure.ReasonNotFound) {
		return nil, nil //nolint:nilnil
	}

	if err != nil {
		log.Error().Err(err).Str("attempt_id", attempt.ID).Msg("failed to look up committed booking")

		return nil, err //nolint:wrapcheck
	}

	return &booking, nil
}

// reconcile brings a payment pending attempt in line with the booking it already produced.
func (s *serviceImpl) reconcile(ctx context.Context, attempt model.Attempt, booking bookingModel.Booking) (res dto.ConfirmationResponse, err error) {
	log.Warn().Str("attempt_id", attempt.ID).Str("pnr", booking.PNR).Msg("attempt already committed, skipping charge")

	if err = attempt.Confirm(booking.PNR, booking.PaymentReference, timezone.Now()); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.repo.Save(ctx, attempt, s.holdTTL()); err != nil {
		log.Error().Err(err).Str("attempt_id", attempt.ID).Str("pnr", booking.PNR).Msg("failed to save confirmed attempt")

		return res, fmt.Errorf("failed to save confirmed attempt: %w", err)
	}

	s.releaseHolds(ctx, attempt.CoachID, attempt.SelectedSeats, attempt.ID)

	res.Attempt.FromModel(attempt)
	res.Booking.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) confirmation(ctx context.Context, attempt model.Attempt) (res dto.ConfirmationResponse, err error) {
	booking, err := s.ledger.FindByPNR(ctx, attempt.PNR)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.Attempt.FromModel(attempt)
	res.Booking.FromModel(booking)

	return res, nil
}
