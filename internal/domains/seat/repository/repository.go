package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"railbook/infras/otel"
	"railbook/infras/postgres"
	catalog "railbook/internal/domains/catalog/model"
	"railbook/internal/domains/seat/model"
	"railbook/shared/constant"
	gDto "railbook/shared/dto"
	"railbook/shared/failure"
	gModel "railbook/shared/model"
	gRepo "railbook/shared/repository"
	"railbook/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	systemUser = "system"

	queryInsertCoach = `INSERT INTO coaches (id, train_id, class_type, journey_date, total_seats, available_seats, created_at, modified_at, created_by, modified_by)
VALUES ($1, $2, $3, $4, $5, $5, $6, $6, $7, $7)
ON CONFLICT (train_id, class_type, journey_date) DO NOTHING`

	queryClaimSeats = `UPDATE seats SET is_booked = TRUE, pnr = $1, modified_at = $2
WHERE coach_id = $3 AND seat_number = ANY($4) AND is_booked = FALSE`

	queryTakeAvailability = `UPDATE coaches SET available_seats = available_seats - $1, modified_at = $2
WHERE id = $3 AND available_seats >= $1`

	queryFreeSeats = `UPDATE seats SET is_booked = FALSE, pnr = NULL, modified_at = $1
WHERE coach_id = $2 AND pnr = $3`

	queryRestoreAvailability = `UPDATE coaches SET available_seats = LEAST(total_seats, available_seats + $1), modified_at = $2
WHERE id = $3`
)

// Seat is the persistent seat inventory. Reads go to the primary so a booking sees the
// seats it just claimed.
type Seat interface {
	EnsureCoach(ctx context.Context, trainID string, class catalog.ClassType, journeyDate string, totalSeats int) (model.Coach, error)
	GetCoach(ctx context.Context, coachID string) (model.Coach, error)
	Layout(ctx context.Context, coachID string) ([]model.Seat, error)
	ReserveTx(ctx context.Context, tx *sqlx.Tx, coachID string, seatNumbers []string, pnr string) error
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, coachID, pnr string) (int, error)
}

type repositoryImpl struct {
	coaches gRepo.Repository[model.Coach]
	seats   gRepo.Repository[model.Seat]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Seat {
	return &repositoryImpl{
		coaches: gRepo.NewRepository[model.Coach](model.CoachEntity, model.CoachTable, model.FieldID, db, otel, gRepo.ReadFromPrimary()),
		seats:   gRepo.NewRepository[model.Seat](model.SeatEntity, model.SeatTable, model.FieldID, db, otel, gRepo.ReadFromPrimary()),
		db:      db,
		otel:    otel,
	}
}

func coachFilter(trainID string, class catalog.ClassType, journeyDate string) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{Field: model.FieldTrainID, Value: trainID, Operator: gDto.FilterOperatorEq},
		gDto.Filter{Field: model.FieldClassType, Value: class, Operator: gDto.FilterOperatorEq},
		gDto.Filter{Field: model.FieldJourneyDate, Value: journeyDate, Operator: gDto.FilterOperatorEq},
	)
}

// EnsureCoach returns the coach for (train, class, date), creating it with a fresh layout
// the first time. Concurrent callers converge on the same row through the unique key.
func (r *repositoryImpl) EnsureCoach(ctx context.Context, trainID string, class catalog.ClassType, journeyDate string, totalSeats int) (coach model.Coach, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".EnsureCoach")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := coachFilter(trainID, class, journeyDate)

	coach, err = r.coaches.Get(ctx, filter)
	if err != nil {
		return coach, fmt.Errorf("failed to get coach: %w", err)
	}

	if coach.ID != "" {
		return coach, nil
	}

	if err = r.createCoach(ctx, trainID, class, journeyDate, totalSeats); err != nil {
		return coach, err
	}

	coach, err = r.coaches.Get(ctx, filter)
	if err != nil {
		return coach, fmt.Errorf("failed to get coach: %w", err)
	}

	if coach.ID == "" {
		return coach, errors.New("coach missing after create")
	}

	return coach, nil
}

func (r *repositoryImpl) createCoach(ctx context.Context, trainID string, class catalog.ClassType, journeyDate string, totalSeats int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".createCoach")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin coach transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Error().Err(rbErr).Msg("failed to rollback coach transaction")
			}
		}
	}()

	now := timezone.Now()
	coachID := uuid.NewString()

	result, err := tx.ExecContext(ctx, queryInsertCoach, coachID, trainID, class, journeyDate, totalSeats, now, systemUser)
	if err != nil {
		log.Error().Err(err).Str("train_id", trainID).Str("class_type", string(class)).Msg("failed to insert coach")

		return fmt.Errorf("failed to insert coach: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read inserted coach: %w", err)
	}

	// another request created it first
	if inserted == 0 {
		return tx.Commit() //nolint:wrapcheck
	}

	layout := model.GenerateLayout(class, totalSeats)
	for idx := range layout {
		layout[idx].ID = uuid.NewString()
		layout[idx].CoachID = coachID
		layout[idx].Metadata = gModel.NewMetadata(systemUser, now)
	}

	if len(layout) > 0 {
		if err = r.seats.InsertBulkTx(ctx, tx, layout); err != nil {
			return fmt.Errorf("failed to insert seats: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit coach: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetCoach(ctx context.Context, coachID string) (coach model.Coach, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetCoach")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	coach, err = r.coaches.Get(ctx, gDto.And(gDto.Filter{Field: model.FieldID, Value: coachID, Operator: gDto.FilterOperatorEq}))
	if err != nil {
		return coach, fmt.Errorf("failed to get coach: %w", err)
	}

	if coach.ID == "" {
		return coach, failure.NotFound("coach not found")
	}

	return coach, nil
}

func (r *repositoryImpl) Layout(ctx context.Context, coachID string) (seats []model.Seat, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Layout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.FieldPosition, SortDir: gDto.SortDirAsc}

	seats, err = r.seats.GetAll(ctx, params, gDto.And(gDto.Filter{Field: model.FieldCoachID, Value: coachID, Operator: gDto.FilterOperatorEq}))
	if err != nil {
		return nil, fmt.Errorf("failed to get layout: %w", err)
	}

	return seats, nil
}

// ReserveTx claims exactly seatNumbers for pnr and takes them out of the available count.
// Any seat already booked fails the whole claim with SeatUnavailable; the caller's
// transaction must then be rolled back.
func (r *repositoryImpl) ReserveTx(ctx context.Context, tx *sqlx.Tx, coachID string, seatNumbers []string, pnr string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ReserveTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"coach_id": coachID,
		"seats":    seatNumbers,
	})

	now := timezone.Now()

	result, err := tx.ExecContext(ctx, queryClaimSeats, pnr, now, coachID, pq.Array(seatNumbers))
	if err != nil {
		log.Error().Err(err).Str("coach_id", coachID).Msg("failed to claim seats")

		return fmt.Errorf("failed to claim seats: %w", err)
	}

	claimed, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read claimed seats: %w", err)
	}

	if claimed != int64(len(seatNumbers)) {
		return failure.SeatUnavailable("one or more selected seats are no longer available")
	}

	result, err = tx.ExecContext(ctx, queryTakeAvailability, len(seatNumbers), now, coachID)
	if err != nil {
		log.Error().Err(err).Str("coach_id", coachID).Msg("failed to decrement availability")

		return fmt.Errorf("failed to decrement availability: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read availability update: %w", err)
	}

	if updated != 1 {
		return failure.SeatUnavailable("not enough seats available in this class")
	}

	return nil
}

// ReleaseTx frees every seat held by pnr and returns how many were freed.
func (r *repositoryImpl) ReleaseTx(ctx context.Context, tx *sqlx.Tx, coachID, pnr string) (released int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ReleaseTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()

	result, err := tx.ExecContext(ctx, queryFreeSeats, now, coachID, pnr)
	if err != nil {
		log.Error().Err(err).Str("coach_id", coachID).Msg("failed to free seats")

		return 0, fmt.Errorf("failed to free seats: %w", err)
	}

	freed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read freed seats: %w", err)
	}

	if freed == 0 {
		return 0, nil
	}

	if _, err = tx.ExecContext(ctx, queryRestoreAvailability, freed, now, coachID); err != nil {
		log.Error().Err(err).Str("coach_id", coachID).Msg("failed to restore availability")

		return 0, fmt.Errorf("failed to restore availability: %w", err)
	}

	return int(freed), nil
}
