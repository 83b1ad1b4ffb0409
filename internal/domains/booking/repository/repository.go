package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"railbook/infras/otel"
	"railbook/infras/postgres"
	"railbook/internal/domains/booking/model"
	"railbook/shared/constant"
	gDto "railbook/shared/dto"
	"railbook/shared/failure"
	gRepo "railbook/shared/repository"
	"railbook/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	queryCancel = `UPDATE bookings SET status = $1, modified_at = $2, modified_by = $3
WHERE pnr = $4 AND status = $5`

	queryStatus = `SELECT status FROM bookings WHERE pnr = $1`
)

// Ledger is the durable record of confirmed reservations. Rows are append-only apart from the
// confirmed to cancelled transition, and every read goes to the primary.
type Ledger interface {
	Create(ctx context.Context, booking model.Booking) error
	CreateTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) error
	FindByPNR(ctx context.Context, pnr string) (model.Booking, error)
	FindByID(ctx context.Context, id string) (model.Booking, error)
	ExistsPNR(ctx context.Context, pnr string) (bool, error)
	Cancel(ctx context.Context, pnr, user string) error
	CancelTx(ctx context.Context, tx *sqlx.Tx, pnr, user string) error
	ListAll(ctx context.Context, params gDto.QueryParams) ([]model.Booking, error)
	CountAll(ctx context.Context) (int, error)
	ListByUser(ctx context.Context, user string) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Ledger {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel, gRepo.ReadFromPrimary()),
		db:         db,
		otel:       otel,
	}
}

func pnrFilter(pnr string) gDto.FilterGroup {
	return gDto.And(gDto.Filter{Field: model.FieldPNR, Value: pnr, Operator: gDto.FilterOperatorEq})
}

// duplicateOrErr turns a unique violation on the pnr key into DuplicatePNR.
func duplicateOrErr(err error, pnr string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation && pqErr.Constraint == model.ConstraintPNR {
		log.Error().Err(err).Str("pnr", pnr).Msg("ledger integrity violation: duplicate pnr")

		return failure.DuplicatePNR(pnr)
	}

	return err
}

func (r *repositoryImpl) Create(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.Insert(ctx, booking); err != nil {
		return duplicateOrErr(err, booking.PNR)
	}

	return nil
}

func (r *repositoryImpl) CreateTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CreateTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.InsertTx(ctx, tx, booking); err != nil {
		return duplicateOrErr(err, booking.PNR)
	}

	return nil
}

func (r *repositoryImpl) FindByPNR(ctx context.Context, pnr string) (booking model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".FindByPNR")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err = r.Get(ctx, pnrFilter(pnr))
	if err != nil {
		return booking, fmt.Errorf("failed to find booking: %w", err)
	}

	if booking.ID == "" {
		return booking, failure.NotFound("booking " + pnr + " not found")
	}

	return booking, nil
}

// FindByID looks a booking up by its id, which is the id of the attempt that produced it.
func (r *repositoryImpl) FindByID(ctx context.Context, id string) (booking model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".FindByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err = r.Get(ctx, gDto.And(gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq}))
	if err != nil {
		return booking, fmt.Errorf("failed to find booking: %w", err)
	}

	if booking.ID == "" {
		return booking, failure.NotFound("booking for attempt " + id + " not found")
	}

	return booking, nil
}

func (r *repositoryImpl) ExistsPNR(ctx context.Context, pnr string) (exists bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ExistsPNR")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err = r.Exist(ctx, pnrFilter(pnr))
	if err != nil {
		return false, fmt.Errorf("failed to check pnr: %w", err)
	}

	return exists, nil
}

func (r *repositoryImpl) Cancel(ctx context.Context, pnr, user string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin cancel transaction: %w", err)
	}

	if err = r.CancelTx(ctx, tx, pnr, user); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cancel: %w", err)
	}

	return nil
}

// CancelTx moves a confirmed booking to cancelled. Concurrent cancels serialize on the row
// lock: exactly one sees a changed row, the rest see InvalidTransition.
func (r *repositoryImpl) CancelTx(ctx context.Context, tx *sqlx.Tx, pnr, user string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CancelTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	result, err := tx.ExecContext(ctx, queryCancel, model.StatusCancelled, timezone.Now(), user, pnr, model.StatusConfirmed)
	if err != nil {
		log.Error().Err(err).Str("pnr", pnr).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read cancelled booking: %w", err)
	}

	if updated == 1 {
		return nil
	}

	var status model.Status

	err = tx.GetContext(ctx, &status, queryStatus, pnr)
	if errors.Is(err, sql.ErrNoRows) {
		return failure.NotFound("booking " + pnr + " not found")
	}

	if err != nil {
		return fmt.Errorf("failed to read booking status: %w", err)
	}

	return failure.InvalidTransition(fmt.Sprintf("booking %s is %s and cannot be cancelled", pnr, status))
}

// ListAll returns bookings in insertion order.
func (r *repositoryImpl) ListAll(ctx context.Context, params gDto.QueryParams) (bookings []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.SortBy = model.FieldSeq
	params.SortDir = gDto.SortDirAsc

	bookings, err = r.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

func (r *repositoryImpl) CountAll(ctx context.Context) (count int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CountAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	count, err = r.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return count, nil
}

func (r *repositoryImpl) ListByUser(ctx context.Context, user string) (bookings []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ListByUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.FieldSeq, SortDir: gDto.SortDirAsc}

	bookings, err = r.GetAll(ctx, params, gDto.And(gDto.Filter{Field: model.FieldCreatedBy, Value: user, Operator: gDto.FilterOperatorEq}))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}
