package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railbook/infras/otel/mocks"
	"railbook/infras/postgres"
	"railbook/internal/domains/booking/model"
	"railbook/internal/domains/booking/repository"
	catalog "railbook/internal/domains/catalog/model"
	gDto "railbook/shared/dto"
	"railbook/shared/failure"
	gModel "railbook/shared/model"
)

var bookingColumns = []string{
	"id", "pnr", "train_id", "train_number", "train_name", "from_station", "to_station", "departure_time",
	"coach_id", "class_type", "journey_date", "passengers", "seat_numbers", "total_fare", "status",
	"payment_method", "payment_reference", "booked_at", "created_at", "modified_at", "created_by", "modified_by",
}

func newLedger(t *testing.T) (repository.Ledger, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	t.Cleanup(func() { _ = sqlxDB.Close() })

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), mock
}

func sampleBooking() model.Booking {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	return model.Booking{
		ID:          "booking-1",
		PNR:         "AB12CD34EF",
		TrainID:     "train-1",
		TrainNumber: "12951",
		CoachID:     "coach-1",
		ClassType:   catalog.ClassThirdAC,
		JourneyDate: time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC),
		Passengers: model.Passengers{
			{ID: "p1", Name: "Asha Rao", Age: 34, Gender: model.GenderFemale, AssignedSeat: "LB1"},
			{ID: "p2", Name: "Ravi Rao", Age: 36, Gender: model.GenderMale, AssignedSeat: "MB3"},
		},
		SeatNumbers:   pq.StringArray{"LB1", "MB3"},
		TotalFare:     3230,
		Status:        model.StatusConfirmed,
		PaymentMethod: "upi",
		BookedAt:      now,
		Metadata:      gModel.NewMetadata("user-1", now),
	}
}

func TestLedger_Create(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(mock sqlmock.Sqlmock)
		wantReason string
		wantErr    bool
	}{
		{
			name: "inserted",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "pnr already taken",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_pnr_key"})
			},
			wantReason: failure.ReasonDuplicatePNR,
			wantErr:    true,
		},
		{
			name: "other unique violation is not a pnr clash",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_pkey"})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, mock := newLedger(t)
			tt.setupMock(mock)

			err := ledger.Create(context.Background(), sampleBooking())

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantReason, failure.GetReason(err))
			} else {
				require.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLedger_FindByPNR(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ledger, mock := newLedger(t)
		b := sampleBooking()

		mock.ExpectPrepare(regexp.QuoteMeta("FROM bookings")).
			ExpectQuery().
			WithArgs("AB12CD34EF").
			WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(
				b.ID, b.PNR, b.TrainID, b.TrainNumber, "", "NDLS", "BCT", "08:00",
				b.CoachID, "3A", b.JourneyDate,
				[]byte(`[{"id":"p1","name":"Asha Rao","age":34,"gender":"F","assigned_seat":"LB1"},{"id":"p2","name":"Ravi Rao","age":36,"gender":"M","assigned_seat":"MB3"}]`),
				[]byte(`{LB1,MB3}`), 3230, "confirmed", "upi", "", b.BookedAt, b.CreatedAt, b.ModifiedAt, "user-1", "user-1",
			))

		found, err := ledger.FindByPNR(context.Background(), "AB12CD34EF")

		require.NoError(t, err)
		assert.Equal(t, b.Passengers, found.Passengers)
		assert.Equal(t, b.SeatNumbers, found.SeatNumbers)
		assert.Equal(t, model.StatusConfirmed, found.Status)
		assert.Equal(t, catalog.ClassThirdAC, found.ClassType)
		assert.True(t, found.OwnedBy("user-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		ledger, mock := newLedger(t)

		mock.ExpectPrepare(regexp.QuoteMeta("FROM bookings")).
			ExpectQuery().
			WithArgs("ZZZZZZZZZZ").
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		_, err := ledger.FindByPNR(context.Background(), "ZZZZZZZZZZ")

		assert.True(t, failure.Is(err, failure.ReasonNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedger_FindByID(t *testing.T) {
	t.Run("booking committed by the attempt", func(t *testing.T) {
		ledger, mock := newLedger(t)
		b := sampleBooking()

		mock.ExpectPrepare(regexp.QuoteMeta("WHERE (id = $1)")).
			ExpectQuery().
			WithArgs("attempt-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "pnr", "status", "payment_reference"}).
				AddRow("attempt-1", b.PNR, "confirmed", "PAY-1"))

		found, err := ledger.FindByID(context.Background(), "attempt-1")

		require.NoError(t, err)
		assert.Equal(t, "AB12CD34EF", found.PNR)
		assert.Equal(t, "PAY-1", found.PaymentReference)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing committed yet", func(t *testing.T) {
		ledger, mock := newLedger(t)

		mock.ExpectPrepare(regexp.QuoteMeta("WHERE (id = $1)")).
			ExpectQuery().
			WithArgs("attempt-1").
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		_, err := ledger.FindByID(context.Background(), "attempt-1")

		assert.True(t, failure.Is(err, failure.ReasonNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedger_ExistsPNR(t *testing.T) {
	ledger, mock := newLedger(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM bookings")).
		ExpectQuery().
		WithArgs("AB12CD34EF").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := ledger.ExistsPNR(context.Background(), "AB12CD34EF")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedger_Cancel(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(mock sqlmock.Sqlmock)
		wantReason string
		wantErr    bool
	}{
		{
			name: "confirmed booking is cancelled",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1")).
					WithArgs("cancelled", sqlmock.AnyArg(), "user-1", "AB12CD34EF", "confirmed").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "second cancel is rejected",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1")).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM bookings")).
					WithArgs("AB12CD34EF").
					WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cancelled"))
				mock.ExpectRollback()
			},
			wantReason: failure.ReasonInvalidTransition,
			wantErr:    true,
		},
		{
			name: "unknown pnr",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1")).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM bookings")).
					WillReturnRows(sqlmock.NewRows([]string{"status"}))
				mock.ExpectRollback()
			},
			wantReason: failure.ReasonNotFound,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, mock := newLedger(t)
			tt.setupMock(mock)

			err := ledger.Cancel(context.Background(), "AB12CD34EF", "user-1")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantReason, failure.GetReason(err))
			} else {
				require.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLedger_ListAll(t *testing.T) {
	ledger, mock := newLedger(t)

	mock.ExpectPrepare(regexp.QuoteMeta("ORDER BY seq ASC LIMIT")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	bookings, err := ledger.ListAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: "pnr", SortDir: "DESC"})

	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}
