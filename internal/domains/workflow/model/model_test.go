package model_test

import (
	"testing"
	"time"

	booking "railbook/internal/domains/booking/model"
	catalog "railbook/internal/domains/catalog/model"
	payment "railbook/internal/domains/payment/model"
	seat "railbook/internal/domains/seat/model"
	"railbook/internal/domains/workflow/model"
	"railbook/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now     = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	pricing = payment.Pricing{GSTRate: 0.05, ReservationCharge: 40}
)

func offer() catalog.Offer {
	return catalog.Offer{
		Train: catalog.Train{
			ID:            "train-1",
			Number:        "12951",
			Name:          "Mumbai Rajdhani",
			From:          "NDLS",
			To:            "BCT",
			DepartureTime: "08:00",
		},
		FareClass:   catalog.FareClass{ClassType: catalog.ClassThirdAC, Fare: 1500, AvailableSeats: 10, TotalSeats: 72},
		CoachID:     "coach-1",
		JourneyDate: "2026-03-07",
	}
}

func passengers(n int) []booking.Passenger {
	ps := make([]booking.Passenger, 0, n)
	for range n {
		ps = append(ps, booking.Passenger{Name: "  Asha  ", Age: 34, Gender: booking.GenderFemale})
	}

	return ps
}

func layout() []seat.Seat {
	seats := seat.GenerateLayout(catalog.ClassThirdAC, 16)
	seats[2].IsBooked = true

	return seats
}

func seatsPending(t *testing.T, n int) model.Attempt {
	t.Helper()

	attempt := model.NewAttempt("attempt-1", "user-1", offer(), now)
	require.NoError(t, attempt.SubmitPassengers(passengers(n), now))

	return attempt
}

func paymentPending(t *testing.T) model.Attempt {
	t.Helper()

	attempt := seatsPending(t, 2)

	_, err := attempt.ToggleSeat(layout(), "LB1", now)
	require.NoError(t, err)
	_, err = attempt.ToggleSeat(layout(), "MB4", now)
	require.NoError(t, err)
	require.NoError(t, attempt.ConfirmSeats(1500, pricing, now))

	return attempt
}

func TestNewAttempt(t *testing.T) {
	attempt := model.NewAttempt("attempt-1", "user-1", offer(), now)

	assert.Equal(t, model.StateDrafting, attempt.State)
	assert.Equal(t, "coach-1", attempt.CoachID)
	assert.Equal(t, int64(1500), attempt.ClassFare)
	assert.Equal(t, catalog.ClassThirdAC, attempt.ClassType)
	assert.Empty(t, attempt.SelectedSeats)
}

func TestAttempt_SubmitPassengers(t *testing.T) {
	tests := []struct {
		name       string
		passengers []booking.Passenger
		wantReason string
		wantMsg    string
	}{
		{name: "valid", passengers: passengers(2)},
		{name: "empty list", passengers: nil, wantReason: failure.ReasonInvalidPassengerData},
		{name: "too many", passengers: passengers(model.MaxPassengers + 1), wantReason: failure.ReasonInvalidPassengerData},
		{
			name: "blank name",
			passengers: []booking.Passenger{
				{Name: "Asha", Age: 34, Gender: booking.GenderFemale},
				{Name: "   ", Age: 40, Gender: booking.GenderMale},
			},
			wantReason: failure.ReasonInvalidPassengerData,
			wantMsg:    "passengers[1].name is required",
		},
		{
			name:       "age out of range",
			passengers: []booking.Passenger{{Name: "Asha", Age: 121, Gender: booking.GenderFemale}},
			wantReason: failure.ReasonInvalidPassengerData,
			wantMsg:    "passengers[0].age must be between 1 and 120",
		},
		{
			name:       "bad gender",
			passengers: []booking.Passenger{{Name: "Asha", Age: 20, Gender: "X"}},
			wantReason: failure.ReasonInvalidPassengerData,
		},
		{
			name:       "explicit no berth preference",
			passengers: []booking.Passenger{{Name: "Asha", Age: 34, Gender: booking.GenderFemale, BerthPreference: "none"}},
		},
		{
			name:       "unknown berth preference",
			passengers: []booking.Passenger{{Name: "Asha", Age: 34, Gender: booking.GenderFemale, BerthPreference: "TOP"}},
			wantReason: failure.ReasonInvalidPassengerData,
			wantMsg:    "passengers[0].berth_preference must be one of LB, MB, UB, SL, SU, none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempt := model.NewAttempt("attempt-1", "user-1", offer(), now)

			err := attempt.SubmitPassengers(tt.passengers, now)

			if tt.wantReason != "" {
				require.Error(t, err)
				assert.True(t, failure.Is(err, tt.wantReason))
				assert.Equal(t, model.StateDrafting, attempt.State)
				assert.Empty(t, attempt.Passengers)

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StateSeatsPending, attempt.State)
			assert.Len(t, attempt.Passengers, len(tt.passengers))
			assert.Equal(t, "Asha", attempt.Passengers[0].Name)
			assert.NotEmpty(t, attempt.Passengers[0].ID)
		})
	}
}

func TestAttempt_SubmitPassengers_NormalizesBerthPreference(t *testing.T) {
	attempt := model.NewAttempt("attempt-1", "user-1", offer(), now)

	err := attempt.SubmitPassengers([]booking.Passenger{
		{Name: "Asha", Age: 34, Gender: booking.GenderFemale},
		{Name: "Ravi", Age: 61, Gender: booking.GenderMale, BerthPreference: booking.BerthNoPreference},
		{Name: "Meera", Age: 9, Gender: booking.GenderFemale, BerthPreference: booking.BerthUpper},
	}, now)

	require.NoError(t, err)
	assert.Equal(t, booking.BerthNoPreference, attempt.Passengers[0].BerthPreference)
	assert.Equal(t, booking.BerthNoPreference, attempt.Passengers[1].BerthPreference)
	assert.Equal(t, booking.BerthUpper, attempt.Passengers[2].BerthPreference)
}

func TestAttempt_SubmitPassengers_OnlyWhileDrafting(t *testing.T) {
	attempt := seatsPending(t, 1)

	err := attempt.SubmitPassengers(passengers(2), now)

	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.ReasonInvalidTransition))
	assert.Len(t, attempt.Passengers, 1)
}

func TestAttempt_ToggleSeat(t *testing.T) {
	tests := []struct {
		name        string
		picks       []string
		toggle      string
		wantChanged bool
		wantSeats   []string
	}{
		{name: "adds a free seat", toggle: "LB1", wantChanged: true, wantSeats: []string{"LB1"}},
		{name: "removes a picked seat", picks: []string{"LB1"}, toggle: "LB1", wantChanged: true, wantSeats: []string{}},
		{name: "ignores a booked seat", toggle: "MB3", wantSeats: []string{}},
		{name: "ignores an unknown seat", toggle: "LB99", wantSeats: []string{}},
		{name: "refuses beyond passenger count", picks: []string{"LB1", "LB2"}, toggle: "MB4", wantSeats: []string{"LB1", "LB2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempt := seatsPending(t, 2)

			for _, pick := range tt.picks {
				_, err := attempt.ToggleSeat(layout(), pick, now)
				require.NoError(t, err)
			}

			changed, err := attempt.ToggleSeat(layout(), tt.toggle, now)

			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantSeats, attempt.SelectedSeats)
		})
	}
}

func TestAttempt_ToggleSeat_DropsSeatsBookedMeanwhile(t *testing.T) {
	attempt := seatsPending(t, 2)

	_, err := attempt.ToggleSeat(layout(), "LB1", now)
	require.NoError(t, err)

	fresh := layout()
	fresh[0].IsBooked = true

	_, err = attempt.ToggleSeat(fresh, "LB2", now)
	require.NoError(t, err)

	assert.Equal(t, []string{"LB2"}, attempt.SelectedSeats)
}

func TestAttempt_ConfirmSeats(t *testing.T) {
	t.Run("count mismatch keeps state", func(t *testing.T) {
		attempt := seatsPending(t, 2)

		_, err := attempt.ToggleSeat(layout(), "LB1", now)
		require.NoError(t, err)

		err = attempt.ConfirmSeats(1500, pricing, now)

		require.Error(t, err)
		assert.True(t, failure.Is(err, failure.ReasonSeatCountMismatch))
		assert.Equal(t, model.StateSeatsPending, attempt.State)
		assert.Nil(t, attempt.Snapshot)
	})

	t.Run("freezes the fare", func(t *testing.T) {
		attempt := paymentPending(t)

		assert.Equal(t, model.StatePaymentPending, attempt.State)
		require.NotNil(t, attempt.Snapshot)
		assert.Equal(t, model.Snapshot{ClassFare: 1500, PassengerCount: 2, TotalFare: 3230}, *attempt.Snapshot)
	})

	t.Run("not from drafting", func(t *testing.T) {
		attempt := model.NewAttempt("attempt-1", "user-1", offer(), now)

		err := attempt.ConfirmSeats(1500, pricing, now)

		assert.True(t, failure.Is(err, failure.ReasonInvalidTransition))
	})
}

func TestAttempt_Confirm(t *testing.T) {
	attempt := paymentPending(t)

	require.NoError(t, attempt.DeclinePayment("card declined", now))
	assert.Equal(t, model.StatePaymentPending, attempt.State)
	assert.Equal(t, "card declined", attempt.Failure)

	require.NoError(t, attempt.Confirm("AB12CD34EF", "PAY-1", now))
	assert.Equal(t, model.StateConfirmed, attempt.State)
	assert.Equal(t, "AB12CD34EF", attempt.PNR)
	assert.Empty(t, attempt.Failure)

	err := attempt.Confirm("ZZ12CD34EF", "PAY-2", now)
	assert.True(t, failure.Is(err, failure.ReasonInvalidTransition))
	assert.Equal(t, "AB12CD34EF", attempt.PNR)
}

func TestAttempt_Abandon(t *testing.T) {
	tests := []struct {
		name    string
		attempt func(t *testing.T) model.Attempt
		wantErr bool
	}{
		{name: "from drafting", attempt: func(*testing.T) model.Attempt { return model.NewAttempt("a", "u", offer(), now) }},
		{name: "from seats pending", attempt: func(t *testing.T) model.Attempt { return seatsPending(t, 1) }},
		{name: "from payment pending", attempt: paymentPending},
		{
			name: "not when confirmed",
			attempt: func(t *testing.T) model.Attempt {
				a := paymentPending(t)
				require.NoError(t, a.Confirm("AB12CD34EF", "PAY-1", now))

				return a
			},
			wantErr: true,
		},
		{
			name: "not twice",
			attempt: func(t *testing.T) model.Attempt {
				a := seatsPending(t, 1)
				require.NoError(t, a.Abandon("first", now))

				return a
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempt := tt.attempt(t)
			before := attempt.State

			err := attempt.Abandon("user left", now)

			if tt.wantErr {
				assert.True(t, failure.Is(err, failure.ReasonInvalidTransition))
				assert.Equal(t, before, attempt.State)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StateAbandoned, attempt.State)
			assert.Equal(t, "user left", attempt.Failure)
		})
	}
}

func TestAttempt_Booking(t *testing.T) {
	attempt := paymentPending(t)

	b, err := attempt.Booking("AB12CD34EF", now, model.Payment{Method: payment.MethodUPI, Reference: "PAY-1"})

	require.NoError(t, err)
	assert.Equal(t, "AB12CD34EF", b.PNR)
	assert.Equal(t, "attempt-1", b.ID)
	assert.Equal(t, booking.StatusConfirmed, b.Status)
	assert.Equal(t, int64(3230), b.TotalFare)
	assert.Equal(t, []string{"LB1", "MB4"}, []string(b.SeatNumbers))
	assert.Equal(t, "LB1", b.Passengers[0].AssignedSeat)
	assert.Equal(t, "MB4", b.Passengers[1].AssignedSeat)
	assert.Equal(t, "user-1", b.CreatedBy)
	assert.Equal(t, "upi", b.PaymentMethod)
	assert.Equal(t, "2026-03-07", b.JourneyDate.Format("2006-01-02"))
	assert.Empty(t, attempt.Passengers[0].AssignedSeat, "attempt passengers must not be mutated")

	pending := seatsPending(t, 1)
	_, err = pending.Booking("AB12CD34EF", now, model.Payment{})
	assert.True(t, failure.Is(err, failure.ReasonInvalidTransition))
}
