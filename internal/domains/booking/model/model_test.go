package model_test

import (
	"railbook/internal/domains/booking/model"
	"railbook/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassenger_Validate(t *testing.T) {
	valid := model.Passenger{Name: "Asha Rao", Age: 34, Gender: model.GenderFemale, BerthPreference: model.BerthLower}

	tests := []struct {
		name    string
		mutate  func(p *model.Passenger)
		wantMsg string
	}{
		{name: "valid", mutate: func(*model.Passenger) {}},
		{name: "no preference is fine", mutate: func(p *model.Passenger) { p.BerthPreference = model.BerthNoPreference }},
		{name: "literal none", mutate: func(p *model.Passenger) { p.BerthPreference = "none" }},
		{name: "omitted preference", mutate: func(p *model.Passenger) { p.BerthPreference = "" }},
		{name: "blank name", mutate: func(p *model.Passenger) { p.Name = "   " }, wantMsg: "passengers[2].name is required"},
		{name: "age zero", mutate: func(p *model.Passenger) { p.Age = 0 }, wantMsg: "passengers[2].age must be between 1 and 120"},
		{name: "age too high", mutate: func(p *model.Passenger) { p.Age = 121 }, wantMsg: "passengers[2].age must be between 1 and 120"},
		{name: "age upper bound", mutate: func(p *model.Passenger) { p.Age = 120 }},
		{name: "bad gender", mutate: func(p *model.Passenger) { p.Gender = "X" }, wantMsg: "passengers[2].gender must be one of M, F, O"},
		{name: "bad berth", mutate: func(p *model.Passenger) { p.BerthPreference = "TOP" }, wantMsg: "passengers[2].berth_preference must be one of LB, MB, UB, SL, SU, none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passenger := valid
			tt.mutate(&passenger)

			err := passenger.Validate(2)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, failure.Is(err, failure.ReasonInvalidPassengerData))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestPassengers_ColumnRoundTrip(t *testing.T) {
	passengers := model.Passengers{
		{ID: "p1", Name: "Asha Rao", Age: 34, Gender: model.GenderFemale, AssignedSeat: "LB1"},
	}

	value, err := passengers.Value()
	require.NoError(t, err)

	var scanned model.Passengers
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, passengers, scanned)

	require.NoError(t, scanned.Scan(`[]`))
	assert.Empty(t, scanned)

	assert.Error(t, scanned.Scan(42))
}

func TestGeneratePNR(t *testing.T) {
	seen := map[string]bool{}

	for range 500 {
		pnr, err := model.GeneratePNR()
		require.NoError(t, err)

		assert.Len(t, pnr, model.PNRLength)
		assert.True(t, model.ValidPNR(pnr), pnr)

		seen[pnr] = true
	}

	assert.Len(t, seen, 500)
}

func TestValidPNR(t *testing.T) {
	assert.True(t, model.ValidPNR("AB12CD34EF"))
	assert.False(t, model.ValidPNR("ab12cd34ef"))
	assert.False(t, model.ValidPNR("AB12CD34E"))
	assert.False(t, model.ValidPNR("AB12-D34EF"))
}

func TestBooking_OwnedBy(t *testing.T) {
	booking := model.Booking{}
	booking.CreatedBy = "user-1"

	assert.True(t, booking.OwnedBy("user-1"))
	assert.False(t, booking.OwnedBy("user-2"))
	assert.False(t, model.Booking{}.OwnedBy(""))
}
