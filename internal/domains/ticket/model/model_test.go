package model_test

import (
	"bytes"
	"testing"
	"time"

	booking "railbook/internal/domains/booking/model"
	catalog "railbook/internal/domains/catalog/model"
	"railbook/internal/domains/ticket/model"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "AB12CD34EF.pdf", model.FileName("AB12CD34EF"))
}

func TestRender(t *testing.T) {
	b := booking.Booking{
		PNR:         "AB12CD34EF",
		TrainNumber: "12951",
		TrainName:   "Mumbai Rajdhani",
		FromStation: "NDLS",
		ToStation:   "BCT",
		ClassType:   catalog.ClassThirdAC,
		JourneyDate: time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
		Passengers: booking.Passengers{
			{Name: "Asha Rao", Age: 34, Gender: booking.GenderFemale, AssignedSeat: "LB1"},
			{Name: "Vikram Rao", Age: 67, Gender: booking.GenderMale, AssignedSeat: "MB4"},
		},
		SeatNumbers: pq.StringArray{"LB1", "MB4"},
		TotalFare:   3230,
		Status:      booking.StatusConfirmed,
		BookedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	pdf, err := model.Render(b)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
	assert.Greater(t, len(pdf), 500)
}
