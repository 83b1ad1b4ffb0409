package model_test

import (
	"railbook/internal/domains/catalog/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClassType(t *testing.T) {
	tests := []struct {
		input  string
		want   model.ClassType
		wantOK bool
	}{
		{"3A", model.ClassThirdAC, true},
		{" sl ", model.ClassSleeper, true},
		{"2s", model.ClassSecondSitting, true},
		{"4A", "4A", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			class, ok := model.ParseClassType(tt.input)

			assert.Equal(t, tt.want, class)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestClassType_Attributes(t *testing.T) {
	assert.Equal(t, "AC 3 Tier", model.ClassThirdAC.Name())
	assert.Equal(t, "Executive Chair", model.ClassExecutiveChair.Name())

	for _, class := range []model.ClassType{model.ClassFirstAC, model.ClassSecondAC, model.ClassThirdAC, model.ClassSleeper} {
		assert.True(t, class.HasBerths(), class)
	}

	for _, class := range []model.ClassType{model.ClassChairCar, model.ClassSecondSitting, model.ClassExecutiveChair} {
		assert.False(t, class.HasBerths(), class)
	}
}

func TestTrain_RunsOn(t *testing.T) {
	tests := []struct {
		name string
		days string
		day  time.Weekday
		want bool
	}{
		{"empty schedule", "", time.Sunday, true},
		{"daily", "Daily", time.Wednesday, true},
		{"listed day", "Mon,Wed,Fri", time.Wednesday, true},
		{"unlisted day", "Mon,Wed,Fri", time.Saturday, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			train := model.Train{DaysOfOperation: tt.days}

			assert.Equal(t, tt.want, train.RunsOn(tt.day))
		})
	}
}
