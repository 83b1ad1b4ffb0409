package validator_test

import (
	"errors"
	"railbook/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passengerInput struct {
	Name string `json:"name" validate:"required"`
	Age  int    `json:"age"  validate:"gte=1,lte=120"`
}

type bookingInput struct {
	PNR         string           `json:"pnr"          validate:"required,pnr"`
	Departure   string           `json:"departure"    validate:"required,clock"`
	JourneyDate string           `json:"journey_date" validate:"required,journeydate"`
	ClassType   string           `json:"class_type"   validate:"oneof=1A 2A 3A SL CC 2S EC"`
	Passengers  []passengerInput `json:"passengers"   validate:"required,min=1,dive"`
	Extra       checked          `json:"extra"        validate:"self"`
}

type checked string

func (c checked) Validate() error {
	if c == "bad" {
		return errors.New("bad value")
	}

	return nil
}

func validInput() bookingInput {
	return bookingInput{
		PNR:         "AB12CD34EF",
		Departure:   "08:00",
		JourneyDate: "2026-10-24",
		ClassType:   "3A",
		Passengers:  []passengerInput{{Name: "Asha", Age: 30}},
		Extra:       "ok",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *bookingInput)
		wantErr string
	}{
		{
			name:   "valid input",
			mutate: func(*bookingInput) {},
		},
		{
			name:    "lowercase pnr",
			mutate:  func(in *bookingInput) { in.PNR = "ab12cd34ef" },
			wantErr: "pnr must be 10 uppercase letters or digits",
		},
		{
			name:    "short pnr",
			mutate:  func(in *bookingInput) { in.PNR = "AB12" },
			wantErr: "pnr must be 10 uppercase letters or digits",
		},
		{
			name:    "bad clock",
			mutate:  func(in *bookingInput) { in.Departure = "25:00" },
			wantErr: "departure must be a time in HH:MM format",
		},
		{
			name:    "bad journey date",
			mutate:  func(in *bookingInput) { in.JourneyDate = "24/10/2026" },
			wantErr: "journey_date must be a date in YYYY-MM-DD format",
		},
		{
			name:    "unknown class",
			mutate:  func(in *bookingInput) { in.ClassType = "3E" },
			wantErr: "class_type must be one of 1A 2A 3A SL CC 2S EC",
		},
		{
			name:    "nested passenger age",
			mutate:  func(in *bookingInput) { in.Passengers[0].Age = 0 },
			wantErr: "passengers[0].age must be greater than or equal to 1",
		},
		{
			name:    "self validation",
			mutate:  func(in *bookingInput) { in.Extra = "bad" },
			wantErr: "extra is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := validator.ValidateStruct(&in)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid pnr", field: "ZZ00ZZ00ZZ", tag: "pnr"},
		{name: "pnr with symbol", field: "ZZ00ZZ00Z-", tag: "pnr", expectError: true},
		{name: "valid clock", field: "23:59", tag: "clock"},
		{name: "invalid clock", field: "8am", tag: "clock", expectError: true},
		{name: "empty field", field: "", tag: "empty"},
		{name: "non empty field", field: "x", tag: "empty", expectError: true},
		{name: "number out of range", field: 150, tag: "gte=1,lte=120", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"pnr":"AB12CD34EF","departure":"08:00","journey_date":"2026-10-24","class_type":"SL","passengers":[{"name":"Ravi","age":40}],"extra":"ok"}`,
		},
		{
			name:        "missing passengers",
			jsonBody:    `{"pnr":"AB12CD34EF","departure":"08:00","journey_date":"2026-10-24","class_type":"SL"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"pnr":}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingInput

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
