package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"railbook/shared/failure"
	"strings"
)

const (
	minAge = 1
	maxAge = 120
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}

	return false
}

type BerthPreference string

const (
	BerthNoPreference BerthPreference = "none"
	BerthLower        BerthPreference = "LB"
	BerthMiddle       BerthPreference = "MB"
	BerthUpper        BerthPreference = "UB"
	BerthSideLower    BerthPreference = "SL"
	BerthSideUpper    BerthPreference = "SU"
)

// Normalize maps an omitted preference to BerthNoPreference.
func (b BerthPreference) Normalize() BerthPreference {
	if strings.TrimSpace(string(b)) == "" {
		return BerthNoPreference
	}

	return b
}

func (b BerthPreference) Valid() bool {
	switch b.Normalize() {
	case BerthNoPreference, BerthLower, BerthMiddle, BerthUpper, BerthSideLower, BerthSideUpper:
		return true
	}

	return false
}

type Passenger struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Age             int             `json:"age"`
	Gender          Gender          `json:"gender"`
	BerthPreference BerthPreference `json:"berth_preference,omitempty"`
	AssignedSeat    string          `json:"assigned_seat,omitempty"`
}

// Validate checks the passenger at position index of a booking. The message names the field
// the way the request spells it.
func (p Passenger) Validate(index int) error {
	field := func(name string) string {
		return fmt.Sprintf("passengers[%d].%s", index, name)
	}

	switch {
	case strings.TrimSpace(p.Name) == "":
		return failure.InvalidPassengerData(field("name") + " is required")
	case p.Age < minAge || p.Age > maxAge:
		return failure.InvalidPassengerData(fmt.Sprintf("%s must be between %d and %d", field("age"), minAge, maxAge))
	case !p.Gender.Valid():
		return failure.InvalidPassengerData(field("gender") + " must be one of M, F, O")
	case !p.BerthPreference.Valid():
		return failure.InvalidPassengerData(field("berth_preference") + " must be one of LB, MB, UB, SL, SU, none")
	}

	return nil
}

// Passengers is stored as a JSONB document.
type Passengers []Passenger

func (p Passengers) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(p) //nolint:wrapcheck
}

func (p *Passengers) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		*p = Passengers{}

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("passengers: unsupported column type")
	}

	if err := json.Unmarshal(raw, p); err != nil {
		return fmt.Errorf("failed to decode passengers: %w", err)
	}

	return nil
}

func (p Passengers) Validate() error {
	for idx, passenger := range p {
		if err := passenger.Validate(idx); err != nil {
			return err
		}
	}

	return nil
}
