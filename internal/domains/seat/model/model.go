package model

import (
	"database/sql"
	"fmt"
	catalog "railbook/internal/domains/catalog/model"
	"railbook/shared/model"
	"strings"
	"time"
)

const (
	CoachTable  = "coaches"
	SeatTable   = "seats"
	CoachEntity = "coach"
	SeatEntity  = "seat"

	FieldID          = "id"
	FieldCoachID     = "coach_id"
	FieldTrainID     = "train_id"
	FieldClassType   = "class_type"
	FieldJourneyDate = "journey_date"
	FieldPosition    = "position"
	FieldSeatNumber  = "seat_number"
)

type Berth string

const (
	BerthLower  Berth = "LB"
	BerthMiddle Berth = "MB"
	BerthUpper  Berth = "UB"
	BerthSide   Berth = "SL"
	BerthNone   Berth = ""
)

const seatingPrefix = "S"

// Coach is the seat inventory of one class of a train on one journey date.
type Coach struct {
	ID             string            `db:"id"`
	TrainID        string            `db:"train_id"`
	ClassType      catalog.ClassType `db:"class_type"`
	JourneyDate    time.Time         `db:"journey_date"`
	TotalSeats     int               `db:"total_seats"`
	AvailableSeats int               `db:"available_seats"`
	model.Metadata
}

func (c Coach) FareClass(fare int64) catalog.FareClass {
	return catalog.FareClass{
		ClassType:      c.ClassType,
		Fare:           fare,
		AvailableSeats: c.AvailableSeats,
		TotalSeats:     c.TotalSeats,
	}
}

type Seat struct {
	ID         string         `db:"id"`
	CoachID    string         `db:"coach_id"`
	SeatNumber string         `db:"seat_number"`
	Berth      Berth          `db:"berth"`
	Position   int            `db:"position"`
	PNR        sql.NullString `db:"pnr"`
	IsBooked   bool           `db:"is_booked"`
	model.Metadata
}

// BerthAt labels the 1-based position inside a sleeper coach. Every block of eight is
// LB LB MB MB UB UB SL SL, with the eighth seat wrapping to LB.
func BerthAt(position int) Berth {
	switch offset := position % 8; {
	case offset <= 2:
		return BerthLower
	case offset <= 4:
		return BerthMiddle
	case offset <= 6:
		return BerthUpper
	default:
		return BerthSide
	}
}

// GenerateLayout returns the seats of a fresh coach in position order. Seat ids and the
// coach id are left to the caller.
func GenerateLayout(class catalog.ClassType, total int) []Seat {
	seats := make([]Seat, 0, max(total, 0))

	for position := 1; position <= total; position++ {
		seat := Seat{Position: position}

		if class.HasBerths() {
			seat.Berth = BerthAt(position)
			seat.SeatNumber = fmt.Sprintf("%s%d", seat.Berth, position)
		} else {
			seat.Berth = BerthNone
			seat.SeatNumber = fmt.Sprintf("%s%d", seatingPrefix, position)
		}

		seats = append(seats, seat)
	}

	return seats
}

const seatsPerRow = 8

// Row is one physical bay of eight seats. Groups are 3/3/2 (lower, middle, upper and side);
// the split only affects presentation.
type Row struct {
	Number int
	Groups [][]Seat
}

var rowSplit = []int{3, 3, 2}

func Rows(layout []Seat) []Row {
	rows := []Row{}

	for start := 0; start < len(layout); start += seatsPerRow {
		end := min(start+seatsPerRow, len(layout))
		bay := layout[start:end]

		row := Row{Number: len(rows) + 1}

		offset := 0
		for _, size := range rowSplit {
			if offset >= len(bay) {
				break
			}

			next := min(offset+size, len(bay))
			row.Groups = append(row.Groups, bay[offset:next])
			offset = next
		}

		rows = append(rows, row)
	}

	return rows
}

const holdKeyPrefix = "seat_hold"

// HoldKeys names the per-seat hold locks of a coach. The coach id is a hash tag so every key
// of one hold lands on the same Redis cluster slot.
func HoldKeys(coachID string, seatNumbers []string) []string {
	keys := make([]string, 0, len(seatNumbers))
	for _, number := range seatNumbers {
		keys = append(keys, fmt.Sprintf("%s:{%s}:%s", holdKeyPrefix, coachID, number))
	}

	return keys
}

// SeatNumberFromHoldKey is the inverse of HoldKeys for a single key.
func SeatNumberFromHoldKey(key string) string {
	if idx := strings.LastIndex(key, ":"); idx >= 0 {
		return key[idx+1:]
	}

	return key
}
