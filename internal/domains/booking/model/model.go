package model

import (
	catalog "railbook/internal/domains/catalog/model"
	"railbook/shared/model"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldPNR       = "pnr"
	FieldStatus    = "status"
	FieldCreatedBy = "created_by"
	FieldSeq       = "seq"

	// ConstraintPNR is the unique index guarding booking references.
	ConstraintPNR = "bookings_pnr_key"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusWaiting   Status = "waiting"
	StatusCancelled Status = "cancelled"
)

// Booking is an immutable reservation. Only Status (and the modified metadata) ever changes,
// and only from confirmed to cancelled. CreatedBy is the owning user.
type Booking struct {
	ID               string            `db:"id"`
	PNR              string            `db:"pnr"`
	TrainID          string            `db:"train_id"`
	TrainNumber      string            `db:"train_number"`
	TrainName        string            `db:"train_name"`
	FromStation      string            `db:"from_station"`
	ToStation        string            `db:"to_station"`
	DepartureTime    string            `db:"departure_time"`
	CoachID          string            `db:"coach_id"`
	ClassType        catalog.ClassType `db:"class_type"`
	JourneyDate      time.Time         `db:"journey_date"`
	Passengers       Passengers        `db:"passengers"`
	SeatNumbers      pq.StringArray    `db:"seat_numbers"`
	TotalFare        int64             `db:"total_fare"`
	Status           Status            `db:"status"`
	PaymentMethod    string            `db:"payment_method"`
	PaymentReference string            `db:"payment_reference"`
	BookedAt         time.Time         `db:"booked_at"`
	model.Metadata
}

func (b Booking) OwnedBy(user string) bool {
	return user != "" && b.CreatedBy == user
}
