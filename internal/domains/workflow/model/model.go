package model

import (
	"fmt"
	"strings"
	"time"

	booking "railbook/internal/domains/booking/model"
	catalog "railbook/internal/domains/catalog/model"
	payment "railbook/internal/domains/payment/model"
	seat "railbook/internal/domains/seat/model"
	"railbook/shared/failure"
	"railbook/shared/model"
	"railbook/shared/timezone"

	"github.com/google/uuid"
)

const (
	EntityName    = "booking attempt"
	MaxPassengers = 6
)

type State string

const (
	StateDrafting       State = "drafting"
	StateSeatsPending   State = "seats_pending"
	StatePaymentPending State = "payment_pending"
	StateConfirmed      State = "confirmed"
	StateAbandoned      State = "abandoned"
)

func (s State) Terminal() bool {
	return s == StateConfirmed || s == StateAbandoned
}

// Snapshot freezes the price the moment seats are confirmed.
type Snapshot struct {
	ClassFare      int64 `json:"class_fare"`
	PassengerCount int   `json:"passenger_count"`
	TotalFare      int64 `json:"total_fare"`
}

type Payment struct {
	Method    payment.Method
	Reference string
}

// Attempt is one user's walk from picking a class to a confirmed booking. It is a plain value;
// every transition either succeeds completely or leaves the attempt untouched.
type Attempt struct {
	ID               string             `json:"id"`
	UserID           string             `json:"user_id"`
	State            State              `json:"state"`
	TrainID          string             `json:"train_id"`
	TrainNumber      string             `json:"train_number"`
	TrainName        string             `json:"train_name"`
	FromStation      string             `json:"from_station"`
	ToStation        string             `json:"to_station"`
	DepartureTime    string             `json:"departure_time"`
	ClassType        catalog.ClassType  `json:"class_type"`
	JourneyDate      string             `json:"journey_date"`
	CoachID          string             `json:"coach_id"`
	ClassFare        int64              `json:"class_fare"`
	Passengers       booking.Passengers `json:"passengers"`
	SelectedSeats    []string           `json:"selected_seats"`
	Snapshot         *Snapshot          `json:"snapshot,omitempty"`
	PNR              string             `json:"pnr,omitempty"`
	PaymentReference string             `json:"payment_reference,omitempty"`
	Failure          string             `json:"failure,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func NewAttempt(id, userID string, offer catalog.Offer, now time.Time) Attempt {
	return Attempt{
		ID:            id,
		UserID:        userID,
		State:         StateDrafting,
		TrainID:       offer.Train.ID,
		TrainNumber:   offer.Train.Number,
		TrainName:     offer.Train.Name,
		FromStation:   offer.Train.From,
		ToStation:     offer.Train.To,
		DepartureTime: offer.Train.DepartureTime,
		ClassType:     offer.FareClass.ClassType,
		JourneyDate:   offer.JourneyDate,
		CoachID:       offer.CoachID,
		ClassFare:     offer.FareClass.Fare,
		Passengers:    booking.Passengers{},
		SelectedSeats: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (a *Attempt) expect(state State, action string) error {
	if a.State != state {
		return failure.InvalidTransition(fmt.Sprintf("cannot %s while the attempt is %s", action, a.State))
	}

	return nil
}

// SubmitPassengers replaces the passenger list and moves on to seat selection.
func (a *Attempt) SubmitPassengers(passengers []booking.Passenger, now time.Time) error {
	if err := a.expect(StateDrafting, "submit passengers"); err != nil {
		return err
	}

	if len(passengers) == 0 || len(passengers) > MaxPassengers {
		return failure.InvalidPassengerData(fmt.Sprintf("passengers must hold between 1 and %d entries", MaxPassengers))
	}

	cleaned := make(booking.Passengers, 0, len(passengers))
	for _, passenger := range passengers {
		passenger.Name = strings.TrimSpace(passenger.Name)
		passenger.AssignedSeat = ""
		passenger.BerthPreference = passenger.BerthPreference.Normalize()

		if passenger.ID == "" {
			passenger.ID = uuid.NewString()
		}

		cleaned = append(cleaned, passenger)
	}

	if err := cleaned.Validate(); err != nil {
		return err //nolint:wrapcheck
	}

	a.Passengers = cleaned
	a.SelectedSeats = []string{}
	a.State = StateSeatsPending
	a.UpdatedAt = now

	return nil
}

// Selection rebuilds the seat picks against the current layout.
func (a *Attempt) Selection(layout []seat.Seat) *seat.Selection {
	return seat.NewSelection(layout, len(a.Passengers), a.SelectedSeats)
}

// ToggleSeat adds or removes one seat. Booked, unknown and over-limit seats leave the
// selection as it was and report false.
func (a *Attempt) ToggleSeat(layout []seat.Seat, seatNumber string, now time.Time) (bool, error) {
	if err := a.expect(StateSeatsPending, "change seats"); err != nil {
		return false, err
	}

	selection := a.Selection(layout)
	changed := selection.Toggle(seatNumber)

	a.SelectedSeats = selection.Selected()
	a.UpdatedAt = now

	return changed, nil
}

// ConfirmSeats freezes the fare and waits for payment.
func (a *Attempt) ConfirmSeats(classFare int64, pricing payment.Pricing, now time.Time) error {
	if err := a.expect(StateSeatsPending, "confirm seats"); err != nil {
		return err
	}

	if len(a.SelectedSeats) != len(a.Passengers) {
		return failure.SeatCountMismatch(fmt.Sprintf("selected %d seats for %d passengers", len(a.SelectedSeats), len(a.Passengers)))
	}

	a.ClassFare = classFare
	a.Snapshot = &Snapshot{
		ClassFare:      classFare,
		PassengerCount: len(a.Passengers),
		TotalFare:      payment.Quote(classFare, len(a.Passengers), pricing),
	}
	a.State = StatePaymentPending
	a.UpdatedAt = now

	return nil
}

// DeclinePayment records why a charge failed. The attempt stays payment pending.
func (a *Attempt) DeclinePayment(reason string, now time.Time) error {
	if err := a.expect(StatePaymentPending, "decline payment"); err != nil {
		return err
	}

	a.Failure = reason
	a.UpdatedAt = now

	return nil
}

func (a *Attempt) Confirm(pnr, paymentReference string, now time.Time) error {
	if err := a.expect(StatePaymentPending, "confirm"); err != nil {
		return err
	}

	a.PNR = pnr
	a.PaymentReference = paymentReference
	a.Failure = ""
	a.State = StateConfirmed
	a.UpdatedAt = now

	return nil
}

func (a *Attempt) Abandon(reason string, now time.Time) error {
	if a.State.Terminal() {
		return failure.InvalidTransition(fmt.Sprintf("cannot abandon an attempt that is %s", a.State))
	}

	a.Failure = reason
	a.State = StateAbandoned
	a.UpdatedAt = now

	return nil
}

// Booking is the ledger record this attempt commits. Passenger i takes the i-th picked seat.
func (a *Attempt) Booking(pnr string, now time.Time, paid Payment) (booking.Booking, error) {
	if err := a.expect(StatePaymentPending, "book"); err != nil {
		return booking.Booking{}, err
	}

	if a.Snapshot == nil || len(a.SelectedSeats) != len(a.Passengers) {
		return booking.Booking{}, failure.SeatCountMismatch(fmt.Sprintf("selected %d seats for %d passengers", len(a.SelectedSeats), len(a.Passengers)))
	}

	journeyDate, err := timezone.ParseJourneyDate(a.JourneyDate)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("failed to parse journey date: %w", err)
	}

	passengers := make(booking.Passengers, len(a.Passengers))
	for idx, passenger := range a.Passengers {
		passenger.AssignedSeat = a.SelectedSeats[idx]
		passengers[idx] = passenger
	}

	return booking.Booking{
		ID:               a.ID,
		PNR:              pnr,
		TrainID:          a.TrainID,
		TrainNumber:      a.TrainNumber,
		TrainName:        a.TrainName,
		FromStation:      a.FromStation,
		ToStation:        a.ToStation,
		DepartureTime:    a.DepartureTime,
		CoachID:          a.CoachID,
		ClassType:        a.ClassType,
		JourneyDate:      journeyDate,
		Passengers:       passengers,
		SeatNumbers:      append([]string{}, a.SelectedSeats...),
		TotalFare:        a.Snapshot.TotalFare,
		Status:           booking.StatusConfirmed,
		PaymentMethod:    string(paid.Method),
		PaymentReference: paid.Reference,
		BookedAt:         now,
		Metadata:         model.NewMetadata(a.UserID, now),
	}, nil
}

// HoldsSeats reports whether the attempt is expected to own seat holds.
func (a *Attempt) HoldsSeats() bool {
	return a.State == StatePaymentPending
}
