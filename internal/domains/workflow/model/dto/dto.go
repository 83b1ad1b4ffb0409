package dto

import (
	booking "railbook/internal/domains/booking/model"
	bookingDto "railbook/internal/domains/booking/model/dto"
	crowdDto "railbook/internal/domains/crowd/model/dto"
	payment "railbook/internal/domains/payment/model"
	"railbook/internal/domains/workflow/model"
	"railbook/shared/constant"
	"railbook/shared/timezone"
)

type StartAttemptRequest struct {
	TrainID     string `json:"train_id"     validate:"required"`
	ClassType   string `json:"class_type"   validate:"required,oneof=1A 2A 3A SL CC 2S EC"`
	JourneyDate string `json:"journey_date" validate:"required,journeydate"`
}

type PassengerRequest struct {
	Name            string `json:"name"`
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	BerthPreference string `json:"berth_preference"`
}

// SubmitPassengersRequest leaves field checks to the attempt so the messages carry the
// passenger index.
type SubmitPassengersRequest struct {
	Passengers []PassengerRequest `json:"passengers" validate:"required"`
}

func (r SubmitPassengersRequest) ToModels() []booking.Passenger {
	passengers := make([]booking.Passenger, 0, len(r.Passengers))
	for _, p := range r.Passengers {
		passengers = append(passengers, booking.Passenger{
			Name:            p.Name,
			Age:             p.Age,
			Gender:          booking.Gender(p.Gender),
			BerthPreference: booking.BerthPreference(p.BerthPreference),
		})
	}

	return passengers
}

type PayRequest struct {
	Method     string `json:"method"      validate:"required"`
	UPIID      string `json:"upi_id"`
	CardNumber string `json:"card_number"`
	CardExpiry string `json:"card_expiry"`
	CardCVV    string `json:"card_cvv"`
	CardHolder string `json:"card_holder"`
	Wallet     string `json:"wallet"`
}

func (r PayRequest) ToModel() payment.Details {
	return payment.Details{
		Method:     payment.Method(r.Method),
		UPIID:      r.UPIID,
		CardNumber: r.CardNumber,
		CardExpiry: r.CardExpiry,
		CardCVV:    r.CardCVV,
		CardHolder: r.CardHolder,
		Wallet:     payment.Wallet(r.Wallet),
	}
}

type SnapshotResponse struct {
	ClassFare      int64 `json:"class_fare"`
	PassengerCount int   `json:"passenger_count"`
	TotalFare      int64 `json:"total_fare"`
}

type AttemptResponse struct {
	ID            string                         `json:"id"`
	State         string                         `json:"state"`
	TrainID       string                         `json:"train_id"`
	TrainNumber   string                         `json:"train_number"`
	TrainName     string                         `json:"train_name"`
	From          string                         `json:"from"`
	To            string                         `json:"to"`
	DepartureTime string                         `json:"departure_time"`
	ClassType     string                         `json:"class_type"`
	ClassName     string                         `json:"class_name"`
	JourneyDate   string                         `json:"journey_date"`
	ClassFare     int64                          `json:"class_fare"`
	Passengers    []bookingDto.PassengerResponse `json:"passengers"`
	SelectedSeats []string                       `json:"selected_seats"`
	Snapshot      *SnapshotResponse              `json:"snapshot,omitempty"`
	PNR           string                         `json:"pnr,omitempty"`
	Failure       string                         `json:"failure,omitempty"`
	Assessment    *crowdDto.AssessmentResponse   `json:"assessment,omitempty"`
	CreatedAt     string                         `json:"created_at"`
	UpdatedAt     string                         `json:"updated_at"`
}

func (r *AttemptResponse) FromModel(attempt model.Attempt) {
	r.ID = attempt.ID
	r.State = string(attempt.State)
	r.TrainID = attempt.TrainID
	r.TrainNumber = attempt.TrainNumber
	r.TrainName = attempt.TrainName
	r.From = attempt.FromStation
	r.To = attempt.ToStation
	r.DepartureTime = attempt.DepartureTime
	r.ClassType = string(attempt.ClassType)
	r.ClassName = attempt.ClassType.Name()
	r.JourneyDate = attempt.JourneyDate
	r.ClassFare = attempt.ClassFare
	r.SelectedSeats = append([]string{}, attempt.SelectedSeats...)
	r.PNR = attempt.PNR
	r.Failure = attempt.Failure
	r.CreatedAt = timezone.Format(attempt.CreatedAt, constant.DateFormat)
	r.UpdatedAt = timezone.Format(attempt.UpdatedAt, constant.DateFormat)

	if attempt.Snapshot != nil {
		r.Snapshot = &SnapshotResponse{
			ClassFare:      attempt.Snapshot.ClassFare,
			PassengerCount: attempt.Snapshot.PassengerCount,
			TotalFare:      attempt.Snapshot.TotalFare,
		}
	}

	r.Passengers = make([]bookingDto.PassengerResponse, 0, len(attempt.Passengers))
	for idx, passenger := range attempt.Passengers {
		seat := passenger.AssignedSeat
		if seat == constant.Empty && idx < len(attempt.SelectedSeats) {
			seat = attempt.SelectedSeats[idx]
		}

		r.Passengers = append(r.Passengers, bookingDto.PassengerResponse{
			ID:              passenger.ID,
			Name:            passenger.Name,
			Age:             passenger.Age,
			Gender:          string(passenger.Gender),
			BerthPreference: string(passenger.BerthPreference),
			AssignedSeat:    seat,
		})
	}
}

// ConfirmationResponse is returned by a successful payment, and again by any retry of it.
type ConfirmationResponse struct {
	Attempt AttemptResponse            `json:"attempt"`
	Booking bookingDto.BookingResponse `json:"booking"`
}
