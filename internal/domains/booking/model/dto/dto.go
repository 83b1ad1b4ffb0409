package dto

import (
	"railbook/internal/domains/booking/model"
	"railbook/shared"
	"railbook/shared/constant"
	gDto "railbook/shared/dto"
	"railbook/shared/timezone"
)

type PassengerResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	BerthPreference string `json:"berth_preference,omitempty"`
	AssignedSeat    string `json:"assigned_seat"`
}

type BookingResponse struct {
	ID               string              `json:"id"`
	PNR              string              `json:"pnr"`
	TrainID          string              `json:"train_id"`
	TrainNumber      string              `json:"train_number"`
	TrainName        string              `json:"train_name"`
	From             string              `json:"from"`
	To               string              `json:"to"`
	DepartureTime    string              `json:"departure_time"`
	ClassType        string              `json:"class_type"`
	ClassName        string              `json:"class_name"`
	JourneyDate      string              `json:"journey_date"`
	Passengers       []PassengerResponse `json:"passengers"`
	SeatNumbers      []string            `json:"seat_numbers"`
	TotalFare        int64               `json:"total_fare"`
	Status           string              `json:"status"`
	PaymentMethod    string              `json:"payment_method"`
	PaymentReference string              `json:"payment_reference"`
	BookedAt         string              `json:"booked_at"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.PNR = booking.PNR
	r.TrainID = booking.TrainID
	r.TrainNumber = booking.TrainNumber
	r.TrainName = booking.TrainName
	r.From = booking.FromStation
	r.To = booking.ToStation
	r.DepartureTime = booking.DepartureTime
	r.ClassType = string(booking.ClassType)
	r.ClassName = booking.ClassType.Name()
	r.JourneyDate = booking.JourneyDate.Format(constant.JourneyDateFormat)
	r.SeatNumbers = append([]string{}, booking.SeatNumbers...)
	r.TotalFare = booking.TotalFare
	r.Status = string(booking.Status)
	r.PaymentMethod = booking.PaymentMethod
	r.PaymentReference = booking.PaymentReference
	r.BookedAt = timezone.Format(booking.BookedAt, constant.DateFormat)
	r.Metadata.FromModel(booking.Metadata)

	r.Passengers = make([]PassengerResponse, 0, len(booking.Passengers))
	for _, passenger := range booking.Passengers {
		r.Passengers = append(r.Passengers, PassengerResponse{
			ID:              passenger.ID,
			Name:            passenger.Name,
			Age:             passenger.Age,
			Gender:          string(passenger.Gender),
			BerthPreference: string(passenger.BerthPreference),
			AssignedSeat:    passenger.AssignedSeat,
		})
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(bookings []model.Booking, total, limit int) {
	r.Bookings = make([]BookingResponse, 0, len(bookings))

	for _, booking := range bookings {
		res := BookingResponse{}
		res.FromModel(booking)
		r.Bookings = append(r.Bookings, res)
	}

	r.TotalData = total
	r.TotalPage = shared.CalculateTotalPage(total, limit)
}
