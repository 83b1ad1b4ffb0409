package dto

import (
	"railbook/internal/domains/seat/model"
	"time"
)

type SeatResponse struct {
	SeatNumber string `json:"seat_number"`
	Berth      string `json:"berth,omitempty"`
	Position   int    `json:"position"`
	IsBooked   bool   `json:"is_booked"`
	IsSelected bool   `json:"is_selected"`
}

type RowResponse struct {
	Number int              `json:"number"`
	Groups [][]SeatResponse `json:"groups"`
}

type CoachResponse struct {
	ID             string `json:"id"`
	TrainID        string `json:"train_id"`
	ClassType      string `json:"class_type"`
	JourneyDate    string `json:"journey_date"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
}

func (r *CoachResponse) FromModel(coach model.Coach) {
	r.ID = coach.ID
	r.TrainID = coach.TrainID
	r.ClassType = string(coach.ClassType)
	r.JourneyDate = coach.JourneyDate.Format(time.DateOnly)
	r.TotalSeats = coach.TotalSeats
	r.AvailableSeats = coach.AvailableSeats
}

// LayoutResponse is the seat map as a booking attempt sees it.
type LayoutResponse struct {
	Rows          []RowResponse `json:"rows"`
	Selected      []string      `json:"selected"`
	MaxSelection  int           `json:"max_selection"`
	BookedCount   int           `json:"booked_count"`
	SelectedCount int           `json:"selected_count"`
}

func (r *LayoutResponse) FromModel(layout []model.Seat, selection *model.Selection) {
	r.Rows = []RowResponse{}
	r.Selected = selection.Selected()
	r.MaxSelection = selection.Max()
	r.SelectedCount = selection.Len()

	for _, row := range model.Rows(layout) {
		res := RowResponse{Number: row.Number, Groups: make([][]SeatResponse, 0, len(row.Groups))}

		for _, group := range row.Groups {
			seats := make([]SeatResponse, 0, len(group))

			for _, seat := range group {
				if seat.IsBooked {
					r.BookedCount++
				}

				seats = append(seats, SeatResponse{
					SeatNumber: seat.SeatNumber,
					Berth:      string(seat.Berth),
					Position:   seat.Position,
					IsBooked:   seat.IsBooked,
					IsSelected: selection.IsSelected(seat.SeatNumber),
				})
			}

			res.Groups = append(res.Groups, seats)
		}

		r.Rows = append(r.Rows, res)
	}
}
