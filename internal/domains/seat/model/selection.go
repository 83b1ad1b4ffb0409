package model

import "slices"

// Selection is the request-scoped set of seats a booking attempt has picked. It is not
// safe for concurrent use and never touches shared state.
type Selection struct {
	booked   map[string]bool
	max      int
	selected []string
}

// NewSelection rebuilds a selection against the current layout. Previously selected seats
// that are unknown, booked, duplicated or beyond max are dropped.
func NewSelection(layout []Seat, maxSelection int, selected []string) *Selection {
	s := &Selection{
		booked:   make(map[string]bool, len(layout)),
		max:      max(maxSelection, 0),
		selected: []string{},
	}

	for _, seat := range layout {
		s.booked[seat.SeatNumber] = seat.IsBooked
	}

	for _, number := range selected {
		if !s.IsSelected(number) {
			s.Toggle(number)
		}
	}

	return s
}

// Toggle flips one seat and reports whether the selection changed. Booked and unknown seats
// are ignored; adding beyond max is rejected rather than replacing an existing pick.
func (s *Selection) Toggle(seatNumber string) bool {
	booked, known := s.booked[seatNumber]
	if !known || booked {
		return false
	}

	if idx := slices.Index(s.selected, seatNumber); idx >= 0 {
		s.selected = slices.Delete(s.selected, idx, idx+1)

		return true
	}

	if len(s.selected) >= s.max {
		return false
	}

	s.selected = append(s.selected, seatNumber)

	return true
}

// Selected returns seat numbers in the order they were picked.
func (s *Selection) Selected() []string {
	return slices.Clone(s.selected)
}

func (s *Selection) IsSelected(seatNumber string) bool {
	return slices.Contains(s.selected, seatNumber)
}

func (s *Selection) Len() int {
	return len(s.selected)
}

func (s *Selection) Max() int {
	return s.max
}
