package model

import (
	"slices"
	"strings"
	"time"
)

const (
	StationTable    = "stations"
	TrainTable      = "trains"
	FareClassTable  = "fare_classes"
	StationEntity   = "station"
	TrainEntity     = "train"
	FareClassEntity = "fare_class"

	FieldID        = "id"
	FieldCode      = "code"
	FieldTrainID   = "train_id"
	FieldClassType = "class_type"
	FieldFrom      = "from_station"
	FieldTo        = "to_station"
	FieldNumber    = "number"
	FieldFare      = "fare"
)

type ClassType string

const (
	ClassFirstAC        ClassType = "1A"
	ClassSecondAC       ClassType = "2A"
	ClassThirdAC        ClassType = "3A"
	ClassSleeper        ClassType = "SL"
	ClassChairCar       ClassType = "CC"
	ClassSecondSitting  ClassType = "2S"
	ClassExecutiveChair ClassType = "EC"
)

var classNames = map[ClassType]string{
	ClassFirstAC:        "First AC",
	ClassSecondAC:       "AC 2 Tier",
	ClassThirdAC:        "AC 3 Tier",
	ClassSleeper:        "Sleeper",
	ClassChairCar:       "Chair Car",
	ClassSecondSitting:  "Second Sitting",
	ClassExecutiveChair: "Executive Chair",
}

func (c ClassType) Valid() bool {
	_, ok := classNames[c]

	return ok
}

// Name is the rider-facing label, e.g. "AC 3 Tier".
func (c ClassType) Name() string {
	return classNames[c]
}

// HasBerths reports whether the coach is a sleeper layout with lower/middle/upper/side berths.
func (c ClassType) HasBerths() bool {
	switch c {
	case ClassFirstAC, ClassSecondAC, ClassThirdAC, ClassSleeper:
		return true
	default:
		return false
	}
}

func (c ClassType) In(classes ...ClassType) bool {
	for _, class := range classes {
		if c == class {
			return true
		}
	}

	return false
}

func ParseClassType(value string) (ClassType, bool) {
	class := ClassType(strings.ToUpper(strings.TrimSpace(value)))

	return class, class.Valid()
}

type Station struct {
	Code string `db:"code"`
	Name string `db:"name"`
	City string `db:"city"`
}

type Train struct {
	ID              string `db:"id"`
	Number          string `db:"number"`
	Name            string `db:"name"`
	From            string `db:"from_station"`
	To              string `db:"to_station"`
	DepartureTime   string `db:"departure_time"`
	ArrivalTime     string `db:"arrival_time"`
	Duration        string `db:"duration"`
	DaysOfOperation string `db:"days_of_operation"`
}

// Days splits the comma separated operating days ("Mon,Tue").
func (t Train) Days() []string {
	if t.DaysOfOperation == "" {
		return []string{}
	}

	return strings.Split(t.DaysOfOperation, ",")
}

const daily = "Daily"

// RunsOn reports whether the train departs on the given weekday. An empty schedule or
// "Daily" means every day.
func (t Train) RunsOn(day time.Weekday) bool {
	days := t.Days()
	if len(days) == 0 || slices.Contains(days, daily) {
		return true
	}

	return slices.Contains(days, day.String()[:3])
}

// ClassFare is the catalog row for one class of a train.
type ClassFare struct {
	TrainID    string    `db:"train_id"`
	ClassType  ClassType `db:"class_type"`
	Fare       int64     `db:"fare"`
	TotalSeats int       `db:"total_seats"`
}

// FareClass is a purchasable class with availability for a specific journey date.
// 0 <= AvailableSeats <= TotalSeats.
type FareClass struct {
	ClassType      ClassType
	Fare           int64
	AvailableSeats int
	TotalSeats     int
}

// Offer is what a booking attempt starts from: the train, the class as sold on the journey
// date and the coach holding its seats.
type Offer struct {
	Train       Train
	FareClass   FareClass
	CoachID     string
	JourneyDate string
}
