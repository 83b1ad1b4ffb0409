package model

import (
	"railbook/shared/constant"
	"time"
)

type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

type Recommendation string

const (
	RecommendSeniors  Recommendation = "seniors"
	RecommendStudents Recommendation = "students"
	RecommendNight    Recommendation = "night"
	RecommendFamily   Recommendation = "family"
	RecommendBudget   Recommendation = "budget"
	RecommendComfort  Recommendation = "comfort"
)

var recommendationLabels = map[Recommendation]string{
	RecommendSeniors:  "Best for Seniors",
	RecommendStudents: "Best for Students",
	RecommendNight:    "Best for Night Travel",
	RecommendFamily:   "Family Friendly",
	RecommendBudget:   "Budget Friendly",
	RecommendComfort:  "Premium Comfort",
}

func (r Recommendation) Label() string {
	return recommendationLabels[r]
}

// Assessment is derived on demand and never stored.
type Assessment struct {
	Level          Level
	CrowdScore     int
	ComfortScore   float64
	Recommendation Recommendation
}

// ScheduleFacts are the departure clock time (HH:MM) and journey date (YYYY-MM-DD).
// Unparseable values make every predicate false.
type ScheduleFacts struct {
	DepartureTime string
	JourneyDate   string
}

func (s ScheduleFacts) hour() (int, bool) {
	clock, err := time.Parse(constant.ClockFormat, s.DepartureTime)
	if err != nil {
		return 0, false
	}

	return clock.Hour(), true
}

// IsPeak covers 07:00-10:59 and 17:00-21:59, matching on the hour only.
func (s ScheduleFacts) IsPeak() bool {
	hour, ok := s.hour()

	return ok && ((hour >= 7 && hour <= 10) || (hour >= 17 && hour <= 21))
}

func (s ScheduleFacts) IsNight() bool {
	hour, ok := s.hour()

	return ok && (hour >= 20 || hour <= 5)
}

func (s ScheduleFacts) IsWeekend() bool {
	date, err := time.Parse(constant.JourneyDateFormat, s.JourneyDate)
	if err != nil {
		return false
	}

	day := date.Weekday()

	return day == time.Saturday || day == time.Sunday
}
