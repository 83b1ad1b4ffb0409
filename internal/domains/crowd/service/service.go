package service

import (
	"math"
	catalog "railbook/internal/domains/catalog/model"
	"railbook/internal/domains/crowd/model"
)

const (
	peakPenalty    = 15.0
	weekendPenalty = 10.0
	maxCrowdScore  = 100.0

	lowCrowdBelow    = 40.0
	mediumCrowdBelow = 70.0

	defaultComfort = 3.0
	minComfort     = 1.0
	maxComfort     = 5.0
)

var baseComfort = map[catalog.ClassType]float64{
	catalog.ClassFirstAC:        5.0,
	catalog.ClassExecutiveChair: 4.5,
	catalog.ClassSecondAC:       4.0,
	catalog.ClassThirdAC:        3.5,
	catalog.ClassChairCar:       3.0,
	catalog.ClassSleeper:        2.5,
	catalog.ClassSecondSitting:  2.0,
}

// Crowd scores how busy and comfortable a class is likely to be. It has no state and no I/O.
type Crowd interface {
	Assess(fareClass catalog.FareClass, departureTime, journeyDate string) model.Assessment
}

type serviceImpl struct{}

func New() Crowd {
	return serviceImpl{}
}

func (serviceImpl) Assess(fareClass catalog.FareClass, departureTime, journeyDate string) model.Assessment {
	return Assess(fareClass, model.ScheduleFacts{DepartureTime: departureTime, JourneyDate: journeyDate})
}

// Assess never fails.
func Assess(fareClass catalog.FareClass, facts model.ScheduleFacts) model.Assessment {
	peak := facts.IsPeak()

	score := maxCrowdScore - availability(fareClass)
	if peak {
		score += peakPenalty
	}

	if facts.IsWeekend() {
		score += weekendPenalty
	}

	score = math.Min(score, maxCrowdScore)

	level := levelFor(score)
	comfort := comfortFor(fareClass.ClassType, level, peak)

	return model.Assessment{
		Level:          level,
		CrowdScore:     int(math.Round(score)),
		ComfortScore:   comfort,
		Recommendation: recommend(fareClass.ClassType, facts.IsNight(), level, comfort),
	}
}

// availability is the free share in percent. A coach without capacity counts as full.
func availability(fareClass catalog.FareClass) float64 {
	if fareClass.TotalSeats <= 0 {
		return 0
	}

	return float64(fareClass.AvailableSeats) * 100 / float64(fareClass.TotalSeats)
}

func levelFor(score float64) model.Level {
	switch {
	case score < lowCrowdBelow:
		return model.LevelLow
	case score < mediumCrowdBelow:
		return model.LevelMedium
	default:
		return model.LevelHigh
	}
}

func comfortFor(class catalog.ClassType, level model.Level, peak bool) float64 {
	score, ok := baseComfort[class]
	if !ok {
		score = defaultComfort
	}

	switch level {
	case model.LevelHigh:
		score -= 0.5
	case model.LevelLow:
		score += 0.3
	case model.LevelMedium:
	}

	if peak {
		score -= 0.2
	}

	// nearest half step, halves round up
	rounded := math.Floor(score*2+0.5) / 2

	return math.Max(minComfort, math.Min(maxComfort, rounded))
}

// recommend applies the first matching rule; the order is the tie-break.
func recommend(class catalog.ClassType, night bool, level model.Level, comfort float64) model.Recommendation {
	switch {
	case class.In(catalog.ClassFirstAC, catalog.ClassExecutiveChair) && comfort >= 4:
		return model.RecommendSeniors
	case night && class.In(catalog.ClassSleeper, catalog.ClassThirdAC, catalog.ClassSecondAC):
		return model.RecommendNight
	case class.In(catalog.ClassSecondSitting, catalog.ClassSleeper) && level != model.LevelHigh:
		return model.RecommendStudents
	case class.In(catalog.ClassSecondAC, catalog.ClassThirdAC) && level == model.LevelLow:
		return model.RecommendFamily
	case comfort >= 4:
		return model.RecommendComfort
	default:
		return model.RecommendBudget
	}
}
