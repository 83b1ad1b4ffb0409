package service_test

import (
	"math"
	catalog "railbook/internal/domains/catalog/model"
	"railbook/internal/domains/crowd/model"
	"railbook/internal/domains/crowd/service"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	weekday  = "2026-10-21" // Wednesday
	saturday = "2026-10-24"
	offPeak  = "14:20"
	peak     = "08:00"
)

var allClasses = []catalog.ClassType{
	catalog.ClassFirstAC,
	catalog.ClassSecondAC,
	catalog.ClassThirdAC,
	catalog.ClassSleeper,
	catalog.ClassChairCar,
	catalog.ClassSecondSitting,
	catalog.ClassExecutiveChair,
	catalog.ClassType("XX"),
}

func fareClass(class catalog.ClassType, available, total int) catalog.FareClass {
	return catalog.FareClass{ClassType: class, Fare: 1500, AvailableSeats: available, TotalSeats: total}
}

func TestAssess(t *testing.T) {
	svc := service.New()

	tests := []struct {
		name      string
		fareClass catalog.FareClass
		departure string
		date      string
		want      model.Assessment
	}{
		{
			name:      "3A nearly full on a saturday peak",
			fareClass: fareClass(catalog.ClassThirdAC, 10, 72),
			departure: peak,
			date:      saturday,
			want: model.Assessment{
				Level:          model.LevelHigh,
				CrowdScore:     100,
				ComfortScore:   3.0,
				Recommendation: model.RecommendBudget,
			},
		},
		{
			name:      "1A empty off peak weekday",
			fareClass: fareClass(catalog.ClassFirstAC, 72, 72),
			departure: offPeak,
			date:      weekday,
			want: model.Assessment{
				Level:          model.LevelLow,
				CrowdScore:     0,
				ComfortScore:   5.0,
				Recommendation: model.RecommendSeniors,
			},
		},
		{
			name:      "1A at night still recommends seniors",
			fareClass: fareClass(catalog.ClassFirstAC, 40, 72),
			departure: "23:15",
			date:      weekday,
			want: model.Assessment{
				Level:          model.LevelMedium,
				CrowdScore:     44,
				ComfortScore:   5.0,
				Recommendation: model.RecommendSeniors,
			},
		},
		{
			name:      "SL at night",
			fareClass: fareClass(catalog.ClassSleeper, 60, 72),
			departure: "23:15",
			date:      weekday,
			want: model.Assessment{
				Level:          model.LevelLow,
				CrowdScore:     17,
				ComfortScore:   3.0,
				Recommendation: model.RecommendNight,
			},
		},
		{
			name:      "2S medium crowd suits students",
			fareClass: fareClass(catalog.ClassSecondSitting, 36, 72),
			departure: offPeak,
			date:      weekday,
			want: model.Assessment{
				Level:          model.LevelMedium,
				CrowdScore:     50,
				ComfortScore:   2.0,
				Recommendation: model.RecommendStudents,
			},
		},
		{
			name:      "2A low crowd suits families",
			fareClass: fareClass(catalog.ClassSecondAC, 60, 72),
			departure: offPeak,
			date:      weekday,
			want: model.Assessment{
				Level:          model.LevelLow,
				CrowdScore:     17,
				ComfortScore:   4.5,
				Recommendation: model.RecommendFamily,
			},
		},
		{
			name:      "2A medium crowd falls to comfort",
			fareClass: fareClass(catalog.ClassSecondAC, 36, 72),
			departure: offPeak,
			date:      weekday,
			want: model.Assessment{
				Level:          model.LevelMedium,
				CrowdScore:     50,
				ComfortScore:   4.0,
				Recommendation: model.RecommendComfort,
			},
		},
		{
			name:      "crowd score of exactly 40 is medium",
			fareClass: fareClass(catalog.ClassChairCar, 60, 100),
			departure: offPeak,
			date:      weekday,
			want: model.Assessment{
				Level:          model.LevelMedium,
				CrowdScore:     40,
				ComfortScore:   3.0,
				Recommendation: model.RecommendBudget,
			},
		},
		{
			name:      "crowd score of exactly 70 is high",
			fareClass: fareClass(catalog.ClassChairCar, 30, 100),
			departure: offPeak,
			date:      weekday,
			want: model.Assessment{
				Level:          model.LevelHigh,
				CrowdScore:     70,
				ComfortScore:   2.5,
				Recommendation: model.RecommendBudget,
			},
		},
		{
			name:      "unknown class uses default comfort",
			fareClass: fareClass(catalog.ClassType("XX"), 36, 72),
			departure: offPeak,
			date:      weekday,
			want: model.Assessment{
				Level:          model.LevelMedium,
				CrowdScore:     50,
				ComfortScore:   3.0,
				Recommendation: model.RecommendBudget,
			},
		},
		{
			name:      "malformed schedule is neither peak nor weekend",
			fareClass: fareClass(catalog.ClassThirdAC, 72, 72),
			departure: "soon",
			date:      "tomorrow",
			want: model.Assessment{
				Level:          model.LevelLow,
				CrowdScore:     0,
				ComfortScore:   4.0,
				Recommendation: model.RecommendFamily,
			},
		},
		{
			name:      "coach without capacity is full",
			fareClass: fareClass(catalog.ClassSleeper, 0, 0),
			departure: offPeak,
			date:      weekday,
			want: model.Assessment{
				Level:          model.LevelHigh,
				CrowdScore:     100,
				ComfortScore:   2.0,
				Recommendation: model.RecommendBudget,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Assess(tt.fareClass, tt.departure, tt.date)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssess_ComfortIsHalfStepInRange(t *testing.T) {
	departures := []string{"00:00", "05:30", "07:00", "10:45", "14:20", "17:00", "20:30", "23:59", "bad"}
	dates := []string{weekday, saturday, "bad"}

	for _, class := range allClasses {
		for available := 0; available <= 72; available += 4 {
			for _, departure := range departures {
				for _, date := range dates {
					got := service.Assess(fareClass(class, available, 72), model.ScheduleFacts{DepartureTime: departure, JourneyDate: date})

					assert.GreaterOrEqual(t, got.ComfortScore, 1.0)
					assert.LessOrEqual(t, got.ComfortScore, 5.0)
					assert.InDelta(t, 0, math.Mod(got.ComfortScore*2, 1), 1e-9)
					assert.GreaterOrEqual(t, got.CrowdScore, 0)
					assert.LessOrEqual(t, got.CrowdScore, 100)
				}
			}
		}
	}
}

func TestAssess_FullAvailabilityOffPeakWeekdayIsLow(t *testing.T) {
	for _, class := range allClasses {
		got := service.Assess(fareClass(class, 72, 72), model.ScheduleFacts{DepartureTime: offPeak, JourneyDate: weekday})

		assert.Equal(t, model.LevelLow, got.Level, class)
	}
}

func TestAssess_SoldOutPeakWeekendIsHigh(t *testing.T) {
	for _, class := range allClasses {
		got := service.Assess(fareClass(class, 0, 72), model.ScheduleFacts{DepartureTime: peak, JourneyDate: saturday})

		assert.Equal(t, model.LevelHigh, got.Level, class)
		assert.Equal(t, 100, got.CrowdScore, class)
	}
}

func TestAssess_SeniorsTakesPriority(t *testing.T) {
	for _, departure := range []string{"23:15", "02:00", offPeak} {
		for available := 20; available <= 72; available++ {
			got := service.Assess(fareClass(catalog.ClassFirstAC, available, 72), model.ScheduleFacts{DepartureTime: departure, JourneyDate: weekday})
			if got.ComfortScore >= 4 {
				assert.Equal(t, model.RecommendSeniors, got.Recommendation)
			}
		}
	}
}
