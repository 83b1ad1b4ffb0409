package dto

import (
	catalog "railbook/internal/domains/catalog/model"
	"railbook/internal/domains/crowd/model"
)

type AssessRequest struct {
	ClassType      string `json:"class_type"      validate:"required,oneof=1A 2A 3A SL CC 2S EC"`
	Fare           int64  `json:"fare"            validate:"gte=0"`
	AvailableSeats int    `json:"available_seats" validate:"gte=0,ltefield=TotalSeats"`
	TotalSeats     int    `json:"total_seats"     validate:"gte=1"`
	DepartureTime  string `json:"departure_time"  validate:"required,clock"`
	JourneyDate    string `json:"journey_date"    validate:"required,journeydate"`
}

func (r AssessRequest) FareClass() catalog.FareClass {
	return catalog.FareClass{
		ClassType:      catalog.ClassType(r.ClassType),
		Fare:           r.Fare,
		AvailableSeats: r.AvailableSeats,
		TotalSeats:     r.TotalSeats,
	}
}

type AssessmentResponse struct {
	Level               string  `json:"level"`
	CrowdScore          int     `json:"crowd_score"`
	ComfortScore        float64 `json:"comfort_score"`
	Recommendation      string  `json:"recommendation"`
	RecommendationLabel string  `json:"recommendation_label"`
}

func (r *AssessmentResponse) FromModel(assessment model.Assessment) {
	r.Level = string(assessment.Level)
	r.CrowdScore = assessment.CrowdScore
	r.ComfortScore = assessment.ComfortScore
	r.Recommendation = string(assessment.Recommendation)
	r.RecommendationLabel = assessment.Recommendation.Label()
}
