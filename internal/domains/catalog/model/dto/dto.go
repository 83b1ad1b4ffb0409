package dto

import (
	"railbook/internal/domains/catalog/model"
	crowd "railbook/internal/domains/crowd/model"
	crowdDto "railbook/internal/domains/crowd/model/dto"
)

type StationResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

type StationsResponse struct {
	Stations []StationResponse `json:"stations"`
}

func (r *StationsResponse) FromModels(stations []model.Station) {
	r.Stations = make([]StationResponse, 0, len(stations))

	for _, station := range stations {
		r.Stations = append(r.Stations, StationResponse{Code: station.Code, Name: station.Name, City: station.City})
	}
}

type TrainResponse struct {
	ID              string   `json:"id"`
	Number          string   `json:"number"`
	Name            string   `json:"name"`
	From            string   `json:"from"`
	To              string   `json:"to"`
	DepartureTime   string   `json:"departure_time"`
	ArrivalTime     string   `json:"arrival_time"`
	Duration        string   `json:"duration"`
	DaysOfOperation []string `json:"days_of_operation"`
}

func (r *TrainResponse) FromModel(train model.Train) {
	r.ID = train.ID
	r.Number = train.Number
	r.Name = train.Name
	r.From = train.From
	r.To = train.To
	r.DepartureTime = train.DepartureTime
	r.ArrivalTime = train.ArrivalTime
	r.Duration = train.Duration
	r.DaysOfOperation = train.Days()
}

type TrainsResponse struct {
	Trains []TrainResponse `json:"trains"`
}

func (r *TrainsResponse) FromModels(trains []model.Train) {
	r.Trains = make([]TrainResponse, 0, len(trains))

	for _, train := range trains {
		res := TrainResponse{}
		res.FromModel(train)
		r.Trains = append(r.Trains, res)
	}
}

type ClassResponse struct {
	ClassType      string                      `json:"class_type"`
	Name           string                      `json:"name"`
	Fare           int64                       `json:"fare"`
	AvailableSeats int                         `json:"available_seats"`
	TotalSeats     int                         `json:"total_seats"`
	Crowd          crowdDto.AssessmentResponse `json:"crowd"`
}

func (r *ClassResponse) FromModel(fareClass model.FareClass, assessment crowd.Assessment) {
	r.ClassType = string(fareClass.ClassType)
	r.Name = fareClass.ClassType.Name()
	r.Fare = fareClass.Fare
	r.AvailableSeats = fareClass.AvailableSeats
	r.TotalSeats = fareClass.TotalSeats
	r.Crowd.FromModel(assessment)
}

type ClassesResponse struct {
	Train       TrainResponse   `json:"train"`
	JourneyDate string          `json:"journey_date"`
	Classes     []ClassResponse `json:"classes"`
}
