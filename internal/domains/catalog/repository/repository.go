package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"railbook/infras/otel"
	"railbook/infras/postgres"
	"railbook/internal/domains/catalog/model"
	"railbook/shared/constant"
	gDto "railbook/shared/dto"
	"railbook/shared/failure"
	gRepo "railbook/shared/repository"
)

const fieldDepartureTime = "departure_time"

// Catalog reads the seeded station and timetable directory.
type Catalog interface {
	Stations(ctx context.Context) ([]model.Station, error)
	Trains(ctx context.Context, from, to []string) ([]model.Train, error)
	Train(ctx context.Context, id string) (model.Train, error)
	ClassFares(ctx context.Context, trainID string) ([]model.ClassFare, error)
	ClassFare(ctx context.Context, trainID string, class model.ClassType) (model.ClassFare, error)
}

type repositoryImpl struct {
	stations gRepo.Repository[model.Station]
	trains   gRepo.Repository[model.Train]
	fares    gRepo.Repository[model.ClassFare]
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Catalog {
	return &repositoryImpl{
		stations: gRepo.NewRepository[model.Station](model.StationEntity, model.StationTable, model.FieldCode, db, otel),
		trains:   gRepo.NewRepository[model.Train](model.TrainEntity, model.TrainTable, model.FieldID, db, otel),
		fares:    gRepo.NewRepository[model.ClassFare](model.FareClassEntity, model.FareClassTable, model.FieldTrainID, db, otel),
		otel:     otel,
	}
}

func (r *repositoryImpl) Stations(ctx context.Context) (stations []model.Station, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Stations")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.FieldCode, SortDir: gDto.SortDirAsc}

	stations, err = r.stations.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		return nil, fmt.Errorf("failed to get stations: %w", err)
	}

	return stations, nil
}

// Trains lists services running from any of the from codes to any of the to codes, earliest
// departure first.
func (r *repositoryImpl) Trains(ctx context.Context, from, to []string) (trains []model.Train, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Trains")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(from) == 0 || len(to) == 0 {
		return []model.Train{}, nil
	}

	params := gDto.QueryParams{SortBy: fieldDepartureTime, SortDir: gDto.SortDirAsc}
	filter := gDto.And(
		gDto.Filter{Field: model.FieldFrom, Value: from, Operator: gDto.FilterOperatorIn},
		gDto.Filter{Field: model.FieldTo, Value: to, Operator: gDto.FilterOperatorIn},
	)

	trains, err = r.trains.GetAll(ctx, params, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get trains: %w", err)
	}

	return trains, nil
}

func (r *repositoryImpl) Train(ctx context.Context, id string) (train model.Train, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Train")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	train, err = r.trains.Get(ctx, gDto.And(gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq}))
	if err != nil {
		return train, fmt.Errorf("failed to get train: %w", err)
	}

	if train.ID == "" {
		return train, failure.NotFound("train not found")
	}

	return train, nil
}

// ClassFares returns the classes of a train, most expensive first.
func (r *repositoryImpl) ClassFares(ctx context.Context, trainID string) (fares []model.ClassFare, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ClassFares")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.FieldFare, SortDir: gDto.SortDirDesc}

	fares, err = r.fares.GetAll(ctx, params, gDto.And(gDto.Filter{Field: model.FieldTrainID, Value: trainID, Operator: gDto.FilterOperatorEq}))
	if err != nil {
		return nil, fmt.Errorf("failed to get class fares: %w", err)
	}

	return fares, nil
}

func (r *repositoryImpl) ClassFare(ctx context.Context, trainID string, class model.ClassType) (fare model.ClassFare, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ClassFare")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	fare, err = r.fares.Get(ctx, gDto.And(
		gDto.Filter{Field: model.FieldTrainID, Value: trainID, Operator: gDto.FilterOperatorEq},
		gDto.Filter{Field: model.FieldClassType, Value: class, Operator: gDto.FilterOperatorEq},
	))
	if err != nil {
		return fare, fmt.Errorf("failed to get class fare: %w", err)
	}

	if fare.TrainID == "" {
		return fare, failure.NotFound(fmt.Sprintf("class %s is not offered on this train", class))
	}

	return fare, nil
}
