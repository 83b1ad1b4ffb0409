package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Catalog=MockCatalogService

import (
	"context"
	"fmt"
	"strings"

	"railbook/config"
	"railbook/infras/otel"
	"railbook/internal/domains/catalog/model"
	"railbook/internal/domains/catalog/model/dto"
	"railbook/internal/domains/catalog/repository"
	crowd "railbook/internal/domains/crowd/service"
	seat "railbook/internal/domains/seat/service"
	"railbook/shared"
	"railbook/shared/cache"
	"railbook/shared/constant"
	"railbook/shared/failure"
	"railbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheStations = "catalog:stations"
	cacheTrains   = "catalog:trains"
)

// Catalog answers timetable questions. Fares and capacity come from the seeded directory;
// availability comes from the seat inventory of the journey date.
type Catalog interface {
	Stations(ctx context.Context) (dto.StationsResponse, error)
	SearchTrains(ctx context.Context, from, to string) (dto.TrainsResponse, error)
	Classes(ctx context.Context, trainID, journeyDate string) (dto.ClassesResponse, error)
	Offer(ctx context.Context, trainID string, class model.ClassType, journeyDate string) (model.Offer, error)
}

type serviceImpl struct {
	repo  repository.Catalog
	seat  seat.Seat
	crowd crowd.Crowd
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Catalog, seat seat.Seat, crowd crowd.Crowd, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo:  repo,
		seat:  seat,
		crowd: crowd,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Stations(ctx context.Context) (res dto.StationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stations")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, cacheStations, &res); err == nil {
		return res, nil
	}

	stations, err := s.repo.Stations(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stations")

		return res, fmt.Errorf("failed to get stations: %w", err)
	}

	res.FromModels(stations)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheStations, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stations to cache")
		}
	}()

	return res, nil
}

// SearchTrains accepts a station code, city or station name on either side, case-insensitive.
func (s *serviceImpl) SearchTrains(ctx context.Context, from, to string) (res dto.TrainsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchTrains")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)

	if from == constant.Empty || to == constant.Empty {
		return res, failure.BadRequestFromString("both from and to are required")
	}

	cacheKey := shared.BuildCacheKey(cacheTrains, strings.ToUpper(from), strings.ToUpper(to))
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	stations, err := s.Stations(ctx)
	if err != nil {
		return res, err
	}

	trains, err := s.repo.Trains(ctx, matchStations(stations, from), matchStations(stations, to))
	if err != nil {
		log.Error().Err(err).Str("from", from).Str("to", to).Msg("failed to search trains")

		return res, fmt.Errorf("failed to search trains: %w", err)
	}

	res.FromModels(trains)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save trains to cache")
		}
	}()

	return res, nil
}

func matchStations(stations dto.StationsResponse, query string) []string {
	codes := []string{}

	for _, station := range stations.Stations {
		if strings.EqualFold(station.Code, query) || strings.EqualFold(station.City, query) || strings.EqualFold(station.Name, query) {
			codes = append(codes, station.Code)
		}
	}

	return codes
}

// Classes lists every class of a train for one journey date with live availability and a
// crowd assessment. Coaches are created on first sight.
func (s *serviceImpl) Classes(ctx context.Context, trainID, journeyDate string) (res dto.ClassesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Classes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	train, err := s.runningTrain(ctx, trainID, journeyDate)
	if err != nil {
		return res, err
	}

	fares, err := s.repo.ClassFares(ctx, trainID)
	if err != nil {
		log.Error().Err(err).Str("train_id", trainID).Msg("failed to get class fares")

		return res, fmt.Errorf("failed to get class fares: %w", err)
	}

	res.Train.FromModel(train)
	res.JourneyDate = journeyDate
	res.Classes = make([]dto.ClassResponse, 0, len(fares))

	for _, fare := range fares {
		coach, err := s.seat.Coach(ctx, train.ID, fare.ClassType, journeyDate, fare.TotalSeats)
		if err != nil {
			return res, fmt.Errorf("failed to load availability: %w", err)
		}

		fareClass := coach.FareClass(fare.Fare)

		class := dto.ClassResponse{}
		class.FromModel(fareClass, s.crowd.Assess(fareClass, train.DepartureTime, journeyDate))

		res.Classes = append(res.Classes, class)
	}

	return res, nil
}

func (s *serviceImpl) Offer(ctx context.Context, trainID string, class model.ClassType, journeyDate string) (offer model.Offer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Offer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !class.Valid() {
		return offer, failure.BadRequestFromString(fmt.Sprintf("unknown class type %q", class))
	}

	train, err := s.runningTrain(ctx, trainID, journeyDate)
	if err != nil {
		return offer, err
	}

	fare, err := s.repo.ClassFare(ctx, trainID, class)
	if err != nil {
		return offer, err //nolint:wrapcheck
	}

	coach, err := s.seat.Coach(ctx, train.ID, class, journeyDate, fare.TotalSeats)
	if err != nil {
		return offer, fmt.Errorf("failed to load availability: %w", err)
	}

	return model.Offer{
		Train:       train,
		FareClass:   coach.FareClass(fare.Fare),
		CoachID:     coach.ID,
		JourneyDate: journeyDate,
	}, nil
}

func (s *serviceImpl) runningTrain(ctx context.Context, trainID, journeyDate string) (model.Train, error) {
	date, err := timezone.ParseJourneyDate(journeyDate)
	if err != nil {
		return model.Train{}, failure.BadRequestFromString("journey date must be formatted as YYYY-MM-DD")
	}

	if journeyDate < timezone.Today() {
		return model.Train{}, failure.BadRequestFromString("journey date is in the past")
	}

	train, err := s.repo.Train(ctx, trainID)
	if err != nil {
		return train, err //nolint:wrapcheck
	}

	if !train.RunsOn(date.Weekday()) {
		return train, failure.BadRequestFromString(fmt.Sprintf("train %s does not run on %s", train.Number, date.Weekday()))
	}

	return train, nil
}
