package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"railbook/config"
	"railbook/infras/otel/mocks"
	catalogMocks "railbook/internal/domains/catalog/mocks"
	"railbook/internal/domains/catalog/model"
	"railbook/internal/domains/catalog/service"
	crowd "railbook/internal/domains/crowd/service"
	seatMocks "railbook/internal/domains/seat/mocks"
	seat "railbook/internal/domains/seat/model"
	cacheMocks "railbook/shared/cache/mocks"
	"railbook/shared/constant"
	"railbook/shared/failure"
	"railbook/shared/timezone"
)

var stations = []model.Station{
	{Code: "BCT", Name: "Mumbai Central", City: "Mumbai"},
	{Code: "NDLS", Name: "New Delhi", City: "Delhi"},
}

func nextWeek() string {
	return timezone.Now().AddDate(0, 0, 7).Format(constant.JourneyDateFormat)
}

type fixture struct {
	repo  *catalogMocks.MockCatalog
	seat  *seatMocks.MockSeatService
	cache *cacheMocks.MockRedisCache
	svc   service.Catalog
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  catalogMocks.NewMockCatalog(ctrl),
		seat:  seatMocks.NewMockSeatService(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.seat, crowd.New(), cfg, f.cache, mocks.NewOtel())

	return f
}

func TestCatalogService_Stations(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCodes []string
		wantErr   bool
	}{
		{
			name: "cache miss reads the directory",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "catalog:stations", gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Stations(gomock.Any()).Return(stations, nil)
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantCodes: []string{"BCT", "NDLS"},
		},
		{
			name: "repository error",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Stations(gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Stations(context.Background())

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)

			codes := []string{}
			for _, station := range res.Stations {
				codes = append(codes, station.Code)
			}

			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestCatalogService_SearchTrains(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		to        string
		setupMock func(f fixture)
		wantCount int
		wantErr   bool
	}{
		{
			name: "city and code both resolve",
			from: "delhi",
			to:   "BCT",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "catalog:trains:DELHI:BCT", gomock.Any()).Return(errors.New("cache miss"))
				f.cache.EXPECT().Get(gomock.Any(), "catalog:stations", gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Stations(gomock.Any()).Return(stations, nil)
				f.repo.EXPECT().
					Trains(gomock.Any(), []string{"NDLS"}, []string{"BCT"}).
					Return([]model.Train{{ID: "train-1", Number: "12951", DaysOfOperation: "Mon,Fri"}}, nil)
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantCount: 1,
		},
		{
			name: "unknown station yields no trains",
			from: "Atlantis",
			to:   "Mumbai",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				f.repo.EXPECT().Stations(gomock.Any()).Return(stations, nil)
				f.repo.EXPECT().Trains(gomock.Any(), []string{}, []string{"BCT"}).Return([]model.Train{}, nil)
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name:      "missing destination",
			from:      "NDLS",
			to:        "  ",
			setupMock: func(fixture) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.SearchTrains(context.Background(), tt.from, tt.to)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Len(t, res.Trains, tt.wantCount)
		})
	}
}

func TestCatalogService_Classes(t *testing.T) {
	f := newFixture(t)
	date := nextWeek()

	f.repo.EXPECT().Train(gomock.Any(), "train-1").
		Return(model.Train{ID: "train-1", Number: "12951", DepartureTime: "08:00"}, nil)
	f.repo.EXPECT().ClassFares(gomock.Any(), "train-1").
		Return([]model.ClassFare{
			{TrainID: "train-1", ClassType: model.ClassThirdAC, Fare: 1500, TotalSeats: 72},
			{TrainID: "train-1", ClassType: model.ClassSleeper, Fare: 500, TotalSeats: 72},
		}, nil)
	f.seat.EXPECT().Coach(gomock.Any(), "train-1", model.ClassThirdAC, date, 72).
		Return(seat.Coach{ID: "coach-3a", ClassType: model.ClassThirdAC, TotalSeats: 72, AvailableSeats: 10}, nil)
	f.seat.EXPECT().Coach(gomock.Any(), "train-1", model.ClassSleeper, date, 72).
		Return(seat.Coach{ID: "coach-sl", ClassType: model.ClassSleeper, TotalSeats: 72, AvailableSeats: 72}, nil)

	res, err := f.svc.Classes(context.Background(), "train-1", date)

	require.NoError(t, err)
	require.Len(t, res.Classes, 2)
	assert.Equal(t, date, res.JourneyDate)

	thirdAC := res.Classes[0]
	assert.Equal(t, "3A", thirdAC.ClassType)
	assert.Equal(t, "AC 3 Tier", thirdAC.Name)
	assert.Equal(t, 10, thirdAC.AvailableSeats)
	assert.Equal(t, "high", thirdAC.Crowd.Level)

	sleeper := res.Classes[1]
	assert.Equal(t, 72, sleeper.AvailableSeats)
	assert.NotEqual(t, "high", sleeper.Crowd.Level)
}

func TestCatalogService_ClassesRejectsBadDates(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		setupMock func(f fixture)
	}{
		{name: "malformed", date: "24/10/2026", setupMock: func(fixture) {}},
		{name: "in the past", date: "2001-01-01", setupMock: func(fixture) {}},
		{
			name: "train does not run that day",
			date: nextWeek(),
			setupMock: func(f fixture) {
				weekday, _ := timezone.ParseJourneyDate(nextWeek())
				other := weekday.AddDate(0, 0, 1).Weekday().String()[:3]

				f.repo.EXPECT().Train(gomock.Any(), "train-1").
					Return(model.Train{ID: "train-1", Number: "12951", DaysOfOperation: other}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Classes(context.Background(), "train-1", tt.date)

			require.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestCatalogService_Offer(t *testing.T) {
	date := nextWeek()

	tests := []struct {
		name       string
		class      model.ClassType
		setupMock  func(f fixture)
		wantReason string
		wantErr    bool
	}{
		{
			name:  "offer resolves coach and availability",
			class: model.ClassThirdAC,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Train(gomock.Any(), "train-1").Return(model.Train{ID: "train-1", DepartureTime: "08:00"}, nil)
				f.repo.EXPECT().ClassFare(gomock.Any(), "train-1", model.ClassThirdAC).
					Return(model.ClassFare{TrainID: "train-1", ClassType: model.ClassThirdAC, Fare: 1500, TotalSeats: 72}, nil)
				f.seat.EXPECT().Coach(gomock.Any(), "train-1", model.ClassThirdAC, date, 72).
					Return(seat.Coach{ID: "coach-3a", ClassType: model.ClassThirdAC, TotalSeats: 72, AvailableSeats: 70}, nil)
			},
		},
		{
			name:  "class not offered",
			class: model.ClassFirstAC,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Train(gomock.Any(), "train-1").Return(model.Train{ID: "train-1"}, nil)
				f.repo.EXPECT().ClassFare(gomock.Any(), "train-1", model.ClassFirstAC).
					Return(model.ClassFare{}, failure.NotFound("class 1A is not offered on this train"))
			},
			wantReason: failure.ReasonNotFound,
			wantErr:    true,
		},
		{
			name:      "unknown class",
			class:     "4A",
			setupMock: func(fixture) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			offer, err := f.svc.Offer(context.Background(), "train-1", tt.class, date)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantReason, failure.GetReason(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "coach-3a", offer.CoachID)
			assert.Equal(t, date, offer.JourneyDate)
			assert.Equal(t, model.FareClass{ClassType: model.ClassThirdAC, Fare: 1500, AvailableSeats: 70, TotalSeats: 72}, offer.FareClass)
		})
	}
}
