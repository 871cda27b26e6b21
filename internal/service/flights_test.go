package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skyport/internal/apperrors"
	"skyport/internal/models"
)

type mockFlightStore struct {
	mock.Mock
}

func (m *mockFlightStore) Create(ctx context.Context, flight *models.Flight, crewIDs []int64) error {
	args := m.Called(ctx, flight, crewIDs)
	return args.Error(0)
}

func (m *mockFlightStore) GetByID(ctx context.Context, id int64) (*models.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *mockFlightStore) List(ctx context.Context, filter models.FlightFilter) ([]models.Flight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *mockFlightStore) Update(ctx context.Context, flight *models.Flight, crewIDs []int64) (bool, error) {
	args := m.Called(ctx, flight, crewIDs)
	return args.Bool(0), args.Error(1)
}

func (m *mockFlightStore) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockRouteStore struct {
	mock.Mock
}

func (m *mockRouteStore) GetByID(ctx context.Context, id int64) (*models.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Route), args.Error(1)
}

type mockAirplaneStore struct {
	mock.Mock
}

func (m *mockAirplaneStore) GetByID(ctx context.Context, id int64) (*models.Airplane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airplane), args.Error(1)
}

type mockCrewChecker struct {
	mock.Mock
}

func (m *mockCrewChecker) ExistAll(ctx context.Context, ids []int64) (bool, error) {
	args := m.Called(ctx, ids)
	return args.Bool(0), args.Error(1)
}

func validFlightRequest() *models.CreateFlightRequest {
	departure := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return &models.CreateFlightRequest{
		RouteID:       1,
		AirplaneID:    2,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(3 * time.Hour),
		CrewIDs:       []int64{1, 2},
	}
}

func newFlightService(flights *mockFlightStore, routes *mockRouteStore,
	airplanes *mockAirplaneStore, crew *mockCrewChecker, nats Publisher) *FlightService {
	return NewFlightService(flights, routes, airplanes, crew, nil, nats, nil)
}

func TestFlightServiceCreate(t *testing.T) {
	flights := new(mockFlightStore)
	routes := new(mockRouteStore)
	airplanes := new(mockAirplaneStore)
	crew := new(mockCrewChecker)
	nats := new(mockPublisher)

	routes.On("GetByID", mock.Anything, int64(1)).Return(&models.Route{ID: 1}, nil)
	airplanes.On("GetByID", mock.Anything, int64(2)).Return(&models.Airplane{ID: 2, Rows: 10, SeatsInRow: 6}, nil)
	crew.On("ExistAll", mock.Anything, []int64{1, 2}).Return(true, nil)

	flights.On("Create", mock.Anything, mock.Anything, []int64{1, 2}).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Flight).ID = 9
	}).Return(nil)
	flights.On("GetByID", mock.Anything, int64(9)).Return(&models.Flight{ID: 9, TicketsAvailable: 60}, nil)

	nats.On("Publish", models.SubjectFlightCreated, mock.Anything).Return(nil)

	svc := newFlightService(flights, routes, airplanes, crew, nats)

	flight, err := svc.Create(context.Background(), validFlightRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(9), flight.ID)
	assert.Equal(t, 60, flight.TicketsAvailable)
	flights.AssertExpectations(t)
	nats.AssertExpectations(t)
}

func TestFlightServiceCreateArrivalBeforeDeparture(t *testing.T) {
	flights := new(mockFlightStore)

	svc := newFlightService(flights, new(mockRouteStore), new(mockAirplaneStore), new(mockCrewChecker), nil)

	req := validFlightRequest()
	req.ArrivalTime = req.DepartureTime.Add(-time.Hour)

	_, err := svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	flights.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestFlightServiceCreateUnknownRoute(t *testing.T) {
	routes := new(mockRouteStore)
	routes.On("GetByID", mock.Anything, int64(1)).Return(nil, nil)

	svc := newFlightService(new(mockFlightStore), routes, new(mockAirplaneStore), new(mockCrewChecker), nil)

	_, err := svc.Create(context.Background(), validFlightRequest())

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestFlightServiceCreateUnknownCrew(t *testing.T) {
	routes := new(mockRouteStore)
	airplanes := new(mockAirplaneStore)
	crew := new(mockCrewChecker)

	routes.On("GetByID", mock.Anything, int64(1)).Return(&models.Route{ID: 1}, nil)
	airplanes.On("GetByID", mock.Anything, int64(2)).Return(&models.Airplane{ID: 2}, nil)
	crew.On("ExistAll", mock.Anything, []int64{1, 2}).Return(false, nil)

	svc := newFlightService(new(mockFlightStore), routes, airplanes, crew, nil)

	_, err := svc.Create(context.Background(), validFlightRequest())

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestFlightServiceGetNotFound(t *testing.T) {
	flights := new(mockFlightStore)
	flights.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)

	svc := newFlightService(flights, new(mockRouteStore), new(mockAirplaneStore), new(mockCrewChecker), nil)

	_, err := svc.Get(context.Background(), 404)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFlightServiceDelete(t *testing.T) {
	flights := new(mockFlightStore)
	nats := new(mockPublisher)

	flights.On("Delete", mock.Anything, int64(9)).Return(true, nil)
	nats.On("Publish", models.SubjectFlightDeleted, mock.Anything).Return(nil)

	svc := newFlightService(flights, new(mockRouteStore), new(mockAirplaneStore), new(mockCrewChecker), nats)

	require.NoError(t, svc.Delete(context.Background(), 9))
	nats.AssertExpectations(t)
}

func TestFlightServiceDeleteNotFound(t *testing.T) {
	flights := new(mockFlightStore)
	flights.On("Delete", mock.Anything, int64(404)).Return(false, nil)

	svc := newFlightService(flights, new(mockRouteStore), new(mockAirplaneStore), new(mockCrewChecker), nil)

	err := svc.Delete(context.Background(), 404)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFlightServiceList(t *testing.T) {
	flights := new(mockFlightStore)

	filter := models.FlightFilter{Source: "Heathrow"}
	flights.On("List", mock.Anything, filter).Return([]models.Flight{{ID: 1}, {ID: 2}}, nil)

	svc := newFlightService(flights, new(mockRouteStore), new(mockAirplaneStore), new(mockCrewChecker), nil)

	got, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFlightServiceSearchUnavailable(t *testing.T) {
	svc := newFlightService(new(mockFlightStore), new(mockRouteStore), new(mockAirplaneStore), new(mockCrewChecker), nil)

	_, err := svc.Search(context.Background(), "london", 10)

	assert.ErrorIs(t, err, ErrSearchUnavailable)
}
