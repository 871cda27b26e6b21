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

type mockOrderStore struct {
	mock.Mock
}

func (m *mockOrderStore) CreateWithTickets(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderStore) ListByUser(ctx context.Context, filter models.OrderFilter) (*models.OrderPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderPage), args.Error(1)
}

func (m *mockOrderStore) GetByID(ctx context.Context, id, userID int64) (*models.Order, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

type mockSeatGridStore struct {
	mock.Mock
}

func (m *mockSeatGridStore) GetSeatGrid(ctx context.Context, flightID int64) (int, int, bool, error) {
	args := m.Called(ctx, flightID)
	return args.Int(0), args.Int(1), args.Bool(2), args.Error(3)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(subject string, data interface{}) error {
	args := m.Called(subject, data)
	return args.Error(0)
}

func TestOrderServiceCreate(t *testing.T) {
	orders := new(mockOrderStore)
	flights := new(mockSeatGridStore)

	flights.On("GetSeatGrid", mock.Anything, int64(1)).Return(10, 6, true, nil)

	orders.On("CreateWithTickets", mock.Anything, mock.MatchedBy(func(order *models.Order) bool {
		return order.UserID == 42 && len(order.Tickets) == 2
	})).Run(func(args mock.Arguments) {
		order := args.Get(1).(*models.Order)
		order.ID = 7
		order.CreatedAt = time.Now()
	}).Return(nil)

	stored := &models.Order{ID: 7, UserID: 42}
	orders.On("GetByID", mock.Anything, int64(7), int64(42)).Return(stored, nil)

	svc := NewOrderService(orders, flights, nil, nil)

	order, err := svc.Create(context.Background(), 42, &models.CreateOrderRequest{
		Tickets: []models.TicketRequest{
			{FlightID: 1, Row: 1, Seat: 1},
			{FlightID: 1, Row: 10, Seat: 6},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), order.ID)
	orders.AssertExpectations(t)
	flights.AssertExpectations(t)
}

func TestOrderServiceCreateInvalidSeat(t *testing.T) {
	orders := new(mockOrderStore)
	flights := new(mockSeatGridStore)

	flights.On("GetSeatGrid", mock.Anything, int64(1)).Return(10, 6, true, nil)

	svc := NewOrderService(orders, flights, nil, nil)

	_, err := svc.Create(context.Background(), 42, &models.CreateOrderRequest{
		Tickets: []models.TicketRequest{{FlightID: 1, Row: 11, Seat: 7}},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	var errs apperrors.ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 2)
	assert.Equal(t, "row must be in the range [1, 10]", errs[0].Message)
	assert.Equal(t, "seat must be in the range [1, 6]", errs[1].Message)

	orders.AssertNotCalled(t, "CreateWithTickets", mock.Anything, mock.Anything)
}

func TestOrderServiceCreateUnknownFlight(t *testing.T) {
	orders := new(mockOrderStore)
	flights := new(mockSeatGridStore)

	flights.On("GetSeatGrid", mock.Anything, int64(99)).Return(0, 0, false, nil)

	svc := NewOrderService(orders, flights, nil, nil)

	_, err := svc.Create(context.Background(), 42, &models.CreateOrderRequest{
		Tickets: []models.TicketRequest{{FlightID: 99, Row: 1, Seat: 1}},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	orders.AssertNotCalled(t, "CreateWithTickets", mock.Anything, mock.Anything)
}

func TestOrderServiceCreateEmpty(t *testing.T) {
	svc := NewOrderService(new(mockOrderStore), new(mockSeatGridStore), nil, nil)

	_, err := svc.Create(context.Background(), 42, &models.CreateOrderRequest{})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestOrderServiceCreateSeatConflict(t *testing.T) {
	orders := new(mockOrderStore)
	flights := new(mockSeatGridStore)

	flights.On("GetSeatGrid", mock.Anything, int64(1)).Return(10, 6, true, nil)
	orders.On("CreateWithTickets", mock.Anything, mock.Anything).
		Return(apperrors.NewConflict("seat (row 1, seat 1) on flight 1 is already taken"))

	svc := NewOrderService(orders, flights, nil, nil)

	_, err := svc.Create(context.Background(), 42, &models.CreateOrderRequest{
		Tickets: []models.TicketRequest{{FlightID: 1, Row: 1, Seat: 1}},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestOrderServiceCreatePublishesEvents(t *testing.T) {
	orders := new(mockOrderStore)
	flights := new(mockSeatGridStore)
	nats := new(mockPublisher)

	flights.On("GetSeatGrid", mock.Anything, int64(1)).Return(10, 6, true, nil)
	orders.On("CreateWithTickets", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		order := args.Get(1).(*models.Order)
		order.ID = 3
		order.Tickets[0].ID = 11
	}).Return(nil)
	orders.On("GetByID", mock.Anything, int64(3), int64(42)).Return(&models.Order{ID: 3, UserID: 42}, nil)

	nats.On("Publish", models.SubjectOrderCreated, mock.Anything).Return(nil)
	nats.On("Publish", models.SubjectTicketBooked, mock.Anything).Return(nil)

	svc := NewOrderService(orders, flights, nats, nil)

	_, err := svc.Create(context.Background(), 42, &models.CreateOrderRequest{
		Tickets: []models.TicketRequest{{FlightID: 1, Row: 2, Seat: 3}},
	})

	require.NoError(t, err)
	nats.AssertExpectations(t)
}

func TestOrderServiceGetForeignOrder(t *testing.T) {
	orders := new(mockOrderStore)

	orders.On("GetByID", mock.Anything, int64(5), int64(42)).Return(nil, nil)

	svc := NewOrderService(orders, new(mockSeatGridStore), nil, nil)

	_, err := svc.Get(context.Background(), 5, 42)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOrderServiceList(t *testing.T) {
	orders := new(mockOrderStore)

	filter := models.OrderFilter{UserID: 42, Page: 1, PageSize: 3}
	page := &models.OrderPage{Count: 5, Page: 1, PageSize: 3, Results: make([]models.Order, 3)}
	orders.On("ListByUser", mock.Anything, filter).Return(page, nil)

	svc := NewOrderService(orders, new(mockSeatGridStore), nil, nil)

	got, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, 5, got.Count)
	assert.Len(t, got.Results, 3)
}
