package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skyport/internal/apperrors"
	"skyport/internal/config"
	"skyport/internal/middleware"
	"skyport/internal/models"
	"skyport/internal/service"
)

type stubOrderStore struct {
	mock.Mock
}

func (m *stubOrderStore) CreateWithTickets(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *stubOrderStore) ListByUser(ctx context.Context, filter models.OrderFilter) (*models.OrderPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderPage), args.Error(1)
}

func (m *stubOrderStore) GetByID(ctx context.Context, id, userID int64) (*models.Order, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

type stubSeatGrids struct {
	mock.Mock
}

func (m *stubSeatGrids) GetSeatGrid(ctx context.Context, flightID int64) (int, int, bool, error) {
	args := m.Called(ctx, flightID)
	return args.Int(0), args.Int(1), args.Bool(2), args.Error(3)
}

// fakeAuth injects an authenticated user the way BearerAuth would.
func fakeAuth(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			middleware.ContextWithUser(c.Request.Context(), userID, false))
		c.Next()
	}
}

func orderTestRouter(orders *stubOrderStore, grids *stubSeatGrids) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{OrderPageSize: 3, OrderMaxPageSize: 100}
	h := NewHandlers(&service.Services{
		Orders: service.NewOrderService(orders, grids, nil, nil),
	}, nil, cfg)

	r := gin.New()
	group := r.Group("/api/orders", fakeAuth(42))
	group.POST("", h.CreateOrder)
	group.GET("", h.ListOrders)
	group.GET("/:id", h.GetOrder)
	return r
}

func TestCreateOrderHandler(t *testing.T) {
	orders := new(stubOrderStore)
	grids := new(stubSeatGrids)

	grids.On("GetSeatGrid", mock.Anything, int64(1)).Return(10, 6, true, nil)
	orders.On("CreateWithTickets", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		order := args.Get(1).(*models.Order)
		order.ID = 5
		order.CreatedAt = time.Now()
	}).Return(nil)
	orders.On("GetByID", mock.Anything, int64(5), int64(42)).
		Return(&models.Order{ID: 5, UserID: 42}, nil)

	router := orderTestRouter(orders, grids)

	body, _ := json.Marshal(models.CreateOrderRequest{
		Tickets: []models.TicketRequest{{FlightID: 1, Row: 2, Seat: 3}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(5), got.ID)
}

func TestCreateOrderHandlerInvalidSeat(t *testing.T) {
	orders := new(stubOrderStore)
	grids := new(stubSeatGrids)

	grids.On("GetSeatGrid", mock.Anything, int64(1)).Return(10, 6, true, nil)

	router := orderTestRouter(orders, grids)

	body, _ := json.Marshal(models.CreateOrderRequest{
		Tickets: []models.TicketRequest{{FlightID: 1, Row: 99, Seat: 99}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "row must be in the range [1, 10]")
	assert.Contains(t, w.Body.String(), "seat must be in the range [1, 6]")
	orders.AssertNotCalled(t, "CreateWithTickets", mock.Anything, mock.Anything)
}

func TestCreateOrderHandlerSeatConflict(t *testing.T) {
	orders := new(stubOrderStore)
	grids := new(stubSeatGrids)

	grids.On("GetSeatGrid", mock.Anything, int64(1)).Return(10, 6, true, nil)
	orders.On("CreateWithTickets", mock.Anything, mock.Anything).
		Return(apperrors.NewConflict("seat (row 2, seat 3) on flight 1 is already taken"))

	router := orderTestRouter(orders, grids)

	body, _ := json.Marshal(models.CreateOrderRequest{
		Tickets: []models.TicketRequest{{FlightID: 1, Row: 2, Seat: 3}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already taken")
}

func TestGetOrderHandlerForeignOrder(t *testing.T) {
	orders := new(stubOrderStore)

	orders.On("GetByID", mock.Anything, int64(9), int64(42)).Return(nil, nil)

	router := orderTestRouter(orders, new(stubSeatGrids))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/9", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrdersHandlerDefaults(t *testing.T) {
	orders := new(stubOrderStore)

	orders.On("ListByUser", mock.Anything, models.OrderFilter{
		UserID: 42, Page: 1, PageSize: 3,
	}).Return(&models.OrderPage{Count: 0, Page: 1, PageSize: 3, Results: []models.Order{}}, nil)

	router := orderTestRouter(orders, new(stubSeatGrids))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	orders.AssertExpectations(t)
}

func TestListOrdersHandlerCapsPageSize(t *testing.T) {
	orders := new(stubOrderStore)

	orders.On("ListByUser", mock.Anything, models.OrderFilter{
		UserID: 42, Page: 1, PageSize: 100,
	}).Return(&models.OrderPage{Count: 0, Page: 1, PageSize: 100, Results: []models.Order{}}, nil)

	router := orderTestRouter(orders, new(stubSeatGrids))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders?page_size=500", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	orders.AssertExpectations(t)
}

func TestListOrdersHandlerBadDate(t *testing.T) {
	router := orderTestRouter(new(stubOrderStore), new(stubSeatGrids))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders?created_date=01-09-2026", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
