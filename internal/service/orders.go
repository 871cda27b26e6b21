package service

import (
	"context"
	"fmt"

	"skyport/internal/apperrors"
	"skyport/internal/cache"
	"skyport/internal/logger"
	"skyport/internal/metrics"
	"skyport/internal/models"
	"skyport/internal/validation"
)

type orderStore interface {
	CreateWithTickets(ctx context.Context, order *models.Order) error
	ListByUser(ctx context.Context, filter models.OrderFilter) (*models.OrderPage, error)
	GetByID(ctx context.Context, id, userID int64) (*models.Order, error)
}

type seatGridStore interface {
	GetSeatGrid(ctx context.Context, flightID int64) (rows, seatsInRow int, found bool, err error)
}

type OrderService struct {
	orders  orderStore
	flights seatGridStore
	nats    Publisher
	cache   *cache.Client
}

func NewOrderService(orders orderStore, flights seatGridStore, nats Publisher, cacheClient *cache.Client) *OrderService {
	return &OrderService{
		orders:  orders,
		flights: flights,
		nats:    nats,
		cache:   cacheClient,
	}
}

// Create validates every requested seat against its flight's seating grid,
// then commits the order and all tickets in one transaction. Validation
// happens before any write; a seat conflict rolls the whole order back.
func (s *OrderService) Create(ctx context.Context, userID int64, req *models.CreateOrderRequest) (*models.Order, error) {
	if len(req.Tickets) == 0 {
		return nil, apperrors.NewValidation("tickets", "order must contain at least one ticket")
	}

	order := &models.Order{
		UserID:  userID,
		Tickets: make([]models.Ticket, 0, len(req.Tickets)),
	}

	for _, ticket := range req.Tickets {
		rows, seatsInRow, found, err := s.flights.GetSeatGrid(ctx, ticket.FlightID)
		if err != nil {
			return nil, fmt.Errorf("failed to get flight %d: %w", ticket.FlightID, err)
		}
		if !found {
			return nil, apperrors.NewValidation("flight_id", "flight %d does not exist", ticket.FlightID)
		}

		if err := validation.ValidateSeat(ticket.Row, ticket.Seat, rows, seatsInRow); err != nil {
			return nil, err
		}

		order.Tickets = append(order.Tickets, models.Ticket{
			Row:      ticket.Row,
			Seat:     ticket.Seat,
			FlightID: ticket.FlightID,
		})
	}

	if err := s.orders.CreateWithTickets(ctx, order); err != nil {
		return nil, err
	}

	metrics.OrderCreated(len(order.Tickets))
	s.publishOrderEvents(ctx, order)
	s.invalidateListings(ctx)

	return s.Get(ctx, order.ID, userID)
}

func (s *OrderService) List(ctx context.Context, filter models.OrderFilter) (*models.OrderPage, error) {
	page, err := s.orders.ListByUser(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return page, nil
}

// Get returns an order only when it belongs to userID. Anything else is a
// not-found, so order IDs do not leak across users.
func (s *OrderService) Get(ctx context.Context, id, userID int64) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, apperrors.NewNotFound("order", id)
	}
	return order, nil
}

func (s *OrderService) publishOrderEvents(ctx context.Context, order *models.Order) {
	if s.nats == nil {
		return
	}

	log := logger.WithContext(ctx)

	orderEvent := models.OrderCreatedEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		TicketCount: len(order.Tickets),
		CreatedAt:   order.CreatedAt,
	}
	if err := s.nats.Publish(models.SubjectOrderCreated, orderEvent); err != nil {
		log.Error("Failed to publish order created event",
			"error", err,
			"order_id", order.ID)
	}

	for _, ticket := range order.Tickets {
		ticketEvent := models.TicketBookedEvent{
			TicketID: ticket.ID,
			OrderID:  order.ID,
			FlightID: ticket.FlightID,
			Row:      ticket.Row,
			Seat:     ticket.Seat,
		}
		if err := s.nats.Publish(models.SubjectTicketBooked, ticketEvent); err != nil {
			log.Error("Failed to publish ticket booked event",
				"error", err,
				"ticket_id", ticket.ID)
		}
	}
}

// invalidateListings drops cached flight listings because committed tickets
// change every affected flight's availability.
func (s *OrderService) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPrefix(ctx, cache.FlightListPrefix); err != nil {
		logger.WithContext(ctx).Warn("Failed to invalidate flight listings", "error", err)
	}
}
