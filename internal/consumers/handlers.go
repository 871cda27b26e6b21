package consumers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/stan.go"

	"skyport/internal/models"
	"skyport/internal/repository"
)

const handlerTimeout = 30 * time.Second

type Handlers struct {
	flights *repository.FlightRepository
	search  *repository.FlightSearchRepository
}

func NewHandlers(repos *repository.Repositories) *Handlers {
	return &Handlers{
		flights: repos.Flights,
		search:  repos.FlightSearch,
	}
}

// HandleFlightChanged reindexes a flight after a create or update. The
// relational store is read back so the document always reflects the
// committed row, not the event payload.
func (h *Handlers) HandleFlightChanged(msg *stan.Msg) {
	var event models.FlightEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to unmarshal flight event", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	doc, err := h.flights.GetForIndex(ctx, event.FlightID)
	if err != nil {
		slog.Error("Failed to load flight for indexing", "error", err, "flight_id", event.FlightID)
		return
	}
	if doc == nil {
		// Deleted between publish and consume; the delete event will follow.
		slog.Info("Flight gone before indexing", "flight_id", event.FlightID)
		return
	}

	if err := h.search.Index(ctx, doc); err != nil {
		slog.Error("Failed to index flight", "error", err, "flight_id", event.FlightID)
		return
	}

	slog.Info("Flight indexed", "flight_id", event.FlightID, "action", event.Action)
}

func (h *Handlers) HandleFlightDeleted(msg *stan.Msg) {
	var event models.FlightEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to unmarshal flight event", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	if err := h.search.Delete(ctx, event.FlightID); err != nil {
		slog.Error("Failed to remove flight from index", "error", err, "flight_id", event.FlightID)
		return
	}

	slog.Info("Flight removed from index", "flight_id", event.FlightID)
}

func (h *Handlers) HandleOrderCreated(msg *stan.Msg) {
	var event models.OrderCreatedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to unmarshal order event", "error", err)
		return
	}

	slog.Info("Order created",
		"order_id", event.OrderID,
		"user_id", event.UserID,
		"ticket_count", event.TicketCount)
}

func (h *Handlers) HandleTicketBooked(msg *stan.Msg) {
	var event models.TicketBookedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to unmarshal ticket event", "error", err)
		return
	}

	slog.Info("Ticket booked",
		"ticket_id", event.TicketID,
		"order_id", event.OrderID,
		"flight_id", event.FlightID,
		"row", event.Row,
		"seat", event.Seat)
}
