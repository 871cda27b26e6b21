package models

import (
	"time"
)

// NATS subjects published by the API and consumed by the worker binary.
const (
	SubjectOrderCreated  = "skyport.order.created"
	SubjectTicketBooked  = "skyport.ticket.booked"
	SubjectFlightCreated = "skyport.flight.created"
	SubjectFlightUpdated = "skyport.flight.updated"
	SubjectFlightDeleted = "skyport.flight.deleted"
)

// OrderCreatedEvent is published once per committed order.
type OrderCreatedEvent struct {
	OrderID     int64     `json:"order_id"`
	UserID      int64     `json:"user_id"`
	TicketCount int       `json:"ticket_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// TicketBookedEvent is published once per ticket in a committed order.
type TicketBookedEvent struct {
	TicketID int64 `json:"ticket_id"`
	OrderID  int64 `json:"order_id"`
	FlightID int64 `json:"flight_id"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
}

// FlightEvent is published on flight create, update and delete so the
// search index can follow the relational store.
type FlightEvent struct {
	FlightID int64  `json:"flight_id"`
	Action   string `json:"action"`
}
