package models

import (
	"time"
)

// User represents an account in the system. Staff users administer reference
// data and flights; regular users only create and read their own orders.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	IsStaff      bool      `json:"is_staff" db:"is_staff"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	RegisteredAt time.Time `json:"registered_at" db:"registered_at"`
}

// Airport is reference data created by staff.
type Airport struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	ClosestBigCity string `json:"closest_big_city" db:"closest_big_city"`
}

// AirplaneType is reference data created by staff.
type AirplaneType struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Airplane owns the seating grid every ticket is validated against.
type Airplane struct {
	ID             int64   `json:"id" db:"id"`
	Name           string  `json:"name" db:"name"`
	Rows           int     `json:"rows" db:"rows"`
	SeatsInRow     int     `json:"seats_in_row" db:"seats_in_row"`
	AirplaneTypeID int64   `json:"airplane_type_id" db:"airplane_type_id"`
	ImagePath      *string `json:"image_path" db:"image_path"`

	// Resolved from airplane_types on list/detail reads; not a column.
	AirplaneTypeName string `json:"airplane_type_name,omitempty"`
}

// Capacity returns the total number of seats on the airplane.
func (a *Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

// Crew is a crew member assignable to flights.
type Crew struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

// FullName returns the crew member's display name.
func (c *Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Route is a directed source->destination airport pair with a distance.
// The (source, destination) pair is unique at the storage level.
type Route struct {
	ID            int64 `json:"id" db:"id"`
	SourceID      int64 `json:"source_id" db:"source_id"`
	DestinationID int64 `json:"destination_id" db:"destination_id"`
	Distance      int   `json:"distance" db:"distance"`

	// Resolved from airports on list/detail reads.
	SourceName      string `json:"source_name,omitempty"`
	DestinationName string `json:"destination_name,omitempty"`
}

// Flight binds a route, an airplane, a time window and a crew roster.
type Flight struct {
	ID            int64     `json:"id" db:"id"`
	RouteID       int64     `json:"route_id" db:"route_id"`
	AirplaneID    int64     `json:"airplane_id" db:"airplane_id"`
	DepartureTime time.Time `json:"departure_time" db:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time" db:"arrival_time"`

	// Resolved on list/detail reads; not columns.
	SourceName       string `json:"source_name,omitempty"`
	DestinationName  string `json:"destination_name,omitempty"`
	AirplaneName     string `json:"airplane_name,omitempty"`
	AirplaneCapacity int    `json:"airplane_capacity,omitempty"`

	// TicketsAvailable is derived per query: capacity minus committed
	// tickets. It is never stored.
	TicketsAvailable int `json:"tickets_available"`

	Crew []Crew `json:"crew,omitempty"`
}

// Order is a timestamped purchase container owned by one user.
type Order struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Filled from tickets on reads; not a column.
	Tickets []Ticket `json:"tickets,omitempty"`
}

// Ticket is a (row, seat) reservation on a flight, belonging to an order.
// The (flight, row, seat) triple is unique at the storage level.
type Ticket struct {
	ID       int64 `json:"id" db:"id"`
	Row      int   `json:"row" db:"row_number"`
	Seat     int   `json:"seat" db:"seat_number"`
	FlightID int64 `json:"flight_id" db:"flight_id"`
	OrderID  int64 `json:"order_id" db:"order_id"`

	// Flight summary resolved on order reads.
	SourceName      string     `json:"source_name,omitempty"`
	DestinationName string     `json:"destination_name,omitempty"`
	DepartureTime   *time.Time `json:"departure_time,omitempty"`
}
