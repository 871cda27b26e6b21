package models

import (
	"time"
)

// RegisterRequest - payload for POST /api/users/register
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// TokenRequest - payload for POST /api/users/token
type TokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// CreateAirportRequest - payload for POST /api/airports
type CreateAirportRequest struct {
	Name           string `json:"name" binding:"required"`
	ClosestBigCity string `json:"closest_big_city" binding:"required"`
}

// CreateAirplaneTypeRequest - payload for POST /api/airplane-types
type CreateAirplaneTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateAirplaneRequest - payload for POST /api/airplanes
type CreateAirplaneRequest struct {
	Name           string `json:"name" binding:"required"`
	Rows           int    `json:"rows" binding:"required"`
	SeatsInRow     int    `json:"seats_in_row" binding:"required"`
	AirplaneTypeID int64  `json:"airplane_type_id" binding:"required"`
}

// CreateCrewRequest - payload for POST /api/crew
type CreateCrewRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// CreateRouteRequest - payload for POST /api/routes
type CreateRouteRequest struct {
	SourceID      int64 `json:"source_id" binding:"required"`
	DestinationID int64 `json:"destination_id" binding:"required"`
	Distance      int   `json:"distance" binding:"required"`
}

// CreateFlightRequest - payload for POST /api/flights and PUT /api/flights/:id
type CreateFlightRequest struct {
	RouteID       int64     `json:"route_id" binding:"required"`
	AirplaneID    int64     `json:"airplane_id" binding:"required"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
	CrewIDs       []int64   `json:"crew_ids"`
}

// TicketRequest is one seat request inside an order.
type TicketRequest struct {
	FlightID int64 `json:"flight_id" binding:"required"`
	Row      int   `json:"row" binding:"required"`
	Seat     int   `json:"seat" binding:"required"`
}

// CreateOrderRequest - payload for POST /api/orders
type CreateOrderRequest struct {
	Tickets []TicketRequest `json:"tickets" binding:"required,min=1,dive"`
}

// UploadImageResponse is returned after an airplane image upload.
type UploadImageResponse struct {
	ImagePath string `json:"image_path"`
}

// AirportFilter narrows airport listings. Name matches as a
// case-insensitive substring.
type AirportFilter struct {
	Name string
}

// AirplaneFilter narrows airplane listings. Name matches as a
// case-insensitive substring.
type AirplaneFilter struct {
	Name string
}

// CrewFilter narrows crew listings. Both fields match as
// case-insensitive substrings and are combined with AND.
type CrewFilter struct {
	FirstName string
	LastName  string
}

// RouteFilter narrows route listings by airport name substrings.
type RouteFilter struct {
	Source      string
	Destination string
}

// FlightFilter narrows flight listings. Source and Destination match the
// route's airport names as case-insensitive substrings; DepartureDate
// matches the calendar date of departure_time.
type FlightFilter struct {
	Source        string
	Destination   string
	DepartureDate *time.Time
}

// OrderFilter narrows and pages a user's own orders.
type OrderFilter struct {
	UserID      int64
	CreatedDate *time.Time
	Page        int
	PageSize    int
}

// OrderPage is a page of a user's orders.
type OrderPage struct {
	Count    int     `json:"count"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
	Results  []Order `json:"results"`
}
