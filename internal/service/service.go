package service

import (
	"skyport/internal/auth"
	"skyport/internal/cache"
	"skyport/internal/repository"
)

// Publisher is the messaging surface services need. *messaging.NATSClient
// satisfies it; tests substitute a mock.
type Publisher interface {
	Publish(subject string, data interface{}) error
}

type Services struct {
	Users     *UserService
	Airports  *AirportService
	Airplanes *AirplaneService
	Crew      *CrewService
	Routes    *RouteService
	Flights   *FlightService
	Orders    *OrderService
}

func NewServices(repos *repository.Repositories, nats Publisher, cacheClient *cache.Client, authManager *auth.Manager) *Services {
	var flightSearch flightSearchStore
	if repos.FlightSearch != nil {
		flightSearch = repos.FlightSearch
	}

	return &Services{
		Users:     NewUserService(repos.Users, authManager),
		Airports:  NewAirportService(repos.Airports),
		Airplanes: NewAirplaneService(repos.Airplanes, repos.AirplaneTypes),
		Crew:      NewCrewService(repos.Crew),
		Routes:    NewRouteService(repos.Routes, repos.Airports),
		Flights:   NewFlightService(repos.Flights, repos.Routes, repos.Airplanes, repos.Crew, flightSearch, nats, cacheClient),
		Orders:    NewOrderService(repos.Orders, repos.Flights, nats, cacheClient),
	}
}
