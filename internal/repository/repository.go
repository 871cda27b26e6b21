package repository

import (
	"errors"

	"github.com/lib/pq"

	"skyport/internal/database"
	"skyport/internal/search"
)

type Repositories struct {
	Users         *UserRepository
	Airports      *AirportRepository
	AirplaneTypes *AirplaneTypeRepository
	Airplanes     *AirplaneRepository
	Crew          *CrewRepository
	Routes        *RouteRepository
	Flights       *FlightRepository
	Orders        *OrderRepository
	FlightSearch  *FlightSearchRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(db),
		Airports:      NewAirportRepository(db),
		AirplaneTypes: NewAirplaneTypeRepository(db),
		Airplanes:     NewAirplaneRepository(db),
		Crew:          NewCrewRepository(db),
		Routes:        NewRouteRepository(db),
		Flights:       NewFlightRepository(db),
		Orders:        NewOrderRepository(db),
	}
}

func NewRepositoriesWithSearch(db *database.DB, es *search.ElasticsearchClient) *Repositories {
	repos := NewRepositories(db)
	repos.FlightSearch = NewFlightSearchRepository(es)
	return repos
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (error code 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// int64Array adapts a slice of IDs for use with = ANY($n) placeholders.
func int64Array(ids []int64) interface{} {
	return pq.Array(ids)
}
