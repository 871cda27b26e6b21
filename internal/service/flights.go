package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skyport/internal/apperrors"
	"skyport/internal/cache"
	"skyport/internal/logger"
	"skyport/internal/models"
	"skyport/internal/search"
	"skyport/internal/validation"
)

// ErrSearchUnavailable is returned when full-text search is requested but
// no search backend is configured.
var ErrSearchUnavailable = errors.New("flight search is not available")

type flightStore interface {
	Create(ctx context.Context, flight *models.Flight, crewIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.Flight, error)
	List(ctx context.Context, filter models.FlightFilter) ([]models.Flight, error)
	Update(ctx context.Context, flight *models.Flight, crewIDs []int64) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type flightRouteStore interface {
	GetByID(ctx context.Context, id int64) (*models.Route, error)
}

type flightAirplaneStore interface {
	GetByID(ctx context.Context, id int64) (*models.Airplane, error)
}

type flightCrewStore interface {
	ExistAll(ctx context.Context, ids []int64) (bool, error)
}

type flightSearchStore interface {
	Search(ctx context.Context, query string, size int) ([]search.FlightDocument, error)
}

type FlightService struct {
	flights   flightStore
	routes    flightRouteStore
	airplanes flightAirplaneStore
	crew      flightCrewStore
	search    flightSearchStore
	nats      Publisher
	cache     *cache.Client
}

func NewFlightService(flights flightStore, routes flightRouteStore, airplanes flightAirplaneStore,
	crew flightCrewStore, searchStore flightSearchStore, nats Publisher, cacheClient *cache.Client) *FlightService {
	return &FlightService{
		flights:   flights,
		routes:    routes,
		airplanes: airplanes,
		crew:      crew,
		search:    searchStore,
		nats:      nats,
		cache:     cacheClient,
	}
}

func (s *FlightService) Create(ctx context.Context, req *models.CreateFlightRequest) (*models.Flight, error) {
	if err := s.validateFlight(ctx, req); err != nil {
		return nil, err
	}

	flight := &models.Flight{
		RouteID:       req.RouteID,
		AirplaneID:    req.AirplaneID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}

	if err := s.flights.Create(ctx, flight, req.CrewIDs); err != nil {
		return nil, fmt.Errorf("failed to create flight: %w", err)
	}

	s.publishFlightEvent(ctx, flight.ID, "created")
	s.invalidateListings(ctx)

	return s.Get(ctx, flight.ID)
}

func (s *FlightService) Get(ctx context.Context, id int64) (*models.Flight, error) {
	flight, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	if flight == nil {
		return nil, apperrors.NewNotFound("flight", id)
	}
	return flight, nil
}

func (s *FlightService) List(ctx context.Context, filter models.FlightFilter) ([]models.Flight, error) {
	cacheKey := s.listCacheKey(filter)

	if s.cache != nil {
		var cached []models.Flight
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	flights, err := s.flights.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	if flights == nil {
		flights = []models.Flight{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, flights, s.cache.FlightsTTL()); err != nil {
			logger.WithContext(ctx).Warn("Failed to cache flight listing", "error", err)
		}
	}

	return flights, nil
}

// Search runs a fuzzy full-text query over airport and city names in the
// search index. Exact filters stay relational; this serves free-form input.
func (s *FlightService) Search(ctx context.Context, query string, size int) ([]search.FlightDocument, error) {
	if s.search == nil {
		return nil, ErrSearchUnavailable
	}

	docs, err := s.search.Search(ctx, query, size)
	if err != nil {
		return nil, fmt.Errorf("failed to search flights: %w", err)
	}
	if docs == nil {
		docs = []search.FlightDocument{}
	}
	return docs, nil
}

func (s *FlightService) Update(ctx context.Context, id int64, req *models.CreateFlightRequest) (*models.Flight, error) {
	if err := s.validateFlight(ctx, req); err != nil {
		return nil, err
	}

	flight := &models.Flight{
		ID:            id,
		RouteID:       req.RouteID,
		AirplaneID:    req.AirplaneID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}

	found, err := s.flights.Update(ctx, flight, req.CrewIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to update flight: %w", err)
	}
	if !found {
		return nil, apperrors.NewNotFound("flight", id)
	}

	s.publishFlightEvent(ctx, id, "updated")
	s.invalidateListings(ctx)

	return s.Get(ctx, id)
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	found, err := s.flights.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete flight: %w", err)
	}
	if !found {
		return apperrors.NewNotFound("flight", id)
	}

	s.publishFlightEvent(ctx, id, "deleted")
	s.invalidateListings(ctx)

	return nil
}

func (s *FlightService) validateFlight(ctx context.Context, req *models.CreateFlightRequest) error {
	if err := validation.ValidateSchedule(req.DepartureTime, req.ArrivalTime); err != nil {
		return err
	}

	route, err := s.routes.GetByID(ctx, req.RouteID)
	if err != nil {
		return fmt.Errorf("failed to get route: %w", err)
	}
	if route == nil {
		return apperrors.NewValidation("route_id", "route %d does not exist", req.RouteID)
	}

	airplane, err := s.airplanes.GetByID(ctx, req.AirplaneID)
	if err != nil {
		return fmt.Errorf("failed to get airplane: %w", err)
	}
	if airplane == nil {
		return apperrors.NewValidation("airplane_id", "airplane %d does not exist", req.AirplaneID)
	}

	if len(req.CrewIDs) > 0 {
		allExist, err := s.crew.ExistAll(ctx, req.CrewIDs)
		if err != nil {
			return fmt.Errorf("failed to check crew: %w", err)
		}
		if !allExist {
			return apperrors.NewValidation("crew_ids", "one or more crew members do not exist")
		}
	}

	return nil
}

func (s *FlightService) publishFlightEvent(ctx context.Context, flightID int64, action string) {
	if s.nats == nil {
		return
	}

	event := models.FlightEvent{FlightID: flightID, Action: action}

	var subject string
	switch action {
	case "created":
		subject = models.SubjectFlightCreated
	case "updated":
		subject = models.SubjectFlightUpdated
	case "deleted":
		subject = models.SubjectFlightDeleted
	}

	if err := s.nats.Publish(subject, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish flight event",
			"error", err,
			"flight_id", flightID,
			"action", action)
	}
}

func (s *FlightService) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPrefix(ctx, cache.FlightListPrefix); err != nil {
		logger.WithContext(ctx).Warn("Failed to invalidate flight listings", "error", err)
	}
}

func (s *FlightService) listCacheKey(filter models.FlightFilter) string {
	date := ""
	if filter.DepartureDate != nil {
		date = filter.DepartureDate.Format(time.DateOnly)
	}
	return fmt.Sprintf("%ssrc=%s&dst=%s&date=%s",
		cache.FlightListPrefix, filter.Source, filter.Destination, date)
}
