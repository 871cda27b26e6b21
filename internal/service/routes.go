package service

import (
	"context"
	"fmt"

	"skyport/internal/apperrors"
	"skyport/internal/models"
	"skyport/internal/validation"
)

type routeStore interface {
	Create(ctx context.Context, route *models.Route) error
	GetByID(ctx context.Context, id int64) (*models.Route, error)
	List(ctx context.Context, filter models.RouteFilter) ([]models.Route, error)
	Update(ctx context.Context, route *models.Route) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type routeAirportStore interface {
	GetByID(ctx context.Context, id int64) (*models.Airport, error)
}

type RouteService struct {
	routes   routeStore
	airports routeAirportStore
}

func NewRouteService(routes routeStore, airports routeAirportStore) *RouteService {
	return &RouteService{routes: routes, airports: airports}
}

func (s *RouteService) Create(ctx context.Context, req *models.CreateRouteRequest) (*models.Route, error) {
	if err := s.validateEndpoints(ctx, req); err != nil {
		return nil, err
	}

	route := &models.Route{
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
		Distance:      req.Distance,
	}

	if err := s.routes.Create(ctx, route); err != nil {
		return nil, err
	}

	return s.Get(ctx, route.ID)
}

func (s *RouteService) Get(ctx context.Context, id int64) (*models.Route, error) {
	route, err := s.routes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get route: %w", err)
	}
	if route == nil {
		return nil, apperrors.NewNotFound("route", id)
	}
	return route, nil
}

func (s *RouteService) List(ctx context.Context, filter models.RouteFilter) ([]models.Route, error) {
	routes, err := s.routes.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	if routes == nil {
		routes = []models.Route{}
	}
	return routes, nil
}

func (s *RouteService) Update(ctx context.Context, id int64, req *models.CreateRouteRequest) (*models.Route, error) {
	if err := s.validateEndpoints(ctx, req); err != nil {
		return nil, err
	}

	route := &models.Route{
		ID:            id,
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
		Distance:      req.Distance,
	}

	found, err := s.routes.Update(ctx, route)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFound("route", id)
	}

	return s.Get(ctx, id)
}

func (s *RouteService) Delete(ctx context.Context, id int64) error {
	found, err := s.routes.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete route: %w", err)
	}
	if !found {
		return apperrors.NewNotFound("route", id)
	}
	return nil
}

func (s *RouteService) validateEndpoints(ctx context.Context, req *models.CreateRouteRequest) error {
	if err := validation.ValidateRoute(req.SourceID, req.DestinationID); err != nil {
		return err
	}

	source, err := s.airports.GetByID(ctx, req.SourceID)
	if err != nil {
		return fmt.Errorf("failed to get source airport: %w", err)
	}
	if source == nil {
		return apperrors.NewValidation("source_id", "airport %d does not exist", req.SourceID)
	}

	destination, err := s.airports.GetByID(ctx, req.DestinationID)
	if err != nil {
		return fmt.Errorf("failed to get destination airport: %w", err)
	}
	if destination == nil {
		return apperrors.NewValidation("destination_id", "airport %d does not exist", req.DestinationID)
	}

	return nil
}
