package service

import (
	"context"
	"fmt"

	"skyport/internal/apperrors"
	"skyport/internal/models"
)

type airportStore interface {
	Create(ctx context.Context, airport *models.Airport) error
	GetByID(ctx context.Context, id int64) (*models.Airport, error)
	List(ctx context.Context, filter models.AirportFilter) ([]models.Airport, error)
	Update(ctx context.Context, airport *models.Airport) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type AirportService struct {
	airports airportStore
}

func NewAirportService(airports airportStore) *AirportService {
	return &AirportService{airports: airports}
}

func (s *AirportService) Create(ctx context.Context, req *models.CreateAirportRequest) (*models.Airport, error) {
	airport := &models.Airport{
		Name:           req.Name,
		ClosestBigCity: req.ClosestBigCity,
	}

	if err := s.airports.Create(ctx, airport); err != nil {
		return nil, fmt.Errorf("failed to create airport: %w", err)
	}

	return airport, nil
}

func (s *AirportService) Get(ctx context.Context, id int64) (*models.Airport, error) {
	airport, err := s.airports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get airport: %w", err)
	}
	if airport == nil {
		return nil, apperrors.NewNotFound("airport", id)
	}
	return airport, nil
}

func (s *AirportService) List(ctx context.Context, filter models.AirportFilter) ([]models.Airport, error) {
	airports, err := s.airports.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list airports: %w", err)
	}
	if airports == nil {
		airports = []models.Airport{}
	}
	return airports, nil
}

func (s *AirportService) Update(ctx context.Context, id int64, req *models.CreateAirportRequest) (*models.Airport, error) {
	airport := &models.Airport{
		ID:             id,
		Name:           req.Name,
		ClosestBigCity: req.ClosestBigCity,
	}

	found, err := s.airports.Update(ctx, airport)
	if err != nil {
		return nil, fmt.Errorf("failed to update airport: %w", err)
	}
	if !found {
		return nil, apperrors.NewNotFound("airport", id)
	}

	return airport, nil
}

func (s *AirportService) Delete(ctx context.Context, id int64) error {
	found, err := s.airports.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete airport: %w", err)
	}
	if !found {
		return apperrors.NewNotFound("airport", id)
	}
	return nil
}
