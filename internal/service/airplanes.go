package service

import (
	"context"
	"fmt"

	"skyport/internal/apperrors"
	"skyport/internal/models"
	"skyport/internal/validation"
)

type airplaneStore interface {
	Create(ctx context.Context, airplane *models.Airplane) error
	GetByID(ctx context.Context, id int64) (*models.Airplane, error)
	List(ctx context.Context, filter models.AirplaneFilter) ([]models.Airplane, error)
	Update(ctx context.Context, airplane *models.Airplane) (bool, error)
	UpdateImagePath(ctx context.Context, id int64, path string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type airplaneTypeStore interface {
	Create(ctx context.Context, airplaneType *models.AirplaneType) error
	GetByID(ctx context.Context, id int64) (*models.AirplaneType, error)
	List(ctx context.Context) ([]models.AirplaneType, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type AirplaneService struct {
	airplanes airplaneStore
	types     airplaneTypeStore
}

func NewAirplaneService(airplanes airplaneStore, types airplaneTypeStore) *AirplaneService {
	return &AirplaneService{airplanes: airplanes, types: types}
}

func (s *AirplaneService) CreateType(ctx context.Context, req *models.CreateAirplaneTypeRequest) (*models.AirplaneType, error) {
	airplaneType := &models.AirplaneType{Name: req.Name}

	if err := s.types.Create(ctx, airplaneType); err != nil {
		return nil, fmt.Errorf("failed to create airplane type: %w", err)
	}

	return airplaneType, nil
}

func (s *AirplaneService) ListTypes(ctx context.Context) ([]models.AirplaneType, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list airplane types: %w", err)
	}
	if types == nil {
		types = []models.AirplaneType{}
	}
	return types, nil
}

func (s *AirplaneService) DeleteType(ctx context.Context, id int64) error {
	found, err := s.types.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete airplane type: %w", err)
	}
	if !found {
		return apperrors.NewNotFound("airplane type", id)
	}
	return nil
}

func (s *AirplaneService) Create(ctx context.Context, req *models.CreateAirplaneRequest) (*models.Airplane, error) {
	if err := s.validateAirplane(ctx, req); err != nil {
		return nil, err
	}

	airplane := &models.Airplane{
		Name:           req.Name,
		Rows:           req.Rows,
		SeatsInRow:     req.SeatsInRow,
		AirplaneTypeID: req.AirplaneTypeID,
	}

	if err := s.airplanes.Create(ctx, airplane); err != nil {
		return nil, fmt.Errorf("failed to create airplane: %w", err)
	}

	return s.Get(ctx, airplane.ID)
}

func (s *AirplaneService) Get(ctx context.Context, id int64) (*models.Airplane, error) {
	airplane, err := s.airplanes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get airplane: %w", err)
	}
	if airplane == nil {
		return nil, apperrors.NewNotFound("airplane", id)
	}
	return airplane, nil
}

func (s *AirplaneService) List(ctx context.Context, filter models.AirplaneFilter) ([]models.Airplane, error) {
	airplanes, err := s.airplanes.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list airplanes: %w", err)
	}
	if airplanes == nil {
		airplanes = []models.Airplane{}
	}
	return airplanes, nil
}

func (s *AirplaneService) Update(ctx context.Context, id int64, req *models.CreateAirplaneRequest) (*models.Airplane, error) {
	if err := s.validateAirplane(ctx, req); err != nil {
		return nil, err
	}

	airplane := &models.Airplane{
		ID:             id,
		Name:           req.Name,
		Rows:           req.Rows,
		SeatsInRow:     req.SeatsInRow,
		AirplaneTypeID: req.AirplaneTypeID,
	}

	found, err := s.airplanes.Update(ctx, airplane)
	if err != nil {
		return nil, fmt.Errorf("failed to update airplane: %w", err)
	}
	if !found {
		return nil, apperrors.NewNotFound("airplane", id)
	}

	return s.Get(ctx, id)
}

func (s *AirplaneService) Delete(ctx context.Context, id int64) error {
	found, err := s.airplanes.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete airplane: %w", err)
	}
	if !found {
		return apperrors.NewNotFound("airplane", id)
	}
	return nil
}

// AttachImage records the stored image path for an airplane.
func (s *AirplaneService) AttachImage(ctx context.Context, id int64, path string) (*models.Airplane, error) {
	found, err := s.airplanes.UpdateImagePath(ctx, id, path)
	if err != nil {
		return nil, fmt.Errorf("failed to update airplane image: %w", err)
	}
	if !found {
		return nil, apperrors.NewNotFound("airplane", id)
	}

	return s.Get(ctx, id)
}

func (s *AirplaneService) validateAirplane(ctx context.Context, req *models.CreateAirplaneRequest) error {
	if err := validation.ValidateAirplane(req.Rows, req.SeatsInRow); err != nil {
		return err
	}

	airplaneType, err := s.types.GetByID(ctx, req.AirplaneTypeID)
	if err != nil {
		return fmt.Errorf("failed to get airplane type: %w", err)
	}
	if airplaneType == nil {
		return apperrors.NewValidation("airplane_type_id", "airplane type %d does not exist", req.AirplaneTypeID)
	}

	return nil
}
