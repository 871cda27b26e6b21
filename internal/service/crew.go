package service

import (
	"context"
	"fmt"

	"skyport/internal/apperrors"
	"skyport/internal/models"
)

type crewStore interface {
	Create(ctx context.Context, member *models.Crew) error
	GetByID(ctx context.Context, id int64) (*models.Crew, error)
	List(ctx context.Context, filter models.CrewFilter) ([]models.Crew, error)
	Update(ctx context.Context, member *models.Crew) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type CrewService struct {
	crew crewStore
}

func NewCrewService(crew crewStore) *CrewService {
	return &CrewService{crew: crew}
}

func (s *CrewService) Create(ctx context.Context, req *models.CreateCrewRequest) (*models.Crew, error) {
	member := &models.Crew{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.crew.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create crew member: %w", err)
	}

	return member, nil
}

func (s *CrewService) Get(ctx context.Context, id int64) (*models.Crew, error) {
	member, err := s.crew.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get crew member: %w", err)
	}
	if member == nil {
		return nil, apperrors.NewNotFound("crew member", id)
	}
	return member, nil
}

func (s *CrewService) List(ctx context.Context, filter models.CrewFilter) ([]models.Crew, error) {
	members, err := s.crew.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew: %w", err)
	}
	if members == nil {
		members = []models.Crew{}
	}
	return members, nil
}

func (s *CrewService) Update(ctx context.Context, id int64, req *models.CreateCrewRequest) (*models.Crew, error) {
	member := &models.Crew{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	found, err := s.crew.Update(ctx, member)
	if err != nil {
		return nil, fmt.Errorf("failed to update crew member: %w", err)
	}
	if !found {
		return nil, apperrors.NewNotFound("crew member", id)
	}

	return member, nil
}

func (s *CrewService) Delete(ctx context.Context, id int64) error {
	found, err := s.crew.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete crew member: %w", err)
	}
	if !found {
		return apperrors.NewNotFound("crew member", id)
	}
	return nil
}
