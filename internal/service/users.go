package service

import (
	"context"
	"fmt"
	"time"

	"skyport/internal/apperrors"
	"skyport/internal/auth"
	"skyport/internal/models"
)

type userStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type UserService struct {
	users  userStore
	tokens *auth.Manager
}

func NewUserService(users userStore, tokens *auth.Manager) *UserService {
	return &UserService{users: users, tokens: tokens}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies credentials and issues an access token. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, req *models.TokenRequest) (*models.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !user.IsActive || !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrUnauthorized
	}

	token, expiresAt, err := s.tokens.IssueToken(user.ID, user.IsStaff)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.Truncate(time.Second),
	}, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user", id)
	}
	return user, nil
}
