package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

type CreateUserInput struct {
	Username string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, models.NewValidationError("Username is required")
	}
	user := &models.User{Username: username}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUsername returns a zero-or-one element slice; an unknown id is not an
// error, the caller gets an empty array.
func (s *UserService) GetUsername(ctx context.Context, userID uint) ([]models.UsernameRow, error) {
	return s.userRepo.GetUsernameByID(ctx, userID)
}

func (s *UserService) SearchUsers(ctx context.Context, query string) ([]models.UsernameRow, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.userRepo.SearchByUsername(ctx, query)
}
