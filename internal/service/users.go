package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/vkazmin/blogcore/internal/model"
	"github.com/vkazmin/blogcore/internal/repository"
)

// UserService exposes profile operations for the authenticated user.
type UserService interface {
	// Profile returns the caller's own record.
	Profile(ctx context.Context, id uuid.UUID) (model.User, error)
	// UpdateProfile changes username/email. Secrets are not touchable here.
	UpdateProfile(ctx context.Context, id uuid.UUID, username, email string) (model.User, error)
}

type UserServiceImpl struct {
	users repository.UserRepository
}

// NewUserService constructs UserService.
func NewUserService(users repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{users: users}
}

func (s *UserServiceImpl) Profile(ctx context.Context, id uuid.UUID) (model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	return *u, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id uuid.UUID, username, email string) (model.User, error) {
	u, err := s.users.UpdateProfile(ctx, id, username, email)
	if err != nil {
		return model.User{}, err
	}
	return *u, nil
}
