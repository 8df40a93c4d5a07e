// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/vkazmin/blogcore/internal/model"
)

// UserRepository provides access to identity records. Uniqueness of username
// and email is enforced by the store, not by pre-checks.
type UserRepository interface {
	// Create inserts a new user; DuplicateKey if username or email is taken.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID; NotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByEmail loads a user by email; NotFound if it does not exist.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// UpdateProfile changes username/email; DuplicateKey on collision.
	UpdateProfile(ctx context.Context, id uuid.UUID, username, email string) (*model.User, error)
}
