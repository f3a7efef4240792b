package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cliptube/cliptube/internal/domain/model"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// Exists reports whether a user with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
