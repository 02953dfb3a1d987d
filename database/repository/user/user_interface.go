package userRepo

import (
	"context"

	"shareit/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID, or nil if there is none.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Exists reports whether a user with the ID exists.
	Exists(ctx context.Context, id string) (bool, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
}
