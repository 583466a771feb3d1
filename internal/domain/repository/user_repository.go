// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hostelhub/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their lowercase email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in the generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// List retrieves every user, for administrative views.
	List(ctx context.Context) ([]*entity.User, error)

	// Count returns the total number of registered users.
	Count(ctx context.Context) (int64, error)
}
