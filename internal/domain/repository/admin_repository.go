package repository

import (
	"context"
	"errors"

	"hostelhub/internal/domain/entity"
)

// ErrAdminNotFound is a domain-specific error returned when an admin is not found.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines read access to administrator accounts.
// Admins are provisioned directly in the database, so there is no Create here.
type AdminRepository interface {
	// FindByEmail retrieves a single admin by their lowercase email address.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
}
