package repository

import (
	"context"
	"errors"

	"hostelhub/internal/domain/entity"
)

// ErrHostelNotFound is a domain-specific error returned when a hostel is not found.
var ErrHostelNotFound = errors.New("hostel not found")

// HostelRepository defines the standard operations for hostel persistence.
type HostelRepository interface {
	// FindByID retrieves a single hostel by its unique ID, including room rates.
	FindByID(ctx context.Context, id int64) (*entity.Hostel, error)

	// FindByEmail retrieves a single hostel by its lowercase email address.
	FindByEmail(ctx context.Context, email string) (*entity.Hostel, error)

	// Create persists a new hostel with its room rates and fills in the generated ID.
	Create(ctx context.Context, hostel *entity.Hostel) error

	// Update modifies an existing hostel entity in the storage.
	Update(ctx context.Context, hostel *entity.Hostel) error

	// SetVerified overwrites the approval flag of the hostel with the given ID.
	// Returns ErrHostelNotFound when no such hostel exists.
	SetVerified(ctx context.Context, id int64, verified bool) error

	// List retrieves every hostel regardless of approval state, for admin views.
	List(ctx context.Context) ([]*entity.Hostel, error)

	// ListVerified retrieves only approved hostels, for user-facing listings.
	ListVerified(ctx context.Context) ([]*entity.Hostel, error)

	// Count returns the total number of registered hostels.
	Count(ctx context.Context) (int64, error)
}
