package repository

import (
	"context"
	"errors"

	"hostelhub/internal/domain/entity"
)

// ErrHostelDescriptionNotFound is a domain-specific error returned when a hostel has no description.
var ErrHostelDescriptionNotFound = errors.New("hostel description not found")

// HostelDescriptionRepository defines the standard operations for hostel description persistence.
type HostelDescriptionRepository interface {
	// Create persists a new description and fills in the generated ID.
	Create(ctx context.Context, description *entity.HostelDescription) error

	// FindByHostel retrieves the earliest description recorded for a hostel.
	// It returns ErrHostelDescriptionNotFound when the hostel has none.
	FindByHostel(ctx context.Context, hostelID int64) (*entity.HostelDescription, error)
}
