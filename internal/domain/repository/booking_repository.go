package repository

import (
	"context"
	"errors"

	"hostelhub/internal/domain/entity"
)

// ErrBookingNotFound is a domain-specific error returned when a booking is not found.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines the standard operations for booking persistence.
type BookingRepository interface {
	// FindByID retrieves a single booking by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)

	// ListByUser retrieves every booking placed by the given user.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Booking, error)

	// ListByHostel retrieves every booking targeting the given hostel.
	ListByHostel(ctx context.Context, hostelID int64) ([]*entity.Booking, error)

	// List retrieves every booking, for administrative views.
	List(ctx context.Context) ([]*entity.Booking, error)

	// Count returns the total number of bookings.
	Count(ctx context.Context) (int64, error)

	// Create persists a new booking and fills in the generated ID.
	Create(ctx context.Context, booking *entity.Booking) error

	// UpdateStatus overwrites the status of the booking with the given ID.
	// Returns ErrBookingNotFound when no such booking exists.
	UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) error

	// Delete removes the booking with the given ID. Hard delete, no cascade.
	// Returns ErrBookingNotFound when no such booking exists.
	Delete(ctx context.Context, id int64) error
}
