package usecase

import (
	"context"
	"time"

	"hostelhub/internal/domain/entity"
)

// CreateBookingInput defines the data required to place a booking.
type CreateBookingInput struct {
	HostelID int64     `json:"hostelId" validate:"required,gt=0"`
	UserID   int64     `json:"userId" validate:"required,gt=0"`
	RoomType string    `json:"roomType" validate:"required,max=50"`
	CheckIn  time.Time `json:"checkIn" validate:"required"`
	CheckOut time.Time `json:"checkOut" validate:"required"`
}

// UpdateBookingStatusInput defines the data required to move a booking to a new status.
// Status intentionally carries the raw wire integer; the service validates the range.
type UpdateBookingStatusInput struct {
	BookingID int64 `json:"bookingId" validate:"required,gt=0"`
	Status    int   `json:"status"`
}

// BookingOutput returns a single booking.
type BookingOutput struct {
	Booking *entity.Booking
}

// BookingUsecase defines the booking lifecycle operations and the read-only
// query surface consumed by the delivery layer.
type BookingUsecase interface {
	// Create validates the date range, stamps creation time and Pending status,
	// and persists the booking.
	Create(ctx context.Context, input *CreateBookingInput) (*BookingOutput, error)

	// UpdateStatus overwrites the booking status. Any of the three valid
	// statuses may replace any other; there is no transition table.
	UpdateStatus(ctx context.Context, input *UpdateBookingStatusInput) error

	// Delete removes the booking unconditionally.
	Delete(ctx context.Context, bookingID int64) error

	// GetByID retrieves a single booking.
	GetByID(ctx context.Context, bookingID int64) (*BookingOutput, error)

	// ListByUser retrieves the bookings placed by a user.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Booking, error)

	// ListByHostel retrieves the bookings targeting a hostel.
	ListByHostel(ctx context.Context, hostelID int64) ([]*entity.Booking, error)

	// List retrieves every booking.
	List(ctx context.Context) ([]*entity.Booking, error)

	// Count returns the total number of bookings.
	Count(ctx context.Context) (int64, error)

	// ConfirmationQR renders a PNG QR code carrying the booking reference.
	ConfirmationQR(ctx context.Context, bookingID int64) ([]byte, error)
}
