package usecase

import (
	"context"

	"hostelhub/internal/domain/entity"
)

// SetHostelStatusInput defines the data for the hostel approval flip.
type SetHostelStatusInput struct {
	HostelID int64 `json:"hostelId" validate:"required,gt=0"`
	Verified bool  `json:"verified"`
}

// AdminLoginOutput pairs the token set with the authenticated admin.
type AdminLoginOutput struct {
	LoginOutput
	Admin *entity.Admin
}

// PlatformCounts aggregates the admin dashboard totals.
type PlatformCounts struct {
	Users    int64 `json:"users"`
	Hostels  int64 `json:"hostels"`
	Bookings int64 `json:"bookings"`
}

// AdminUsecase defines the administrative business operations.
type AdminUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*AdminLoginOutput, error)

	// SetHostelStatus unconditionally overwrites the hostel approval flag.
	// Both directions are always legal; a hostel never flips its own flag.
	SetHostelStatus(ctx context.Context, input *SetHostelStatusInput) error

	// ListHostels returns every hostel regardless of approval state.
	ListHostels(ctx context.Context) ([]*entity.Hostel, error)

	// ListUsers returns every registered user.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// Counts returns the dashboard totals.
	Counts(ctx context.Context) (*PlatformCounts, error)
}
