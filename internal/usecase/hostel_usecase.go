package usecase

import (
	"context"

	"hostelhub/internal/domain/entity"
)

// RoomRateInput is one room category submitted at hostel registration.
type RoomRateInput struct {
	RoomType    string  `json:"roomType" validate:"required,max=50"`
	NightlyRate float64 `json:"nightlyRate" validate:"gte=0"`
}

// RegisterHostelInput defines the data required to register a hostel account.
// The hostel starts unverified and stays off user-facing listings until an
// administrator approves it.
type RegisterHostelInput struct {
	Name           string          `json:"name" validate:"required,max=100"`
	Address        string          `json:"address" validate:"required,max=255"`
	Email          string          `json:"email" validate:"required,email,max=100"`
	Password       string          `json:"password" validate:"required,min=8,max=72"`
	DocumentNumber string          `json:"documentNumber" validate:"required,max=50"`
	Rooms          []RoomRateInput `json:"rooms" validate:"required,min=1,max=4,dive"`
}

// RegisterHostelOutput returns the newly created hostel's basic information.
type RegisterHostelOutput struct {
	Hostel *entity.Hostel
}

// HostelLoginOutput pairs the token set with the authenticated hostel.
type HostelLoginOutput struct {
	LoginOutput
	Hostel *entity.Hostel
}

// RoomTypeCountInput is one room-availability figure submitted with a description.
type RoomTypeCountInput struct {
	RoomType string `json:"roomType" validate:"required,max=50"`
	Count    int    `json:"count" validate:"gte=0"`
}

// AddHostelDescriptionInput defines the data required to publish a hostel's
// location blurb and room availability figures.
type AddHostelDescriptionInput struct {
	HostelID    int64                `json:"hostelId" validate:"required,gt=0"`
	Location    string               `json:"location" validate:"required,max=500"`
	Description string               `json:"description" validate:"required"`
	RoomCounts  []RoomTypeCountInput `json:"roomCounts" validate:"max=4,dive"`
}

// HostelDescriptionOutput returns a single hostel description.
type HostelDescriptionOutput struct {
	Description *entity.HostelDescription
}

// HostelUsecase defines the operator-account business operations.
type HostelUsecase interface {
	Register(ctx context.Context, input *RegisterHostelInput) (*RegisterHostelOutput, error)
	Login(ctx context.Context, input *LoginInput) (*HostelLoginOutput, error)
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error

	// AddDescription publishes a description for an existing hostel. Repeated
	// calls append; GetDescription serves the earliest entry.
	AddDescription(ctx context.Context, input *AddHostelDescriptionInput) (*HostelDescriptionOutput, error)

	// GetDescription retrieves the hostel's published description.
	GetDescription(ctx context.Context, hostelID int64) (*HostelDescriptionOutput, error)
}
