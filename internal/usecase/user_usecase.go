package usecase

import (
	"context"

	"hostelhub/internal/domain/entity"
)

// RegisterUserInput defines the data required to register a new user account.
// Callers are expected to have confirmed the email through the verification
// challenge before invoking registration.
type RegisterUserInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Address  string `json:"address" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginInput defines the data required for any actor to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordInput defines the data required to replace a forgotten password.
type ResetPasswordInput struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72"`
}

// RegisterUserOutput returns the newly created user's basic information.
type RegisterUserOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserLoginOutput pairs the token set with the authenticated user.
type UserLoginOutput struct {
	LoginOutput
	User *entity.User
}

// UserUsecase defines the guest-account business operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error)
	Login(ctx context.Context, input *LoginInput) (*UserLoginOutput, error)
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error

	// ListVerifiedHostels is the user-facing catalogue: only approved hostels.
	ListVerifiedHostels(ctx context.Context) ([]*entity.Hostel, error)

	// HostelRooms lists the room rates offered by one hostel.
	HostelRooms(ctx context.Context, hostelID int64) ([]entity.RoomRate, error)
}
