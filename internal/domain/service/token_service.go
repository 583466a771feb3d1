package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for issuing and validating login tokens.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for the given
	// actor. Role is one of "user", "hostel", "admin".
	GenerateTokens(subjectID int64, role string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its parsed form.
	ValidateAccessToken(tokenString string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured lifetime of refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
