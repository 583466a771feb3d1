// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// IssueChallengeInput defines the data required to send a verification code.
type IssueChallengeInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ConfirmChallengeInput defines the data required to confirm a verification code.
type ConfirmChallengeInput struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// VerificationUsecase manages the platform's single-slot email verification
// challenge. Issuing a challenge for any address invalidates whatever
// challenge was live before, and a confirmed code cannot be replayed.
type VerificationUsecase interface {
	// IssueChallenge generates a fresh code for the address, records it in the
	// slot, and dispatches it by email. The slot stays written even when the
	// dispatch fails, so the caller may retry confirmation without reissuing.
	IssueChallenge(ctx context.Context, input *IssueChallengeInput) error

	// ConfirmChallenge checks the submitted code against the slot. On success
	// the slot is cleared atomically; the same code can never verify twice.
	ConfirmChallenge(ctx context.Context, input *ConfirmChallengeInput) error
}
