// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"

	deliverycontext "hostelhub/internal/delivery/context"
	"hostelhub/internal/domain/entity"
	domainerrors "hostelhub/internal/domain/errors"
	"hostelhub/internal/domain/service"
	"hostelhub/internal/usecase"

	"github.com/pkg/errors"
)

const (
	// Codes are six digits with no leading zero: [100000, 999999].
	codeMin      = 100000
	codeSpan     = 900000
	mailSubject  = "Your Email Verification Code"
	mailBodyTmpl = "Your verification code is: "
)

// DefaultChallengeTTL is how long an issued code stays confirmable.
const DefaultChallengeTTL = 5 * time.Minute

// verificationService implements the VerificationUsecase interface.
//
// The platform keeps exactly one live challenge in a process-wide slot.
// Issuing a challenge for any address overwrites whatever was there, so
// concurrent issuance for different addresses races and only the last writer's
// code is confirmable. The mutex protects the slot triple against lost updates
// between a writer's IssueChallenge and a concurrent ConfirmChallenge.
type verificationService struct {
	mu   sync.Mutex
	slot entity.VerificationChallenge

	mailer service.MailSender
	clock  service.Clock
	ttl    time.Duration
	logger *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
// A non-positive ttl falls back to DefaultChallengeTTL.
func NewVerificationService(
	mailer service.MailSender,
	clock service.Clock,
	ttl time.Duration,
	logger *slog.Logger,
) usecase.VerificationUsecase {
	if ttl <= 0 {
		ttl = DefaultChallengeTTL
	}

	return &verificationService{
		mailer: mailer,
		clock:  clock,
		ttl:    ttl,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueChallenge generates a fresh code, records it in the slot, and mails it.
// Record-then-send: a dispatch failure leaves the recorded challenge valid, so
// the caller can still confirm if the message eventually arrived.
func (srv *verificationService) IssueChallenge(ctx context.Context, input *usecase.IssueChallengeInput) error {
	email := normalizeEmail(input.Email)

	code, err := generateCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}

	srv.mu.Lock()
	srv.slot = entity.VerificationChallenge{
		Email:    email,
		Code:     code,
		IssuedAt: srv.clock.Now(),
	}
	srv.mu.Unlock()

	srv.log(ctx).Info("Issued verification challenge", slog.String("email", email))

	if err := srv.mailer.Send(email, mailSubject, mailBodyTmpl+code); err != nil {
		srv.log(ctx).Warn("Verification mail dispatch failed",
			slog.String("email", email),
			slog.Any("error", err),
		)

		return domainerrors.ErrMailDispatch.WrapMessage(err.Error())
	}

	return nil
}

// ConfirmChallenge checks the submitted code against the slot and clears the
// slot on success so the code cannot be replayed.
func (srv *verificationService) ConfirmChallenge(ctx context.Context, input *usecase.ConfirmChallengeInput) error {
	email := normalizeEmail(input.Email)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	// Covers both "nothing ever issued" and "another email owns the slot".
	if srv.slot.Empty() || srv.slot.Email != email {
		srv.log(ctx).Warn("Verification attempt for an email that does not match the slot",
			slog.String("email", email),
		)

		return domainerrors.ErrChallengeNotFound
	}

	if srv.slot.ExpiredAt(srv.clock.Now(), srv.ttl) {
		// The expired challenge stays in place until overwritten.
		srv.log(ctx).Warn("Verification code expired", slog.String("email", email))

		return domainerrors.ErrChallengeExpired
	}

	if srv.slot.Code != input.Code {
		srv.log(ctx).Warn("Invalid verification code submitted", slog.String("email", email))

		return domainerrors.ErrChallengeMismatch
	}

	// Both email and code cleared together so the code is single-use.
	srv.slot = entity.VerificationChallenge{}
	srv.log(ctx).Info("Email verified", slog.String("email", email))

	return nil
}

// generateCode draws a uniformly random six-digit code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return strconv.FormatInt(codeMin+n.Int64(), 10), nil
}

// normalizeEmail lowercases and trims an address so slot comparisons are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
