package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "hostelhub/internal/domain/errors"
	"hostelhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verificationFixtures holds all test dependencies for verification service tests.
type verificationFixtures struct {
	service usecase.VerificationUsecase
	mailer  *fakeMailer
	clock   *fakeClock
}

func createTestVerificationService(t *testing.T) verificationFixtures {
	t.Helper()

	mailer := &fakeMailer{}
	clock := newFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	service := NewVerificationService(mailer, clock, DefaultChallengeTTL, newDiscardLogger())

	return verificationFixtures{
		service: service,
		mailer:  mailer,
		clock:   clock,
	}
}

func issueFor(t *testing.T, fx verificationFixtures, email string) string {
	t.Helper()

	err := fx.service.IssueChallenge(context.Background(), &usecase.IssueChallengeInput{Email: email})
	require.NoError(t, err)

	return fx.mailer.lastCode()
}

func TestVerificationService_IssueAndConfirm(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()

	code := issueFor(t, fx, "guest@example.com")
	require.Len(t, code, 6)
	assert.GreaterOrEqual(t, code, "100000")
	assert.LessOrEqual(t, code, "999999")

	err := fx.service.ConfirmChallenge(ctx, &usecase.ConfirmChallengeInput{
		Email: "guest@example.com",
		Code:  code,
	})
	require.NoError(t, err)
}

func TestVerificationService_ConfirmNormalizesEmailCase(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()

	code := issueFor(t, fx, "Guest@Example.COM")

	err := fx.service.ConfirmChallenge(ctx, &usecase.ConfirmChallengeInput{
		Email: "  guest@example.com ",
		Code:  code,
	})
	require.NoError(t, err)
}

func TestVerificationService_ConfirmedCodeCannotBeReplayed(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()

	code := issueFor(t, fx, "guest@example.com")

	input := &usecase.ConfirmChallengeInput{Email: "guest@example.com", Code: code}
	require.NoError(t, fx.service.ConfirmChallenge(ctx, input))

	err := fx.service.ConfirmChallenge(ctx, input)
	assert.ErrorIs(t, errors.Cause(err), domainerrors.ErrChallengeNotFound)
}

func TestVerificationService_ConfirmWithoutIssue(t *testing.T) {
	fx := createTestVerificationService(t)

	err := fx.service.ConfirmChallenge(context.Background(), &usecase.ConfirmChallengeInput{
		Email: "guest@example.com",
		Code:  "123456",
	})
	assert.ErrorIs(t, errors.Cause(err), domainerrors.ErrChallengeNotFound)
}

func TestVerificationService_WrongCodeLeavesChallengeConfirmable(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()

	code := issueFor(t, fx, "guest@example.com")

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	err := fx.service.ConfirmChallenge(ctx, &usecase.ConfirmChallengeInput{
		Email: "guest@example.com",
		Code:  wrong,
	})
	assert.ErrorIs(t, errors.Cause(err), domainerrors.ErrChallengeMismatch)

	// A failed attempt does not consume the challenge.
	err = fx.service.ConfirmChallenge(ctx, &usecase.ConfirmChallengeInput{
		Email: "guest@example.com",
		Code:  code,
	})
	require.NoError(t, err)
}

func TestVerificationService_NewChallengeSupersedesOldOne(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()

	firstCode := issueFor(t, fx, "first@example.com")
	secondCode := issueFor(t, fx, "second@example.com")

	// The slot now belongs to the second address; the first is gone entirely.
	err := fx.service.ConfirmChallenge(ctx, &usecase.ConfirmChallengeInput{
		Email: "first@example.com",
		Code:  firstCode,
	})
	assert.ErrorIs(t, errors.Cause(err), domainerrors.ErrChallengeNotFound)

	err = fx.service.ConfirmChallenge(ctx, &usecase.ConfirmChallengeInput{
		Email: "second@example.com",
		Code:  secondCode,
	})
	require.NoError(t, err)
}

func TestVerificationService_ReissueForSameEmailInvalidatesOldCode(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()

	firstCode := issueFor(t, fx, "guest@example.com")

	var secondCode string
	for {
		secondCode = issueFor(t, fx, "guest@example.com")
		if secondCode != firstCode {
			break
		}
	}

	err := fx.service.ConfirmChallenge(ctx, &usecase.ConfirmChallengeInput{
		Email: "guest@example.com",
		Code:  firstCode,
	})
	assert.ErrorIs(t, errors.Cause(err), domainerrors.ErrChallengeMismatch)
}

func TestVerificationService_CodeStillValidAtExactTTL(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()

	code := issueFor(t, fx, "guest@example.com")
	fx.clock.Advance(DefaultChallengeTTL)

	err := fx.service.ConfirmChallenge(ctx, &usecase.ConfirmChallengeInput{
		Email: "guest@example.com",
		Code:  code,
	})
	require.NoError(t, err)
}

func TestVerificationService_CodeExpiresAfterTTL(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()

	code := issueFor(t, fx, "guest@example.com")
	fx.clock.Advance(DefaultChallengeTTL + time.Second)

	input := &usecase.ConfirmChallengeInput{Email: "guest@example.com", Code: code}
	err := fx.service.ConfirmChallenge(ctx, input)
	assert.ErrorIs(t, errors.Cause(err), domainerrors.ErrChallengeExpired)

	// The expired challenge stays in the slot; retrying reports expiry again,
	// not absence.
	err = fx.service.ConfirmChallenge(ctx, input)
	assert.ErrorIs(t, errors.Cause(err), domainerrors.ErrChallengeExpired)
}

func TestVerificationService_DispatchFailureStillRecordsChallenge(t *testing.T) {
	fx := createTestVerificationService(t)
	ctx := context.Background()

	fx.mailer.sendErr = errors.New("smtp connection refused")

	err := fx.service.IssueChallenge(ctx, &usecase.IssueChallengeInput{Email: "guest@example.com"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrMailDispatch.ErrorCode(), appErr.ErrorCode())

	// Record-then-send: the challenge was written before the dispatch failed,
	// so a wrong code still reports a mismatch rather than absence.
	err = fx.service.ConfirmChallenge(ctx, &usecase.ConfirmChallengeInput{
		Email: "guest@example.com",
		Code:  "000000",
	})
	assert.ErrorIs(t, errors.Cause(err), domainerrors.ErrChallengeMismatch)
}

func TestVerificationService_MailCarriesCode(t *testing.T) {
	fx := createTestVerificationService(t)

	code := issueFor(t, fx, "guest@example.com")

	require.Len(t, fx.mailer.sent, 1)
	mail := fx.mailer.sent[0]
	assert.Equal(t, "guest@example.com", mail.To)
	assert.Equal(t, mailSubject, mail.Subject)
	assert.Contains(t, mail.Body, code)
}
