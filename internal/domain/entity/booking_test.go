package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_Valid(t *testing.T) {
	assert.True(t, BookingPending.Valid())
	assert.True(t, BookingConfirmed.Valid())
	assert.True(t, BookingCancelled.Valid())

	assert.False(t, BookingStatus(-1).Valid())
	assert.False(t, BookingStatus(3).Valid())
}

func TestVerificationChallenge_ExpiredAt(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	challenge := VerificationChallenge{Email: "a@example.com", Code: "123456", IssuedAt: issued}
	ttl := 5 * time.Minute

	// The boundary instant is still valid; one nanosecond past it is not.
	assert.False(t, challenge.ExpiredAt(issued.Add(ttl), ttl))
	assert.True(t, challenge.ExpiredAt(issued.Add(ttl+time.Nanosecond), ttl))
}

func TestVerificationChallenge_Empty(t *testing.T) {
	assert.True(t, VerificationChallenge{}.Empty())
	assert.False(t, VerificationChallenge{Email: "a@example.com", Code: "123456"}.Empty())
}
