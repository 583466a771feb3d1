package entity

import (
	"time"
)

// VerificationChallenge is a short-lived numeric code proving control of an
// email address. The platform holds at most one live challenge at a time:
// issuing a new one overwrites the previous challenge regardless of its email.
type VerificationChallenge struct {
	Email    string    // Target address, normalized to lowercase.
	Code     string    // Six ASCII digits, no leading zero.
	IssuedAt time.Time // When the code was generated.
}

// Empty reports whether the slot holds no challenge, either because none was
// ever issued or because the last one was consumed.
func (c VerificationChallenge) Empty() bool {
	return c.Email == "" && c.Code == ""
}

// ExpiredAt reports whether the challenge is past its lifetime at the given
// instant. An expired challenge stays in the slot until overwritten; it is
// simply inert.
func (c VerificationChallenge) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(c.IssuedAt) > ttl
}
