// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is a guest account that browses verified hostels and places bookings.
// Identifiers are integers assigned by the persistence layer.
type User struct {
	ID           int64     // The unique identifier for the user.
	Name         string    // The user's display name.
	Address      string    // The user's residential address.
	Email        string    // The user's login identifier, stored lowercase.
	PasswordHash string    `json:"-"` // The bcrypt hash of the user's password. Never the plaintext, never serialized.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
