package entity

import (
	"time"
)

// Admin is a platform operator account. Admins are provisioned out of band;
// the service only authenticates them and exposes administrative queries.
type Admin struct {
	ID           int64     // The unique identifier for the admin.
	Email        string    // The admin's login identifier, stored lowercase.
	PasswordHash string    `json:"-"` // The bcrypt hash of the admin's password. Never serialized.
	CreatedAt    time.Time // Timestamp of when this admin account was provisioned.
}
