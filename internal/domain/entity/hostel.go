package entity

import (
	"time"
)

// Hostel is an operator account that lists rooms and receives bookings.
// A hostel is created unverified and stays hidden from user-facing listings
// until an administrator flips Verified to true.
type Hostel struct {
	ID             int64      // The unique identifier for the hostel.
	Name           string     // The hostel's public display name.
	Address        string     // The hostel's street address.
	Email          string     // The operator's login identifier, stored lowercase.
	PasswordHash   string     `json:"-"` // The bcrypt hash of the operator's password. Never serialized.
	DocumentNumber string     // Registration document number submitted for approval review.
	Verified       bool       // Approval flag. False at creation, settable only by an admin.
	Rooms          []RoomRate // Between one and four room types with nightly rates.
	CreatedAt      time.Time  // Timestamp of when this hostel registered.
	UpdatedAt      time.Time  // Timestamp of the last modification to this hostel.
}

// RoomRate is one bookable room category offered by a hostel.
type RoomRate struct {
	HostelID    int64   // Foreign key linking the rate to its hostel.
	RoomType    string  // Category name, e.g. "Single", "Dorm".
	NightlyRate float64 // Price per night in the platform currency.
}

// MinRoomTypes and MaxRoomTypes bound how many room categories a hostel may list.
const (
	MinRoomTypes = 1
	MaxRoomTypes = 4
)
