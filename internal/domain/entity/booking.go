package entity

import (
	"time"
)

// BookingStatus is the lifecycle state of a booking. The numeric values are part
// of the external contract and must stay stable.
type BookingStatus int

const (
	// BookingPending is the initial state of every booking.
	BookingPending BookingStatus = 0
	// BookingConfirmed marks a booking accepted by the hostel.
	BookingConfirmed BookingStatus = 1
	// BookingCancelled marks a booking withdrawn by either side.
	BookingCancelled BookingStatus = 2
)

// Valid reports whether s is one of the three known statuses.
// There is no transition table: any valid status may replace any other.
func (s BookingStatus) Valid() bool {
	return s >= BookingPending && s <= BookingCancelled
}

// String returns the human-readable status name.
func (s BookingStatus) String() string {
	switch s {
	case BookingPending:
		return "Pending"
	case BookingConfirmed:
		return "Confirmed"
	case BookingCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Booking links one user to one hostel for a stay in a given room category.
// CheckOut must be strictly after CheckIn; this is enforced at creation and
// referential integrity against users and hostels is the store's concern.
type Booking struct {
	ID        int64         // The unique identifier for the booking.
	HostelID  int64         // The hostel being booked.
	UserID    int64         // The user placing the booking.
	RoomType  string        // The booked room category name.
	CheckIn   time.Time     // First night of the stay.
	CheckOut  time.Time     // Departure day, strictly after CheckIn.
	CreatedAt time.Time     // Timestamp of when the booking was placed.
	Status    BookingStatus // Current lifecycle state.
}
