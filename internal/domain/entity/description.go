package entity

import (
	"time"
)

// HostelDescription is the free-form profile a hostel publishes alongside its
// listing: a location blurb, a longer description, and how many rooms of each
// category it offers.
type HostelDescription struct {
	ID          int64           // The unique identifier for the description.
	HostelID    int64           // The hostel this description belongs to.
	Location    string          // Short location text, up to 500 characters.
	Description string          // Longer free-form description.
	RoomCounts  []RoomTypeCount // How many rooms exist per category, at most MaxRoomTypes entries.
	CreatedAt   time.Time       // Timestamp of when the description was added.
}

// RoomTypeCount is the number of physical rooms a hostel has in one category.
type RoomTypeCount struct {
	DescriptionID int64  // Foreign key linking the count to its description.
	RoomType      string // Category name, matching the hostel's room rates.
	Count         int    // Number of rooms in this category.
}
