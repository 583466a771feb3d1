package entity

import (
	"time"
)

// Feedback is a guest review of a hostel: a 1..5 star rating with optional
// free-text comments. Feedback is append-only; there is no edit or delete.
type Feedback struct {
	ID        int64     // The unique identifier for the feedback entry.
	HostelID  int64     // The hostel being reviewed.
	UserID    int64     // The user who left the review.
	Rating    int       // Star rating, between MinRating and MaxRating inclusive.
	Comments  string    // Optional free-text comments, up to 1000 characters.
	CreatedAt time.Time // Timestamp of when the feedback was posted.
}

// MinRating and MaxRating bound the star rating scale.
const (
	MinRating = 1
	MaxRating = 5
)
