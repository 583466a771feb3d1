package repository

import (
	"context"
	"errors"

	"hostelhub/internal/domain/entity"
)

// ErrFeedbackNotFound is a domain-specific error returned when a feedback entry is not found.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository defines the standard operations for feedback persistence.
// Feedback is append-only, so there is no update or delete here.
type FeedbackRepository interface {
	// Create persists a new feedback entry and fills in the generated ID.
	Create(ctx context.Context, feedback *entity.Feedback) error

	// List retrieves every feedback entry, newest first.
	List(ctx context.Context) ([]*entity.Feedback, error)

	// ListByHostel retrieves the feedback left for one hostel, newest first.
	ListByHostel(ctx context.Context, hostelID int64) ([]*entity.Feedback, error)

	// Count returns the total number of feedback entries.
	Count(ctx context.Context) (int64, error)

	// AverageRating returns the mean rating for one hostel, or nil when the
	// hostel has no feedback yet.
	AverageRating(ctx context.Context, hostelID int64) (*float64, error)
}
