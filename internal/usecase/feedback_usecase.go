package usecase

import (
	"context"

	"hostelhub/internal/domain/entity"
)

// PostFeedbackInput defines the data required to leave feedback for a hostel.
// Rating intentionally carries the raw wire integer; the service validates the range.
type PostFeedbackInput struct {
	HostelID int64  `json:"hostelId" validate:"required,gt=0"`
	UserID   int64  `json:"userId" validate:"required,gt=0"`
	Rating   int    `json:"rating"`
	Comments string `json:"comments" validate:"max=1000"`
}

// FeedbackOutput returns a single feedback entry.
type FeedbackOutput struct {
	Feedback *entity.Feedback
}

// FeedbackUsecase defines the guest-feedback operations. Feedback is
// append-only; entries are never edited or removed.
type FeedbackUsecase interface {
	// Post validates the rating range, stamps creation time and persists the entry.
	Post(ctx context.Context, input *PostFeedbackInput) (*FeedbackOutput, error)

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
