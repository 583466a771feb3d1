package impl

import (
	"context"
	"log/slog"

	deliverycontext "hostelhub/internal/delivery/context"
	"hostelhub/internal/domain/entity"
	domainerrors "hostelhub/internal/domain/errors"
	"hostelhub/internal/domain/repository"
	"hostelhub/internal/domain/service"
	"hostelhub/internal/usecase"

	"github.com/pkg/errors"
)

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	clock        service.Clock
	logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	clock service.Clock,
	logger *slog.Logger,
) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		clock:        clock,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *feedbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Post records a feedback entry. The only creation invariant is the rating
// range: 1 through 5 inclusive. The store assigns the identifier and the
// creation time is stamped here.
func (srv *feedbackService) Post(ctx context.Context, input *usecase.PostFeedbackInput) (*usecase.FeedbackOutput, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.ErrInvalidRating
	}

	feedback := &entity.Feedback{
		HostelID:  input.HostelID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Comments:  input.Comments,
		CreatedAt: srv.clock.Now(),
	}

	if err := srv.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, errors.Wrap(err, "failed to create feedback")
	}

	srv.log(ctx).Info("Feedback posted",
		slog.Int64("feedback_id", feedback.ID),
		slog.Int64("hostel_id", feedback.HostelID),
		slog.Int("rating", feedback.Rating),
	)

	return &usecase.FeedbackOutput{Feedback: feedback}, nil
}

// List retrieves every feedback entry, newest first.
func (srv *feedbackService) List(ctx context.Context) ([]*entity.Feedback, error) {
	entries, err := srv.feedbackRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return entries, nil
}

// ListByHostel retrieves the feedback left for one hostel, newest first.
func (srv *feedbackService) ListByHostel(ctx context.Context, hostelID int64) ([]*entity.Feedback, error) {
	entries, err := srv.feedbackRepo.ListByHostel(ctx, hostelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback by hostel")
	}

	return entries, nil
}

// Count returns the total number of feedback entries.
func (srv *feedbackService) Count(ctx context.Context) (int64, error) {
	count, err := srv.feedbackRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count feedback")
	}

	return count, nil
}

// AverageRating returns the mean rating for one hostel. A hostel with no
// feedback yields nil rather than zero so callers can tell the two apart.
func (srv *feedbackService) AverageRating(ctx context.Context, hostelID int64) (*float64, error) {
	average, err := srv.feedbackRepo.AverageRating(ctx, hostelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to average feedback rating")
	}

	return average, nil
}
