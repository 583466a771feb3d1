package postgres

import (
	"context"

	"hostelhub/internal/domain/entity"
	domainerrors "hostelhub/internal/domain/errors"
	"hostelhub/internal/domain/repository"
	"hostelhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// feedbackRepository implements the domain.FeedbackRepository interface using GORM.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create persists a new feedback entry and backfills the generated ID.
func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown hostel or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required feedback information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID

	return nil
}

// List retrieves every feedback entry, newest first.
func (repo *feedbackRepository) List(ctx context.Context) ([]*entity.Feedback, error) {
	return repo.list(ctx, "")
}

// ListByHostel retrieves the feedback left for the given hostel, newest first.
func (repo *feedbackRepository) ListByHostel(ctx context.Context, hostelID int64) ([]*entity.Feedback, error) {
	return repo.list(ctx, "hostel_id = ?", hostelID)
}

func (repo *feedbackRepository) list(ctx context.Context, cond string, args ...any) ([]*entity.Feedback, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if cond != "" {
		query = query.Where(cond, args...)
	}

	var feedbackMs []model.FeedbackModel
	if err := query.Find(&feedbackMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	entries := make([]*entity.Feedback, 0, len(feedbackMs))
	for i := range feedbackMs {
		entries = append(entries, toFeedbackDomain(&feedbackMs[i]))
	}

	return entries, nil
}

// Count returns the total number of feedback entries.
func (repo *feedbackRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.FeedbackModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count feedback")
	}

	return count, nil
}

// AverageRating returns the mean rating for the given hostel. AVG over zero
// rows yields SQL NULL, which scans into a nil pointer here.
func (repo *feedbackRepository) AverageRating(ctx context.Context, hostelID int64) (*float64, error) {
	var average *float64
	err := repo.db.WithContext(ctx).Model(&model.FeedbackModel{}).
		Where("hostel_id = ?", hostelID).
		Select("AVG(rating)").
		Scan(&average).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to average feedback rating")
	}

	return average, nil
}

// toFeedbackDomain maps the persistence model to a pure domain entity.
func toFeedbackDomain(m *model.FeedbackModel) *entity.Feedback {
	return &entity.Feedback{
		ID:        m.ID,
		HostelID:  m.HostelID,
		UserID:    m.UserID,
		Rating:    m.Rating,
		Comments:  m.Comments,
		CreatedAt: m.CreatedAt,
	}
}

// fromFeedbackDomain maps a domain entity to its persistence model.
func fromFeedbackDomain(f *entity.Feedback) *model.FeedbackModel {
	return &model.FeedbackModel{
		ID:        f.ID,
		HostelID:  f.HostelID,
		UserID:    f.UserID,
		Rating:    f.Rating,
		Comments:  f.Comments,
		CreatedAt: f.CreatedAt,
	}
}
