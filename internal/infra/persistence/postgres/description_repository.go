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

// hostelDescriptionRepository implements the domain.HostelDescriptionRepository interface using GORM.
type hostelDescriptionRepository struct {
	db *gorm.DB
}

// NewHostelDescriptionRepository is the constructor for hostelDescriptionRepository.
func NewHostelDescriptionRepository(db *gorm.DB) repository.HostelDescriptionRepository {
	return &hostelDescriptionRepository{db: db}
}

// Create persists a new description together with its room counts and
// backfills the generated IDs.
func (repo *hostelDescriptionRepository) Create(ctx context.Context, description *entity.HostelDescription) error {
	descriptionM := fromDescriptionDomain(description)

	if err := repo.db.WithContext(ctx).Create(descriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown hostel reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required description information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create hostel description")
	}

	*description = *toDescriptionDomain(descriptionM)

	return nil
}

// FindByHostel retrieves the earliest description recorded for the hostel.
func (repo *hostelDescriptionRepository) FindByHostel(ctx context.Context, hostelID int64) (*entity.HostelDescription, error) {
	var descriptionM model.HostelDescriptionModel
	err := repo.db.WithContext(ctx).
		Preload("RoomCounts").
		Where("hostel_id = ?", hostelID).
		Order("id").
		First(&descriptionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHostelDescriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find hostel description")
	}

	return toDescriptionDomain(&descriptionM), nil
}

// toDescriptionDomain maps the persistence model to a pure domain entity.
func toDescriptionDomain(m *model.HostelDescriptionModel) *entity.HostelDescription {
	counts := make([]entity.RoomTypeCount, 0, len(m.RoomCounts))
	for _, count := range m.RoomCounts {
		counts = append(counts, entity.RoomTypeCount{
			DescriptionID: count.DescriptionID,
			RoomType:      count.RoomType,
			Count:         count.Count,
		})
	}

	return &entity.HostelDescription{
		ID:          m.ID,
		HostelID:    m.HostelID,
		Location:    m.Location,
		Description: m.Description,
		RoomCounts:  counts,
		CreatedAt:   m.CreatedAt,
	}
}

// fromDescriptionDomain maps a domain entity to its persistence model.
func fromDescriptionDomain(d *entity.HostelDescription) *model.HostelDescriptionModel {
	counts := make([]model.RoomTypeCountModel, 0, len(d.RoomCounts))
	for _, count := range d.RoomCounts {
		counts = append(counts, model.RoomTypeCountModel{
			RoomType: count.RoomType,
			Count:    count.Count,
		})
	}

	return &model.HostelDescriptionModel{
		ID:          d.ID,
		HostelID:    d.HostelID,
		Location:    d.Location,
		Description: d.Description,
		RoomCounts:  counts,
	}
}
