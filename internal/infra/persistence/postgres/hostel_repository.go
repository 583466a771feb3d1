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

// hostelRepository implements the domain.HostelRepository interface using GORM.
type hostelRepository struct {
	db *gorm.DB
}

// NewHostelRepository is the constructor for hostelRepository.
func NewHostelRepository(db *gorm.DB) repository.HostelRepository {
	return &hostelRepository{db: db}
}

// FindByID retrieves a single hostel by its unique ID, preloading room rates.
func (repo *hostelRepository) FindByID(ctx context.Context, id int64) (*entity.Hostel, error) {
	var hostelM model.HostelModel
	err := repo.db.WithContext(ctx).Preload("Rooms").First(&hostelM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHostelNotFound
		}

		return nil, errors.Wrap(err, "failed to find hostel by id")
	}

	return toHostelDomain(&hostelM), nil
}

// FindByEmail retrieves a single hostel by its lowercase email address.
func (repo *hostelRepository) FindByEmail(ctx context.Context, email string) (*entity.Hostel, error) {
	var hostelM model.HostelModel
	err := repo.db.WithContext(ctx).Preload("Rooms").
		Where("email = ?", email).
		First(&hostelM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHostelNotFound
		}

		return nil, errors.Wrap(err, "failed to find hostel by email")
	}

	return toHostelDomain(&hostelM), nil
}

// Create persists a new hostel with its room rates. GORM inserts the child
// rows alongside the parent.
func (repo *hostelRepository) Create(ctx context.Context, hostel *entity.Hostel) error {
	hostelM := fromHostelDomain(hostel)

	if err := repo.db.WithContext(ctx).Create(hostelM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrHostelAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required hostel information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create hostel")
	}

	hostel.ID = hostelM.ID
	hostel.CreatedAt = hostelM.CreatedAt
	hostel.UpdatedAt = hostelM.UpdatedAt
	for i := range hostelM.Rooms {
		hostel.Rooms[i].HostelID = hostelM.Rooms[i].HostelID
	}

	return nil
}

// Update modifies the hostel's account fields. Room rates are immutable after
// registration in this service.
func (repo *hostelRepository) Update(ctx context.Context, hostel *entity.Hostel) error {
	result := repo.db.WithContext(ctx).Model(&model.HostelModel{}).
		Where("id = ?", hostel.ID).
		Updates(map[string]any{
			"name":            hostel.Name,
			"address":         hostel.Address,
			"email":           hostel.Email,
			"password_hash":   hostel.PasswordHash,
			"document_number": hostel.DocumentNumber,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update hostel")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHostelNotFound
	}

	return nil
}

// SetVerified overwrites the approval flag of the hostel with the given ID.
func (repo *hostelRepository) SetVerified(ctx context.Context, id int64, verified bool) error {
	result := repo.db.WithContext(ctx).Model(&model.HostelModel{}).
		Where("id = ?", id).
		Update("status", verified)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set hostel status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHostelNotFound
	}

	return nil
}

// List retrieves every hostel regardless of approval state, for admin views.
func (repo *hostelRepository) List(ctx context.Context) ([]*entity.Hostel, error) {
	return repo.list(ctx, nil)
}

// ListVerified retrieves only approved hostels, for user-facing listings.
func (repo *hostelRepository) ListVerified(ctx context.Context) ([]*entity.Hostel, error) {
	verified := true

	return repo.list(ctx, &verified)
}

func (repo *hostelRepository) list(ctx context.Context, verified *bool) ([]*entity.Hostel, error) {
	query := repo.db.WithContext(ctx).Preload("Rooms").Order("id")
	if verified != nil {
		query = query.Where("status = ?", *verified)
	}

	var hostelMs []model.HostelModel
	if err := query.Find(&hostelMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list hostels")
	}

	hostels := make([]*entity.Hostel, 0, len(hostelMs))
	for i := range hostelMs {
		hostels = append(hostels, toHostelDomain(&hostelMs[i]))
	}

	return hostels, nil
}

// Count returns the total number of registered hostels.
func (repo *hostelRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.HostelModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count hostels")
	}

	return count, nil
}

// toHostelDomain maps the persistence model to a pure domain entity.
func toHostelDomain(m *model.HostelModel) *entity.Hostel {
	rooms := make([]entity.RoomRate, 0, len(m.Rooms))
	for _, room := range m.Rooms {
		rooms = append(rooms, entity.RoomRate{
			HostelID:    room.HostelID,
			RoomType:    room.RoomType,
			NightlyRate: room.NightlyRate,
		})
	}

	return &entity.Hostel{
		ID:             m.ID,
		Name:           m.Name,
		Address:        m.Address,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		DocumentNumber: m.DocumentNumber,
		Verified:       m.Status,
		Rooms:          rooms,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// fromHostelDomain maps a domain entity to its persistence model.
func fromHostelDomain(h *entity.Hostel) *model.HostelModel {
	rooms := make([]model.RoomRateModel, 0, len(h.Rooms))
	for _, room := range h.Rooms {
		rooms = append(rooms, model.RoomRateModel{
			HostelID:    room.HostelID,
			RoomType:    room.RoomType,
			NightlyRate: room.NightlyRate,
		})
	}

	return &model.HostelModel{
		ID:             h.ID,
		Name:           h.Name,
		Address:        h.Address,
		Email:          h.Email,
		PasswordHash:   h.PasswordHash,
		DocumentNumber: h.DocumentNumber,
		Status:         h.Verified,
		Rooms:          rooms,
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}
