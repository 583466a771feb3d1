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

// bookingRepository implements the domain.BookingRepository interface using GORM.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// FindByID retrieves a single booking by its unique ID.
func (repo *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	var bookingM model.BookingModel
	err := repo.db.WithContext(ctx).First(&bookingM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	return toBookingDomain(&bookingM), nil
}

// ListByUser retrieves every booking placed by the given user.
func (repo *bookingRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Booking, error) {
	return repo.list(ctx, "user_id = ?", userID)
}

// ListByHostel retrieves every booking targeting the given hostel.
func (repo *bookingRepository) ListByHostel(ctx context.Context, hostelID int64) ([]*entity.Booking, error) {
	return repo.list(ctx, "hostel_id = ?", hostelID)
}

// List retrieves every booking, for administrative views.
func (repo *bookingRepository) List(ctx context.Context) ([]*entity.Booking, error) {
	return repo.list(ctx, "")
}

func (repo *bookingRepository) list(ctx context.Context, cond string, args ...any) ([]*entity.Booking, error) {
	query := repo.db.WithContext(ctx).Order("id")
	if cond != "" {
		query = query.Where(cond, args...)
	}

	var bookingMs []model.BookingModel
	if err := query.Find(&bookingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	bookings := make([]*entity.Booking, 0, len(bookingMs))
	for i := range bookingMs {
		bookings = append(bookings, toBookingDomain(&bookingMs[i]))
	}

	return bookings, nil
}

// Count returns the total number of bookings.
func (repo *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.BookingModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count bookings")
	}

	return count, nil
}

// Create persists a new booking and backfills the generated ID.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown hostel or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required booking information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID

	return nil
}

// UpdateStatus overwrites the status of the booking with the given ID.
func (repo *bookingRepository) UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) error {
	result := repo.db.WithContext(ctx).Model(&model.BookingModel{}).
		Where("id = ?", id).
		Update("status", int(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update booking status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// Delete removes the booking with the given ID. Hard delete, no cascade.
func (repo *bookingRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.BookingModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete booking")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// toBookingDomain maps the persistence model to a pure domain entity.
func toBookingDomain(m *model.BookingModel) *entity.Booking {
	return &entity.Booking{
		ID:        m.ID,
		HostelID:  m.HostelID,
		UserID:    m.UserID,
		RoomType:  m.RoomType,
		CheckIn:   m.CheckIn,
		CheckOut:  m.CheckOut,
		CreatedAt: m.CreatedAt,
		Status:    entity.BookingStatus(m.Status),
	}
}

// fromBookingDomain maps a domain entity to its persistence model.
func fromBookingDomain(b *entity.Booking) *model.BookingModel {
	return &model.BookingModel{
		ID:        b.ID,
		HostelID:  b.HostelID,
		UserID:    b.UserID,
		RoomType:  b.RoomType,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		CreatedAt: b.CreatedAt,
		Status:    int(b.Status),
	}
}
