package postgres

import (
	"context"

	"hostelhub/internal/domain/entity"
	"hostelhub/internal/domain/repository"
	"hostelhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the domain.AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByEmail retrieves a single admin by their lowercase email address.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).Where("email = ?", email).First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return &entity.Admin{
		ID:           adminM.ID,
		Email:        adminM.Email,
		PasswordHash: adminM.PasswordHash,
		CreatedAt:    adminM.CreatedAt,
	}, nil
}
