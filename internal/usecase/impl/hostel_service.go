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

// RoleHostel is the JWT role claim for operator accounts.
const RoleHostel = "hostel"

// hostelService implements the HostelUsecase interface.
type hostelService struct {
	txManager       repository.TransactionManager
	hostelRepo      repository.HostelRepository
	descriptionRepo repository.HostelDescriptionRepository
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	logger          *slog.Logger
}

// NewHostelService is the constructor for hostelService.
func NewHostelService(
	txManager repository.TransactionManager,
	hostelRepo repository.HostelRepository,
	descriptionRepo repository.HostelDescriptionRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.HostelUsecase {
	return &hostelService{
		txManager:       txManager,
		hostelRepo:      hostelRepo,
		descriptionRepo: descriptionRepo,
		hasher:          hasher,
		tokenService:    tokenService,
		logger:          logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *hostelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an operator account. The hostel starts unverified and is
// excluded from user-facing listings until an admin approves it.
func (srv *hostelService) Register(ctx context.Context, input *usecase.RegisterHostelInput) (*usecase.RegisterHostelOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting hostel registration", slog.String("email", email))

	if len(input.Rooms) < entity.MinRoomTypes || len(input.Rooms) > entity.MaxRoomTypes {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("number of room types must be between 1 and 4")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	rooms := make([]entity.RoomRate, 0, len(input.Rooms))
	for _, room := range input.Rooms {
		rooms = append(rooms, entity.RoomRate{
			RoomType:    room.RoomType,
			NightlyRate: room.NightlyRate,
		})
	}

	hostel := &entity.Hostel{
		Name:           input.Name,
		Address:        input.Address,
		Email:          email,
		PasswordHash:   hash,
		DocumentNumber: input.DocumentNumber,
		Verified:       false,
		Rooms:          rooms,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		hostelRepo := repoFactory.HostelRepo()

		_, err := hostelRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrHostelAlreadyExists
		}
		if !errors.Is(err, repository.ErrHostelNotFound) {
			return errors.Wrap(err, "failed to check existing hostel")
		}

		return hostelRepo.Create(ctx, hostel)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Hostel registered, pending approval", slog.Int64("hostel_id", hostel.ID))

	return &usecase.RegisterHostelOutput{Hostel: hostel}, nil
}

// Login authenticates an operator.
func (srv *hostelService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.HostelLoginOutput, error) {
	email := normalizeEmail(input.Email)

	hostel, err := srv.hostelRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrHostelNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find hostel")
	}

	if !srv.hasher.Check(input.Password, hostel.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	access, refresh, err := srv.tokenService.GenerateTokens(hostel.ID, RoleHostel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("Hostel logged in", slog.Int64("hostel_id", hostel.ID))

	return &usecase.HostelLoginOutput{
		LoginOutput: usecase.LoginOutput{AccessToken: access, RefreshToken: refresh},
		Hostel:      hostel,
	}, nil
}

// ResetPassword replaces a forgotten operator password.
func (srv *hostelService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	email := normalizeEmail(input.Email)

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		hostelRepo := repoFactory.HostelRepo()

		hostel, err := hostelRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrHostelNotFound) {
				return domainerrors.ErrHostelNotFound
			}

			return errors.Wrap(err, "failed to find hostel")
		}

		hostel.PasswordHash = hash

		return hostelRepo.Update(ctx, hostel)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Hostel password reset", slog.String("email", email))

	return nil
}

// AddDescription publishes a description for an existing hostel. Repeated
// calls append rather than overwrite; GetDescription serves the earliest entry.
func (srv *hostelService) AddDescription(ctx context.Context, input *usecase.AddHostelDescriptionInput) (*usecase.HostelDescriptionOutput, error) {
	if _, err := srv.hostelRepo.FindByID(ctx, input.HostelID); err != nil {
		if errors.Is(err, repository.ErrHostelNotFound) {
			return nil, domainerrors.ErrHostelNotFound
		}

		return nil, errors.Wrap(err, "failed to find hostel")
	}

	counts := make([]entity.RoomTypeCount, 0, len(input.RoomCounts))
	for _, count := range input.RoomCounts {
		counts = append(counts, entity.RoomTypeCount{
			RoomType: count.RoomType,
			Count:    count.Count,
		})
	}

	description := &entity.HostelDescription{
		HostelID:    input.HostelID,
		Location:    input.Location,
		Description: input.Description,
		RoomCounts:  counts,
	}

	if err := srv.descriptionRepo.Create(ctx, description); err != nil {
		return nil, errors.Wrap(err, "failed to create hostel description")
	}

	srv.log(ctx).Info("Hostel description added",
		slog.Int64("description_id", description.ID),
		slog.Int64("hostel_id", description.HostelID),
	)

	return &usecase.HostelDescriptionOutput{Description: description}, nil
}

// GetDescription retrieves the hostel's published description.
func (srv *hostelService) GetDescription(ctx context.Context, hostelID int64) (*usecase.HostelDescriptionOutput, error) {
	description, err := srv.descriptionRepo.FindByHostel(ctx, hostelID)
	if err != nil {
		if errors.Is(err, repository.ErrHostelDescriptionNotFound) {
			return nil, domainerrors.ErrDescriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find hostel description")
	}

	return &usecase.HostelDescriptionOutput{Description: description}, nil
}
