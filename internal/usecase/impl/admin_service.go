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

// RoleAdmin is the JWT role claim for platform operators.
const RoleAdmin = "admin"

// adminService implements the AdminUsecase interface.
type adminService struct {
	adminRepo    repository.AdminRepository
	hostelRepo   repository.HostelRepository
	userRepo     repository.UserRepository
	bookingRepo  repository.BookingRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	adminRepo repository.AdminRepository,
	hostelRepo repository.HostelRepository,
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		adminRepo:    adminRepo,
		hostelRepo:   hostelRepo,
		userRepo:     userRepo,
		bookingRepo:  bookingRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates a platform admin.
func (srv *adminService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AdminLoginOutput, error) {
	email := normalizeEmail(input.Email)

	admin, err := srv.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	access, refresh, err := srv.tokenService.GenerateTokens(admin.ID, RoleAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("Admin logged in", slog.Int64("admin_id", admin.ID))

	return &usecase.AdminLoginOutput{
		LoginOutput: usecase.LoginOutput{AccessToken: access, RefreshToken: refresh},
		Admin:       admin,
	}, nil
}

// SetHostelStatus overwrites the hostel approval flag. Both directions are
// always legal; the flag never self-transitions.
func (srv *adminService) SetHostelStatus(ctx context.Context, input *usecase.SetHostelStatusInput) error {
	if err := srv.hostelRepo.SetVerified(ctx, input.HostelID, input.Verified); err != nil {
		if errors.Is(err, repository.ErrHostelNotFound) {
			return domainerrors.ErrHostelNotFound
		}

		return errors.Wrap(err, "failed to set hostel status")
	}

	srv.log(ctx).Info("Hostel approval status updated",
		slog.Int64("hostel_id", input.HostelID),
		slog.Bool("verified", input.Verified),
	)

	return nil
}

// ListHostels returns every hostel regardless of approval state.
func (srv *adminService) ListHostels(ctx context.Context) ([]*entity.Hostel, error) {
	hostels, err := srv.hostelRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hostels")
	}

	return hostels, nil
}

// ListUsers returns every registered user.
func (srv *adminService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// Counts returns the dashboard totals.
func (srv *adminService) Counts(ctx context.Context) (*usecase.PlatformCounts, error) {
	users, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	hostels, err := srv.hostelRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count hostels")
	}

	bookings, err := srv.bookingRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count bookings")
	}

	return &usecase.PlatformCounts{
		Users:    users,
		Hostels:  hostels,
		Bookings: bookings,
	}, nil
}
