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

// RoleUser is the JWT role claim for guest accounts.
const RoleUser = "user"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hostelRepo   repository.HostelRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hostelRepo repository.HostelRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		userRepo:     userRepo,
		hostelRepo:   hostelRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a guest account. The email must not already be taken; the
// password is hashed before anything touches the store.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterUserOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting user registration", slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Name:         input.Name,
		Address:      input.Address,
		Email:        email,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Int64("user_id", user.ID))

	return &usecase.RegisterUserOutput{User: user}, nil
}

// Login authenticates a guest. An unknown email and a wrong password are the
// same outcome so the response does not leak which emails are registered.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.UserLoginOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	access, refresh, err := srv.tokenService.GenerateTokens(user.ID, RoleUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("User logged in", slog.Int64("user_id", user.ID))

	return &usecase.UserLoginOutput{
		LoginOutput: usecase.LoginOutput{AccessToken: access, RefreshToken: refresh},
		User:        user,
	}, nil
}

// ResetPassword replaces a forgotten password with a freshly hashed one.
// The caller is expected to have confirmed the email through a verification
// challenge first.
func (srv *userService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	email := normalizeEmail(input.Email)

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.PasswordHash = hash

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User password reset", slog.String("email", email))

	return nil
}

// ListVerifiedHostels returns the approved hostels only. Unverified hostels
// never appear in the user-facing catalogue.
func (srv *userService) ListVerifiedHostels(ctx context.Context) ([]*entity.Hostel, error) {
	hostels, err := srv.hostelRepo.ListVerified(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list verified hostels")
	}

	return hostels, nil
}

// HostelRooms lists the room rates offered by one hostel.
func (srv *userService) HostelRooms(ctx context.Context, hostelID int64) ([]entity.RoomRate, error) {
	hostel, err := srv.hostelRepo.FindByID(ctx, hostelID)
	if err != nil {
		if errors.Is(err, repository.ErrHostelNotFound) {
			return nil, domainerrors.ErrHostelNotFound
		}

		return nil, errors.Wrap(err, "failed to find hostel")
	}

	return hostel.Rooms, nil
}
