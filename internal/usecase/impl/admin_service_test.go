package impl

import (
	"context"
	"testing"

	"hostelhub/internal/domain/entity"
	domainerrors "hostelhub/internal/domain/errors"
	"hostelhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	adminRepo   *memAdminRepo
	hostelRepo  *memHostelRepo
	userRepo    *memUserRepo
	bookingRepo *memBookingRepo
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	t.Helper()

	adminRepo := newMemAdminRepo()
	hostelRepo := newMemHostelRepo()
	userRepo := newMemUserRepo()
	bookingRepo := newMemBookingRepo()
	service := NewAdminService(adminRepo, hostelRepo, userRepo, bookingRepo, fakeHasher{}, fakeTokenService{}, newDiscardLogger())

	return adminServiceFixtures{
		service:     service,
		adminRepo:   adminRepo,
		hostelRepo:  hostelRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
	}
}

func TestAdminService_Login(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.adminRepo.add(&entity.Admin{
		ID:           1,
		Email:        "root@example.com",
		PasswordHash: "hashed:admin secret",
	})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "root@example.com",
		Password: "admin secret",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Admin.ID)
	assert.NotEmpty(t, output.AccessToken)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "root@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "admin secret",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_SetHostelStatus_BothDirections(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	hostel := &entity.Hostel{Name: "Flip Inn", Email: "flip@example.com"}
	require.NoError(t, fx.hostelRepo.Create(ctx, hostel))

	err := fx.service.SetHostelStatus(ctx, &usecase.SetHostelStatusInput{
		HostelID: hostel.ID,
		Verified: true,
	})
	require.NoError(t, err)

	got, err := fx.hostelRepo.FindByID(ctx, hostel.ID)
	require.NoError(t, err)
	assert.True(t, got.Verified)

	// Revoking approval is just as legal as granting it.
	err = fx.service.SetHostelStatus(ctx, &usecase.SetHostelStatusInput{
		HostelID: hostel.ID,
		Verified: false,
	})
	require.NoError(t, err)

	got, err = fx.hostelRepo.FindByID(ctx, hostel.ID)
	require.NoError(t, err)
	assert.False(t, got.Verified)
}

func TestAdminService_SetHostelStatus_SameValueIsIdempotent(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	hostel := &entity.Hostel{Name: "Same Inn", Email: "same@example.com"}
	require.NoError(t, fx.hostelRepo.Create(ctx, hostel))

	input := &usecase.SetHostelStatusInput{HostelID: hostel.ID, Verified: true}
	require.NoError(t, fx.service.SetHostelStatus(ctx, input))
	require.NoError(t, fx.service.SetHostelStatus(ctx, input))

	got, err := fx.hostelRepo.FindByID(ctx, hostel.ID)
	require.NoError(t, err)
	assert.True(t, got.Verified)
}

func TestAdminService_SetHostelStatus_UnknownHostel(t *testing.T) {
	fx := createTestAdminService(t)

	err := fx.service.SetHostelStatus(context.Background(), &usecase.SetHostelStatusInput{
		HostelID: 404,
		Verified: true,
	})
	assert.ErrorIs(t, err, domainerrors.ErrHostelNotFound)
}

func TestAdminService_ListHostels_IncludesUnverified(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	require.NoError(t, fx.hostelRepo.Create(ctx, &entity.Hostel{Name: "A", Email: "a@example.com", Verified: true}))
	require.NoError(t, fx.hostelRepo.Create(ctx, &entity.Hostel{Name: "B", Email: "b@example.com"}))

	hostels, err := fx.service.ListHostels(ctx)
	require.NoError(t, err)
	assert.Len(t, hostels, 2)
}

func TestAdminService_Counts(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	require.NoError(t, fx.userRepo.Create(ctx, &entity.User{Name: "U", Email: "u@example.com"}))
	require.NoError(t, fx.hostelRepo.Create(ctx, &entity.Hostel{Name: "H", Email: "h@example.com"}))
	require.NoError(t, fx.bookingRepo.Create(ctx, &entity.Booking{UserID: 1, HostelID: 1}))
	require.NoError(t, fx.bookingRepo.Create(ctx, &entity.Booking{UserID: 1, HostelID: 1}))

	counts, err := fx.service.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Users)
	assert.Equal(t, int64(1), counts.Hostels)
	assert.Equal(t, int64(2), counts.Bookings)
}
