package impl

import (
	"context"
	"testing"
	"time"

	"hostelhub/internal/domain/entity"
	domainerrors "hostelhub/internal/domain/errors"
	"hostelhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bookingServiceFixtures holds all test dependencies for booking service tests.
type bookingServiceFixtures struct {
	service     usecase.BookingUsecase
	bookingRepo *memBookingRepo
	clock       *fakeClock
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	t.Helper()

	bookingRepo := newMemBookingRepo()
	clock := newFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	service := NewBookingService(bookingRepo, clock, fakeQRService{}, newDiscardLogger())

	return bookingServiceFixtures{
		service:     service,
		bookingRepo: bookingRepo,
		clock:       clock,
	}
}

func validBookingInput() *usecase.CreateBookingInput {
	return &usecase.CreateBookingInput{
		HostelID: 1,
		UserID:   2,
		RoomType: "Dorm",
		CheckIn:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	fx := createTestBookingService(t)

	output, err := fx.service.Create(context.Background(), validBookingInput())
	require.NoError(t, err)
	require.NotNil(t, output.Booking)

	assert.NotZero(t, output.Booking.ID)
	assert.Equal(t, entity.BookingPending, output.Booking.Status)
	assert.Equal(t, fx.clock.Now(), output.Booking.CreatedAt)
}

func TestBookingService_Create_RejectsCheckOutBeforeCheckIn(t *testing.T) {
	fx := createTestBookingService(t)

	input := validBookingInput()
	input.CheckIn, input.CheckOut = input.CheckOut, input.CheckIn

	_, err := fx.service.Create(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
}

func TestBookingService_Create_RejectsZeroLengthStay(t *testing.T) {
	fx := createTestBookingService(t)

	input := validBookingInput()
	input.CheckOut = input.CheckIn

	_, err := fx.service.Create(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
}

func TestBookingService_UpdateStatus_AllTransitionsAllowed(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	output, err := fx.service.Create(ctx, validBookingInput())
	require.NoError(t, err)
	id := output.Booking.ID

	// There is no transition table: any valid status may replace any other,
	// including leaving Cancelled again.
	for _, status := range []entity.BookingStatus{
		entity.BookingConfirmed,
		entity.BookingCancelled,
		entity.BookingPending,
		entity.BookingCancelled,
		entity.BookingConfirmed,
	} {
		err := fx.service.UpdateStatus(ctx, &usecase.UpdateBookingStatusInput{
			BookingID: id,
			Status:    int(status),
		})
		require.NoError(t, err)

		got, err := fx.service.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, status, got.Booking.Status)
	}
}

func TestBookingService_UpdateStatus_RejectsOutOfRangeStatus(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	output, err := fx.service.Create(ctx, validBookingInput())
	require.NoError(t, err)

	for _, status := range []int{-1, 3, 42} {
		err := fx.service.UpdateStatus(ctx, &usecase.UpdateBookingStatusInput{
			BookingID: output.Booking.ID,
			Status:    status,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidBookingStatus)
	}

	// The failed updates left the booking untouched.
	got, err := fx.service.GetByID(ctx, output.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingPending, got.Booking.Status)
}

func TestBookingService_UpdateStatus_UnknownBookingWinsOverBadStatus(t *testing.T) {
	fx := createTestBookingService(t)

	// Both the id and the status are bad; the lookup failure is reported.
	err := fx.service.UpdateStatus(context.Background(), &usecase.UpdateBookingStatusInput{
		BookingID: 404,
		Status:    99,
	})
	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
}

func TestBookingService_Delete(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	output, err := fx.service.Create(ctx, validBookingInput())
	require.NoError(t, err)

	require.NoError(t, fx.service.Delete(ctx, output.Booking.ID))

	_, err = fx.service.GetByID(ctx, output.Booking.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)

	err = fx.service.Delete(ctx, output.Booking.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
}

func TestBookingService_ListAndCount(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	first := validBookingInput()
	second := validBookingInput()
	second.UserID = 7
	second.HostelID = 9

	_, err := fx.service.Create(ctx, first)
	require.NoError(t, err)
	_, err = fx.service.Create(ctx, second)
	require.NoError(t, err)

	all, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	count, err := fx.service.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	byUser, err := fx.service.ListByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, int64(9), byUser[0].HostelID)

	byHostel, err := fx.service.ListByHostel(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byHostel, 1)
	assert.Equal(t, int64(2), byHostel[0].UserID)
}

func TestBookingService_ConfirmationQR(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	output, err := fx.service.Create(ctx, validBookingInput())
	require.NoError(t, err)

	png, err := fx.service.ConfirmationQR(ctx, output.Booking.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = fx.service.ConfirmationQR(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
}
