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

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	bookingRepo repository.BookingRepository
	clock       service.Clock
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	clock service.Clock,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo: bookingRepo,
		clock:       clock,
		qrService:   qrService,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create places a new booking. The only creation invariant is the date range:
// check-out must be strictly after check-in. The booking starts Pending and
// the store assigns its identifier.
func (srv *bookingService) Create(ctx context.Context, input *usecase.CreateBookingInput) (*usecase.BookingOutput, error) {
	if !input.CheckOut.After(input.CheckIn) {
		return nil, domainerrors.ErrInvalidDateRange
	}

	booking := &entity.Booking{
		HostelID:  input.HostelID,
		UserID:    input.UserID,
		RoomType:  input.RoomType,
		CheckIn:   input.CheckIn,
		CheckOut:  input.CheckOut,
		CreatedAt: srv.clock.Now(),
		Status:    entity.BookingPending,
	}

	if err := srv.bookingRepo.Create(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to create booking")
	}

	srv.log(ctx).Info("Booking created",
		slog.Int64("booking_id", booking.ID),
		slog.Int64("hostel_id", booking.HostelID),
		slog.Int64("user_id", booking.UserID),
	)

	return &usecase.BookingOutput{Booking: booking}, nil
}

// UpdateStatus overwrites the booking status. Lookup failure wins over an
// out-of-range status, matching the order callers observe: NotFound for an
// unknown id, InvalidBookingStatus for a known one.
func (srv *bookingService) UpdateStatus(ctx context.Context, input *usecase.UpdateBookingStatusInput) error {
	if _, err := srv.bookingRepo.FindByID(ctx, input.BookingID); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return domainerrors.ErrBookingNotFound
		}

		return errors.Wrap(err, "failed to find booking")
	}

	status := entity.BookingStatus(input.Status)
	if !status.Valid() {
		return domainerrors.ErrInvalidBookingStatus
	}

	if err := srv.bookingRepo.UpdateStatus(ctx, input.BookingID, status); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return domainerrors.ErrBookingNotFound
		}

		return errors.Wrap(err, "failed to update booking status")
	}

	srv.log(ctx).Info("Booking status updated",
		slog.Int64("booking_id", input.BookingID),
		slog.String("status", status.String()),
	)

	return nil
}

// Delete removes a booking unconditionally. No soft delete, no cascade.
func (srv *bookingService) Delete(ctx context.Context, bookingID int64) error {
	if err := srv.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return domainerrors.ErrBookingNotFound
		}

		return errors.Wrap(err, "failed to delete booking")
	}

	srv.log(ctx).Info("Booking deleted", slog.Int64("booking_id", bookingID))

	return nil
}

// GetByID retrieves a single booking.
func (srv *bookingService) GetByID(ctx context.Context, bookingID int64) (*usecase.BookingOutput, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	return &usecase.BookingOutput{Booking: booking}, nil
}

// ListByUser retrieves the bookings placed by a user.
func (srv *bookingService) ListByUser(ctx context.Context, userID int64) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings by user")
	}

	return bookings, nil
}

// ListByHostel retrieves the bookings targeting a hostel.
func (srv *bookingService) ListByHostel(ctx context.Context, hostelID int64) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.ListByHostel(ctx, hostelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings by hostel")
	}

	return bookings, nil
}

// List retrieves every booking.
func (srv *bookingService) List(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

// Count returns the total number of bookings.
func (srv *bookingService) Count(ctx context.Context) (int64, error) {
	count, err := srv.bookingRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count bookings")
	}

	return count, nil
}

// ConfirmationQR renders a PNG QR code for an existing booking.
func (srv *bookingService) ConfirmationQR(ctx context.Context, bookingID int64) ([]byte, error) {
	if _, err := srv.bookingRepo.FindByID(ctx, bookingID); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	png, err := srv.qrService.GenerateBookingQR(bookingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate booking QR")
	}

	return png, nil
}
