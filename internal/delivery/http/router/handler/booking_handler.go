package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"hostelhub/internal/delivery/http/response"
	"hostelhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookingHandler holds dependencies for booking lifecycle handlers.
type BookingHandler struct {
	uc     usecase.BookingUsecase
	logger *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(uc usecase.BookingUsecase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the booking placement request.
func (h *BookingHandler) Create(c echo.Context) error {
	var input *usecase.CreateBookingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Booking, "Booking created successfully")
}

// Get handles the single-booking lookup request.
func (h *BookingHandler) Get(c echo.Context) error {
	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid booking ID")
	}

	output, err := h.uc.GetByID(c.Request().Context(), bookingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Booking, "Booking retrieved successfully")
}

// ListByUser handles the per-user booking history request.
func (h *BookingHandler) ListByUser(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	bookings, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bookings, "Bookings retrieved successfully")
}

// ListByHostel handles the per-hostel booking listing request.
func (h *BookingHandler) ListByHostel(c echo.Context) error {
	hostelID, err := parseIDParam(c, "hostelId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid hostel ID")
	}

	bookings, err := h.uc.ListByHostel(c.Request().Context(), hostelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bookings, "Bookings retrieved successfully")
}

// List handles the full booking listing request.
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bookings, "Bookings retrieved successfully")
}

// UpdateStatus handles the booking status overwrite request.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid booking ID")
	}

	var body struct {
		Status int `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	input := &usecase.UpdateBookingStatusInput{
		BookingID: bookingID,
		Status:    body.Status,
	}
	if err := h.uc.UpdateStatus(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Booking status updated successfully")
}

// Delete handles the booking removal request.
func (h *BookingHandler) Delete(c echo.Context) error {
	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid booking ID")
	}

	if err := h.uc.Delete(c.Request().Context(), bookingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Booking deleted successfully")
}

// ConfirmationQR handles the booking confirmation QR code request.
func (h *BookingHandler) ConfirmationQR(c echo.Context) error {
	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid booking ID")
	}

	png, err := h.uc.ConfirmationQR(c.Request().Context(), bookingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}

	return id, nil
}
