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

// UserHandler holds dependencies for guest-account handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// The entity JSON mapping omits the password hash.
	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// ResetPassword handles the forgotten-password replacement request.
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var input *usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset password input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.ResetPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}

// ListHostels handles the user-facing catalogue request. Only hostels an
// administrator has approved appear here.
func (h *UserHandler) ListHostels(c echo.Context) error {
	hostels, err := h.uc.ListVerifiedHostels(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hostels, "Hostels retrieved successfully")
}

// HostelRooms handles the room-rate listing request for one hostel.
func (h *UserHandler) HostelRooms(c echo.Context) error {
	hostelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || hostelID <= 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid hostel ID")
	}

	rooms, err := h.uc.HostelRooms(c.Request().Context(), hostelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rooms, "Rooms retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
