package handler

import (
	"log/slog"
	"net/http"

	"hostelhub/internal/delivery/http/response"
	"hostelhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HostelHandler holds dependencies for hostel-account handlers.
type HostelHandler struct {
	uc     usecase.HostelUsecase
	logger *slog.Logger
}

// NewHostelHandler is the constructor for HostelHandler, injected by Fx.
func NewHostelHandler(uc usecase.HostelUsecase, logger *slog.Logger) *HostelHandler {
	return &HostelHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the hostel registration request. The new hostel starts
// unverified and is hidden from the user catalogue until approved.
func (h *HostelHandler) Register(c echo.Context) error {
	var input *usecase.RegisterHostelInput
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

	return response.Success(c, http.StatusCreated, output.Hostel, "Hostel registered successfully")
}

// Login handles the hostel login request.
func (h *HostelHandler) Login(c echo.Context) error {
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

// ResetPassword handles the hostel forgotten-password replacement request.
func (h *HostelHandler) ResetPassword(c echo.Context) error {
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

// AddDescription handles the hostel description publication request. The
// hostel ID comes from the path, not the body.
func (h *HostelHandler) AddDescription(c echo.Context) error {
	hostelID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid hostel ID")
	}

	var input *usecase.AddHostelDescriptionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid description input")
	}
	input.HostelID = hostelID
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.AddDescription(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Description, "Description added successfully")
}

// GetDescription handles the hostel description lookup request.
func (h *HostelHandler) GetDescription(c echo.Context) error {
	hostelID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid hostel ID")
	}

	output, err := h.uc.GetDescription(c.Request().Context(), hostelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Description, "Description retrieved successfully")
}
