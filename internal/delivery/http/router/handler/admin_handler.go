package handler

import (
	"log/slog"
	"net/http"

	"hostelhub/internal/delivery/http/response"
	"hostelhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for administrative handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles the admin login request.
func (h *AdminHandler) Login(c echo.Context) error {
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

// SetHostelStatus handles the hostel approval flip. The new value replaces
// the old one unconditionally in either direction.
func (h *AdminHandler) SetHostelStatus(c echo.Context) error {
	var input *usecase.SetHostelStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.SetHostelStatus(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Hostel status updated successfully")
}

// ListHostels handles the admin hostel listing request, verified or not.
func (h *AdminHandler) ListHostels(c echo.Context) error {
	hostels, err := h.uc.ListHostels(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hostels, "Hostels retrieved successfully")
}

// ListUsers handles the admin user listing request.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// Counts handles the admin dashboard totals request.
func (h *AdminHandler) Counts(c echo.Context) error {
	counts, err := h.uc.Counts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, counts, "Counts retrieved successfully")
}
