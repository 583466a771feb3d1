// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"hostelhub/internal/delivery/http/response"
	"hostelhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VerificationHandler holds dependencies for email-verification handlers.
type VerificationHandler struct {
	uc     usecase.VerificationUsecase
	logger *slog.Logger
}

// NewVerificationHandler is the constructor for VerificationHandler, injected by Fx.
func NewVerificationHandler(uc usecase.VerificationUsecase, logger *slog.Logger) *VerificationHandler {
	return &VerificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendCode handles the verification-code issuance request.
func (h *VerificationHandler) SendCode(c echo.Context) error {
	var input *usecase.IssueChallengeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.IssueChallenge(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

// VerifyCode handles the verification-code confirmation request.
func (h *VerificationHandler) VerifyCode(c echo.Context) error {
	var input *usecase.ConfirmChallengeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.ConfirmChallenge(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email verified successfully")
}
