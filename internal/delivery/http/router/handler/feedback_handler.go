package handler

import (
	"log/slog"
	"net/http"

	"hostelhub/internal/delivery/http/response"
	"hostelhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedbackHandler holds dependencies for guest-feedback handlers.
type FeedbackHandler struct {
	uc     usecase.FeedbackUsecase
	logger *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		uc:     uc,
		logger: logger,
	}
}

// Post handles the feedback submission request.
func (h *FeedbackHandler) Post(c echo.Context) error {
	var input *usecase.PostFeedbackInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Post(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Feedback, "Feedback posted successfully")
}

// List handles the full feedback listing request.
func (h *FeedbackHandler) List(c echo.Context) error {
	entries, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Feedback retrieved successfully")
}

// ListByHostel handles the per-hostel feedback listing request.
func (h *FeedbackHandler) ListByHostel(c echo.Context) error {
	hostelID, err := parseIDParam(c, "hostelId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid hostel ID")
	}

	entries, err := h.uc.ListByHostel(c.Request().Context(), hostelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Feedback retrieved successfully")
}

// Count handles the feedback tally request.
func (h *FeedbackHandler) Count(c echo.Context) error {
	count, err := h.uc.Count(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count}, "Feedback counted successfully")
}

// AverageRating handles the per-hostel average rating request. Hostels with
// no feedback report a null average.
func (h *FeedbackHandler) AverageRating(c echo.Context) error {
	hostelID, err := parseIDParam(c, "hostelId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid hostel ID")
	}

	average, err := h.uc.AverageRating(c.Request().Context(), hostelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]*float64{"average": average}, "Average rating retrieved successfully")
}
