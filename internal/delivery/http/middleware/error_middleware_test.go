package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "hostelhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func handleAndDecode(t *testing.T, err error) (int, domainerrors.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	newTestErrorMiddleware().HandleHTTPError(err, c)

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	code, body := handleAndDecode(t, domainerrors.ErrBookingNotFound)

	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "BOOKING_NOT_FOUND", body.Error.Code)
}

func TestErrorMiddleware_HTTPErrorStringMessage(t *testing.T) {
	code, body := handleAndDecode(t, echo.NewHTTPError(http.StatusBadRequest, "bad input"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "bad input", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

// Echo sets Message to an any, and some paths (binder failures, custom
// handlers) populate it with non-string values. The handler must render
// those rather than assert on string.
func TestErrorMiddleware_HTTPErrorNonStringMessage(t *testing.T) {
	code, body := handleAndDecode(t, echo.NewHTTPError(http.StatusUnprocessableEntity, map[string]string{"field": "rating"}))

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, body.Message, "rating")
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	code, body := handleAndDecode(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, "boom", body.Error.Details)
}
