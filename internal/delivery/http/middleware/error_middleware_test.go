package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "critique/internal/domain/errors"
	"critique/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestErrorMiddleware_HandleHTTPError_AppError(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorTestContext()

	m.HandleHTTPError(domainerrors.ErrForbidden.WrapMessage("update review"), c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestErrorMiddleware_HandleHTTPError_EchoError(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorTestContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "route not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
	assert.Contains(t, rec.Body.String(), "route not found")
}

func TestErrorMiddleware_HandleHTTPError_UnknownError(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	// Internal failure detail must not leak to the client
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestErrorMiddleware_HandleHTTPError_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	c, rec := newErrorTestContext()

	assert.NoError(t, c.String(http.StatusOK, "already written"))
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "already written", rec.Body.String())
}
