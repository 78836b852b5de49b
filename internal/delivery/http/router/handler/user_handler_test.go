package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"critique/internal/delivery/http/middleware"
	"critique/internal/delivery/http/validator"
	"critique/internal/domain/entity"
	domainerrors "critique/internal/domain/errors"
	mockusecase "critique/internal/mocks/usecase"
	"critique/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestUserHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	userUC := mockusecase.NewMockUserUsecase(t)
	h := &UserHandler{userUC: userUC, logger: newTestLogger()}

	user := &entity.User{
		ID:        uuid.New(),
		Username:  "wei",
		CreatedAt: time.Now(),
	}
	userUC.On("Register", mock.Anything, &usecase.RegisterInput{
		Username: "wei",
		Password: "correct-horse-battery",
	}).Return(&usecase.RegisterOutput{User: user}, nil)

	req := newJSONRequest(http.MethodPost, "/auth/register", `{"username":"wei","password":"correct-horse-battery"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "wei")
	assert.Contains(t, rec.Body.String(), user.ID.String())
	// The password hash must never appear in a response
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Register_UsernameTaken(t *testing.T) {
	e := newTestEcho()
	userUC := mockusecase.NewMockUserUsecase(t)
	h := &UserHandler{userUC: userUC, logger: newTestLogger()}

	userUC.On("Register", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUsernameTaken.WrapMessage("create user"))

	req := newJSONRequest(http.MethodPost, "/auth/register", `{"username":"wei","password":"correct-horse-battery"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "USERNAME_TAKEN")
}

func TestUserHandler_Register_ValidationError(t *testing.T) {
	e := newTestEcho()
	userUC := mockusecase.NewMockUserUsecase(t)
	h := &UserHandler{userUC: userUC, logger: newTestLogger()}

	req := newJSONRequest(http.MethodPost, "/auth/register", `{"username":"","password":"correct-horse-battery"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	userUC.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	userUC := mockusecase.NewMockUserUsecase(t)
	h := &UserHandler{userUC: userUC, logger: newTestLogger()}

	user := &entity.User{ID: uuid.New(), Username: "wei"}
	userUC.On("Login", mock.Anything, &usecase.LoginInput{
		Username: "wei",
		Password: "correct-horse-battery",
	}).Return(&usecase.LoginOutput{AccessToken: "signed.token.value", User: user}, nil)

	req := newJSONRequest(http.MethodPost, "/auth/login", `{"username":"wei","password":"correct-horse-battery"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
	assert.Contains(t, rec.Body.String(), "signed.token.value")
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	userUC := mockusecase.NewMockUserUsecase(t)
	h := &UserHandler{userUC: userUC, logger: newTestLogger()}

	userUC.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login"))

	req := newJSONRequest(http.MethodPost, "/auth/login", `{"username":"wei","password":"wrong"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestUserHandler_GetProfile_Success(t *testing.T) {
	e := newTestEcho()
	userUC := mockusecase.NewMockUserUsecase(t)
	h := &UserHandler{userUC: userUC, logger: newTestLogger()}

	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "wei"}
	userUC.On("GetProfile", mock.Anything, userID).Return(user, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	err := h.GetProfile(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wei")
}

func TestUserHandler_GetProfile_NotAuthenticated(t *testing.T) {
	e := newTestEcho()
	userUC := mockusecase.NewMockUserUsecase(t)
	h := &UserHandler{userUC: userUC, logger: newTestLogger()}

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.GetProfile(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
	userUC.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}
