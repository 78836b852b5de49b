package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"critique/internal/domain/entity"
	domainerrors "critique/internal/domain/errors"
	mockusecase "critique/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	identityUC := mockusecase.NewMockIdentityUsecase(t)
	m := NewAuthMiddleware(identityUC)

	user := &entity.User{ID: uuid.New(), Username: "wei"}
	identityUC.On("Resolve", mock.Anything, "valid-token").Return(user, nil)

	c, _ := newAuthTestContext("Bearer valid-token")

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	err := m.Authenticate(next)(c)
	assert.NoError(t, err)
	assert.True(t, nextCalled)

	userID, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, user.ID, userID)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	identityUC := mockusecase.NewMockIdentityUsecase(t)
	m := NewAuthMiddleware(identityUC)

	c, rec := newAuthTestContext("")

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	err := m.Authenticate(next)(c)
	assert.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
	identityUC.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	identityUC := mockusecase.NewMockIdentityUsecase(t)
	m := NewAuthMiddleware(identityUC)

	c, rec := newAuthTestContext("Basic d2VpOnB3")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
	identityUC.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_Authenticate_ResolveFails(t *testing.T) {
	identityUC := mockusecase.NewMockIdentityUsecase(t)
	m := NewAuthMiddleware(identityUC)

	identityUC.On("Resolve", mock.Anything, "expired-token").
		Return(nil, domainerrors.ErrUnauthenticated.WrapMessage("resolve identity"))

	c, rec := newAuthTestContext("Bearer expired-token")

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	err := m.Authenticate(next)(c)
	assert.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestGetUserID_WrongType(t *testing.T) {
	c, _ := newAuthTestContext("")
	c.Set(ContextKeyUserID, "not-a-uuid")

	_, ok := GetUserID(c)
	assert.False(t, ok)
}
