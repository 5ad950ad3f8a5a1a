package handler

import (
	"net/http"
	"testing"
	"time"

	"dealfinder/config"
	"dealfinder/internal/delivery/http/middleware"
	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/errors"
	mockUsecase "dealfinder/internal/mocks/usecase"
	"dealfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	cfg := &config.Config{}
	cfg.HTTP.CookieSecure = true

	return NewAuthHandler(AuthHandlerParams{AuthUC: uc, Config: cfg, Logger: newDiscardLogger()}), uc
}

func newAuthOutput() *usecase.AuthOutput {
	expires := time.Now().Add(time.Hour)

	return &usecase.AuthOutput{
		User: &entity.User{ID: uuid.New(), Name: "Jane", Email: "jane@example.com", PasswordHash: "secret-hash", Role: entity.RoleUser},
		Tokens: &entity.TokenPair{
			AccessToken:      "access",
			RefreshToken:     "refresh",
			AccessExpiresAt:  expires,
			RefreshExpiresAt: expires.Add(24 * time.Hour),
		},
	}
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Login_SetsCookies(t *testing.T) {
	h, uc := createTestAuthHandler(t)
	c, rec := newContext(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "jane@example.com",
		"password": "password123",
	}))

	uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "jane@example.com", Password: "password123"}).
		Return(newAuthOutput(), nil)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Contains(t, string(body.Data), `"token":"access"`)
	assert.NotContains(t, string(body.Data), "secret-hash")

	cookies := rec.Result().Cookies()
	access := findCookie(cookies, middleware.AccessTokenCookie)
	require.NotNil(t, access)
	assert.Equal(t, "access", access.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	require.NotNil(t, findCookie(cookies, middleware.RefreshTokenCookie))
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h, _ := createTestAuthHandler(t)
	c, _ := newContext(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "jane@example.com"}))

	err := h.Login(c)

	fieldErrs, ok := errors.AsType[entity.ValidationErrors](err)
	require.True(t, ok)
	assert.Equal(t, entity.ValidationErrors{{Field: "password", Reason: "is required"}}, fieldErrs)
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	h, _ := createTestAuthHandler(t)
	c, _ := newContext(jsonRequest(t, http.MethodPost, "/api/auth/login", "not an object"))

	assert.ErrorIs(t, h.Login(c), domainerrors.ErrInvalidInput)
}

func TestAuthHandler_Register(t *testing.T) {
	h, uc := createTestAuthHandler(t)
	c, rec := newContext(jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     "Jane",
		"email":    "jane@example.com",
		"password": "password123",
		"role":     "business",
	}))

	uc.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "password123",
		Role:     entity.RoleBusiness,
	}).Return(newAuthOutput(), nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_RefreshToken_FromCookie(t *testing.T) {
	h, uc := createTestAuthHandler(t)
	req := jsonRequest(t, http.MethodPost, "/api/auth/refresh-token", map[string]string{})
	req.AddCookie(&http.Cookie{Name: middleware.RefreshTokenCookie, Value: "cookie-refresh"})
	c, rec := newContext(req)

	uc.EXPECT().RefreshToken(mock.Anything, "cookie-refresh").Return(newAuthOutput(), nil)

	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Logout_ClearsCookies(t *testing.T) {
	h, _ := createTestAuthHandler(t)
	c, rec := newContext(jsonRequest(t, http.MethodPost, "/api/auth/logout", nil))

	require.NoError(t, h.Logout(c))

	for _, name := range []string{middleware.AccessTokenCookie, middleware.RefreshTokenCookie} {
		cookie := findCookie(rec.Result().Cookies(), name)
		require.NotNil(t, cookie, name)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	h, uc := createTestAuthHandler(t)
	userID := uuid.New()
	c, _ := newContext(jsonRequest(t, http.MethodPut, "/api/auth/update-password", map[string]string{
		"currentPassword": "password123",
		"newPassword":     "password456",
	}))
	withActor(c, entity.Actor{UserID: userID, Role: entity.RoleUser})

	uc.EXPECT().UpdatePassword(mock.Anything, userID, &usecase.UpdatePasswordInput{
		CurrentPassword: "password123",
		NewPassword:     "password456",
	}).Return(domainerrors.ErrPasswordMismatch)

	assert.ErrorIs(t, h.UpdatePassword(c), domainerrors.ErrPasswordMismatch)
}

func TestAuthHandler_Me(t *testing.T) {
	h, uc := createTestAuthHandler(t)
	userID := uuid.New()
	c, rec := newContext(jsonRequest(t, http.MethodGet, "/api/auth/me", nil))
	withActor(c, entity.Actor{UserID: userID, Role: entity.RoleUser})

	uc.EXPECT().Me(mock.Anything, userID).Return(&entity.User{ID: userID, Name: "Jane"}, nil)

	require.NoError(t, h.Me(c))
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), userID.String())
}
