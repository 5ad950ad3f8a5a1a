package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dealfinder/config"
	"dealfinder/internal/delivery/http/middleware"
	"dealfinder/internal/delivery/http/response"
	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	cookieSecure bool
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:       params.AuthUC,
		cookieSecure: params.Config.HTTP.CookieSecure,
		logger:       params.Logger,
	}
}

// RegisterRequest is the body of the registration endpoint.
type RegisterRequest struct {
	Name     string      `json:"name" validate:"required,min=3"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     entity.Role `json:"role"`
}

// LoginRequest is the body of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest is the body of the refresh endpoint. The cookie is used when it is empty.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UpdateProfileRequest holds the profile fields to change. Absent fields are left untouched.
type UpdateProfileRequest struct {
	Name    *string         `json:"name" validate:"omitempty,min=3"`
	Phone   *string         `json:"phone"`
	Avatar  *string         `json:"avatar"`
	Address *entity.Address `json:"address"`
}

// UpdatePasswordRequest is the body of the password change endpoint.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// AuthResponse is returned by every endpoint that opens a session.
type AuthResponse struct {
	User         *entity.User `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
}

// Register handles account registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.session(c, http.StatusCreated, output, "User registered successfully")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.session(c, http.StatusOK, output, "Login successful")
}

// RefreshToken issues a new token pair from a refresh token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}
	if req.RefreshToken == "" {
		if cookie, err := c.Cookie(middleware.RefreshTokenCookie); err == nil {
			req.RefreshToken = cookie.Value
		}
	}

	output, err := h.authUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.session(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout clears the session cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.cookie(middleware.AccessTokenCookie, "", time.Unix(0, 0)))
	c.SetCookie(h.cookie(middleware.RefreshTokenCookie, "", time.Unix(0, 0)))

	return response.Success(c, http.StatusOK, nil, "Logged out successfully")
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	user, err := h.authUC.Me(c.Request().Context(), actor.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateProfile changes the profile of the authenticated user.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), actor.UserID, &usecase.UpdateProfileInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Avatar:  req.Avatar,
		Address: req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// UpdatePassword changes the password of the authenticated user.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req UpdatePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.UpdatePassword(c.Request().Context(), actor.UserID, &usecase.UpdatePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated successfully")
}

// session sets the token cookies and renders the user with its tokens.
func (h *AuthHandler) session(c echo.Context, status int, output *usecase.AuthOutput, message string) error {
	c.SetCookie(h.cookie(middleware.AccessTokenCookie, output.Tokens.AccessToken, output.Tokens.AccessExpiresAt))
	c.SetCookie(h.cookie(middleware.RefreshTokenCookie, output.Tokens.RefreshToken, output.Tokens.RefreshExpiresAt))

	return response.Success(c, status, AuthResponse{
		User:         output.User,
		Token:        output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
	}, message)
}

func (h *AuthHandler) cookie(name, value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		cookie.MaxAge = -1
	}

	return cookie
}
