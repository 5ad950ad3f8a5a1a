package middleware

import (
	"strings"

	deliverycontext "dealfinder/internal/delivery/context"
	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	// AccessTokenCookie carries the access token for browser clients.
	AccessTokenCookie = "token"
	// RefreshTokenCookie carries the refresh token for browser clients.
	RefreshTokenCookie = "refreshToken"

	actorKey = "actor"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token and stores the caller as the actor.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := accessToken(c)
		if tokenString == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("access token is missing")
		}

		claims, err := m.tokenSvc.ParseAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WrapMessage("invalid or expired token")
		}

		SetActor(c, entity.Actor{UserID: claims.UserID, Role: claims.Role})

		return next(c)
	}
}

// Identify stores the caller as the actor when a valid token is present and never rejects.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString := accessToken(c); tokenString != "" {
			if claims, err := m.tokenSvc.ParseAccessToken(tokenString); err == nil {
				SetActor(c, entity.Actor{UserID: claims.UserID, Role: claims.Role})
			}
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the actor has one of the roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFrom(c)
			if !ok {
				return domainerrors.ErrUnauthorized.WrapMessage("actor missing from context")
			}
			if !allowed.Contains(actor.Role) {
				return domainerrors.ErrForbidden.WrapMessage("role " + actor.Role.String() + " is not authorized to access this route")
			}

			return next(c)
		}
	}
}

// ActorFrom returns the actor stored by Authenticate or Identify.
func ActorFrom(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(actorKey).(entity.Actor)

	return actor, ok
}

// SetActor stores the caller for the handlers down the chain and tags the request scope with it.
func SetActor(c echo.Context, actor entity.Actor) {
	c.Set(actorKey, actor)
	if scope, ok := deliverycontext.ScopeFrom(c.Request().Context()); ok {
		scope.Identify(actor)
	}
}

// accessToken reads the bearer token, falling back to the access token cookie.
func accessToken(c echo.Context) string {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}
