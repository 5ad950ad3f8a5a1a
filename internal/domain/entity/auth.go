package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenPair is the result of a successful login or token refresh.
type TokenPair struct {
	AccessToken      string    `json:"accessToken"`      // Short-lived JWT sent on every request.
	RefreshToken     string    `json:"refreshToken"`     // Long-lived JWT used to mint a new pair.
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`  // Expiry of the access token.
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"` // Expiry of the refresh token.
}

// TokenClaims is the identity carried inside a verified token.
type TokenClaims struct {
	UserID uuid.UUID
	Role   Role
}

// Actor is the authenticated caller of an operation.
// Use cases receive it to make ownership decisions.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// IsAdmin reports whether the actor has the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanManage reports whether the actor may mutate a resource owned by ownerID.
// Admins pass every ownership check.
func (a Actor) CanManage(ownerID uuid.UUID) bool {
	return a.IsAdmin() || (a.UserID != uuid.Nil && a.UserID == ownerID)
}
