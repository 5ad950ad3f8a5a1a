package service

import (
	"dealfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, role entity.Role) (*entity.TokenPair, error)

	// ParseAccessToken verifies an access token and returns its identity.
	ParseAccessToken(tokenString string) (*entity.TokenClaims, error)

	// ParseRefreshToken verifies a refresh token and returns its identity.
	ParseRefreshToken(tokenString string) (*entity.TokenClaims, error)
}
