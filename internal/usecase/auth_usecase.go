// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"dealfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role // Empty means RoleUser.
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput holds the profile fields a user may change. Nil fields are left untouched.
type UpdateProfileInput struct {
	Name    *string
	Phone   *string
	Avatar  *string
	Address *entity.Address
}

// UpdatePasswordInput defines the data required to change a password.
type UpdatePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// SeedAdminInput describes the bootstrap administrator.
type SeedAdminInput struct {
	Name     string
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by every operation that opens a session.
type AuthOutput struct {
	User   *entity.User
	Tokens *entity.TokenPair
}

// AuthUsecase defines the account and session operations.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthOutput, error)
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, input *UpdatePasswordInput) error

	// SeedAdmin creates the administrator account when no user holds the email yet.
	// It reports whether an account was created.
	SeedAdmin(ctx context.Context, input *SeedAdminInput) (bool, error)
}
