// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"dealfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserFilter narrows a user listing. Nil fields do not filter.
type UserFilter struct {
	Role         *entity.Role
	Search       string // Case-insensitive match on name or email.
	CreatedSince *time.Time
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Delete removes a user. Owned businesses must be removed first.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of users, newest first.
	List(ctx context.Context, filter UserFilter, page entity.Pagination) (*entity.Page[*entity.User], error)

	// Count returns the number of users matching the filter.
	Count(ctx context.Context, filter UserFilter) (int64, error)
}
