package repository

import (
	"context"
	"errors"
	"time"

	"dealfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when a business does not exist.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessFilter narrows a business listing. Nil fields do not filter.
type BusinessFilter struct {
	OwnerID      *uuid.UUID
	Status       *entity.BusinessStatus
	Category     *entity.Category
	Search       string // Case-insensitive match on the business name.
	CreatedSince *time.Time
}

// BusinessRepository defines persistence operations for businesses.
type BusinessRepository interface {
	// Create persists a new business and fills its generated fields.
	Create(ctx context.Context, business *entity.Business) error

	// FindByID retrieves a business together with its owner summary.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// Update writes the editable fields of a business. Counters are never written.
	Update(ctx context.Context, business *entity.Business) error

	// Delete removes a business. Its promotions must be removed first.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of businesses, newest first.
	List(ctx context.Context, filter BusinessFilter, page entity.Pagination) (*entity.Page[*entity.Business], error)

	// ListByOwner returns every business owned by the user, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error)

	// Count returns the number of businesses matching the filter.
	Count(ctx context.Context, filter BusinessFilter) (int64, error)

	// SetStatus changes the moderation status and returns the updated business.
	SetStatus(ctx context.Context, id uuid.UUID, status entity.BusinessStatus) (*entity.Business, error)

	// SetVerification changes the verification flag and status together.
	SetVerification(ctx context.Context, id uuid.UUID, verified bool, status entity.BusinessStatus) (*entity.Business, error)

	// IncrementImpressions atomically adds one impression and returns the updated business.
	IncrementImpressions(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// RecountPromotions sets promotion_count to the current number of promotions of the business.
	RecountPromotions(ctx context.Context, id uuid.UUID) error
}
