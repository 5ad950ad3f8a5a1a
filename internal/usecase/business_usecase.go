package usecase

import (
	"context"

	"dealfinder/internal/domain/entity"
	"dealfinder/internal/domain/service"

	"github.com/google/uuid"
)

// CreateBusinessInput holds the fields of a new business.
type CreateBusinessInput struct {
	Name          string
	Description   string
	Category      entity.Category
	Subcategory   string
	Website       string
	SocialMedia   entity.SocialMedia
	ContactEmail  string
	ContactPhone  string
	Address       entity.Address
	BusinessHours []entity.BusinessHours
	Logo          *service.ImageUpload
	CoverImage    *service.ImageUpload
}

// UpdateBusinessInput is a partial update. Nil fields are left untouched.
type UpdateBusinessInput struct {
	Name          *string
	Description   *string
	Category      *entity.Category
	Subcategory   *string
	Website       *string
	SocialMedia   *entity.SocialMedia
	ContactEmail  *string
	ContactPhone  *string
	Address       *entity.Address
	BusinessHours []entity.BusinessHours
	Logo          *service.ImageUpload
	CoverImage    *service.ImageUpload
}

// BusinessUsecase defines the business management operations.
type BusinessUsecase interface {
	Create(ctx context.Context, actor entity.Actor, input *CreateBusinessInput) (*entity.Business, error)

	// Get returns a business and records one impression.
	Get(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	Update(ctx context.Context, actor entity.Actor, id uuid.UUID, input *UpdateBusinessInput) (*entity.Business, error)

	// Delete removes the business together with its promotions.
	Delete(ctx context.Context, actor entity.Actor, id uuid.UUID) error

	// MyBusinesses lists the businesses owned by the actor.
	MyBusinesses(ctx context.Context, actor entity.Actor) ([]*entity.Business, error)

	// Promotions lists every promotion of the business, live or not.
	Promotions(ctx context.Context, actor entity.Actor, id uuid.UUID, page, limit int) (*entity.Page[*entity.Promotion], error)

	SetStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, status entity.BusinessStatus) (*entity.Business, error)
}
