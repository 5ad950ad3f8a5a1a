package usecase

import (
	"context"

	"dealfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// UserQuery holds the admin user listing parameters.
type UserQuery struct {
	Role   string
	Search string
	Page   int
	Limit  int
}

// BusinessQuery holds the admin business listing parameters.
type BusinessQuery struct {
	Status   string
	Category string
	Search   string
	Page     int
	Limit    int
}

// AdminUpdateUserInput holds the user fields an admin may change.
type AdminUpdateUserInput struct {
	Name       *string
	Email      *string
	Role       *entity.Role
	IsVerified *bool
}

// VerifyBusinessInput holds the verification decision. Nil fields fall back to verified and active.
type VerifyBusinessInput struct {
	IsVerified *bool
	Status     *entity.BusinessStatus
}

// UserDetail is a user together with the businesses it owns.
type UserDetail struct {
	User       *entity.User       `json:"user"`
	Businesses []*entity.Business `json:"businesses"`
}

// AdminUsecase defines the platform moderation operations.
type AdminUsecase interface {
	ListUsers(ctx context.Context, query *UserQuery) (*entity.Page[*entity.User], error)
	GetUser(ctx context.Context, id uuid.UUID) (*UserDetail, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *AdminUpdateUserInput) (*entity.User, error)

	// DeleteUser removes the user with its businesses and their promotions.
	DeleteUser(ctx context.Context, id uuid.UUID) error

	ListBusinesses(ctx context.Context, query *BusinessQuery) (*entity.Page[*entity.Business], error)
	VerifyBusiness(ctx context.Context, id uuid.UUID, input *VerifyBusinessInput) (*entity.Business, error)

	// ListPromotions lists promotions regardless of liveness.
	ListPromotions(ctx context.Context, query *PromotionQuery) (*entity.Page[*entity.Promotion], error)

	// SetFeatured changes the featured flag. Nil means featured.
	SetFeatured(ctx context.Context, id uuid.UUID, featured *bool) (*entity.Promotion, error)
}
