package usecase

import (
	"context"
	"time"

	"dealfinder/internal/domain/entity"
	"dealfinder/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeaturedLimit caps the featured promotion strip.
const FeaturedLimit = 6

// CreatePromotionInput holds the fields of a new promotion.
type CreatePromotionInput struct {
	BusinessID         uuid.UUID
	Title              string
	Description        string
	Category           entity.Category
	Type               entity.PromotionType
	DiscountPercentage *float64
	OriginalPrice      *decimal.Decimal
	DiscountedPrice    *decimal.Decimal
	RedirectURL        string
	Tags               string // Comma separated.
	Terms              string
	Code               string
	StartDate          *time.Time // Defaults to the creation time.
	EndDate            time.Time
	Images             []service.ImageUpload
}

// UpdatePromotionInput is a partial update. Nil fields are left untouched and
// non-empty Images replace the stored list.
type UpdatePromotionInput struct {
	Title              *string
	Description        *string
	Category           *entity.Category
	Type               *entity.PromotionType
	DiscountPercentage *float64
	OriginalPrice      *decimal.Decimal
	DiscountedPrice    *decimal.Decimal
	RedirectURL        *string
	Tags               *string
	Terms              *string
	Code               *string
	StartDate          *time.Time
	EndDate            *time.Time
	IsActive           *bool
	Images             []service.ImageUpload
}

// PromotionQuery holds the raw listing parameters of the public and admin listings.
type PromotionQuery struct {
	Category string // "all" or empty disables the category filter.
	Type     string
	Featured *bool
	Active   *bool
	Query    string
	SortBy   string
	Page     int
	Limit    int
}

// Visitor identifies the anonymous or signed-in caller behind an analytic event.
type Visitor struct {
	UserID *uuid.UUID
	Client entity.ClientInfo
}

// ClickOutput is the result of a recorded click.
type ClickOutput struct {
	RedirectURL string
	Promotion   *entity.Promotion
}

// PromotionUsecase defines the promotion lifecycle operations.
type PromotionUsecase interface {
	Create(ctx context.Context, actor entity.Actor, input *CreatePromotionInput) (*entity.Promotion, error)
	Update(ctx context.Context, actor entity.Actor, id uuid.UUID, input *UpdatePromotionInput) (*entity.Promotion, error)
	Delete(ctx context.Context, actor entity.Actor, id uuid.UUID) error

	// Get returns a promotion and records one impression.
	Get(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)

	// RecordClick records one click, appends a click event and returns the redirect target.
	RecordClick(ctx context.Context, id uuid.UUID, visitor Visitor) (*ClickOutput, error)

	// List is the public listing of live promotions, newest first.
	List(ctx context.Context, query *PromotionQuery) (*entity.Page[*entity.Promotion], error)

	// Search is the public sorted search over live promotions. A non-empty query appends a search event.
	Search(ctx context.Context, query *PromotionQuery, visitor Visitor) (*entity.Page[*entity.Promotion], error)

	// Featured returns up to FeaturedLimit featured live promotions, newest first.
	Featured(ctx context.Context) ([]*entity.Promotion, error)

	// ListByCategory is the public listing of one category.
	ListByCategory(ctx context.Context, category string, page, limit int) (*entity.Page[*entity.Promotion], error)

	// QRCode renders the PNG QR code of a promotion for its owner.
	QRCode(ctx context.Context, actor entity.Actor, id uuid.UUID) ([]byte, error)
}
