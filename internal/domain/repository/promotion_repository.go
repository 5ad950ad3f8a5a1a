package repository

import (
	"context"
	"errors"
	"time"

	"dealfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPromotionNotFound is returned when a promotion does not exist.
var ErrPromotionNotFound = errors.New("promotion not found")

// PromotionSort is the closed set of listing orders.
type PromotionSort string

const (
	SortNewest     PromotionSort = "newest"
	SortDiscount   PromotionSort = "discount"
	SortPriceLow   PromotionSort = "price-low"
	SortPriceHigh  PromotionSort = "price-high"
	SortEndingSoon PromotionSort = "ending-soon"
)

// ParsePromotionSort maps a sortBy query value to a PromotionSort. Unknown values sort newest first.
func ParsePromotionSort(raw string) PromotionSort {
	switch s := PromotionSort(raw); s {
	case SortDiscount, SortPriceLow, SortPriceHigh, SortEndingSoon:
		return s
	default:
		return SortNewest
	}
}

// PromotionFilter is a set of optional predicates over promotions. Nil fields do not filter.
type PromotionFilter struct {
	BusinessID   *uuid.UUID
	Category     *entity.Category
	Type         *entity.PromotionType
	Featured     *bool
	Active       *bool
	Query        string     // Full-text match over title, description and tags.
	LiveAt       *time.Time // Only promotions that are active and end after this instant.
	CreatedSince *time.Time
}

// PromotionRepository defines persistence operations for promotions.
type PromotionRepository interface {
	// Create persists a new promotion. Counters start at zero.
	Create(ctx context.Context, promotion *entity.Promotion) error

	// FindByID retrieves a promotion together with its business summary.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)

	// Update writes the editable fields of a promotion and returns the stored row.
	// Impressions and clicks are never written; the conversion rate is recomputed.
	Update(ctx context.Context, promotion *entity.Promotion) (*entity.Promotion, error)

	// Delete removes a promotion.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByBusiness removes every promotion of the given businesses and
	// reports the images they referenced so the caller can drop the files.
	DeleteByBusiness(ctx context.Context, businessIDs []uuid.UUID) (RemovedPromotions, error)

	// List returns one page of promotions matching the filter in the requested order.
	List(ctx context.Context, filter PromotionFilter, sort PromotionSort, page entity.Pagination) (*entity.Page[*entity.Promotion], error)

	// Count returns the number of promotions matching the filter.
	Count(ctx context.Context, filter PromotionFilter) (int64, error)

	// Totals sums counters over the promotions matching the filter. Live counts those live at liveAt.
	Totals(ctx context.Context, filter PromotionFilter, liveAt time.Time) (*entity.PromotionTotals, error)

	// IncrementImpressions atomically adds one impression, recomputes the conversion rate
	// and returns the updated promotion.
	IncrementImpressions(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)

	// IncrementClicks atomically adds one click, recomputes the conversion rate
	// and returns the updated promotion.
	IncrementClicks(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)

	// SetFeatured changes the featured flag and returns the updated promotion.
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*entity.Promotion, error)

	// CategoryDistribution groups all promotions by category, largest first.
	CategoryDistribution(ctx context.Context) ([]entity.CategoryStat, error)

	// TopBusinesses ranks businesses by the summed clicks of their promotions.
	TopBusinesses(ctx context.Context, limit int) ([]entity.BusinessStat, error)
}

// RemovedPromotions summarizes a bulk promotion delete.
type RemovedPromotions struct {
	Count  int64
	Images []string
}
