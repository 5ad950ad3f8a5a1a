package postgres

import (
	"context"
	"database/sql/driver"
	"strings"
	"time"

	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/domain/repository"
	"dealfinder/internal/infra/persistence/model"
	"dealfinder/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// Postgres evaluates every SET expression against the row before the update,
	// so the new rate is computed from the incremented counter explicitly.
	clickConversionExpr      = "CASE WHEN impressions > 0 THEN (clicks + 1)::float8 / impressions * 100 ELSE 0 END"
	impressionConversionExpr = "clicks::float8 / (impressions + 1) * 100"
	storedConversionExpr     = "CASE WHEN impressions > 0 THEN clicks::float8 / impressions * 100 ELSE 0 END"

	searchVectorExpr = "to_tsvector('english', search_text)"
	fullTextExpr     = searchVectorExpr + " @@ plainto_tsquery('english', ?)"
)

// promotionRepository implements the repository.PromotionRepository interface.
// Counter and aggregate statements are raw SQL on db; everything else goes through q.
type promotionRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{
		db: db,
		q:  query.Use(db),
	}
}

// Create persists a new promotion with zeroed counters.
func (repo *promotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	promotionM := fromPromotionDomain(promotion)
	promotionM.Impressions, promotionM.Clicks, promotionM.ConversionRate = 0, 0, 0

	if err := repo.q.PromotionModel.WithContext(ctx).Omit(field.AssociationFields).Create(promotionM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("promotion business does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required promotion information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create promotion")
	}

	promotion.ID = promotionM.ID
	promotion.Impressions, promotion.Clicks, promotion.ConversionRate = 0, 0, 0
	promotion.CreatedAt = promotionM.CreatedAt
	promotion.UpdatedAt = promotionM.UpdatedAt

	return nil
}

// FindByID retrieves a promotion by its unique ID together with its business.
func (repo *promotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	p := repo.q.PromotionModel
	promotionM, err := p.WithContext(ctx).
		Preload(p.Business).
		Where(p.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromotionNotFound
		}

		return nil, errors.Wrap(err, "failed to find promotion by id")
	}

	return toPromotionDomain(promotionM), nil
}

// Update writes the editable fields of a promotion. Counters are left to the atomic increments
// so a concurrent click is never overwritten.
func (repo *promotionRepository) Update(ctx context.Context, promotion *entity.Promotion) (*entity.Promotion, error) {
	promotionM := fromPromotionDomain(promotion)

	var stored model.PromotionModel
	result := repo.db.WithContext(ctx).
		Model(&stored).
		Clauses(clause.Returning{}).
		Where("id = ?", promotion.ID).
		UpdateColumns(map[string]any{
			"title":               promotionM.Title,
			"description":         promotionM.Description,
			"category":            promotionM.Category,
			"type":                promotionM.Type,
			"discount_percentage": promotionM.DiscountPercentage,
			"original_price":      promotionM.OriginalPrice,
			"discounted_price":    promotionM.DiscountedPrice,
			"images":              promotionM.Images,
			"redirect_url":        promotionM.RedirectURL,
			"tags":                promotionM.Tags,
			"terms":               promotionM.Terms,
			"code":                promotionM.Code,
			"start_date":          promotionM.StartDate,
			"end_date":            promotionM.EndDate,
			"is_active":           promotionM.IsActive,
			"is_featured":         promotionM.IsFeatured,
			"search_text":         model.PromotionSearchText(promotionM.Title, promotionM.Description, promotionM.Tags),
			"conversion_rate":     gorm.Expr(storedConversionExpr),
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update promotion")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPromotionNotFound
	}

	updated := toPromotionDomain(&stored)
	updated.Business = promotion.Business

	return updated, nil
}

// Delete removes a promotion row.
func (repo *promotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	p := repo.q.PromotionModel
	result, err := p.WithContext(ctx).Where(p.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete promotion")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromotionNotFound
	}

	return nil
}

// DeleteByBusiness removes every promotion of the given businesses. The image
// paths come back through RETURNING so no extra read is needed.
func (repo *promotionRepository) DeleteByBusiness(ctx context.Context, businessIDs []uuid.UUID) (repository.RemovedPromotions, error) {
	var out repository.RemovedPromotions
	if len(businessIDs) == 0 {
		return out, nil
	}

	ids := make([]driver.Valuer, 0, len(businessIDs))
	for _, id := range businessIDs {
		ids = append(ids, id)
	}

	p := repo.q.PromotionModel
	var removed []model.PromotionModel
	result := p.WithContext(ctx).Where(p.BusinessID.In(ids...)).UnderlyingDB().
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "images"}}}).
		Delete(&removed)
	if result.Error != nil {
		return out, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete business promotions")
	}

	out.Count = result.RowsAffected
	for _, m := range removed {
		out.Images = append(out.Images, m.Images...)
	}

	return out, nil
}

// List returns one page of promotions with their business summary.
func (repo *promotionRepository) List(ctx context.Context, filter repository.PromotionFilter, sort repository.PromotionSort, page entity.Pagination) (*entity.Page[*entity.Promotion], error) {
	p := repo.q.PromotionModel

	counted := p.WithContext(ctx).Where(promotionConditions(repo.q, filter)...)
	matchFullText(counted, filter.Query)
	total, err := counted.Count()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count promotions")
	}

	listed := p.WithContext(ctx).
		Preload(p.Business).
		Where(promotionConditions(repo.q, filter)...).
		Order(promotionOrder(repo.q, sort)...).
		Offset(page.Offset()).
		Limit(page.Limit)
	matchFullText(listed, filter.Query)
	rows, err := listed.Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	promotions := make([]*entity.Promotion, 0, len(rows))
	for _, row := range rows {
		promotions = append(promotions, toPromotionDomain(row))
	}

	return &entity.Page[*entity.Promotion]{Items: promotions, Total: total, Pagination: page}, nil
}

// Count returns the number of promotions matching the filter.
func (repo *promotionRepository) Count(ctx context.Context, filter repository.PromotionFilter) (int64, error) {
	do := repo.q.PromotionModel.WithContext(ctx).Where(promotionConditions(repo.q, filter)...)
	matchFullText(do, filter.Query)

	total, err := do.Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count promotions")
	}

	return total, nil
}

// Totals sums the counters of the matching promotions in one aggregate query.
func (repo *promotionRepository) Totals(ctx context.Context, filter repository.PromotionFilter, liveAt time.Time) (*entity.PromotionTotals, error) {
	var row struct {
		Total       int64
		Live        int64
		Clicks      int64
		Impressions int64
	}

	do := repo.q.PromotionModel.WithContext(ctx).Where(promotionConditions(repo.q, filter)...)
	matchFullText(do, filter.Query)

	if err := do.UnderlyingDB().
		Model(&model.PromotionModel{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE is_active AND end_date > ?) AS live,
			COALESCE(SUM(clicks), 0) AS clicks,
			COALESCE(SUM(impressions), 0) AS impressions`, liveAt).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum promotion counters")
	}

	return &entity.PromotionTotals{
		Total:       row.Total,
		Live:        row.Live,
		Clicks:      row.Clicks,
		Impressions: row.Impressions,
	}, nil
}

// IncrementImpressions atomically adds one impression and recomputes the conversion rate.
func (repo *promotionRepository) IncrementImpressions(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	return repo.updateCounters(ctx, id, map[string]any{
		"impressions":     gorm.Expr("impressions + 1"),
		"conversion_rate": gorm.Expr(impressionConversionExpr),
	})
}

// IncrementClicks atomically adds one click and recomputes the conversion rate.
func (repo *promotionRepository) IncrementClicks(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	return repo.updateCounters(ctx, id, map[string]any{
		"clicks":          gorm.Expr("clicks + 1"),
		"conversion_rate": gorm.Expr(clickConversionExpr),
	})
}

// SetFeatured changes the featured flag.
func (repo *promotionRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*entity.Promotion, error) {
	return repo.updateCounters(ctx, id, map[string]any{
		"is_featured": featured,
		"updated_at":  time.Now(),
	})
}

// CategoryDistribution groups all promotions by category, largest first.
func (repo *promotionRepository) CategoryDistribution(ctx context.Context) ([]entity.CategoryStat, error) {
	var rows []struct {
		Category    string
		Count       int64
		Clicks      int64
		Impressions int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.PromotionModel{}).
		Select("category, COUNT(*) AS count, COALESCE(SUM(clicks), 0) AS clicks, COALESCE(SUM(impressions), 0) AS impressions").
		Group("category").
		Order("count DESC, category ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to group promotions by category")
	}

	stats := make([]entity.CategoryStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, entity.CategoryStat{
			Category:    entity.Category(row.Category),
			Count:       row.Count,
			Clicks:      row.Clicks,
			Impressions: row.Impressions,
		})
	}

	return stats, nil
}

// TopBusinesses joins businesses to their promotions and ranks them by summed clicks.
func (repo *promotionRepository) TopBusinesses(ctx context.Context, limit int) ([]entity.BusinessStat, error) {
	var rows []struct {
		BusinessID     uuid.UUID
		Name           string
		Logo           string
		PromotionCount int64
		Clicks         int64
		Impressions    int64
	}

	if err := repo.db.WithContext(ctx).
		Table("businesses AS b").
		Select(`b.id AS business_id, b.name, b.logo,
			COUNT(p.id) AS promotion_count,
			COALESCE(SUM(p.clicks), 0) AS clicks,
			COALESCE(SUM(p.impressions), 0) AS impressions`).
		Joins("LEFT JOIN promotions AS p ON p.business_id = b.id").
		Group("b.id, b.name, b.logo").
		Order("clicks DESC, b.id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank businesses")
	}

	stats := make([]entity.BusinessStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, entity.BusinessStat{
			BusinessID:     row.BusinessID,
			Name:           row.Name,
			Logo:           row.Logo,
			PromotionCount: row.PromotionCount,
			Clicks:         row.Clicks,
			Impressions:    row.Impressions,
			ConversionRate: entity.ConversionRate(row.Clicks, row.Impressions),
		})
	}

	return stats, nil
}

// updateCounters applies column assignments in a single UPDATE ... RETURNING statement.
// Hooks are skipped so updated_at only moves when the caller sets it.
func (repo *promotionRepository) updateCounters(ctx context.Context, id uuid.UUID, columns map[string]any) (*entity.Promotion, error) {
	var promotionM model.PromotionModel

	result := repo.db.WithContext(ctx).
		Model(&promotionM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumns(columns)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update promotion")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPromotionNotFound
	}

	return toPromotionDomain(&promotionM), nil
}

// promotionConditions translates the listing filter into typed predicates.
// Full-text search is applied separately by matchFullText.
func promotionConditions(q *query.Query, filter repository.PromotionFilter) []gen.Condition {
	p := q.PromotionModel

	var conds []gen.Condition
	if filter.BusinessID != nil {
		conds = append(conds, p.BusinessID.Eq(*filter.BusinessID))
	}
	if filter.Category != nil {
		conds = append(conds, p.Category.Eq(string(*filter.Category)))
	}
	if filter.Type != nil {
		conds = append(conds, p.Type.Eq(string(*filter.Type)))
	}
	if filter.Featured != nil {
		conds = append(conds, p.IsFeatured.Is(*filter.Featured))
	}
	if filter.Active != nil {
		conds = append(conds, p.IsActive.Is(*filter.Active))
	}
	if filter.LiveAt != nil {
		conds = append(conds, p.IsActive.Is(true), p.EndDate.Gt(*filter.LiveAt))
	}
	if filter.CreatedSince != nil {
		conds = append(conds, p.CreatedAt.Gte(*filter.CreatedSince))
	}

	return conds
}

// underlyingQuery is satisfied by every generated DAO.
type underlyingQuery interface {
	UnderlyingDB() *gorm.DB
	ReplaceDB(db *gorm.DB)
}

// matchFullText narrows do to promotions whose search text matches term.
// The builder has no tsvector operator, so the predicate is added on the gorm handle.
func matchFullText(do underlyingQuery, term string) {
	if term = strings.TrimSpace(term); term == "" {
		return
	}

	do.ReplaceDB(do.UnderlyingDB().Where(fullTextExpr, term))
}

// promotionOrder maps the sort vocabulary to ORDER BY columns. Rows without
// a discount or price sort last in either direction.
func promotionOrder(q *query.Query, sort repository.PromotionSort) []field.Expr {
	p := q.PromotionModel

	switch sort {
	case repository.SortDiscount:
		return []field.Expr{p.DiscountPercentage.IsNull(), p.DiscountPercentage.Desc(), p.CreatedAt.Desc(), p.ID.Desc()}
	case repository.SortPriceLow:
		return []field.Expr{p.DiscountedPrice.IsNull(), p.DiscountedPrice.Asc(), p.CreatedAt.Desc(), p.ID.Desc()}
	case repository.SortPriceHigh:
		return []field.Expr{p.DiscountedPrice.IsNull(), p.DiscountedPrice.Desc(), p.CreatedAt.Desc(), p.ID.Desc()}
	case repository.SortEndingSoon:
		return []field.Expr{p.EndDate.Asc(), p.ID.Asc()}
	default:
		return []field.Expr{p.CreatedAt.Desc(), p.ID.Desc()}
	}
}

// --- Mapper Functions ---

// toPromotionDomain converts a GORM PromotionModel to a domain Promotion entity.
func toPromotionDomain(data *model.PromotionModel) *entity.Promotion {
	if data == nil {
		return nil
	}

	promotion := &entity.Promotion{
		ID:                 data.ID,
		BusinessID:         data.BusinessID,
		Title:              data.Title,
		Description:        data.Description,
		Category:           entity.Category(data.Category),
		Type:               entity.PromotionType(data.Type),
		DiscountPercentage: data.DiscountPercentage,
		OriginalPrice:      fromNullDecimal(data.OriginalPrice),
		DiscountedPrice:    fromNullDecimal(data.DiscountedPrice),
		Images:             append([]string{}, data.Images...),
		RedirectURL:        data.RedirectURL,
		Tags:               append([]string{}, data.Tags...),
		Terms:              data.Terms,
		Code:               data.Code,
		StartDate:          data.StartDate,
		EndDate:            data.EndDate,
		IsActive:           data.IsActive,
		IsFeatured:         data.IsFeatured,
		Impressions:        data.Impressions,
		Clicks:             data.Clicks,
		ConversionRate:     data.ConversionRate,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	if data.Business != nil {
		promotion.Business = &entity.BusinessSummary{
			ID:   data.Business.ID,
			Name: data.Business.Name,
			Logo: data.Business.Logo,
		}
	}

	return promotion
}

// fromPromotionDomain converts a domain Promotion entity to a GORM PromotionModel.
func fromPromotionDomain(data *entity.Promotion) *model.PromotionModel {
	if data == nil {
		return nil
	}

	return &model.PromotionModel{
		ID:                 data.ID,
		BusinessID:         data.BusinessID,
		Title:              strings.TrimSpace(data.Title),
		Description:        data.Description,
		Category:           string(data.Category),
		Type:               string(data.Type),
		DiscountPercentage: data.DiscountPercentage,
		OriginalPrice:      toNullDecimal(data.OriginalPrice),
		DiscountedPrice:    toNullDecimal(data.DiscountedPrice),
		Images:             pq.StringArray(data.Images),
		RedirectURL:        data.RedirectURL,
		Tags:               pq.StringArray(data.Tags),
		Terms:              data.Terms,
		Code:               data.Code,
		StartDate:          data.StartDate,
		EndDate:            data.EndDate,
		IsActive:           data.IsActive,
		IsFeatured:         data.IsFeatured,
		Impressions:        data.Impressions,
		Clicks:             data.Clicks,
		ConversionRate:     data.ConversionRate,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal

	return &v
}
