package postgres

import (
	"context"
	"strings"
	"time"

	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/domain/repository"
	"dealfinder/internal/infra/persistence/model"
	"dealfinder/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
		q:  query.Use(db),
	}
}

// Create persists a new business.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.q.BusinessModel.WithContext(ctx).Omit(field.AssociationFields).Create(businessM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("business owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindByID retrieves a business by its unique ID together with its owner.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	b := repo.q.BusinessModel
	businessM, err := b.WithContext(ctx).
		Preload(b.Owner).
		Where(b.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(businessM), nil
}

// Update writes the editable fields of a business.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{ID: business.ID}).
		Select("name", "logo", "cover_image", "description", "category", "subcategory", "website",
			"social_media", "contact_email", "contact_phone", "address", "business_hours", "updated_at").
		Updates(businessM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// Delete removes a business row.
func (repo *businessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	b := repo.q.BusinessModel
	result, err := b.WithContext(ctx).Where(b.ID.Eq(id)).Delete()
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("business still has promotions")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// List returns one page of businesses with their owners, newest first.
func (repo *businessRepository) List(ctx context.Context, filter repository.BusinessFilter, page entity.Pagination) (*entity.Page[*entity.Business], error) {
	b := repo.q.BusinessModel
	conds := businessConditions(repo.q, filter)

	total, err := b.WithContext(ctx).Where(conds...).Count()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count businesses")
	}

	rows, err := b.WithContext(ctx).
		Preload(b.Owner).
		Where(conds...).
		Order(b.CreatedAt.Desc(), b.ID.Desc()).
		Offset(page.Offset()).
		Limit(page.Limit).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return &entity.Page[*entity.Business]{Items: toBusinessesDomain(rows), Total: total, Pagination: page}, nil
}

// ListByOwner returns every business owned by the user, newest first.
func (repo *businessRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error) {
	b := repo.q.BusinessModel
	rows, err := b.WithContext(ctx).
		Where(b.OwnerID.Eq(ownerID)).
		Order(b.CreatedAt.Desc(), b.ID.Desc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses by owner")
	}

	return toBusinessesDomain(rows), nil
}

// Count returns the number of businesses matching the filter.
func (repo *businessRepository) Count(ctx context.Context, filter repository.BusinessFilter) (int64, error) {
	b := repo.q.BusinessModel

	total, err := b.WithContext(ctx).Where(businessConditions(repo.q, filter)...).Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count businesses")
	}

	return total, nil
}

// SetStatus changes the moderation status of a business.
func (repo *businessRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.BusinessStatus) (*entity.Business, error) {
	return repo.updateReturning(ctx, id, map[string]any{
		"status":     string(status),
		"updated_at": time.Now(),
	})
}

// SetVerification changes the verification flag and the status in one statement.
func (repo *businessRepository) SetVerification(ctx context.Context, id uuid.UUID, verified bool, status entity.BusinessStatus) (*entity.Business, error) {
	return repo.updateReturning(ctx, id, map[string]any{
		"is_verified": verified,
		"status":      string(status),
		"updated_at":  time.Now(),
	})
}

// IncrementImpressions atomically adds one impression to the business.
func (repo *businessRepository) IncrementImpressions(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	return repo.updateReturning(ctx, id, map[string]any{
		"impressions": gorm.Expr("impressions + 1"),
	})
}

// RecountPromotions sets promotion_count from a COUNT over the promotions table in the same statement.
func (repo *businessRepository) RecountPromotions(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)
	count := db.Model(&model.PromotionModel{}).Select("count(*)").Where("business_id = ?", id)

	result := db.Model(&model.BusinessModel{}).
		Where("id = ?", id).
		UpdateColumn("promotion_count", count)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to recount promotions")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// updateReturning applies column assignments to one business and scans back the stored row.
func (repo *businessRepository) updateReturning(ctx context.Context, id uuid.UUID, columns map[string]any) (*entity.Business, error) {
	var businessM model.BusinessModel

	result := repo.db.WithContext(ctx).
		Model(&businessM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumns(columns)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrBusinessNotFound
	}

	return toBusinessDomain(&businessM), nil
}

func businessConditions(q *query.Query, filter repository.BusinessFilter) []gen.Condition {
	b := q.BusinessModel

	var conds []gen.Condition
	if filter.OwnerID != nil {
		conds = append(conds, b.OwnerID.Eq(*filter.OwnerID))
	}
	if filter.Status != nil {
		conds = append(conds, b.Status.Eq(string(*filter.Status)))
	}
	if filter.Category != nil {
		conds = append(conds, b.Category.Eq(string(*filter.Category)))
	}
	if strings.TrimSpace(filter.Search) != "" {
		conds = append(conds, b.Name.Lower().Like(strings.ToLower(likePattern(filter.Search))))
	}
	if filter.CreatedSince != nil {
		conds = append(conds, b.CreatedAt.Gte(*filter.CreatedSince))
	}

	return conds
}

// --- Mapper Functions ---

func toBusinessesDomain(rows []*model.BusinessModel) []*entity.Business {
	businesses := make([]*entity.Business, 0, len(rows))
	for _, row := range rows {
		businesses = append(businesses, toBusinessDomain(row))
	}

	return businesses
}

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	social := data.SocialMedia.Data()
	hours := make([]entity.BusinessHours, 0, len(data.BusinessHours))
	for _, h := range data.BusinessHours {
		hours = append(hours, entity.BusinessHours{Day: h.Day, Open: h.Open, Close: h.Close, IsClosed: h.IsClosed})
	}

	return &entity.Business{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Owner:       toUserSummaryDomain(data.Owner),
		Name:        data.Name,
		Logo:        data.Logo,
		CoverImage:  data.CoverImage,
		Description: data.Description,
		Category:    entity.Category(data.Category),
		Subcategory: data.Subcategory,
		Website:     data.Website,
		SocialMedia: entity.SocialMedia{
			Facebook:  social.Facebook,
			Instagram: social.Instagram,
			Twitter:   social.Twitter,
			LinkedIn:  social.LinkedIn,
		},
		ContactEmail:   data.ContactEmail,
		ContactPhone:   data.ContactPhone,
		Address:        toAddressDomain(data.Address.Data()),
		BusinessHours:  hours,
		IsVerified:     data.IsVerified,
		Status:         entity.BusinessStatus(data.Status),
		Rating:         data.Rating,
		ReviewCount:    data.ReviewCount,
		PromotionCount: data.PromotionCount,
		Impressions:    data.Impressions,
		Clicks:         data.Clicks,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel. Counters are copied
// for completeness but never written by Update.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	hours := make(datatypes.JSONSlice[model.BusinessHoursDocument], 0, len(data.BusinessHours))
	for _, h := range data.BusinessHours {
		hours = append(hours, model.BusinessHoursDocument{
			Day:      strings.ToLower(h.Day),
			Open:     h.Open,
			Close:    h.Close,
			IsClosed: h.IsClosed,
		})
	}

	return &model.BusinessModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Logo:        data.Logo,
		CoverImage:  data.CoverImage,
		Description: data.Description,
		Category:    string(data.Category),
		Subcategory: data.Subcategory,
		Website:     data.Website,
		SocialMedia: datatypes.NewJSONType(model.SocialMediaDocument{
			Facebook:  data.SocialMedia.Facebook,
			Instagram: data.SocialMedia.Instagram,
			Twitter:   data.SocialMedia.Twitter,
			LinkedIn:  data.SocialMedia.LinkedIn,
		}),
		ContactEmail:   data.ContactEmail,
		ContactPhone:   data.ContactPhone,
		Address:        datatypes.NewJSONType(fromAddressDomain(data.Address)),
		BusinessHours:  hours,
		IsVerified:     data.IsVerified,
		Status:         string(data.Status),
		Rating:         data.Rating,
		ReviewCount:    data.ReviewCount,
		PromotionCount: data.PromotionCount,
		Impressions:    data.Impressions,
		Clicks:         data.Clicks,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
