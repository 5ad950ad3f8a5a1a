package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"dealfinder/config"
	deliverycontext "dealfinder/internal/delivery/context"
	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/domain/repository"
	"dealfinder/internal/domain/service"
	"dealfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// promotionService implements the PromotionUsecase interface.
type promotionService struct {
	txManager     repository.TransactionManager
	promotionRepo repository.PromotionRepository
	businessRepo  repository.BusinessRepository
	eventRepo     repository.AnalyticEventRepository
	qrCode        service.QRCodeService
	media         *mediaStore
	pager         pager
	now           func() time.Time
	logger        *slog.Logger
}

// PromotionServiceParams holds dependencies for PromotionService, injected by Fx.
type PromotionServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PromotionRepo repository.PromotionRepository
	BusinessRepo  repository.BusinessRepository
	EventRepo     repository.AnalyticEventRepository
	QRCode        service.QRCodeService
	Storage       service.ImageStorage
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPromotionService is the constructor for promotionService.
func NewPromotionService(params PromotionServiceParams) usecase.PromotionUsecase {
	return &promotionService{
		txManager:     params.TxManager,
		promotionRepo: params.PromotionRepo,
		businessRepo:  params.BusinessRepo,
		eventRepo:     params.EventRepo,
		qrCode:        params.QRCode,
		media:         newMediaStore(params.Storage, params.Config),
		pager:         newPager(params.Config),
		now:           time.Now,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *promotionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create publishes a new promotion for a business the actor manages.
func (srv *promotionService) Create(ctx context.Context, actor entity.Actor, input *usecase.CreatePromotionInput) (*entity.Promotion, error) {
	business, err := srv.businessRepo.FindByID(ctx, input.BusinessID)
	if err != nil {
		return nil, businessNotFound(err, "failed to load promotion business")
	}
	if !actor.CanManage(business.OwnerID) {
		return nil, domainerrors.ErrBusinessOwnershipViolation.WrapMessage("not authorized to create promotions for this business")
	}

	now := srv.now()
	promotion := &entity.Promotion{
		BusinessID:         business.ID,
		Title:              strings.TrimSpace(input.Title),
		Description:        input.Description,
		Category:           input.Category,
		Type:               input.Type,
		DiscountPercentage: input.DiscountPercentage,
		OriginalPrice:      input.OriginalPrice,
		DiscountedPrice:    input.DiscountedPrice,
		Images:             uploadNames(input.Images),
		RedirectURL:        strings.TrimSpace(input.RedirectURL),
		Tags:               entity.ParseTags(input.Tags),
		Terms:              input.Terms,
		Code:               input.Code,
		StartDate:          now,
		EndDate:            input.EndDate,
		IsActive:           true,
	}
	if input.StartDate != nil {
		promotion.StartDate = *input.StartDate
	}

	if err := srv.media.validate(input.Images...); err != nil {
		return nil, err
	}
	if err := promotion.Validate(); err != nil {
		return nil, invalid(err, "invalid promotion")
	}

	images, err := srv.media.save(ctx, srv.log(ctx), input.Images...)
	if err != nil {
		return nil, err
	}
	promotion.Images = images

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPromotionRepository().Create(ctx, promotion); err != nil {
			return errors.Wrap(err, "failed to create promotion")
		}
		if err := repoFactory.NewBusinessRepository().RecountPromotions(ctx, business.ID); err != nil {
			return errors.Wrap(err, "failed to recount business promotions")
		}

		return nil
	})
	if err != nil {
		srv.media.discard(ctx, srv.log(ctx), images...)
		srv.log(ctx).Error("Failed to create promotion", slog.Any("businessID", business.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute promotion creation transaction")
	}

	promotion.Business = &entity.BusinessSummary{ID: business.ID, Name: business.Name, Logo: business.Logo}
	srv.log(ctx).Info("Promotion created", slog.Any("promotionID", promotion.ID), slog.Any("businessID", business.ID))

	return promotion, nil
}

// Update applies a partial update to a promotion the actor manages.
func (srv *promotionService) Update(ctx context.Context, actor entity.Actor, id uuid.UUID, input *usecase.UpdatePromotionInput) (*entity.Promotion, error) {
	promotion, err := srv.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	previousImages := promotion.Images
	applyPromotionUpdate(promotion, input)
	if len(input.Images) > 0 {
		if err := srv.media.validate(input.Images...); err != nil {
			return nil, err
		}
		promotion.Images = uploadNames(input.Images)
	}
	if err := promotion.Validate(); err != nil {
		return nil, invalid(err, "invalid promotion update")
	}

	var stored []string
	if len(input.Images) > 0 {
		stored, err = srv.media.save(ctx, srv.log(ctx), input.Images...)
		if err != nil {
			return nil, err
		}
		promotion.Images = stored
	}

	updated, err := srv.promotionRepo.Update(ctx, promotion)
	if err != nil {
		srv.media.discard(ctx, srv.log(ctx), stored...)

		return nil, promotionNotFound(err, "failed to update promotion")
	}
	if len(stored) > 0 {
		srv.media.discard(ctx, srv.log(ctx), previousImages...)
	}
	if updated.Business == nil {
		updated.Business = promotion.Business
	}

	return updated, nil
}

// Delete removes a promotion the actor manages and recounts its business.
func (srv *promotionService) Delete(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	promotion, err := srv.authorize(ctx, actor, id)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPromotionRepository().Delete(ctx, promotion.ID); err != nil {
			return promotionNotFound(err, "failed to delete promotion")
		}
		if err := repoFactory.NewBusinessRepository().RecountPromotions(ctx, promotion.BusinessID); err != nil {
			return errors.Wrap(err, "failed to recount business promotions")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute promotion deletion transaction")
	}

	srv.media.discard(ctx, srv.log(ctx), promotion.Images...)
	srv.log(ctx).Info("Promotion deleted", slog.Any("promotionID", promotion.ID))

	return nil
}

// Get returns a promotion and counts the view as an impression.
func (srv *promotionService) Get(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	promotion, err := srv.promotionRepo.IncrementImpressions(ctx, id)
	if err != nil {
		return nil, promotionNotFound(err, "failed to record promotion impression")
	}

	business, err := srv.businessRepo.FindByID(ctx, promotion.BusinessID)
	switch {
	case err == nil:
		promotion.Business = &entity.BusinessSummary{ID: business.ID, Name: business.Name, Logo: business.Logo}
	case !errors.Is(err, repository.ErrBusinessNotFound):
		return nil, errors.Wrap(err, "failed to load promotion business")
	}

	return promotion, nil
}

// RecordClick counts a click and appends the click event.
func (srv *promotionService) RecordClick(ctx context.Context, id uuid.UUID, visitor usecase.Visitor) (*usecase.ClickOutput, error) {
	promotion, err := srv.promotionRepo.IncrementClicks(ctx, id)
	if err != nil {
		return nil, promotionNotFound(err, "failed to record promotion click")
	}

	event := entity.NewAnalyticEvent(entity.EventTypeClick, visitor.Client, srv.now())
	event.UserID = visitor.UserID
	event.PromotionID = &promotion.ID
	event.BusinessID = &promotion.BusinessID
	srv.appendEvent(ctx, event)

	return &usecase.ClickOutput{RedirectURL: promotion.RedirectURL, Promotion: promotion}, nil
}

// List returns live promotions, newest first.
func (srv *promotionService) List(ctx context.Context, query *usecase.PromotionQuery) (*entity.Page[*entity.Promotion], error) {
	filter, err := promotionFilter(query)
	if err != nil {
		return nil, err
	}
	now := srv.now()
	filter.LiveAt = &now

	page, err := srv.promotionRepo.List(ctx, filter, repository.SortNewest, srv.pager.public(query.Page, query.Limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	return page, nil
}

// Search returns sorted live promotions and logs the query as a search event.
func (srv *promotionService) Search(ctx context.Context, query *usecase.PromotionQuery, visitor usecase.Visitor) (*entity.Page[*entity.Promotion], error) {
	filter, err := promotionFilter(query)
	if err != nil {
		return nil, err
	}
	now := srv.now()
	filter.LiveAt = &now
	filter.Query = strings.TrimSpace(query.Query)

	page, err := srv.promotionRepo.List(ctx, filter, repository.ParsePromotionSort(query.SortBy), srv.pager.public(query.Page, query.Limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search promotions")
	}

	if filter.Query != "" {
		event := entity.NewAnalyticEvent(entity.EventTypeSearch, visitor.Client, now)
		event.UserID = visitor.UserID
		event.SearchQuery = filter.Query
		srv.appendEvent(ctx, event)
	}

	return page, nil
}

// Featured returns the newest featured live promotions.
func (srv *promotionService) Featured(ctx context.Context) ([]*entity.Promotion, error) {
	now := srv.now()
	featured := true
	filter := repository.PromotionFilter{Featured: &featured, LiveAt: &now}

	page, err := srv.promotionRepo.List(ctx, filter, repository.SortNewest, entity.Pagination{Page: 1, Limit: usecase.FeaturedLimit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured promotions")
	}

	return page.Items, nil
}

// ListByCategory returns the live promotions of one category.
func (srv *promotionService) ListByCategory(ctx context.Context, category string, page, limit int) (*entity.Page[*entity.Promotion], error) {
	cat := entity.Category(category)
	if !cat.IsValid() {
		return nil, domainerrors.ErrInvalidCategory.WrapMessage("unknown category " + category)
	}

	now := srv.now()
	filter := repository.PromotionFilter{Category: &cat, LiveAt: &now}

	result, err := srv.promotionRepo.List(ctx, filter, repository.SortNewest, srv.pager.public(page, limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions by category")
	}

	return result, nil
}

// QRCode renders the QR code of a promotion the actor manages.
func (srv *promotionService) QRCode(ctx context.Context, actor entity.Actor, id uuid.UUID) ([]byte, error) {
	promotion, err := srv.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GeneratePromotionQR(promotion.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate promotion QR code")
	}

	return png, nil
}

// authorize loads a promotion and checks that the actor manages its business.
func (srv *promotionService) authorize(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Promotion, error) {
	promotion, err := srv.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, promotionNotFound(err, "failed to find promotion")
	}

	business, err := srv.businessRepo.FindByID(ctx, promotion.BusinessID)
	if err != nil {
		return nil, businessNotFound(err, "failed to find promotion business")
	}
	if !actor.CanManage(business.OwnerID) {
		srv.log(ctx).Warn("Promotion ownership check failed", slog.Any("promotionID", id), slog.Any("userID", actor.UserID))

		return nil, domainerrors.ErrPromotionOwnershipViolation.WrapMessage("not authorized to manage this promotion")
	}

	return promotion, nil
}

// appendEvent writes to the event log. The counters are already committed at this point,
// so a failed write is logged and the request still succeeds.
func (srv *promotionService) appendEvent(ctx context.Context, event *entity.AnalyticEvent) {
	if err := srv.eventRepo.Append(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to append analytic event", slog.String("eventType", string(event.EventType)), slog.Any("error", err))
	}
}

func promotionFilter(query *usecase.PromotionQuery) (repository.PromotionFilter, error) {
	var filter repository.PromotionFilter

	if c := strings.TrimSpace(query.Category); c != "" && c != "all" {
		category := entity.Category(c)
		if !category.IsValid() {
			return filter, domainerrors.ErrInvalidCategory.WrapMessage("unknown category " + c)
		}
		filter.Category = &category
	}
	if t := strings.TrimSpace(query.Type); t != "" {
		promotionType := entity.PromotionType(t)
		if !promotionType.IsValid() {
			return filter, invalid(invalidField("type", "unknown promotion type "+t), "invalid promotion filter")
		}
		filter.Type = &promotionType
	}
	filter.Featured = query.Featured
	filter.Active = query.Active

	return filter, nil
}

func applyPromotionUpdate(p *entity.Promotion, input *usecase.UpdatePromotionInput) {
	if input.Title != nil {
		p.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Type != nil {
		p.Type = *input.Type
	}
	if input.DiscountPercentage != nil {
		p.DiscountPercentage = input.DiscountPercentage
	}
	if input.OriginalPrice != nil {
		p.OriginalPrice = input.OriginalPrice
	}
	if input.DiscountedPrice != nil {
		p.DiscountedPrice = input.DiscountedPrice
	}
	if input.RedirectURL != nil {
		p.RedirectURL = strings.TrimSpace(*input.RedirectURL)
	}
	if input.Tags != nil {
		p.Tags = entity.ParseTags(*input.Tags)
	}
	if input.Terms != nil {
		p.Terms = *input.Terms
	}
	if input.Code != nil {
		p.Code = *input.Code
	}
	if input.StartDate != nil {
		p.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		p.EndDate = *input.EndDate
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
}
