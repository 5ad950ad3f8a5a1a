package impl

import (
	"context"
	"log/slog"
	"strings"

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

// businessService implements the BusinessUsecase interface.
type businessService struct {
	txManager     repository.TransactionManager
	businessRepo  repository.BusinessRepository
	promotionRepo repository.PromotionRepository
	media         *mediaStore
	pager         pager
	logger        *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	BusinessRepo  repository.BusinessRepository
	PromotionRepo repository.PromotionRepository
	Storage       service.ImageStorage
	Config        *config.Config
	Logger        *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		txManager:     params.TxManager,
		businessRepo:  params.BusinessRepo,
		promotionRepo: params.PromotionRepo,
		media:         newMediaStore(params.Storage, params.Config),
		pager:         newPager(params.Config),
		logger:        params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a business owned by the actor. New businesses wait for moderation.
func (srv *businessService) Create(ctx context.Context, actor entity.Actor, input *usecase.CreateBusinessInput) (*entity.Business, error) {
	if actor.Role != entity.RoleBusiness && !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only business accounts can create businesses")
	}

	business := &entity.Business{
		OwnerID:       actor.UserID,
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		Subcategory:   input.Subcategory,
		Website:       strings.TrimSpace(input.Website),
		SocialMedia:   input.SocialMedia,
		ContactEmail:  strings.ToLower(strings.TrimSpace(input.ContactEmail)),
		ContactPhone:  input.ContactPhone,
		Address:       input.Address,
		BusinessHours: input.BusinessHours,
		Status:        entity.BusinessStatusPending,
	}
	business.ApplyDefaults()

	if err := business.Validate(); err != nil {
		return nil, invalid(err, "invalid business")
	}

	logo, cover, err := srv.storeBranding(ctx, input.Logo, input.CoverImage)
	if err != nil {
		return nil, err
	}
	if logo != "" {
		business.Logo = logo
	}
	business.CoverImage = cover

	if err := srv.businessRepo.Create(ctx, business); err != nil {
		srv.media.discard(ctx, srv.log(ctx), logo, cover)

		return nil, errors.Wrap(err, "failed to create business")
	}
	srv.log(ctx).Info("Business created", slog.Any("businessID", business.ID), slog.Any("ownerID", actor.UserID))

	return business, nil
}

// Get returns a business and counts the view as an impression.
func (srv *businessService) Get(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	if _, err := srv.businessRepo.IncrementImpressions(ctx, id); err != nil {
		return nil, businessNotFound(err, "failed to record business impression")
	}

	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		return nil, businessNotFound(err, "failed to find business")
	}

	return business, nil
}

// Update applies a partial update to a business the actor manages.
func (srv *businessService) Update(ctx context.Context, actor entity.Actor, id uuid.UUID, input *usecase.UpdateBusinessInput) (*entity.Business, error) {
	business, err := srv.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	applyBusinessUpdate(business, input)
	if err := business.Validate(); err != nil {
		return nil, invalid(err, "invalid business update")
	}

	previousLogo, previousCover := business.Logo, business.CoverImage
	logo, cover, err := srv.storeBranding(ctx, input.Logo, input.CoverImage)
	if err != nil {
		return nil, err
	}
	if logo != "" {
		business.Logo = logo
	}
	if cover != "" {
		business.CoverImage = cover
	}

	if err := srv.businessRepo.Update(ctx, business); err != nil {
		srv.media.discard(ctx, srv.log(ctx), logo, cover)

		return nil, businessNotFound(err, "failed to update business")
	}

	if logo != "" && previousLogo != entity.DefaultBusinessLogo {
		srv.media.discard(ctx, srv.log(ctx), previousLogo)
	}
	if cover != "" {
		srv.media.discard(ctx, srv.log(ctx), previousCover)
	}

	return business, nil
}

// Delete removes a business and all of its promotions in one transaction.
func (srv *businessService) Delete(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("only admins can delete businesses")
	}

	var (
		business *entity.Business
		removed  repository.RemovedPromotions
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()
		found, err := businessRepo.FindByID(ctx, id)
		if err != nil {
			return businessNotFound(err, "failed to find business")
		}
		business = found

		removed, err = repoFactory.NewPromotionRepository().DeleteByBusiness(ctx, []uuid.UUID{id})
		if err != nil {
			return errors.Wrap(err, "failed to delete business promotions")
		}

		if err := businessRepo.Delete(ctx, id); err != nil {
			return businessNotFound(err, "failed to delete business")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute business deletion transaction")
	}
	// Files go only after the commit; a rollback must leave them referenced.
	srv.media.discard(ctx, srv.log(ctx), append(removed.Images, brandingPaths(business)...)...)
	srv.log(ctx).Info("Business deleted", slog.Any("businessID", id), slog.Int64("promotionsRemoved", removed.Count))

	return nil
}

// MyBusinesses lists the businesses owned by the actor.
func (srv *businessService) MyBusinesses(ctx context.Context, actor entity.Actor) ([]*entity.Business, error) {
	businesses, err := srv.businessRepo.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned businesses")
	}

	return businesses, nil
}

// Promotions lists every promotion of a business the actor manages, live or not.
func (srv *businessService) Promotions(ctx context.Context, actor entity.Actor, id uuid.UUID, page, limit int) (*entity.Page[*entity.Promotion], error) {
	if _, err := srv.authorize(ctx, actor, id); err != nil {
		return nil, err
	}

	filter := repository.PromotionFilter{BusinessID: &id}
	result, err := srv.promotionRepo.List(ctx, filter, repository.SortNewest, srv.pager.all(page, limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list business promotions")
	}

	return result, nil
}

// SetStatus moves a business between pending, active and suspended.
func (srv *businessService) SetStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, status entity.BusinessStatus) (*entity.Business, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only admins can change business status")
	}
	if !status.IsValid() {
		return nil, invalid(invalidField("status", "invalid status value"), "invalid business status")
	}

	business, err := srv.businessRepo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, businessNotFound(err, "failed to update business status")
	}

	return business, nil
}

func (srv *businessService) authorize(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		return nil, businessNotFound(err, "failed to find business")
	}
	if !actor.CanManage(business.OwnerID) {
		srv.log(ctx).Warn("Business ownership check failed", slog.Any("businessID", id), slog.Any("userID", actor.UserID))

		return nil, domainerrors.ErrBusinessOwnershipViolation.WrapMessage("not authorized to manage this business")
	}

	return business, nil
}

// storeBranding validates and stores the optional logo and cover uploads.
func (srv *businessService) storeBranding(ctx context.Context, logo, cover *service.ImageUpload) (string, string, error) {
	var uploads []service.ImageUpload
	if logo != nil {
		uploads = append(uploads, *logo)
	}
	if cover != nil {
		uploads = append(uploads, *cover)
	}
	if len(uploads) == 0 {
		return "", "", nil
	}

	if err := srv.media.validate(uploads...); err != nil {
		return "", "", err
	}
	paths, err := srv.media.save(ctx, srv.log(ctx), uploads...)
	if err != nil {
		return "", "", err
	}

	var logoPath, coverPath string
	if logo != nil {
		logoPath, paths = paths[0], paths[1:]
	}
	if cover != nil {
		coverPath = paths[0]
	}

	return logoPath, coverPath, nil
}

func applyBusinessUpdate(b *entity.Business, input *usecase.UpdateBusinessInput) {
	if input.Name != nil {
		b.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		b.Description = *input.Description
	}
	if input.Category != nil {
		b.Category = *input.Category
	}
	if input.Subcategory != nil {
		b.Subcategory = *input.Subcategory
	}
	if input.Website != nil {
		b.Website = strings.TrimSpace(*input.Website)
	}
	if input.SocialMedia != nil {
		b.SocialMedia = *input.SocialMedia
	}
	if input.ContactEmail != nil {
		b.ContactEmail = strings.ToLower(strings.TrimSpace(*input.ContactEmail))
	}
	if input.ContactPhone != nil {
		b.ContactPhone = *input.ContactPhone
	}
	if input.Address != nil {
		b.Address = *input.Address
	}
	if input.BusinessHours != nil {
		b.BusinessHours = input.BusinessHours
	}
}
