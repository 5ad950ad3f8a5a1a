package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"dealfinder/config"
	deliverycontext "dealfinder/internal/delivery/context"
	"dealfinder/internal/domain/entity"
	"dealfinder/internal/domain/repository"
	"dealfinder/internal/domain/service"
	"dealfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	businessRepo  repository.BusinessRepository
	promotionRepo repository.PromotionRepository
	media         *mediaStore
	pager         pager
	logger        *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	BusinessRepo  repository.BusinessRepository
	PromotionRepo repository.PromotionRepository
	Storage       service.ImageStorage
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		businessRepo:  params.BusinessRepo,
		promotionRepo: params.PromotionRepo,
		media:         newMediaStore(params.Storage, params.Config),
		pager:         newPager(params.Config),
		logger:        params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers pages through users, optionally filtered by role and a name or email search.
func (srv *adminService) ListUsers(ctx context.Context, query *usecase.UserQuery) (*entity.Page[*entity.User], error) {
	filter := repository.UserFilter{Search: strings.TrimSpace(query.Search)}
	if query.Role != "" && query.Role != "all" {
		role := entity.Role(query.Role)
		if !role.IsValid() {
			return nil, invalid(invalidField("role", "invalid role value"), "invalid user query")
		}
		filter.Role = &role
	}

	users, err := srv.userRepo.List(ctx, filter, srv.pager.admin(query.Page, query.Limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns a user and, for business accounts, the businesses it owns.
func (srv *adminService) GetUser(ctx context.Context, id uuid.UUID) (*usecase.UserDetail, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, userNotFound(err, "failed to find user")
	}

	detail := &usecase.UserDetail{User: user, Businesses: []*entity.Business{}}
	if user.Role != entity.RoleBusiness {
		return detail, nil
	}

	businesses, err := srv.businessRepo.ListByOwner(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user businesses")
	}
	detail.Businesses = businesses

	return detail, nil
}

// UpdateUser changes the moderation fields of a user.
func (srv *adminService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.AdminUpdateUserInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, userNotFound(err, "failed to find user")
	}

	var fieldErrs entity.ValidationErrors
	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
		if utf8.RuneCountInString(user.Name) < minNameLength {
			fieldErrs.Add("name", "must be at least %d characters", minNameLength)
		}
	}
	if input.Email != nil {
		user.Email = normalizeEmail(*input.Email)
		if !entity.IsEmail(user.Email) {
			fieldErrs.Add("email", "must be a valid email address")
		}
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			fieldErrs.Add("role", "invalid role value")
		}
		user.Role = *input.Role
	}
	if input.IsVerified != nil {
		user.IsVerified = *input.IsVerified
	}
	if err := fieldErrs.Err(); err != nil {
		return nil, invalid(err, "invalid user update")
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, userNotFound(err, "failed to update user")
	}
	srv.log(ctx).Info("User updated by admin", slog.Any("userID", id), slog.String("role", user.Role.String()))

	return user, nil
}

// DeleteUser removes a user, the businesses it owns and their promotions in one transaction.
// Their stored images are deleted once the transaction commits.
func (srv *adminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	var (
		removedBusinesses int
		orphaned          []string
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		businessRepo := repoFactory.NewBusinessRepository()

		if _, err := userRepo.FindByID(ctx, id); err != nil {
			return userNotFound(err, "failed to find user")
		}

		businesses, err := businessRepo.ListByOwner(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to list user businesses")
		}

		if len(businesses) > 0 {
			ids := make([]uuid.UUID, 0, len(businesses))
			for _, b := range businesses {
				ids = append(ids, b.ID)
			}
			removed, err := repoFactory.NewPromotionRepository().DeleteByBusiness(ctx, ids)
			if err != nil {
				return errors.Wrap(err, "failed to delete user promotions")
			}
			orphaned = removed.Images
			for _, b := range businesses {
				if err := businessRepo.Delete(ctx, b.ID); err != nil {
					return errors.Wrap(err, "failed to delete user business")
				}
				orphaned = append(orphaned, brandingPaths(b)...)
			}
		}
		removedBusinesses = len(businesses)

		if err := userRepo.Delete(ctx, id); err != nil {
			return userNotFound(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute user deletion transaction")
	}
	srv.media.discard(ctx, srv.log(ctx), orphaned...)
	srv.log(ctx).Info("User deleted", slog.Any("userID", id), slog.Int("businessesRemoved", removedBusinesses))

	return nil
}

// ListBusinesses pages through businesses, optionally filtered by status, category and name.
func (srv *adminService) ListBusinesses(ctx context.Context, query *usecase.BusinessQuery) (*entity.Page[*entity.Business], error) {
	filter := repository.BusinessFilter{Search: strings.TrimSpace(query.Search)}
	var fieldErrs entity.ValidationErrors
	if query.Status != "" && query.Status != "all" {
		status := entity.BusinessStatus(query.Status)
		if status.IsValid() {
			filter.Status = &status
		} else {
			fieldErrs.Add("status", "invalid status value")
		}
	}
	if query.Category != "" && query.Category != "all" {
		category := entity.Category(query.Category)
		if category.IsValid() {
			filter.Category = &category
		} else {
			fieldErrs.Add("category", "invalid category value")
		}
	}
	if err := fieldErrs.Err(); err != nil {
		return nil, invalid(err, "invalid business query")
	}

	businesses, err := srv.businessRepo.List(ctx, filter, srv.pager.admin(query.Page, query.Limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return businesses, nil
}

// VerifyBusiness records a verification decision. An empty decision verifies and activates.
func (srv *adminService) VerifyBusiness(ctx context.Context, id uuid.UUID, input *usecase.VerifyBusinessInput) (*entity.Business, error) {
	verified := true
	status := entity.BusinessStatusActive
	if input != nil {
		if input.IsVerified != nil {
			verified = *input.IsVerified
		}
		if input.Status != nil {
			status = *input.Status
		}
	}
	if !status.IsValid() {
		return nil, invalid(invalidField("status", "invalid status value"), "invalid verification")
	}

	business, err := srv.businessRepo.SetVerification(ctx, id, verified, status)
	if err != nil {
		return nil, businessNotFound(err, "failed to verify business")
	}
	srv.log(ctx).Info("Business verification changed",
		slog.Any("businessID", id),
		slog.Bool("verified", verified),
		slog.String("status", string(status)),
	)

	return business, nil
}

// ListPromotions lists promotions regardless of liveness.
func (srv *adminService) ListPromotions(ctx context.Context, query *usecase.PromotionQuery) (*entity.Page[*entity.Promotion], error) {
	filter, err := promotionFilter(query)
	if err != nil {
		return nil, err
	}
	filter.Query = strings.TrimSpace(query.Query)

	promotions, err := srv.promotionRepo.List(ctx, filter, repository.ParsePromotionSort(query.SortBy), srv.pager.admin(query.Page, query.Limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	return promotions, nil
}

// SetFeatured changes the featured flag of a promotion.
func (srv *adminService) SetFeatured(ctx context.Context, id uuid.UUID, featured *bool) (*entity.Promotion, error) {
	value := true
	if featured != nil {
		value = *featured
	}

	promotion, err := srv.promotionRepo.SetFeatured(ctx, id, value)
	if err != nil {
		return nil, promotionNotFound(err, "failed to update featured flag")
	}

	return promotion, nil
}
