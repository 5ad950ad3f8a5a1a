package handler

import (
	"log/slog"
	"net/http"

	"dealfinder/internal/delivery/http/response"
	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC     usecase.AdminUsecase
	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AdminHandler serves the moderation and reporting endpoints.
type AdminHandler struct {
	adminUC     usecase.AdminUsecase
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC:     params.AdminUC,
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// AdminUpdateUserRequest holds the user fields an admin may change.
type AdminUpdateUserRequest struct {
	Name       *string      `json:"name"`
	Email      *string      `json:"email"`
	Role       *entity.Role `json:"role"`
	IsVerified *bool        `json:"isVerified"`
}

// VerifyBusinessRequest is the body of the verification endpoint. Both fields are optional.
type VerifyBusinessRequest struct {
	IsVerified *bool                  `json:"isVerified"`
	Status     *entity.BusinessStatus `json:"status"`
}

// SetFeaturedRequest is the body of the featured endpoint. An absent flag means featured.
type SetFeaturedRequest struct {
	IsFeatured *bool `json:"isFeatured"`
}

// Dashboard returns the platform counters.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	summary, err := h.analyticsUC.DashboardSummary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// Analytics returns the platform report for the requested period in days.
func (h *AdminHandler) Analytics(c echo.Context) error {
	report, err := h.analyticsUC.PlatformAnalytics(c.Request().Context(), queryInt(c, "period"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "")
}

// ListUsers lists users filtered by role and name or email.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, err := h.adminUC.ListUsers(c.Request().Context(), &usecase.UserQuery{
		Role:   c.QueryParam("role"),
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, page, "Users retrieved successfully")
}

// GetUser returns a user with the businesses it owns.
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrUserNotFound)
	if err != nil {
		return err
	}

	detail, err := h.adminUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// UpdateUser changes the name, email, role or verification of a user.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrUserNotFound)
	if err != nil {
		return err
	}

	var req AdminUpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.adminUC.UpdateUser(c.Request().Context(), id, &usecase.AdminUpdateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		IsVerified: req.IsVerified,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// DeleteUser removes a user with everything it owns.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrUserNotFound)
	if err != nil {
		return err
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User and associated data deleted successfully")
}

// ListBusinesses lists businesses filtered by status, category and name.
func (h *AdminHandler) ListBusinesses(c echo.Context) error {
	page, err := h.adminUC.ListBusinesses(c.Request().Context(), &usecase.BusinessQuery{
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, page, "Businesses retrieved successfully")
}

// VerifyBusiness records the verification decision for a business.
func (h *AdminHandler) VerifyBusiness(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrBusinessNotFound)
	if err != nil {
		return err
	}

	var req VerifyBusinessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	business, err := h.adminUC.VerifyBusiness(c.Request().Context(), id, &usecase.VerifyBusinessInput{
		IsVerified: req.IsVerified,
		Status:     req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business verification updated successfully")
}

// ListPromotions lists every promotion, live or not.
func (h *AdminHandler) ListPromotions(c echo.Context) error {
	page, err := h.adminUC.ListPromotions(c.Request().Context(), promotionQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, page, "Promotions retrieved successfully")
}

// SetFeatured toggles the featured flag of a promotion.
func (h *AdminHandler) SetFeatured(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrPromotionNotFound)
	if err != nil {
		return err
	}

	var req SetFeaturedRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	promotion, err := h.adminUC.SetFeatured(c.Request().Context(), id, req.IsFeatured)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promotion, "Promotion featured status updated successfully")
}
