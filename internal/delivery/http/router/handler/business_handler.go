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

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC  usecase.BusinessUsecase
	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// BusinessHandler serves the business management endpoints.
type BusinessHandler struct {
	businessUC  usecase.BusinessUsecase
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC:  params.BusinessUC,
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// SetStatusRequest is the body of the status endpoint.
type SetStatusRequest struct {
	Status entity.BusinessStatus `json:"status" validate:"required"`
}

// Create handles a multipart business creation with optional logo and cover image.
// Address, socialMedia and businessHours are JSON encoded form fields.
func (h *BusinessHandler) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	f := newFormFields(c)
	input := &usecase.CreateBusinessInput{
		Name:         f.str("name"),
		Description:  f.str("description"),
		Category:     entity.Category(f.str("category")),
		Subcategory:  f.str("subcategory"),
		Website:      f.str("website"),
		ContactEmail: f.str("contactEmail"),
		ContactPhone: f.str("contactPhone"),
		Logo:         formFile(c, "logo"),
		CoverImage:   formFile(c, "coverImage"),
	}
	f.optJSON("socialMedia", &input.SocialMedia)
	f.optJSON("address", &input.Address)
	f.optJSON("businessHours", &input.BusinessHours)
	if err := f.err(); err != nil {
		return errors.WithStack(err)
	}

	business, err := h.businessUC.Create(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business created successfully")
}

// Get returns one business and counts an impression.
func (h *BusinessHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrBusinessNotFound)
	if err != nil {
		return err
	}

	business, err := h.businessUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "")
}

// Update handles a partial business update. Uploaded files replace the logo or cover image.
func (h *BusinessHandler) Update(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", domainerrors.ErrBusinessNotFound)
	if err != nil {
		return err
	}

	f := newFormFields(c)
	input := &usecase.UpdateBusinessInput{
		Name:         f.optStr("name"),
		Description:  f.optStr("description"),
		Subcategory:  f.optStr("subcategory"),
		Website:      f.optStr("website"),
		ContactEmail: f.optStr("contactEmail"),
		ContactPhone: f.optStr("contactPhone"),
		Logo:         formFile(c, "logo"),
		CoverImage:   formFile(c, "coverImage"),
	}
	if raw := f.optStr("category"); raw != nil {
		category := entity.Category(*raw)
		input.Category = &category
	}
	var socialMedia entity.SocialMedia
	if f.optJSON("socialMedia", &socialMedia) {
		input.SocialMedia = &socialMedia
	}
	var address entity.Address
	if f.optJSON("address", &address) {
		input.Address = &address
	}
	f.optJSON("businessHours", &input.BusinessHours)
	if err := f.err(); err != nil {
		return errors.WithStack(err)
	}

	business, err := h.businessUC.Update(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business updated successfully")
}

// Delete removes a business with its promotions.
func (h *BusinessHandler) Delete(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", domainerrors.ErrBusinessNotFound)
	if err != nil {
		return err
	}

	if err := h.businessUC.Delete(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Business and its promotions deleted successfully")
}

// MyBusinesses lists the businesses of the caller.
func (h *BusinessHandler) MyBusinesses(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	businesses, err := h.businessUC.MyBusinesses(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}
	if businesses == nil {
		businesses = []*entity.Business{}
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// Promotions lists every promotion of a business, live or not.
func (h *BusinessHandler) Promotions(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", domainerrors.ErrBusinessNotFound)
	if err != nil {
		return err
	}

	page, err := h.businessUC.Promotions(c.Request().Context(), actor, id, queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, page, "Business promotions retrieved successfully")
}

// Analytics returns the counters and 30-day series of a business.
func (h *BusinessHandler) Analytics(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", domainerrors.ErrBusinessNotFound)
	if err != nil {
		return err
	}

	report, err := h.analyticsUC.BusinessAnalytics(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "")
}

// SetStatus changes the moderation status of a business.
func (h *BusinessHandler) SetStatus(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", domainerrors.ErrBusinessNotFound)
	if err != nil {
		return err
	}

	var req SetStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	business, err := h.businessUC.SetStatus(c.Request().Context(), actor, id, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business status updated successfully")
}
