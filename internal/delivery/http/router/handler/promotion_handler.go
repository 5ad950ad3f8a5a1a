package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"dealfinder/internal/delivery/http/middleware"
	"dealfinder/internal/delivery/http/response"
	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PromotionHandlerParams holds dependencies for PromotionHandler, injected by Fx.
type PromotionHandlerParams struct {
	fx.In

	PromotionUC usecase.PromotionUsecase
	Logger      *slog.Logger
}

// PromotionHandler serves the promotion endpoints.
type PromotionHandler struct {
	promotionUC usecase.PromotionUsecase
	logger      *slog.Logger
}

// NewPromotionHandler is the constructor for PromotionHandler.
func NewPromotionHandler(params PromotionHandlerParams) *PromotionHandler {
	return &PromotionHandler{
		promotionUC: params.PromotionUC,
		logger:      params.Logger,
	}
}

// Create handles a multipart promotion creation with its images.
func (h *PromotionHandler) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	f := newFormFields(c)
	rawBusinessID := f.str("businessId")
	if rawBusinessID == "" {
		rawBusinessID = f.str("business")
	}
	businessID, parseErr := uuid.Parse(rawBusinessID)
	if parseErr != nil {
		f.errs.Add("businessId", "must be a valid business id")
	}

	input := &usecase.CreatePromotionInput{
		BusinessID:         businessID,
		Title:              f.str("title"),
		Description:        f.str("description"),
		Category:           entity.Category(f.str("category")),
		Type:               entity.PromotionType(f.str("type")),
		DiscountPercentage: f.optFloat("discountPercentage"),
		OriginalPrice:      f.optDecimal("originalPrice"),
		DiscountedPrice:    f.optDecimal("discountedPrice"),
		RedirectURL:        f.str("redirectUrl"),
		Tags:               f.str("tags"),
		Terms:              f.str("terms"),
		Code:               f.str("code"),
		StartDate:          f.optTime("startDate"),
		Images:             formFiles(c, "images"),
	}
	if end := f.optTime("endDate"); end != nil {
		input.EndDate = *end
	}
	if err := f.err(); err != nil {
		return errors.WithStack(err)
	}

	promotion, err := h.promotionUC.Create(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, promotion, "Promotion created successfully")
}

// Update handles a partial promotion update. New images replace the stored ones.
func (h *PromotionHandler) Update(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", domainerrors.ErrPromotionNotFound)
	if err != nil {
		return err
	}

	f := newFormFields(c)
	input := &usecase.UpdatePromotionInput{
		Title:              f.optStr("title"),
		Description:        f.optStr("description"),
		DiscountPercentage: f.optFloat("discountPercentage"),
		OriginalPrice:      f.optDecimal("originalPrice"),
		DiscountedPrice:    f.optDecimal("discountedPrice"),
		RedirectURL:        f.optStr("redirectUrl"),
		Tags:               f.optStr("tags"),
		Terms:              f.optStr("terms"),
		Code:               f.optStr("code"),
		StartDate:          f.optTime("startDate"),
		EndDate:            f.optTime("endDate"),
		IsActive:           f.optBool("isActive"),
		Images:             formFiles(c, "images"),
	}
	if raw := f.optStr("category"); raw != nil {
		category := entity.Category(*raw)
		input.Category = &category
	}
	if raw := f.optStr("type"); raw != nil {
		promotionType := entity.PromotionType(*raw)
		input.Type = &promotionType
	}
	if err := f.err(); err != nil {
		return errors.WithStack(err)
	}

	promotion, err := h.promotionUC.Update(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promotion, "Promotion updated successfully")
}

// Delete removes a promotion.
func (h *PromotionHandler) Delete(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", domainerrors.ErrPromotionNotFound)
	if err != nil {
		return err
	}

	if err := h.promotionUC.Delete(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Promotion deleted successfully")
}

// Get returns one promotion and counts an impression.
func (h *PromotionHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrPromotionNotFound)
	if err != nil {
		return err
	}

	promotion, err := h.promotionUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promotion, "")
}

// Click counts a click and returns where to send the visitor.
func (h *PromotionHandler) Click(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrPromotionNotFound)
	if err != nil {
		return err
	}

	output, err := h.promotionUC.RecordClick(c.Request().Context(), id, visitor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Redirect(c, output.RedirectURL, "Click recorded")
}

// List is the public listing of live promotions.
func (h *PromotionHandler) List(c echo.Context) error {
	page, err := h.promotionUC.List(c.Request().Context(), promotionQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, page, "Promotions retrieved successfully")
}

// Featured returns the featured strip.
func (h *PromotionHandler) Featured(c echo.Context) error {
	promotions, err := h.promotionUC.Featured(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if promotions == nil {
		promotions = []*entity.Promotion{}
	}

	return response.Success(c, http.StatusOK, promotions, "Featured promotions retrieved successfully")
}

// ListByCategory is the public listing of one category.
func (h *PromotionHandler) ListByCategory(c echo.Context) error {
	page, err := h.promotionUC.ListByCategory(c.Request().Context(), c.Param("category"),
		queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, page, "Promotions retrieved successfully")
}

// Search runs the public search and logs non-empty queries.
func (h *PromotionHandler) Search(c echo.Context) error {
	query := promotionQuery(c)
	query.Query = strings.TrimSpace(c.QueryParam("q"))
	query.SortBy = c.QueryParam("sortBy")

	page, err := h.promotionUC.Search(c.Request().Context(), query, visitor(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, page, "Search results retrieved successfully")
}

// QRCode renders the promotion QR code as a PNG.
func (h *PromotionHandler) QRCode(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", domainerrors.ErrPromotionNotFound)
	if err != nil {
		return err
	}

	png, err := h.promotionUC.QRCode(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// promotionQuery reads the listing filters shared by the public and admin listings.
func promotionQuery(c echo.Context) *usecase.PromotionQuery {
	return &usecase.PromotionQuery{
		Category: c.QueryParam("category"),
		Type:     c.QueryParam("type"),
		Featured: queryBool(c, "featured"),
		Active:   queryBool(c, "active"),
		Query:    c.QueryParam("search"),
		SortBy:   c.QueryParam("sortBy"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}
}

// visitor identifies the caller of a public endpoint, signed in or not.
func visitor(c echo.Context) usecase.Visitor {
	v := usecase.Visitor{Client: clientInfo(c)}
	if actor, ok := middleware.ActorFrom(c); ok {
		userID := actor.UserID
		v.UserID = &userID
	}

	return v
}
