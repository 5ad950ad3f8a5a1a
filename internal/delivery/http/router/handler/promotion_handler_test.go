package handler

import (
	"net/http"
	"testing"
	"time"

	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/errors"
	mockUsecase "dealfinder/internal/mocks/usecase"
	"dealfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPromotionHandler(t *testing.T) (*PromotionHandler, *mockUsecase.MockPromotionUsecase) {
	uc := mockUsecase.NewMockPromotionUsecase(t)

	return NewPromotionHandler(PromotionHandlerParams{PromotionUC: uc, Logger: newDiscardLogger()}), uc
}

func TestPromotionHandler_Create(t *testing.T) {
	h, uc := createTestPromotionHandler(t)
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}
	businessID := uuid.New()

	req := multipartRequest(t, http.MethodPost, "/api/promotions", map[string]string{
		"businessId":         businessID.String(),
		"title":              "Half price pizza",
		"category":           "food",
		"type":               "discount",
		"discountPercentage": "50",
		"originalPrice":      "100",
		"discountedPrice":    "50",
		"redirectUrl":        "https://pizza.example.com",
		"tags":               "pizza, lunch",
		"endDate":            "2026-12-31",
	}, "images", "front.png", "menu.png")
	c, rec := newContext(req)
	withActor(c, actor)

	uc.EXPECT().Create(mock.Anything, actor, mock.MatchedBy(func(in *usecase.CreatePromotionInput) bool {
		return in.BusinessID == businessID &&
			in.Title == "Half price pizza" &&
			in.Category == entity.CategoryFood &&
			in.DiscountPercentage != nil && *in.DiscountPercentage == 50 &&
			in.OriginalPrice != nil && in.OriginalPrice.Equal(decimal.NewFromInt(100)) &&
			in.EndDate.Equal(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)) &&
			in.StartDate == nil &&
			len(in.Images) == 2 && in.Images[0].Filename == "front.png" &&
			in.Tags == "pizza, lunch"
	})).Return(&entity.Promotion{ID: uuid.New(), BusinessID: businessID, Title: "Half price pizza"}, nil)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.True(t, body.Success)
	assert.Contains(t, string(body.Data), "Half price pizza")
}

func TestPromotionHandler_Create_MalformedFields(t *testing.T) {
	h, _ := createTestPromotionHandler(t)

	req := multipartRequest(t, http.MethodPost, "/api/promotions", map[string]string{
		"title":              "Broken",
		"discountPercentage": "half",
		"endDate":            "next week",
	}, "images")
	c, _ := newContext(req)
	withActor(c, entity.Actor{UserID: uuid.New(), Role: entity.RoleBusiness})

	err := h.Create(c)

	fieldErrs, ok := errors.AsType[entity.ValidationErrors](err)
	require.True(t, ok)
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"businessId", "discountPercentage", "endDate"}, fields)
}

func TestPromotionHandler_Create_NonFiniteDiscount(t *testing.T) {
	for _, raw := range []string{"NaN", "Inf", "-Inf", "+Inf"} {
		t.Run(raw, func(t *testing.T) {
			h, _ := createTestPromotionHandler(t)

			req := multipartRequest(t, http.MethodPost, "/api/promotions", map[string]string{
				"businessId":         uuid.NewString(),
				"discountPercentage": raw,
				"endDate":            "2026-12-31",
			}, "images", "front.png")
			c, _ := newContext(req)
			withActor(c, entity.Actor{UserID: uuid.New(), Role: entity.RoleBusiness})

			fieldErrs, ok := errors.AsType[entity.ValidationErrors](h.Create(c))
			require.True(t, ok)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, "discountPercentage", fieldErrs[0].Field)
		})
	}
}

func TestPromotionHandler_Create_RequiresActor(t *testing.T) {
	h, _ := createTestPromotionHandler(t)
	c, _ := newContext(multipartRequest(t, http.MethodPost, "/api/promotions", nil, "images"))

	assert.ErrorIs(t, h.Create(c), domainerrors.ErrUnauthorized)
}

func TestPromotionHandler_Update_OnlySentFields(t *testing.T) {
	h, uc := createTestPromotionHandler(t)
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}
	id := uuid.New()

	req := multipartRequest(t, http.MethodPut, "/api/promotions/"+id.String(), map[string]string{
		"title":    "New title",
		"isActive": "false",
	}, "images")
	c, rec := newContext(req, "id", id.String())
	withActor(c, actor)

	uc.EXPECT().Update(mock.Anything, actor, id, mock.MatchedBy(func(in *usecase.UpdatePromotionInput) bool {
		return in.Title != nil && *in.Title == "New title" &&
			in.IsActive != nil && !*in.IsActive &&
			in.Description == nil && in.Category == nil && in.EndDate == nil &&
			len(in.Images) == 0
	})).Return(&entity.Promotion{ID: id, Title: "New title"}, nil)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPromotionHandler_Get(t *testing.T) {
	h, uc := createTestPromotionHandler(t)
	id := uuid.New()
	c, rec := newContext(jsonRequest(t, http.MethodGet, "/api/promotions/"+id.String(), nil), "id", id.String())

	uc.EXPECT().Get(mock.Anything, id).Return(&entity.Promotion{ID: id, Impressions: 1}, nil)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"impressions":1`)
}

func TestPromotionHandler_Get_MalformedID(t *testing.T) {
	h, _ := createTestPromotionHandler(t)
	c, _ := newContext(jsonRequest(t, http.MethodGet, "/api/promotions/nope", nil), "id", "nope")

	assert.ErrorIs(t, h.Get(c), domainerrors.ErrPromotionNotFound)
}

func TestPromotionHandler_Click_IdentifiesVisitor(t *testing.T) {
	h, uc := createTestPromotionHandler(t)
	id := uuid.New()
	userID := uuid.New()

	req := jsonRequest(t, http.MethodPost, "/api/promotions/"+id.String()+"/click", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1")
	c, rec := newContext(req, "id", id.String())
	withActor(c, entity.Actor{UserID: userID, Role: entity.RoleUser})

	uc.EXPECT().RecordClick(mock.Anything, id, mock.MatchedBy(func(v usecase.Visitor) bool {
		return v.UserID != nil && *v.UserID == userID && v.Client.Device == entity.DeviceMobile
	})).Return(&usecase.ClickOutput{RedirectURL: "https://pizza.example.com"}, nil)

	require.NoError(t, h.Click(c))
	body := decodeEnvelope(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "https://pizza.example.com", body.RedirectURL)
	assert.Empty(t, body.Data)
}

func TestPromotionHandler_Click_Anonymous(t *testing.T) {
	h, uc := createTestPromotionHandler(t)
	id := uuid.New()
	c, _ := newContext(jsonRequest(t, http.MethodPost, "/api/promotions/"+id.String()+"/click", nil), "id", id.String())

	uc.EXPECT().RecordClick(mock.Anything, id, mock.MatchedBy(func(v usecase.Visitor) bool {
		return v.UserID == nil
	})).Return(nil, domainerrors.ErrPromotionNotFound)

	assert.ErrorIs(t, h.Click(c), domainerrors.ErrPromotionNotFound)
}

func TestPromotionHandler_Search_EmptyPage(t *testing.T) {
	h, uc := createTestPromotionHandler(t)
	req := jsonRequest(t, http.MethodGet, "/api/promotions/search?q=+pizza+&sortBy=popular&page=4&limit=5&category=food", nil)
	c, rec := newContext(req)

	uc.EXPECT().Search(mock.Anything, mock.MatchedBy(func(q *usecase.PromotionQuery) bool {
		return q.Query == "pizza" && q.SortBy == "popular" && q.Page == 4 && q.Limit == 5 && q.Category == "food"
	}), mock.Anything).Return(&entity.Page[*entity.Promotion]{
		Total:      3,
		Pagination: entity.Pagination{Page: 4, Limit: 5},
	}, nil)

	require.NoError(t, h.Search(c))

	body := decodeEnvelope(t, rec)
	assert.True(t, body.Success)
	assert.JSONEq(t, `[]`, string(body.Data))
	require.NotNil(t, body.Count)
	assert.Equal(t, 0, *body.Count)
	assert.EqualValues(t, 3, *body.Total)
	assert.Equal(t, 1, *body.TotalPages)
	assert.Equal(t, 4, *body.CurrentPage)
}

func TestPromotionHandler_Featured(t *testing.T) {
	h, uc := createTestPromotionHandler(t)
	c, rec := newContext(jsonRequest(t, http.MethodGet, "/api/promotions/featured", nil))

	uc.EXPECT().Featured(mock.Anything).Return(nil, nil)

	require.NoError(t, h.Featured(c))
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
}

func TestPromotionHandler_ListByCategory(t *testing.T) {
	h, uc := createTestPromotionHandler(t)
	c, rec := newContext(jsonRequest(t, http.MethodGet, "/api/promotions/category/food?page=2", nil), "category", "food")

	uc.EXPECT().ListByCategory(mock.Anything, "food", 2, 0).Return(&entity.Page[*entity.Promotion]{
		Items:      []*entity.Promotion{{ID: uuid.New()}},
		Total:      13,
		Pagination: entity.Pagination{Page: 2, Limit: 12},
	}, nil)

	require.NoError(t, h.ListByCategory(c))
	body := decodeEnvelope(t, rec)
	assert.Equal(t, 2, *body.TotalPages)
}

func TestPromotionHandler_QRCode(t *testing.T) {
	h, uc := createTestPromotionHandler(t)
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}
	id := uuid.New()
	c, rec := newContext(jsonRequest(t, http.MethodGet, "/api/promotions/"+id.String()+"/qrcode", nil), "id", id.String())
	withActor(c, actor)

	uc.EXPECT().QRCode(mock.Anything, actor, id).Return([]byte("\x89PNG"), nil)

	require.NoError(t, h.QRCode(c))
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestPromotionHandler_Delete(t *testing.T) {
	h, uc := createTestPromotionHandler(t)
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	id := uuid.New()
	c, rec := newContext(jsonRequest(t, http.MethodDelete, "/api/promotions/"+id.String(), nil), "id", id.String())
	withActor(c, actor)

	uc.EXPECT().Delete(mock.Anything, actor, id).Return(nil)

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
