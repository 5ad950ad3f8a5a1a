package handler

import (
	"net/http"
	"testing"

	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/errors"
	mockUsecase "dealfinder/internal/mocks/usecase"
	"dealfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBusinessHandler(t *testing.T) (*BusinessHandler, *mockUsecase.MockBusinessUsecase, *mockUsecase.MockAnalyticsUsecase) {
	businessUC := mockUsecase.NewMockBusinessUsecase(t)
	analyticsUC := mockUsecase.NewMockAnalyticsUsecase(t)

	return NewBusinessHandler(BusinessHandlerParams{
		BusinessUC:  businessUC,
		AnalyticsUC: analyticsUC,
		Logger:      newDiscardLogger(),
	}), businessUC, analyticsUC
}

func TestBusinessHandler_Create(t *testing.T) {
	h, uc, _ := createTestBusinessHandler(t)
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}

	req := multipartRequest(t, http.MethodPost, "/api/business", map[string]string{
		"name":          "Pizza Place",
		"description":   "Wood fired",
		"category":      "food",
		"website":       "https://pizza.example.com",
		"address":       `{"city":"Taipei","country":"TW"}`,
		"socialMedia":   `{"instagram":"@pizza"}`,
		"businessHours": `[{"day":"monday","open":"10:00","close":"22:00"}]`,
	}, "logo", "logo.png")
	c, rec := newContext(req)
	withActor(c, actor)

	uc.EXPECT().Create(mock.Anything, actor, mock.MatchedBy(func(in *usecase.CreateBusinessInput) bool {
		return in.Name == "Pizza Place" &&
			in.Category == entity.CategoryFood &&
			in.Address.City == "Taipei" &&
			in.SocialMedia.Instagram == "@pizza" &&
			len(in.BusinessHours) == 1 && in.BusinessHours[0].Open == "10:00" &&
			in.Logo != nil && in.Logo.Filename == "logo.png" &&
			in.CoverImage == nil
	})).Return(&entity.Business{ID: uuid.New(), Name: "Pizza Place"}, nil)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestBusinessHandler_Create_MalformedJSONField(t *testing.T) {
	h, _, _ := createTestBusinessHandler(t)
	req := multipartRequest(t, http.MethodPost, "/api/business", map[string]string{
		"name":    "Pizza Place",
		"address": "{city:",
	}, "logo")
	c, _ := newContext(req)
	withActor(c, entity.Actor{UserID: uuid.New(), Role: entity.RoleBusiness})

	fieldErrs, ok := errors.AsType[entity.ValidationErrors](h.Create(c))
	require.True(t, ok)
	assert.Equal(t, "address", fieldErrs[0].Field)
}

func TestBusinessHandler_Update_PartialFields(t *testing.T) {
	h, uc, _ := createTestBusinessHandler(t)
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}
	id := uuid.New()

	req := multipartRequest(t, http.MethodPut, "/api/business/"+id.String(), map[string]string{
		"description": "",
	}, "coverImage", "cover.png")
	c, _ := newContext(req, "id", id.String())
	withActor(c, actor)

	uc.EXPECT().Update(mock.Anything, actor, id, mock.MatchedBy(func(in *usecase.UpdateBusinessInput) bool {
		return in.Description != nil && *in.Description == "" &&
			in.Name == nil && in.Address == nil && in.BusinessHours == nil &&
			in.Logo == nil && in.CoverImage != nil
	})).Return(&entity.Business{ID: id}, nil)

	require.NoError(t, h.Update(c))
}

func TestBusinessHandler_Promotions(t *testing.T) {
	h, uc, _ := createTestBusinessHandler(t)
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}
	id := uuid.New()
	c, rec := newContext(jsonRequest(t, http.MethodGet, "/api/business/my-businesses/"+id.String()+"/promotions?limit=20", nil), "id", id.String())
	withActor(c, actor)

	uc.EXPECT().Promotions(mock.Anything, actor, id, 0, 20).Return(&entity.Page[*entity.Promotion]{
		Items:      []*entity.Promotion{{ID: uuid.New()}, {ID: uuid.New()}},
		Total:      2,
		Pagination: entity.Pagination{Page: 1, Limit: 20},
	}, nil)

	require.NoError(t, h.Promotions(c))
	body := decodeEnvelope(t, rec)
	assert.Equal(t, 2, *body.Count)
	assert.EqualValues(t, 2, *body.Total)
	assert.Equal(t, 1, *body.CurrentPage)
}

func TestBusinessHandler_Analytics_Forbidden(t *testing.T) {
	h, _, analyticsUC := createTestBusinessHandler(t)
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}
	id := uuid.New()
	c, _ := newContext(jsonRequest(t, http.MethodGet, "/api/business/my-businesses/"+id.String()+"/analytics", nil), "id", id.String())
	withActor(c, actor)

	analyticsUC.EXPECT().BusinessAnalytics(mock.Anything, actor, id).Return(nil, domainerrors.ErrBusinessOwnershipViolation)

	assert.ErrorIs(t, h.Analytics(c), domainerrors.ErrBusinessOwnershipViolation)
}

func TestBusinessHandler_SetStatus(t *testing.T) {
	h, uc, _ := createTestBusinessHandler(t)
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	id := uuid.New()
	c, _ := newContext(jsonRequest(t, http.MethodPatch, "/api/business/"+id.String()+"/status", map[string]string{"status": "suspended"}), "id", id.String())
	withActor(c, actor)

	uc.EXPECT().SetStatus(mock.Anything, actor, id, entity.BusinessStatus("suspended")).
		Return(&entity.Business{ID: id, Status: "suspended"}, nil)

	require.NoError(t, h.SetStatus(c))
}

func TestBusinessHandler_MyBusinesses_EmptyIsArray(t *testing.T) {
	h, uc, _ := createTestBusinessHandler(t)
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}
	c, rec := newContext(jsonRequest(t, http.MethodGet, "/api/business/my-businesses", nil))
	withActor(c, actor)

	uc.EXPECT().MyBusinesses(mock.Anything, actor).Return(nil, nil)

	require.NoError(t, h.MyBusinesses(c))
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
}
