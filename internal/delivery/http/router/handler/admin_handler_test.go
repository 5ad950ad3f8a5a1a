package handler

import (
	"net/http"
	"testing"

	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	mockUsecase "dealfinder/internal/mocks/usecase"
	"dealfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdminHandler(t *testing.T) (*AdminHandler, *mockUsecase.MockAdminUsecase, *mockUsecase.MockAnalyticsUsecase) {
	adminUC := mockUsecase.NewMockAdminUsecase(t)
	analyticsUC := mockUsecase.NewMockAnalyticsUsecase(t)

	return NewAdminHandler(AdminHandlerParams{
		AdminUC:     adminUC,
		AnalyticsUC: analyticsUC,
		Logger:      newDiscardLogger(),
	}), adminUC, analyticsUC
}

func TestAdminHandler_ListUsers(t *testing.T) {
	h, uc, _ := createTestAdminHandler(t)
	c, rec := newContext(jsonRequest(t, http.MethodGet, "/api/admin/users?role=business&search=jane&page=2", nil))

	uc.EXPECT().ListUsers(mock.Anything, &usecase.UserQuery{Role: "business", Search: "jane", Page: 2}).
		Return(&entity.Page[*entity.User]{
			Items:      []*entity.User{{ID: uuid.New(), PasswordHash: "hash"}},
			Total:      11,
			Pagination: entity.Pagination{Page: 2, Limit: 10},
		}, nil)

	require.NoError(t, h.ListUsers(c))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, 1, *body.Count)
	assert.EqualValues(t, 11, *body.Total)
	assert.Equal(t, 2, *body.TotalPages)
	assert.NotContains(t, string(body.Data), "hash")
}

func TestAdminHandler_UpdateUser(t *testing.T) {
	h, uc, _ := createTestAdminHandler(t)
	id := uuid.New()
	c, _ := newContext(jsonRequest(t, http.MethodPut, "/api/admin/users/"+id.String(), map[string]any{
		"role":       "business",
		"isVerified": true,
	}), "id", id.String())

	uc.EXPECT().UpdateUser(mock.Anything, id, mock.MatchedBy(func(in *usecase.AdminUpdateUserInput) bool {
		return in.Name == nil && in.Email == nil &&
			in.Role != nil && *in.Role == entity.RoleBusiness &&
			in.IsVerified != nil && *in.IsVerified
	})).Return(&entity.User{ID: id, Role: entity.RoleBusiness}, nil)

	require.NoError(t, h.UpdateUser(c))
}

func TestAdminHandler_DeleteUser_NotFound(t *testing.T) {
	h, uc, _ := createTestAdminHandler(t)
	id := uuid.New()
	c, _ := newContext(jsonRequest(t, http.MethodDelete, "/api/admin/users/"+id.String(), nil), "id", id.String())

	uc.EXPECT().DeleteUser(mock.Anything, id).Return(domainerrors.ErrUserNotFound)

	assert.ErrorIs(t, h.DeleteUser(c), domainerrors.ErrUserNotFound)
}

func TestAdminHandler_VerifyBusiness_EmptyBody(t *testing.T) {
	h, uc, _ := createTestAdminHandler(t)
	id := uuid.New()
	c, _ := newContext(jsonRequest(t, http.MethodPatch, "/api/admin/businesses/"+id.String()+"/verify", nil), "id", id.String())

	uc.EXPECT().VerifyBusiness(mock.Anything, id, &usecase.VerifyBusinessInput{}).
		Return(&entity.Business{ID: id, IsVerified: true, Status: entity.BusinessStatus("active")}, nil)

	require.NoError(t, h.VerifyBusiness(c))
}

func TestAdminHandler_SetFeatured(t *testing.T) {
	h, uc, _ := createTestAdminHandler(t)
	id := uuid.New()
	c, _ := newContext(jsonRequest(t, http.MethodPatch, "/api/admin/promotions/"+id.String()+"/featured", map[string]bool{
		"isFeatured": false,
	}), "id", id.String())

	uc.EXPECT().SetFeatured(mock.Anything, id, mock.MatchedBy(func(featured *bool) bool {
		return featured != nil && !*featured
	})).Return(&entity.Promotion{ID: id}, nil)

	require.NoError(t, h.SetFeatured(c))
}

func TestAdminHandler_ListPromotions(t *testing.T) {
	h, uc, _ := createTestAdminHandler(t)
	c, _ := newContext(jsonRequest(t, http.MethodGet, "/api/admin/promotions?featured=true&active=false&type=bogo", nil))

	uc.EXPECT().ListPromotions(mock.Anything, mock.MatchedBy(func(q *usecase.PromotionQuery) bool {
		return q.Featured != nil && *q.Featured &&
			q.Active != nil && !*q.Active &&
			q.Type == "bogo"
	})).Return(&entity.Page[*entity.Promotion]{Pagination: entity.Pagination{Page: 1, Limit: 10}}, nil)

	require.NoError(t, h.ListPromotions(c))
}

func TestAdminHandler_Analytics_PassesPeriod(t *testing.T) {
	h, _, analyticsUC := createTestAdminHandler(t)
	c, rec := newContext(jsonRequest(t, http.MethodGet, "/api/admin/analytics?period=7", nil))

	analyticsUC.EXPECT().PlatformAnalytics(mock.Anything, 7).Return(&entity.PlatformAnalytics{PeriodDays: 7}, nil)

	require.NoError(t, h.Analytics(c))
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"period":7`)
}

func TestAdminHandler_Dashboard(t *testing.T) {
	h, _, analyticsUC := createTestAdminHandler(t)
	c, rec := newContext(jsonRequest(t, http.MethodGet, "/api/admin/dashboard", nil))

	analyticsUC.EXPECT().DashboardSummary(mock.Anything).Return(&entity.DashboardSummary{}, nil)

	require.NoError(t, h.Dashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
