package impl

import (
	"context"
	"testing"
	"time"

	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/domain/repository"
	mockRepo "dealfinder/internal/mocks/repository"
	"dealfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// analyticsServiceFixtures holds all test dependencies for analytics service tests.
type analyticsServiceFixtures struct {
	service       usecase.AnalyticsUsecase
	userRepo      *mockRepo.MockUserRepository
	businessRepo  *mockRepo.MockBusinessRepository
	promotionRepo *mockRepo.MockPromotionRepository
	eventRepo     *mockRepo.MockAnalyticEventRepository
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	fixtures := analyticsServiceFixtures{
		userRepo:      mockRepo.NewMockUserRepository(t),
		businessRepo:  mockRepo.NewMockBusinessRepository(t),
		promotionRepo: mockRepo.NewMockPromotionRepository(t),
		eventRepo:     mockRepo.NewMockAnalyticEventRepository(t),
	}

	srv := NewAnalyticsService(AnalyticsServiceParams{
		UserRepo:      fixtures.userRepo,
		BusinessRepo:  fixtures.businessRepo,
		PromotionRepo: fixtures.promotionRepo,
		EventRepo:     fixtures.eventRepo,
		Logger:        newDiscardLogger(),
	}).(*analyticsService)
	srv.now = fixedNow
	fixtures.service = srv

	return fixtures
}

func TestAnalyticsService_DashboardSummary(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	monthStart := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	sinceMonthStart := func(since *time.Time) bool { return since != nil && since.Equal(monthStart) }

	fx.userRepo.EXPECT().Count(ctx, repository.UserFilter{}).Return(int64(120), nil)
	fx.userRepo.EXPECT().
		Count(ctx, mock.MatchedBy(func(f repository.UserFilter) bool { return sinceMonthStart(f.CreatedSince) })).
		Return(int64(12), nil)
	fx.businessRepo.EXPECT().Count(ctx, repository.BusinessFilter{}).Return(int64(30), nil)
	fx.businessRepo.EXPECT().
		Count(ctx, mock.MatchedBy(func(f repository.BusinessFilter) bool { return sinceMonthStart(f.CreatedSince) })).
		Return(int64(3), nil)
	fx.businessRepo.EXPECT().
		Count(ctx, mock.MatchedBy(func(f repository.BusinessFilter) bool {
			return f.Status != nil && *f.Status == entity.BusinessStatusPending
		})).
		Return(int64(2), nil)
	fx.promotionRepo.EXPECT().
		Count(ctx, mock.MatchedBy(func(f repository.PromotionFilter) bool { return sinceMonthStart(f.CreatedSince) })).
		Return(int64(8), nil)
	fx.promotionRepo.EXPECT().
		Totals(ctx, repository.PromotionFilter{}, testNow).
		Return(&entity.PromotionTotals{Total: 40, Live: 25, Clicks: 50, Impressions: 400}, nil)

	summary, err := fx.service.DashboardSummary(ctx)

	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardSummary{
		TotalUsers:            120,
		NewUsers:              12,
		TotalBusinesses:       30,
		NewBusinesses:         3,
		PendingBusinesses:     2,
		TotalPromotions:       40,
		NewPromotions:         8,
		ActivePromotions:      25,
		TotalClicks:           50,
		TotalImpressions:      400,
		AverageConversionRate: 12.5,
	}, summary)
}

func TestAnalyticsService_DashboardSummary_NoImpressions(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().Count(ctx, mock.Anything).Return(int64(0), nil)
	fx.businessRepo.EXPECT().Count(ctx, mock.Anything).Return(int64(0), nil)
	fx.promotionRepo.EXPECT().Count(ctx, mock.Anything).Return(int64(0), nil)
	fx.promotionRepo.EXPECT().Totals(ctx, mock.Anything, testNow).Return(&entity.PromotionTotals{}, nil)

	summary, err := fx.service.DashboardSummary(ctx)

	require.NoError(t, err)
	assert.Zero(t, summary.AverageConversionRate)
}

func TestAnalyticsService_TimeSeries(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	businessID := uuid.New()
	counts := []entity.EventCount{
		{Date: "2026-03-10", EventType: entity.EventTypeClick, Count: 3},
		{Date: "2026-03-10", EventType: entity.EventTypeSearch, Count: 7},
		{Date: "2026-03-10", EventType: entity.EventTypeView, Count: 12},
		{Date: "2026-03-12", EventType: entity.EventTypeClick, Count: 2},
		{Date: "2026-03-12", EventType: entity.EventTypeLogin, Count: 9},
	}

	fx.eventRepo.EXPECT().
		CountByDay(ctx, repository.EventWindow{Since: testNow.AddDate(0, 0, -7), BusinessID: &businessID}).
		Return(counts, nil)

	series, err := fx.service.TimeSeries(ctx, 7, &businessID)

	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, entity.DailyStat{Date: "2026-03-10", Clicks: 3, Views: 12, Searches: 7, ConversionRate: 25}, series[0])
	assert.Equal(t, entity.DailyStat{Date: "2026-03-12", Clicks: 2}, series[1])
}

func TestAnalyticsService_TimeSeries_Empty(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	fx.eventRepo.EXPECT().CountByDay(ctx, mock.AnythingOfType("repository.EventWindow")).Return(nil, nil)

	series, err := fx.service.TimeSeries(ctx, 30, nil)

	require.NoError(t, err)
	assert.NotNil(t, series)
	assert.Empty(t, series)
}

func TestAnalyticsService_TopBusinesses_DefaultLimit(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	fx.promotionRepo.EXPECT().TopBusinesses(ctx, usecase.TopBusinessesLimit).Return([]entity.BusinessStat{}, nil)

	_, err := fx.service.TopBusinesses(ctx, 0)

	require.NoError(t, err)
}

func TestAnalyticsService_BusinessAnalytics(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := newOwnedBusiness(ownerID)

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	fx.promotionRepo.EXPECT().
		Totals(ctx, mock.MatchedBy(func(f repository.PromotionFilter) bool {
			return f.BusinessID != nil && *f.BusinessID == business.ID
		}), testNow).
		Return(&entity.PromotionTotals{Total: 4, Live: 3, Clicks: 1, Impressions: 3}, nil)
	fx.eventRepo.EXPECT().
		CountByDay(ctx, mock.MatchedBy(func(w repository.EventWindow) bool {
			return w.BusinessID != nil && *w.BusinessID == business.ID && w.Since.Equal(testNow.AddDate(0, 0, -30))
		})).
		Return([]entity.EventCount{{Date: "2026-03-14", EventType: entity.EventTypeClick, Count: 1}}, nil)

	report, err := fx.service.BusinessAnalytics(ctx, entity.Actor{UserID: ownerID, Role: entity.RoleBusiness}, business.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), report.Summary.TotalPromotions)
	assert.Equal(t, int64(3), report.Summary.ActivePromotions)
	assert.InDelta(t, 33.333, report.Summary.ConversionRate, 0.001)
	assert.Len(t, report.Daily, 1)
}

func TestAnalyticsService_BusinessAnalytics_Forbidden(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	business := newOwnedBusiness(uuid.New())
	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	_, err := fx.service.BusinessAnalytics(ctx, entity.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}, business.ID)

	assert.ErrorIs(t, err, domainerrors.ErrBusinessOwnershipViolation)
}

func TestAnalyticsService_PlatformAnalytics_Period(t *testing.T) {
	tests := []struct {
		name       string
		period     int
		wantPeriod int
	}{
		{name: "default", period: 0, wantPeriod: usecase.DefaultAnalyticsPeriod},
		{name: "explicit", period: 7, wantPeriod: 7},
		{name: "capped", period: 1000, wantPeriod: usecase.MaxAnalyticsPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAnalyticsService(t)
			ctx := context.Background()

			fx.eventRepo.EXPECT().
				CountByDay(ctx, repository.EventWindow{Since: testNow.AddDate(0, 0, -tt.wantPeriod)}).
				Return([]entity.EventCount{}, nil)
			fx.promotionRepo.EXPECT().CategoryDistribution(ctx).
				Return([]entity.CategoryStat{{Category: entity.CategoryFood, Count: 2}}, nil)
			fx.promotionRepo.EXPECT().TopBusinesses(ctx, usecase.TopBusinessesLimit).Return([]entity.BusinessStat{}, nil)

			report, err := fx.service.PlatformAnalytics(ctx, tt.period)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPeriod, report.PeriodDays)
			assert.Len(t, report.Categories, 1)
		})
	}
}

func TestStartOfMonth(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	got := startOfMonth(time.Date(2026, time.July, 31, 23, 59, 0, 0, loc))

	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, loc), got)
}
