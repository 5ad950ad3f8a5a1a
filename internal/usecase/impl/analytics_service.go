package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "dealfinder/internal/delivery/context"
	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/domain/repository"
	"dealfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const businessSeriesDays = 30

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	userRepo      repository.UserRepository
	businessRepo  repository.BusinessRepository
	promotionRepo repository.PromotionRepository
	eventRepo     repository.AnalyticEventRepository
	now           func() time.Time
	logger        *slog.Logger
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	BusinessRepo  repository.BusinessRepository
	PromotionRepo repository.PromotionRepository
	EventRepo     repository.AnalyticEventRepository
	Logger        *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		userRepo:      params.UserRepo,
		businessRepo:  params.BusinessRepo,
		promotionRepo: params.PromotionRepo,
		eventRepo:     params.EventRepo,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DashboardSummary collects the platform totals and the counts of the current month.
func (srv *analyticsService) DashboardSummary(ctx context.Context) (*entity.DashboardSummary, error) {
	now := srv.now()
	monthStart := startOfMonth(now)
	pending := entity.BusinessStatusPending

	var (
		summary entity.DashboardSummary
		err     error
	)
	if summary.TotalUsers, err = srv.userRepo.Count(ctx, repository.UserFilter{}); err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	if summary.NewUsers, err = srv.userRepo.Count(ctx, repository.UserFilter{CreatedSince: &monthStart}); err != nil {
		return nil, errors.Wrap(err, "failed to count new users")
	}
	if summary.TotalBusinesses, err = srv.businessRepo.Count(ctx, repository.BusinessFilter{}); err != nil {
		return nil, errors.Wrap(err, "failed to count businesses")
	}
	if summary.NewBusinesses, err = srv.businessRepo.Count(ctx, repository.BusinessFilter{CreatedSince: &monthStart}); err != nil {
		return nil, errors.Wrap(err, "failed to count new businesses")
	}
	if summary.PendingBusinesses, err = srv.businessRepo.Count(ctx, repository.BusinessFilter{Status: &pending}); err != nil {
		return nil, errors.Wrap(err, "failed to count pending businesses")
	}
	if summary.NewPromotions, err = srv.promotionRepo.Count(ctx, repository.PromotionFilter{CreatedSince: &monthStart}); err != nil {
		return nil, errors.Wrap(err, "failed to count new promotions")
	}

	totals, err := srv.promotionRepo.Totals(ctx, repository.PromotionFilter{}, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum promotion counters")
	}
	summary.TotalPromotions = totals.Total
	summary.ActivePromotions = totals.Live
	summary.TotalClicks = totals.Clicks
	summary.TotalImpressions = totals.Impressions
	summary.AverageConversionRate = entity.ConversionRate(totals.Clicks, totals.Impressions)

	return &summary, nil
}

// TimeSeries buckets the events of the last windowDays by UTC day.
func (srv *analyticsService) TimeSeries(ctx context.Context, windowDays int, businessID *uuid.UUID) ([]entity.DailyStat, error) {
	window := repository.EventWindow{
		Since:      srv.now().AddDate(0, 0, -windowDays),
		BusinessID: businessID,
	}

	counts, err := srv.eventRepo.CountByDay(ctx, window)
	if err != nil {
		srv.log(ctx).Error("Failed to aggregate events", slog.Int("windowDays", windowDays), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to aggregate events")
	}

	return dailyStats(counts), nil
}

// CategoryDistribution groups all promotions by category.
func (srv *analyticsService) CategoryDistribution(ctx context.Context) ([]entity.CategoryStat, error) {
	stats, err := srv.promotionRepo.CategoryDistribution(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build category distribution")
	}

	return stats, nil
}

// TopBusinesses ranks businesses by the clicks of their promotions.
func (srv *analyticsService) TopBusinesses(ctx context.Context, limit int) ([]entity.BusinessStat, error) {
	if limit < 1 {
		limit = usecase.TopBusinessesLimit
	}

	stats, err := srv.promotionRepo.TopBusinesses(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank businesses")
	}

	return stats, nil
}

// BusinessAnalytics reports the promotion counters and the recent events of one business.
func (srv *analyticsService) BusinessAnalytics(ctx context.Context, actor entity.Actor, businessID uuid.UUID) (*entity.BusinessAnalytics, error) {
	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		return nil, businessNotFound(err, "failed to find business")
	}
	if !actor.CanManage(business.OwnerID) {
		return nil, domainerrors.ErrBusinessOwnershipViolation.WrapMessage("not authorized to view analytics of this business")
	}

	totals, err := srv.promotionRepo.Totals(ctx, repository.PromotionFilter{BusinessID: &businessID}, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum business promotion counters")
	}

	daily, err := srv.TimeSeries(ctx, businessSeriesDays, &businessID)
	if err != nil {
		return nil, err
	}

	return &entity.BusinessAnalytics{
		Summary: entity.BusinessAnalyticsSummary{
			TotalPromotions:  totals.Total,
			ActivePromotions: totals.Live,
			TotalClicks:      totals.Clicks,
			TotalImpressions: totals.Impressions,
			ConversionRate:   entity.ConversionRate(totals.Clicks, totals.Impressions),
		},
		Daily: daily,
	}, nil
}

// PlatformAnalytics combines the series, the category distribution and the top businesses.
func (srv *analyticsService) PlatformAnalytics(ctx context.Context, period int) (*entity.PlatformAnalytics, error) {
	switch {
	case period < 1:
		period = usecase.DefaultAnalyticsPeriod
	case period > usecase.MaxAnalyticsPeriod:
		period = usecase.MaxAnalyticsPeriod
	}

	daily, err := srv.TimeSeries(ctx, period, nil)
	if err != nil {
		return nil, err
	}
	categories, err := srv.CategoryDistribution(ctx)
	if err != nil {
		return nil, err
	}
	top, err := srv.TopBusinesses(ctx, usecase.TopBusinessesLimit)
	if err != nil {
		return nil, err
	}

	return &entity.PlatformAnalytics{
		Daily:         daily,
		Categories:    categories,
		TopBusinesses: top,
		PeriodDays:    period,
	}, nil
}

// dailyStats folds (day, type) buckets into one row per day, keeping the input order of days.
func dailyStats(counts []entity.EventCount) []entity.DailyStat {
	stats := make([]entity.DailyStat, 0, len(counts))
	index := make(map[string]int, len(counts))

	for _, c := range counts {
		i, ok := index[c.Date]
		if !ok {
			i = len(stats)
			index[c.Date] = i
			stats = append(stats, entity.DailyStat{Date: c.Date})
		}

		switch c.EventType {
		case entity.EventTypeClick:
			stats[i].Clicks += c.Count
		case entity.EventTypeView:
			stats[i].Views += c.Count
		case entity.EventTypeSearch:
			stats[i].Searches += c.Count
		}
	}

	for i := range stats {
		stats[i].ConversionRate = entity.ConversionRate(stats[i].Clicks, stats[i].Views)
	}

	return stats
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
