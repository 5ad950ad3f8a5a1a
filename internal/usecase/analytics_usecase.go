package usecase

import (
	"context"

	"dealfinder/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	// DefaultAnalyticsPeriod is the series window in days when none is requested.
	DefaultAnalyticsPeriod = 30
	// MaxAnalyticsPeriod bounds the requested series window.
	MaxAnalyticsPeriod = 365
	// TopBusinessesLimit is the length of the top business ranking.
	TopBusinessesLimit = 10
)

// AnalyticsUsecase defines the reporting operations.
type AnalyticsUsecase interface {
	DashboardSummary(ctx context.Context) (*entity.DashboardSummary, error)

	// TimeSeries buckets the events of the last windowDays by UTC day. Days without events are absent.
	TimeSeries(ctx context.Context, windowDays int, businessID *uuid.UUID) ([]entity.DailyStat, error)

	CategoryDistribution(ctx context.Context) ([]entity.CategoryStat, error)
	TopBusinesses(ctx context.Context, limit int) ([]entity.BusinessStat, error)

	// BusinessAnalytics is the owner-or-admin report of one business.
	BusinessAnalytics(ctx context.Context, actor entity.Actor, businessID uuid.UUID) (*entity.BusinessAnalytics, error)

	// PlatformAnalytics is the admin report over the last period days.
	PlatformAnalytics(ctx context.Context, period int) (*entity.PlatformAnalytics, error)
}
