package entity

import "github.com/google/uuid"

// EventCount is one (day, event type) bucket read from the event log.
type EventCount struct {
	Date      string
	EventType EventType
	Count     int64
}

// DailyStat is one day of the analytics time series.
type DailyStat struct {
	Date           string  `json:"date"`
	Clicks         int64   `json:"clicks"`
	Views          int64   `json:"views"`
	Searches       int64   `json:"searches"`
	ConversionRate float64 `json:"conversionRate"`
}

// CategoryStat aggregates the promotions of one category.
type CategoryStat struct {
	Category    Category `json:"category"`
	Count       int64    `json:"count"`
	Clicks      int64    `json:"clicks"`
	Impressions int64    `json:"impressions"`
}

// BusinessStat ranks a business by the performance of its promotions.
type BusinessStat struct {
	BusinessID     uuid.UUID `json:"businessId"`
	Name           string    `json:"name"`
	Logo           string    `json:"logo"`
	PromotionCount int64     `json:"promotionCount"`
	Clicks         int64     `json:"clicks"`
	Impressions    int64     `json:"impressions"`
	ConversionRate float64   `json:"conversionRate"`
}

// PromotionTotals sums the counters of a set of promotions.
type PromotionTotals struct {
	Total       int64
	Live        int64
	Clicks      int64
	Impressions int64
}

// DashboardSummary is the platform-wide counter board shown to admins.
type DashboardSummary struct {
	TotalUsers            int64   `json:"totalUsers"`
	NewUsers              int64   `json:"newUsers"`
	TotalBusinesses       int64   `json:"totalBusinesses"`
	NewBusinesses         int64   `json:"newBusinesses"`
	PendingBusinesses     int64   `json:"pendingBusinesses"`
	TotalPromotions       int64   `json:"totalPromotions"`
	NewPromotions         int64   `json:"newPromotions"`
	ActivePromotions      int64   `json:"activePromotions"`
	TotalClicks           int64   `json:"totalClicks"`
	TotalImpressions      int64   `json:"totalImpressions"`
	AverageConversionRate float64 `json:"averageConversionRate"`
}

// BusinessAnalyticsSummary is the headline block of a business report.
type BusinessAnalyticsSummary struct {
	TotalPromotions  int64   `json:"totalPromotions"`
	ActivePromotions int64   `json:"activePromotions"`
	TotalClicks      int64   `json:"totalClicks"`
	TotalImpressions int64   `json:"totalImpressions"`
	ConversionRate   float64 `json:"conversionRate"`
}

// BusinessAnalytics is the report a business owner sees for one business.
type BusinessAnalytics struct {
	Summary BusinessAnalyticsSummary `json:"summary"`
	Daily   []DailyStat              `json:"dailyStats"`
}

// PlatformAnalytics is the report admins see for a period.
type PlatformAnalytics struct {
	Daily         []DailyStat    `json:"dailyStats"`
	Categories    []CategoryStat `json:"categoryDistribution"`
	TopBusinesses []BusinessStat `json:"topBusinesses"`
	PeriodDays    int            `json:"period"`
}
