package entity

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxPromotionTitleLength       = 100
	maxPromotionDescriptionLength = 2000
)

// BusinessSummary is the slim business projection embedded in promotion listings.
type BusinessSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Logo string    `json:"logo"`
}

// Promotion is a deal published by a business.
// Impressions, Clicks and ConversionRate are maintained by the store.
type Promotion struct {
	ID                 uuid.UUID        `json:"id"`
	BusinessID         uuid.UUID        `json:"businessId"`
	Business           *BusinessSummary `json:"business,omitempty"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Category           Category         `json:"category"`
	Type               PromotionType    `json:"type"`
	DiscountPercentage *float64         `json:"discountPercentage,omitempty"`
	OriginalPrice      *decimal.Decimal `json:"originalPrice,omitempty"`
	DiscountedPrice    *decimal.Decimal `json:"discountedPrice,omitempty"`
	Images             []string         `json:"images"`
	RedirectURL        string           `json:"redirectUrl"`
	Tags               []string         `json:"tags"`
	Terms              string           `json:"terms,omitempty"`
	StartDate          time.Time        `json:"startDate"`
	EndDate            time.Time        `json:"endDate"`
	IsActive           bool             `json:"isActive"`
	IsFeatured         bool             `json:"isFeatured"`
	Code               string           `json:"code,omitempty"`
	Impressions        int64            `json:"impressions"`
	Clicks             int64            `json:"clicks"`
	ConversionRate     float64          `json:"conversionRate"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// ConversionRate returns clicks/impressions*100, or 0 when there were no impressions.
func ConversionRate(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}

	return float64(clicks) / float64(impressions) * 100
}

// RecomputeConversionRate derives ConversionRate from the counters.
func (p *Promotion) RecomputeConversionRate() {
	p.ConversionRate = ConversionRate(p.Clicks, p.Impressions)
}

// IsLive reports whether the promotion may appear in public listings at the given instant.
func (p *Promotion) IsLive(now time.Time) bool {
	return p.IsActive && p.EndDate.After(now)
}

// TimeRemaining is the time left until the promotion ends. It is negative once expired.
func (p *Promotion) TimeRemaining(now time.Time) time.Duration {
	return p.EndDate.Sub(now)
}

// Validate checks the field constraints of a promotion.
func (p *Promotion) Validate() error {
	var errs ValidationErrors

	switch title := strings.TrimSpace(p.Title); {
	case title == "":
		errs.Add("title", "is required")
	case utf8.RuneCountInString(title) > maxPromotionTitleLength:
		errs.Add("title", "cannot be more than %d characters", maxPromotionTitleLength)
	}

	switch {
	case strings.TrimSpace(p.Description) == "":
		errs.Add("description", "is required")
	case utf8.RuneCountInString(p.Description) > maxPromotionDescriptionLength:
		errs.Add("description", "cannot be more than %d characters", maxPromotionDescriptionLength)
	}

	if !p.Category.IsValid() {
		errs.Add("category", "%q is not a supported category", p.Category)
	}
	if !p.Type.IsValid() {
		errs.Add("type", "%q is not a supported promotion type", p.Type)
	}
	if d := p.DiscountPercentage; d != nil && (math.IsNaN(*d) || *d < 0 || *d > 100) {
		errs.Add("discountPercentage", "must be between 0 and 100")
	}
	if p.OriginalPrice != nil && p.OriginalPrice.IsNegative() {
		errs.Add("originalPrice", "cannot be negative")
	}
	if p.DiscountedPrice != nil && p.DiscountedPrice.IsNegative() {
		errs.Add("discountedPrice", "cannot be negative")
	}
	if len(p.Images) == 0 {
		errs.Add("images", "at least one image is required")
	}
	if !IsHTTPURL(p.RedirectURL) {
		errs.Add("redirectUrl", "must be a valid URL with HTTP or HTTPS")
	}
	if p.EndDate.IsZero() {
		errs.Add("endDate", "is required")
	} else if !p.StartDate.IsZero() && !p.EndDate.After(p.StartDate) {
		errs.Add("endDate", "must be after startDate")
	}

	return errs.Err()
}

// ParseTags splits a comma-separated tag list. Tags are trimmed, empty entries are dropped,
// and repeated tags keep only their first position.
func ParseTags(raw string) []string {
	tags := make([]string, 0)
	seen := make(map[string]struct{})
	for part := range strings.SplitSeq(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return tags
}
