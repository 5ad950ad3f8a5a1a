package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// DefaultBusinessLogo is used until the owner uploads a logo.
	DefaultBusinessLogo = "default-business-logo.png"

	maxBusinessNameLength        = 100
	maxBusinessDescriptionLength = 1000
)

// SocialMedia holds the public profile links of a business.
type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// BusinessHours is the opening window for a single weekday.
type BusinessHours struct {
	Day      string `json:"day"`
	Open     string `json:"open,omitempty"`
	Close    string `json:"close,omitempty"`
	IsClosed bool   `json:"isClosed"`
}

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// Business is a merchant owned by exactly one user.
// PromotionCount, Impressions and Clicks are maintained by the store and never set by callers.
type Business struct {
	ID             uuid.UUID       `json:"id"`
	OwnerID        uuid.UUID       `json:"ownerId"`
	Owner          *UserSummary    `json:"owner,omitempty"`
	Name           string          `json:"name"`
	Logo           string          `json:"logo"`
	CoverImage     string          `json:"coverImage,omitempty"`
	Description    string          `json:"description"`
	Category       Category        `json:"category"`
	Subcategory    string          `json:"subcategory,omitempty"`
	Website        string          `json:"website,omitempty"`
	SocialMedia    SocialMedia     `json:"socialMedia"`
	ContactEmail   string          `json:"contactEmail,omitempty"`
	ContactPhone   string          `json:"contactPhone,omitempty"`
	Address        Address         `json:"address"`
	BusinessHours  []BusinessHours `json:"businessHours"`
	IsVerified     bool            `json:"isVerified"`
	Status         BusinessStatus  `json:"status"`
	Rating         float64         `json:"rating"`
	ReviewCount    int             `json:"reviewCount"`
	PromotionCount int             `json:"promotionCount"`
	Impressions    int64           `json:"impressions"`
	Clicks         int64           `json:"clicks"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Validate checks the field constraints of a business.
func (b *Business) Validate() error {
	var errs ValidationErrors

	switch name := strings.TrimSpace(b.Name); {
	case name == "":
		errs.Add("name", "is required")
	case utf8.RuneCountInString(name) > maxBusinessNameLength:
		errs.Add("name", "cannot be more than %d characters", maxBusinessNameLength)
	}

	switch {
	case strings.TrimSpace(b.Description) == "":
		errs.Add("description", "is required")
	case utf8.RuneCountInString(b.Description) > maxBusinessDescriptionLength:
		errs.Add("description", "cannot be more than %d characters", maxBusinessDescriptionLength)
	}

	if !b.Category.IsValid() {
		errs.Add("category", "%q is not a supported category", b.Category)
	}
	if b.Website != "" && !IsHTTPURL(b.Website) {
		errs.Add("website", "must be a valid URL with HTTP or HTTPS")
	}
	if b.ContactEmail != "" && !IsEmail(b.ContactEmail) {
		errs.Add("contactEmail", "must be a valid email address")
	}
	if b.Status != "" && !b.Status.IsValid() {
		errs.Add("status", "%q is not a supported status", b.Status)
	}
	if b.Rating < 0 || b.Rating > 5 {
		errs.Add("rating", "must be between 0 and 5")
	}
	for _, h := range b.BusinessHours {
		if !weekdays[strings.ToLower(h.Day)] {
			errs.Add("businessHours", "%q is not a weekday", h.Day)
		}
	}

	return errs.Err()
}

// ApplyDefaults fills the values a new business starts with.
func (b *Business) ApplyDefaults() {
	if b.Logo == "" {
		b.Logo = DefaultBusinessLogo
	}
	if b.Status == "" {
		b.Status = BusinessStatusPending
	}
	b.Name = strings.TrimSpace(b.Name)
}
