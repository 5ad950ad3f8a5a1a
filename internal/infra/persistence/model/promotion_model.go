package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PromotionModel mirrors the 'promotions' table. BusinessID references businesses.id.
// SearchText is derived from title, description and tags and backs the full-text index.
type PromotionModel struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primaryKey"`
	BusinessID         uuid.UUID           `gorm:"type:uuid;not null;index"`
	Business           *BusinessModel      `gorm:"foreignKey:BusinessID"`
	Title              string              `gorm:"type:varchar(100);not null"`
	Description        string              `gorm:"type:varchar(2000);not null"`
	Category           string              `gorm:"type:varchar(30);not null;index"`
	Type               string              `gorm:"type:varchar(20);not null;index"`
	DiscountPercentage *float64            `gorm:"type:double precision"`
	OriginalPrice      decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	DiscountedPrice    decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Images             pq.StringArray      `gorm:"type:text[];not null"`
	RedirectURL        string              `gorm:"type:varchar(2048);not null"`
	Tags               pq.StringArray      `gorm:"type:text[]"`
	Terms              string              `gorm:"type:text"`
	Code               string              `gorm:"type:varchar(50)"`
	StartDate          time.Time           `gorm:"not null"`
	EndDate            time.Time           `gorm:"not null;index"`
	IsActive           bool                `gorm:"not null;index"`
	IsFeatured         bool                `gorm:"not null;index"`
	Impressions        int64               `gorm:"not null;default:0"`
	Clicks             int64               `gorm:"not null;default:0"`
	ConversionRate     float64             `gorm:"type:double precision;not null;default:0"`
	SearchText         string              `gorm:"type:text;not null"`
	CreatedAt          time.Time           `gorm:"index"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromotionModel) TableName() string {
	return "promotions"
}

// BeforeCreate assigns a time-ordered ID when the caller did not set one.
func (m *PromotionModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// BeforeSave keeps SearchText in sync with the indexed fields.
func (m *PromotionModel) BeforeSave(_ *gorm.DB) error {
	m.SearchText = PromotionSearchText(m.Title, m.Description, m.Tags)

	return nil
}

// PromotionSearchText joins the fields covered by full-text search.
func PromotionSearchText(title, description string, tags []string) string {
	parts := make([]string, 0, len(tags)+2)
	parts = append(parts, title, description)
	parts = append(parts, tags...)

	return strings.Join(parts, " ")
}
