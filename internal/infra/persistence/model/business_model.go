package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SocialMediaDocument is the JSON shape of the social_media column.
type SocialMediaDocument struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// BusinessHoursDocument is one element of the business_hours column.
type BusinessHoursDocument struct {
	Day      string `json:"day"`
	Open     string `json:"open,omitempty"`
	Close    string `json:"close,omitempty"`
	IsClosed bool   `json:"isClosed"`
}

// BusinessModel mirrors the 'businesses' table. OwnerID references users.id.
type BusinessModel struct {
	ID             uuid.UUID                                  `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID                                  `gorm:"type:uuid;not null;index"`
	Owner          *UserModel                                 `gorm:"foreignKey:OwnerID"`
	Name           string                                     `gorm:"type:varchar(100);not null;index"`
	Logo           string                                     `gorm:"type:varchar(500);not null"`
	CoverImage     string                                     `gorm:"type:varchar(500)"`
	Description    string                                     `gorm:"type:varchar(1000);not null"`
	Category       string                                     `gorm:"type:varchar(30);not null;index"`
	Subcategory    string                                     `gorm:"type:varchar(100)"`
	Website        string                                     `gorm:"type:varchar(2048)"`
	SocialMedia    datatypes.JSONType[SocialMediaDocument]    `gorm:"type:jsonb"`
	ContactEmail   string                                     `gorm:"type:varchar(255)"`
	ContactPhone   string                                     `gorm:"type:varchar(50)"`
	Address        datatypes.JSONType[AddressDocument]        `gorm:"type:jsonb"`
	BusinessHours  datatypes.JSONSlice[BusinessHoursDocument] `gorm:"type:jsonb"`
	IsVerified     bool                                       `gorm:"not null;default:false"`
	Status         string                                     `gorm:"type:varchar(20);not null;index"`
	Rating         float64                                    `gorm:"type:double precision;not null;default:0"`
	ReviewCount    int                                        `gorm:"not null;default:0"`
	PromotionCount int                                        `gorm:"not null;default:0"`
	Impressions    int64                                      `gorm:"not null;default:0"`
	Clicks         int64                                      `gorm:"not null;default:0"`
	CreatedAt      time.Time                                  `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// BeforeCreate assigns a time-ordered ID when the caller did not set one.
func (m *BusinessModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
