package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AddressDocument is the JSON shape of a postal address column.
type AddressDocument struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// UserModel mirrors the 'users' table. IDs are UUIDv7 assigned before insert.
type UserModel struct {
	ID           uuid.UUID                           `gorm:"type:uuid;primaryKey"`
	Name         string                              `gorm:"type:varchar(100);not null"`
	Email        string                              `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string                              `gorm:"type:varchar(255);not null"`
	Role         string                              `gorm:"type:varchar(20);not null;index"`
	Avatar       string                              `gorm:"type:varchar(500);not null"`
	Phone        string                              `gorm:"type:varchar(50)"`
	Address      datatypes.JSONType[AddressDocument] `gorm:"type:jsonb"`
	IsVerified   bool                                `gorm:"not null;default:false"`
	CreatedAt    time.Time                           `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a time-ordered ID when the caller did not set one.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	v7, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = v7

	return nil
}
