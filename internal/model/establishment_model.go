package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Establishment struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`

	AddressLine string   `gorm:"type:text"`
	City        string   `gorm:"type:varchar(128)"`
	PostalCode  string   `gorm:"type:varchar(16)"`
	Country     string   `gorm:"type:varchar(64)"`
	Latitude    *float64 `gorm:"type:decimal(9,6)"`
	Longitude   *float64 `gorm:"type:decimal(9,6)"`

	// Weekly happy-hour windows, stored as a JSONB array.
	HappyHours datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	QRCode     string         `gorm:"type:varchar(255)"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Establishment) TableName() string {
	return "establishments"
}

type Banner struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EstablishmentId uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL        string    `gorm:"type:text;not null"`
	Caption         string    `gorm:"type:text"`
	SortOrder       int       `gorm:"default:0"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Banner) TableName() string {
	return "establishment_banners"
}
