package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	EstablishmentId uuid.UUID      `gorm:"type:uuid;not null;index"`
	MenuItemId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Quantity        int            `gorm:"not null;default:1"`
	UnitPrice       float64        `gorm:"type:decimal(10,2);not null"`
	Total           float64        `gorm:"type:decimal(10,2);not null"`
	Status          string         `gorm:"type:varchar(50);not null;default:'pending';index"`
	Note            string         `gorm:"type:text"`
	CreatedAt       time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Order) TableName() string {
	return "orders"
}
