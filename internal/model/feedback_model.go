package model

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_once"`
	EstablishmentId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_once"`
	Rating          int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment         string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Feedback) TableName() string {
	return "feedback"
}
