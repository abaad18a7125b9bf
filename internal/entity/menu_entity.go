package entity

import (
	"time"

	"github.com/google/uuid"
)

type MenuCategory struct {
	Id              uuid.UUID
	EstablishmentId uuid.UUID
	Name            string
	SortOrder       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

func (c *MenuCategory) IsDeleted() bool {
	return c.DeletedAt != nil
}

type MenuItem struct {
	Id              uuid.UUID
	EstablishmentId uuid.UUID
	CategoryId      uuid.UUID
	Name            string
	Description     string
	Price           float64
	Available       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

func (i *MenuItem) IsDeleted() bool {
	return i.DeletedAt != nil
}
