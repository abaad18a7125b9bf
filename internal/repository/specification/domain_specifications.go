package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByOwner struct {
	OwnerID uuid.UUID
}

func (s ByOwner) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.OwnerID)
}

type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

type ByEstablishment struct {
	EstablishmentID uuid.UUID
}

func (s ByEstablishment) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("establishment_id = ?", s.EstablishmentID)
}

type ByCategory struct {
	CategoryID uuid.UUID
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id = ?", s.CategoryID)
}

type ByCustomer struct {
	CustomerID uuid.UUID
}

func (s ByCustomer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ?", s.CustomerID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByAuthor struct {
	AuthorID uuid.UUID
}

func (s ByAuthor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("author_id = ?", s.AuthorID)
}

type ByPost struct {
	PostID uuid.UUID
}

func (s ByPost) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("post_id = ?", s.PostID)
}

type AvailableOnly struct{}

func (s AvailableOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("available = TRUE")
}

type ActivePlans struct{}

func (s ActivePlans) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = TRUE")
}
