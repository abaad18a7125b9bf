package dto

import (
	"time"

	"github.com/google/uuid"
)

type HappyHourWindowDTO struct {
	Weekday   int    `json:"weekday" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required,len=5"`
	EndTime   string `json:"end_time" validate:"required,len=5"`
}

type CreateEstablishmentRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Description string `json:"description" validate:"max=2000"`
	AddressLine string `json:"address_line" validate:"required"`
	City        string `json:"city" validate:"required"`
	PostalCode  string `json:"postal_code" validate:"required,max=10"`
	Country     string `json:"country" validate:"required"`

	HappyHours []HappyHourWindowDTO `json:"happy_hours" validate:"dive"`
}

type UpdateEstablishmentRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	AddressLine *string `json:"address_line,omitempty"`
	City        *string `json:"city,omitempty"`
	PostalCode  *string `json:"postal_code,omitempty" validate:"omitempty,max=10"`
	Country     *string `json:"country,omitempty"`

	HappyHours *[]HappyHourWindowDTO `json:"happy_hours,omitempty" validate:"omitempty,dive"`
}

type EstablishmentResponse struct {
	Id          uuid.UUID            `json:"id"`
	OwnerId     uuid.UUID            `json:"owner_id"`
	Name        string               `json:"name"`
	Slug        string               `json:"slug"`
	Description string               `json:"description,omitempty"`
	AddressLine string               `json:"address_line"`
	City        string               `json:"city"`
	PostalCode  string               `json:"postal_code"`
	Country     string               `json:"country"`
	Latitude    *float64             `json:"latitude,omitempty"`
	Longitude   *float64             `json:"longitude,omitempty"`
	HappyHours  []HappyHourWindowDTO `json:"happy_hours"`
	QRCode      string               `json:"qr_code,omitempty"`
	OrderingOpen bool                `json:"ordering_open"`
	AverageRating float64            `json:"average_rating"`
	CreatedAt   time.Time            `json:"created_at"`
	DeletedAt   *time.Time           `json:"deleted_at,omitempty"`
}

type BannerRequest struct {
	ImageURL  string `json:"image_url" validate:"required,url"`
	Caption   string `json:"caption" validate:"max=200"`
	SortOrder int    `json:"sort_order" validate:"min=0"`
}

type BannerResponse struct {
	Id        uuid.UUID `json:"id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption,omitempty"`
	SortOrder int       `json:"sort_order"`
}
