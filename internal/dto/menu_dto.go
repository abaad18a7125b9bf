package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMenuCategoryRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=80"`
	SortOrder int    `json:"sort_order" validate:"min=0"`
}

type UpdateMenuCategoryRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=2,max=80"`
	SortOrder *int    `json:"sort_order,omitempty" validate:"omitempty,min=0"`
}

type MenuCategoryResponse struct {
	Id        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	SortOrder int                `json:"sort_order"`
	Items     []MenuItemResponse `json:"items,omitempty"`
}

type CreateMenuItemRequest struct {
	CategoryId  uuid.UUID `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=2,max=120"`
	Description string    `json:"description" validate:"max=1000"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Available   *bool     `json:"available,omitempty"`
}

type UpdateMenuItemRequest struct {
	CategoryId  *uuid.UUID `json:"category_id,omitempty"`
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price       *float64   `json:"price,omitempty" validate:"omitempty,gt=0"`
	Available   *bool      `json:"available,omitempty"`
}

type MenuItemResponse struct {
	Id          uuid.UUID  `json:"id"`
	CategoryId  uuid.UUID  `json:"category_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	Available   bool       `json:"available"`
	CreatedAt   time.Time  `json:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}
