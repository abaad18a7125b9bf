package dto

import (
	"time"

	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	EstablishmentId uuid.UUID `json:"establishment_id" validate:"required"`
	MenuItemId      uuid.UUID `json:"menu_item_id" validate:"required"`
	Quantity        int       `json:"quantity" validate:"required,min=1,max=50"`
	Note            string    `json:"note" validate:"max=500"`
}

type OrderResponse struct {
	Id              uuid.UUID  `json:"id"`
	CustomerId      uuid.UUID  `json:"customer_id"`
	EstablishmentId uuid.UUID  `json:"establishment_id"`
	MenuItemId      uuid.UUID  `json:"menu_item_id"`
	MenuItemName    string     `json:"menu_item_name,omitempty"`
	Quantity        int        `json:"quantity"`
	UnitPrice       float64    `json:"unit_price"`
	Total           float64    `json:"total"`
	Status          string     `json:"status"`
	Note            string     `json:"note,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}

// OrderListQuery carries the supported listing filters. Period takes a
// symbolic token (today, yesterday, this_month, ...); Date takes an explicit
// YYYY-MM-DD day.
type OrderListQuery struct {
	Status string `query:"status"`
	Period string `query:"period"`
	Date   string `query:"date"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}
