package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitFeedbackRequest struct {
	EstablishmentId uuid.UUID `json:"establishment_id" validate:"required"`
	Rating          int       `json:"rating" validate:"required,min=1,max=5"`
	Comment         string    `json:"comment" validate:"max=2000"`
}

type UpdateFeedbackRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

type FeedbackResponse struct {
	Id              uuid.UUID `json:"id"`
	CustomerId      uuid.UUID `json:"customer_id"`
	CustomerName    string    `json:"customer_name,omitempty"`
	EstablishmentId uuid.UUID `json:"establishment_id"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type FeedbackSummaryResponse struct {
	EstablishmentId uuid.UUID `json:"establishment_id"`
	AverageRating   float64   `json:"average_rating"`
	Count           int64     `json:"count"`
}
