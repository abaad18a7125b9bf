package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is one rating+comment per (customer, establishment) pair. The
// uniqueness is enforced at the storage layer.
type Feedback struct {
	Id              uuid.UUID
	CustomerId      uuid.UUID
	EstablishmentId uuid.UUID
	Rating          int
	Comment         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
