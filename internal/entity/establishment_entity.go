package entity

import (
	"time"

	"github.com/google/uuid"
)

// HappyHourWindow is a weekly recurring window during which ordering is
// permitted. Times are "HH:MM" in the establishment's local time.
// An empty window list means ordering is always allowed.
type HappyHourWindow struct {
	Weekday   time.Weekday `json:"weekday"`
	StartTime string       `json:"start_time"`
	EndTime   string       `json:"end_time"`
}

type Establishment struct {
	Id          uuid.UUID
	OwnerId     uuid.UUID
	Name        string
	Slug        string
	Description string

	AddressLine string
	City        string
	PostalCode  string
	Country     string
	Latitude    *float64
	Longitude   *float64

	HappyHours []HappyHourWindow
	QRCode     string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func (e *Establishment) IsDeleted() bool {
	return e.DeletedAt != nil
}

// OrderingAllowedAt reports whether t falls inside one of the establishment's
// happy-hour windows. With no windows configured ordering is unrestricted.
func (e *Establishment) OrderingAllowedAt(t time.Time) bool {
	if len(e.HappyHours) == 0 {
		return true
	}
	hm := t.Format("15:04")
	for _, w := range e.HappyHours {
		if w.Weekday != t.Weekday() {
			continue
		}
		// Start inclusive, end exclusive.
		if hm >= w.StartTime && hm < w.EndTime {
			return true
		}
	}
	return false
}

type Banner struct {
	Id              uuid.UUID
	EstablishmentId uuid.UUID
	ImageURL        string
	Caption         string
	SortOrder       int
	CreatedAt       time.Time
}
