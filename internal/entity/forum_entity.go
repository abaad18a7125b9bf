package entity

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	Id        uuid.UUID
	AuthorId  uuid.UUID
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func (p *Post) IsDeleted() bool {
	return p.DeletedAt != nil
}

type Comment struct {
	Id        uuid.UUID
	PostId    uuid.UUID
	AuthorId  uuid.UUID
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func (c *Comment) IsDeleted() bool {
	return c.DeletedAt != nil
}
