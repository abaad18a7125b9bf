package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Title string `json:"title" validate:"required,min=3,max=200"`
	Body  string `json:"body" validate:"required,min=1,max=10000"`
}

type UpdatePostRequest struct {
	Title string `json:"title" validate:"required,min=3,max=200"`
	Body  string `json:"body" validate:"required,min=1,max=10000"`
}

type PostResponse struct {
	Id         uuid.UUID  `json:"id"`
	AuthorId   uuid.UUID  `json:"author_id"`
	AuthorName string     `json:"author_name,omitempty"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

type CreateCommentRequest struct {
	Body string `json:"body" validate:"required,min=1,max=5000"`
}

type UpdateCommentRequest struct {
	Body string `json:"body" validate:"required,min=1,max=5000"`
}

type CommentResponse struct {
	Id         uuid.UUID  `json:"id"`
	PostId     uuid.UUID  `json:"post_id"`
	AuthorId   uuid.UUID  `json:"author_id"`
	AuthorName string     `json:"author_name,omitempty"`
	Body       string     `json:"body"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}
