package contract

import (
	"context"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ForumRepository interface {
	// Posts
	CreatePost(ctx context.Context, post *entity.Post) error
	UpdatePost(ctx context.Context, post *entity.Post) error
	DeletePost(ctx context.Context, id uuid.UUID) error
	RestorePost(ctx context.Context, id uuid.UUID) error
	FindOnePost(ctx context.Context, specs ...specification.Specification) (*entity.Post, error)
	FindOnePostUnscoped(ctx context.Context, specs ...specification.Specification) (*entity.Post, error)
	FindPosts(ctx context.Context, specs ...specification.Specification) ([]*entity.Post, error)
	FindPostsUnscoped(ctx context.Context, specs ...specification.Specification) ([]*entity.Post, error)

	// Comments
	CreateComment(ctx context.Context, comment *entity.Comment) error
	UpdateComment(ctx context.Context, comment *entity.Comment) error
	DeleteComment(ctx context.Context, id uuid.UUID) error
	RestoreComment(ctx context.Context, id uuid.UUID) error
	FindOneComment(ctx context.Context, specs ...specification.Specification) (*entity.Comment, error)
	FindComments(ctx context.Context, specs ...specification.Specification) ([]*entity.Comment, error)
}
