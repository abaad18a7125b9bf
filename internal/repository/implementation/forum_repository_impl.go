package implementation

import (
	"context"
	"errors"
	"time"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/mapper"
	"sipspot-be/internal/model"
	"sipspot-be/internal/repository/contract"
	"sipspot-be/internal/repository/scope"
	"sipspot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ForumRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ForumMapper
}

func NewForumRepository(db *gorm.DB) contract.ForumRepository {
	return &ForumRepositoryImpl{
		db:     db,
		mapper: mapper.NewForumMapper(),
	}
}

// Posts

func (r *ForumRepositoryImpl) CreatePost(ctx context.Context, post *entity.Post) error {
	m := r.mapper.PostToModel(post)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*post = *r.mapper.PostToEntity(m)
	return nil
}

func (r *ForumRepositoryImpl) UpdatePost(ctx context.Context, post *entity.Post) error {
	m := r.mapper.PostToModel(post)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*post = *r.mapper.PostToEntity(m)
	return nil
}

func (r *ForumRepositoryImpl) DeletePost(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Model(&model.Post{}).
		Where("id = ?", id).
		Update("deleted_at", time.Now().UTC()).Error
}

func (r *ForumRepositoryImpl) RestorePost(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Model(&model.Post{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

func (r *ForumRepositoryImpl) FindOnePost(ctx context.Context, specs ...specification.Specification) (*entity.Post, error) {
	var m model.Post
	query := applySpecifications(visible(r.db.WithContext(ctx)), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PostToEntity(&m), nil
}

func (r *ForumRepositoryImpl) FindOnePostUnscoped(ctx context.Context, specs ...specification.Specification) (*entity.Post, error) {
	var m model.Post
	query := applySpecifications(scope.WithSoftDeleted(r.db.WithContext(ctx)), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PostToEntity(&m), nil
}

func (r *ForumRepositoryImpl) FindPosts(ctx context.Context, specs ...specification.Specification) ([]*entity.Post, error) {
	var models []*model.Post
	query := applySpecifications(visible(r.db.WithContext(ctx)), specs...)
	if err := query.Scopes(scope.OrderByCreatedDesc).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.PostsToEntities(models), nil
}

func (r *ForumRepositoryImpl) FindPostsUnscoped(ctx context.Context, specs ...specification.Specification) ([]*entity.Post, error) {
	var models []*model.Post
	query := applySpecifications(scope.WithSoftDeleted(r.db.WithContext(ctx)), specs...)
	if err := query.Scopes(scope.OrderByCreatedDesc).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.PostsToEntities(models), nil
}

// Comments

func (r *ForumRepositoryImpl) CreateComment(ctx context.Context, comment *entity.Comment) error {
	m := r.mapper.CommentToModel(comment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*comment = *r.mapper.CommentToEntity(m)
	return nil
}

func (r *ForumRepositoryImpl) UpdateComment(ctx context.Context, comment *entity.Comment) error {
	m := r.mapper.CommentToModel(comment)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*comment = *r.mapper.CommentToEntity(m)
	return nil
}

func (r *ForumRepositoryImpl) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Model(&model.Comment{}).
		Where("id = ?", id).
		Update("deleted_at", time.Now().UTC()).Error
}

func (r *ForumRepositoryImpl) RestoreComment(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Model(&model.Comment{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

func (r *ForumRepositoryImpl) FindOneComment(ctx context.Context, specs ...specification.Specification) (*entity.Comment, error) {
	var m model.Comment
	query := applySpecifications(visible(r.db.WithContext(ctx)), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CommentToEntity(&m), nil
}

func (r *ForumRepositoryImpl) FindComments(ctx context.Context, specs ...specification.Specification) ([]*entity.Comment, error) {
	var models []*model.Comment
	query := applySpecifications(visible(r.db.WithContext(ctx)), specs...)
	if err := query.Scopes(scope.OrderByCreatedAsc).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CommentsToEntities(models), nil
}
