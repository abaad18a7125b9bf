package service

import (
	"context"
	"time"

	"sipspot-be/internal/dto"
	"sipspot-be/internal/entity"
	"sipspot-be/internal/pkg/apperr"
	"sipspot-be/internal/pkg/authz"
	"sipspot-be/internal/repository/specification"
	"sipspot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IForumService interface {
	CreatePost(ctx context.Context, principal authz.Principal, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	UpdatePost(ctx context.Context, principal authz.Principal, postId uuid.UUID, req *dto.UpdatePostRequest) (*dto.PostResponse, error)
	DeletePost(ctx context.Context, principal authz.Principal, postId uuid.UUID) error
	GetPost(ctx context.Context, postId uuid.UUID) (*dto.PostResponse, error)
	ListPosts(ctx context.Context, authorId *uuid.UUID, limit, offset int) ([]*dto.PostResponse, error)

	CreateComment(ctx context.Context, principal authz.Principal, postId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, principal authz.Principal, commentId uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, principal authz.Principal, commentId uuid.UUID) error
	ListComments(ctx context.Context, postId uuid.UUID, limit, offset int) ([]*dto.CommentResponse, error)
}

type forumService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewForumService(uowFactory unitofwork.RepositoryFactory) IForumService {
	return &forumService{uowFactory: uowFactory}
}

func (s *forumService) authorName(ctx context.Context, uow unitofwork.UnitOfWork, authorId uuid.UUID) string {
	if author, _ := uow.UserRepository().FindOne(ctx, specification.ByID{ID: authorId}); author != nil {
		return author.FullName
	}
	return ""
}

func toPostResponse(post *entity.Post, authorName string) *dto.PostResponse {
	return &dto.PostResponse{
		Id:         post.Id,
		AuthorId:   post.AuthorId,
		AuthorName: authorName,
		Title:      post.Title,
		Body:       post.Body,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
		DeletedAt:  post.DeletedAt,
	}
}

func toCommentResponse(comment *entity.Comment, authorName string) *dto.CommentResponse {
	return &dto.CommentResponse{
		Id:         comment.Id,
		PostId:     comment.PostId,
		AuthorId:   comment.AuthorId,
		AuthorName: authorName,
		Body:       comment.Body,
		CreatedAt:  comment.CreatedAt,
		DeletedAt:  comment.DeletedAt,
	}
}

func (s *forumService) CreatePost(ctx context.Context, principal authz.Principal, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if err := authz.PostWrite.CanWrite(principal); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	post := &entity.Post{
		Id:        uuid.New(),
		AuthorId:  principal.Id,
		Title:     req.Title,
		Body:      req.Body,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.ForumRepository().CreatePost(ctx, post); err != nil {
		return nil, err
	}

	return toPostResponse(post, s.authorName(ctx, uow, principal.Id)), nil
}

func (s *forumService) UpdatePost(ctx context.Context, principal authz.Principal, postId uuid.UUID, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.ForumRepository().FindOnePost(ctx, specification.ByID{ID: postId})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("post")
	}
	// Content edits stay author-only; admins moderate by deleting.
	if err := authz.PostWrite.CanWriteOwned(principal, post.AuthorId); err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Body = req.Body
	post.UpdatedAt = time.Now()

	if err := uow.ForumRepository().UpdatePost(ctx, post); err != nil {
		return nil, err
	}
	return toPostResponse(post, s.authorName(ctx, uow, post.AuthorId)), nil
}

func (s *forumService) DeletePost(ctx context.Context, principal authz.Principal, postId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.ForumRepository().FindOnePostUnscoped(ctx, specification.ByID{ID: postId})
	if err != nil {
		return err
	}
	if post == nil {
		return apperr.NotFound("post")
	}
	if err := authz.PostDrop.CanWriteOwned(principal, post.AuthorId); err != nil {
		return err
	}

	// Comments disappear with the post.
	comments, err := uow.ForumRepository().FindComments(ctx, specification.ByPost{PostID: postId})
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for _, c := range comments {
		if err := uow.ForumRepository().DeleteComment(ctx, c.Id); err != nil {
			return err
		}
	}
	if err := uow.ForumRepository().DeletePost(ctx, postId); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *forumService) GetPost(ctx context.Context, postId uuid.UUID) (*dto.PostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.ForumRepository().FindOnePost(ctx, specification.ByID{ID: postId})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("post")
	}
	return toPostResponse(post, s.authorName(ctx, uow, post.AuthorId)), nil
}

func (s *forumService) ListPosts(ctx context.Context, authorId *uuid.UUID, limit, offset int) ([]*dto.PostResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if authorId != nil {
		specs = append(specs, specification.ByAuthor{AuthorID: *authorId})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	posts, err := uow.ForumRepository().FindPosts(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, toPostResponse(post, s.authorName(ctx, uow, post.AuthorId)))
	}
	return out, nil
}

func (s *forumService) CreateComment(ctx context.Context, principal authz.Principal, postId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if err := authz.PostWrite.CanWrite(principal); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.ForumRepository().FindOnePost(ctx, specification.ByID{ID: postId})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("post")
	}

	comment := &entity.Comment{
		Id:        uuid.New(),
		PostId:    postId,
		AuthorId:  principal.Id,
		Body:      req.Body,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.ForumRepository().CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return toCommentResponse(comment, s.authorName(ctx, uow, principal.Id)), nil
}

func (s *forumService) UpdateComment(ctx context.Context, principal authz.Principal, commentId uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	comment, err := uow.ForumRepository().FindOneComment(ctx, specification.ByID{ID: commentId})
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperr.NotFound("comment")
	}
	if err := authz.PostWrite.CanWriteOwned(principal, comment.AuthorId); err != nil {
		return nil, err
	}

	comment.Body = req.Body
	comment.UpdatedAt = time.Now()

	if err := uow.ForumRepository().UpdateComment(ctx, comment); err != nil {
		return nil, err
	}
	return toCommentResponse(comment, s.authorName(ctx, uow, comment.AuthorId)), nil
}

func (s *forumService) DeleteComment(ctx context.Context, principal authz.Principal, commentId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	comment, err := uow.ForumRepository().FindOneComment(ctx, specification.ByID{ID: commentId})
	if err != nil {
		return err
	}
	if comment == nil {
		return apperr.NotFound("comment")
	}
	if err := authz.CommentDrop.CanWriteOwned(principal, comment.AuthorId); err != nil {
		return err
	}

	return uow.ForumRepository().DeleteComment(ctx, commentId)
}

func (s *forumService) ListComments(ctx context.Context, postId uuid.UUID, limit, offset int) ([]*dto.CommentResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	comments, err := uow.ForumRepository().FindComments(ctx,
		specification.ByPost{PostID: postId},
		specification.OrderBy{Field: "created_at"},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c, s.authorName(ctx, uow, c.AuthorId)))
	}
	return out, nil
}
