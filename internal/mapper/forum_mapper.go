package mapper

import (
	"sipspot-be/internal/entity"
	"sipspot-be/internal/model"
)

type ForumMapper struct{}

func NewForumMapper() *ForumMapper {
	return &ForumMapper{}
}

func (m *ForumMapper) PostToEntity(p *model.Post) *entity.Post {
	if p == nil {
		return nil
	}
	return &entity.Post{
		Id:        p.Id,
		AuthorId:  p.AuthorId,
		Title:     p.Title,
		Body:      p.Body,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		DeletedAt: deletedAtToTime(p.DeletedAt),
	}
}

func (m *ForumMapper) PostToModel(p *entity.Post) *model.Post {
	return &model.Post{
		Id:        p.Id,
		AuthorId:  p.AuthorId,
		Title:     p.Title,
		Body:      p.Body,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		DeletedAt: timeToDeletedAt(p.DeletedAt),
	}
}

func (m *ForumMapper) PostsToEntities(list []*model.Post) []*entity.Post {
	out := make([]*entity.Post, 0, len(list))
	for _, p := range list {
		out = append(out, m.PostToEntity(p))
	}
	return out
}

func (m *ForumMapper) CommentToEntity(c *model.Comment) *entity.Comment {
	if c == nil {
		return nil
	}
	return &entity.Comment{
		Id:        c.Id,
		PostId:    c.PostId,
		AuthorId:  c.AuthorId,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		DeletedAt: deletedAtToTime(c.DeletedAt),
	}
}

func (m *ForumMapper) CommentToModel(c *entity.Comment) *model.Comment {
	return &model.Comment{
		Id:        c.Id,
		PostId:    c.PostId,
		AuthorId:  c.AuthorId,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		DeletedAt: timeToDeletedAt(c.DeletedAt),
	}
}

func (m *ForumMapper) CommentsToEntities(list []*model.Comment) []*entity.Comment {
	out := make([]*entity.Comment, 0, len(list))
	for _, c := range list {
		out = append(out, m.CommentToEntity(c))
	}
	return out
}
