package mapper

import (
	"sipspot-be/internal/entity"
	"sipspot-be/internal/model"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) ToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}
	return &entity.Feedback{
		Id:              f.Id,
		CustomerId:      f.CustomerId,
		EstablishmentId: f.EstablishmentId,
		Rating:          f.Rating,
		Comment:         f.Comment,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

func (m *FeedbackMapper) ToModel(f *entity.Feedback) *model.Feedback {
	return &model.Feedback{
		Id:              f.Id,
		CustomerId:      f.CustomerId,
		EstablishmentId: f.EstablishmentId,
		Rating:          f.Rating,
		Comment:         f.Comment,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

func (m *FeedbackMapper) ToEntities(list []*model.Feedback) []*entity.Feedback {
	out := make([]*entity.Feedback, 0, len(list))
	for _, f := range list {
		out = append(out, m.ToEntity(f))
	}
	return out
}
