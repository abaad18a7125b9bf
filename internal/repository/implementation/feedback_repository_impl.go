package implementation

import (
	"context"
	"errors"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/mapper"
	"sipspot-be/internal/model"
	"sipspot-be/internal/repository/contract"
	"sipspot-be/internal/repository/scope"
	"sipspot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeedbackMapper
}

func NewFeedbackRepository(db *gorm.DB) contract.FeedbackRepository {
	return &FeedbackRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeedbackMapper(),
	}
}

func (r *FeedbackRepositoryImpl) Create(ctx context.Context, fb *entity.Feedback) error {
	m := r.mapper.ToModel(fb)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*fb = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeedbackRepositoryImpl) Update(ctx context.Context, fb *entity.Feedback) error {
	m := r.mapper.ToModel(fb)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*fb = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeedbackRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Feedback{}, id).Error
}

func (r *FeedbackRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feedback, error) {
	var m model.Feedback
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FeedbackRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error) {
	var models []*model.Feedback
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Scopes(scope.OrderByCreatedDesc).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FeedbackRepositoryImpl) AverageRating(ctx context.Context, establishmentId uuid.UUID) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).Model(&model.Feedback{}).
		Where("establishment_id = ?", establishmentId).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
