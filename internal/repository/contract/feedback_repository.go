package contract

import (
	"context"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FeedbackRepository interface {
	Create(ctx context.Context, fb *entity.Feedback) error
	Update(ctx context.Context, fb *entity.Feedback) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feedback, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error)
	AverageRating(ctx context.Context, establishmentId uuid.UUID) (float64, error)
}
