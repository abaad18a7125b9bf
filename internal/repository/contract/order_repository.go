package contract

import (
	"context"
	"time"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindOneUnscoped(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
	FindAllUnscoped(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Restore(ctx context.Context, id uuid.UUID) error

	// Block-cascade helpers
	SoftDeleteByEstablishments(ctx context.Context, establishmentIds []uuid.UUID, at time.Time) error
	RestoreByEstablishments(ctx context.Context, establishmentIds []uuid.UUID, at time.Time) error
}
