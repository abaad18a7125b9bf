package contract

import (
	"context"
	"time"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EstablishmentRepository interface {
	Create(ctx context.Context, est *entity.Establishment) error
	Update(ctx context.Context, est *entity.Establishment) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteUnscoped(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Establishment, error)
	FindOneUnscoped(ctx context.Context, specs ...specification.Specification) (*entity.Establishment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Establishment, error)
	FindAllUnscoped(ctx context.Context, specs ...specification.Specification) ([]*entity.Establishment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Restore(ctx context.Context, id uuid.UUID) error

	// Block-cascade helpers: stamp or clear deletion for everything the owner
	// holds. IdsByOwnerUnscoped feeds the dependent cascades.
	SoftDeleteByOwner(ctx context.Context, ownerId uuid.UUID, at time.Time) error
	RestoreByOwner(ctx context.Context, ownerId uuid.UUID, at time.Time) error
	IdsByOwnerUnscoped(ctx context.Context, ownerId uuid.UUID) ([]uuid.UUID, error)

	// Banners
	CreateBanner(ctx context.Context, banner *entity.Banner) error
	DeleteBanner(ctx context.Context, id uuid.UUID) error
	FindBanners(ctx context.Context, establishmentId uuid.UUID) ([]*entity.Banner, error)
}
