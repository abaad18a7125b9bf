package contract

import (
	"context"
	"time"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MenuRepository interface {
	// Categories
	CreateCategory(ctx context.Context, cat *entity.MenuCategory) error
	UpdateCategory(ctx context.Context, cat *entity.MenuCategory) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	RestoreCategory(ctx context.Context, id uuid.UUID) error
	FindOneCategory(ctx context.Context, specs ...specification.Specification) (*entity.MenuCategory, error)
	FindCategories(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuCategory, error)

	// Items
	CreateItem(ctx context.Context, item *entity.MenuItem) error
	UpdateItem(ctx context.Context, item *entity.MenuItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	RestoreItem(ctx context.Context, id uuid.UUID) error
	FindOneItem(ctx context.Context, specs ...specification.Specification) (*entity.MenuItem, error)
	FindItems(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuItem, error)
	FindItemsUnscoped(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuItem, error)

	// Block-cascade helpers
	SoftDeleteByEstablishments(ctx context.Context, establishmentIds []uuid.UUID, at time.Time) error
	RestoreByEstablishments(ctx context.Context, establishmentIds []uuid.UUID, at time.Time) error
}
