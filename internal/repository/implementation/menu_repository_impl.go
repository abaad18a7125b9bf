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

type MenuRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MenuMapper
}

func NewMenuRepository(db *gorm.DB) contract.MenuRepository {
	return &MenuRepositoryImpl{
		db:     db,
		mapper: mapper.NewMenuMapper(),
	}
}

// Categories

func (r *MenuRepositoryImpl) CreateCategory(ctx context.Context, cat *entity.MenuCategory) error {
	m := r.mapper.CategoryToModel(cat)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*cat = *r.mapper.CategoryToEntity(m)
	return nil
}

func (r *MenuRepositoryImpl) UpdateCategory(ctx context.Context, cat *entity.MenuCategory) error {
	m := r.mapper.CategoryToModel(cat)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*cat = *r.mapper.CategoryToEntity(m)
	return nil
}

func (r *MenuRepositoryImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Model(&model.MenuCategory{}).
		Where("id = ?", id).
		Update("deleted_at", time.Now().UTC()).Error
}

func (r *MenuRepositoryImpl) RestoreCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Model(&model.MenuCategory{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

func (r *MenuRepositoryImpl) FindOneCategory(ctx context.Context, specs ...specification.Specification) (*entity.MenuCategory, error) {
	var m model.MenuCategory
	query := applySpecifications(visible(r.db.WithContext(ctx)), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CategoryToEntity(&m), nil
}

func (r *MenuRepositoryImpl) FindCategories(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuCategory, error) {
	var models []*model.MenuCategory
	query := applySpecifications(visible(r.db.WithContext(ctx)), specs...)
	if err := query.Order("sort_order ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CategoriesToEntities(models), nil
}

// Items

func (r *MenuRepositoryImpl) CreateItem(ctx context.Context, item *entity.MenuItem) error {
	m := r.mapper.ItemToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ItemToEntity(m)
	return nil
}

func (r *MenuRepositoryImpl) UpdateItem(ctx context.Context, item *entity.MenuItem) error {
	m := r.mapper.ItemToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ItemToEntity(m)
	return nil
}

func (r *MenuRepositoryImpl) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Model(&model.MenuItem{}).
		Where("id = ?", id).
		Update("deleted_at", time.Now().UTC()).Error
}

func (r *MenuRepositoryImpl) RestoreItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Model(&model.MenuItem{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

func (r *MenuRepositoryImpl) FindOneItem(ctx context.Context, specs ...specification.Specification) (*entity.MenuItem, error) {
	var m model.MenuItem
	query := applySpecifications(visible(r.db.WithContext(ctx)), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ItemToEntity(&m), nil
}

func (r *MenuRepositoryImpl) FindItems(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuItem, error) {
	var models []*model.MenuItem
	query := applySpecifications(visible(r.db.WithContext(ctx)), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ItemsToEntities(models), nil
}

func (r *MenuRepositoryImpl) FindItemsUnscoped(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuItem, error) {
	var models []*model.MenuItem
	query := applySpecifications(scope.WithSoftDeleted(r.db.WithContext(ctx)), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ItemsToEntities(models), nil
}

// Block-cascade helpers

// SoftDeleteByEstablishments stamps live categories and items with the given
// time. Rows the partner removed themselves keep their own timestamp.
func (r *MenuRepositoryImpl) SoftDeleteByEstablishments(ctx context.Context, establishmentIds []uuid.UUID, at time.Time) error {
	if len(establishmentIds) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Unscoped().Model(&model.MenuCategory{}).
		Where("establishment_id IN ? AND deleted_at IS NULL", establishmentIds).
		Update("deleted_at", at).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Unscoped().Model(&model.MenuItem{}).
		Where("establishment_id IN ? AND deleted_at IS NULL", establishmentIds).
		Update("deleted_at", at).Error
}

// RestoreByEstablishments reverses exactly the rows stamped at the given time.
func (r *MenuRepositoryImpl) RestoreByEstablishments(ctx context.Context, establishmentIds []uuid.UUID, at time.Time) error {
	if len(establishmentIds) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Unscoped().Model(&model.MenuCategory{}).
		Where("establishment_id IN ? AND deleted_at = ?", establishmentIds, at).
		Update("deleted_at", nil).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Unscoped().Model(&model.MenuItem{}).
		Where("establishment_id IN ? AND deleted_at = ?", establishmentIds, at).
		Update("deleted_at", nil).Error
}
