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

type EstablishmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EstablishmentMapper
}

func NewEstablishmentRepository(db *gorm.DB) contract.EstablishmentRepository {
	return &EstablishmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewEstablishmentMapper(),
	}
}

func (r *EstablishmentRepositoryImpl) Create(ctx context.Context, est *entity.Establishment) error {
	m := r.mapper.ToModel(est)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*est = *r.mapper.ToEntity(m)
	return nil
}

func (r *EstablishmentRepositoryImpl) Update(ctx context.Context, est *entity.Establishment) error {
	m := r.mapper.ToModel(est)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*est = *r.mapper.ToEntity(m)
	return nil
}

// Delete soft-deletes; calling it on an already-deleted row re-stamps the
// timestamp via the Unscoped update below, so the operation is idempotent.
func (r *EstablishmentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Model(&model.Establishment{}).
		Where("id = ?", id).
		Update("deleted_at", time.Now().UTC()).Error
}

func (r *EstablishmentRepositoryImpl) DeleteUnscoped(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(&model.Establishment{}).Error
}

func (r *EstablishmentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Establishment, error) {
	var m model.Establishment
	query := applySpecifications(visible(r.db.WithContext(ctx)), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EstablishmentRepositoryImpl) FindOneUnscoped(ctx context.Context, specs ...specification.Specification) (*entity.Establishment, error) {
	var m model.Establishment
	query := applySpecifications(scope.WithSoftDeleted(r.db.WithContext(ctx)), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EstablishmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Establishment, error) {
	var models []*model.Establishment
	query := applySpecifications(visible(r.db.WithContext(ctx)), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EstablishmentRepositoryImpl) FindAllUnscoped(ctx context.Context, specs ...specification.Specification) ([]*entity.Establishment, error) {
	var models []*model.Establishment
	query := applySpecifications(scope.WithSoftDeleted(r.db.WithContext(ctx)), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EstablishmentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(visible(r.db.WithContext(ctx)).Model(&model.Establishment{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EstablishmentRepositoryImpl) Restore(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Model(&model.Establishment{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

// SoftDeleteByOwner stamps the owner's live establishments with the given
// time. Rows the owner already removed keep their original timestamp, so a
// later restore can tell the two apart.
func (r *EstablishmentRepositoryImpl) SoftDeleteByOwner(ctx context.Context, ownerId uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Unscoped().Model(&model.Establishment{}).
		Where("owner_id = ? AND deleted_at IS NULL", ownerId).
		Update("deleted_at", at).Error
}

// RestoreByOwner reverses exactly the rows stamped at the given time.
func (r *EstablishmentRepositoryImpl) RestoreByOwner(ctx context.Context, ownerId uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Unscoped().Model(&model.Establishment{}).
		Where("owner_id = ? AND deleted_at = ?", ownerId, at).
		Update("deleted_at", nil).Error
}

func (r *EstablishmentRepositoryImpl) IdsByOwnerUnscoped(ctx context.Context, ownerId uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Unscoped().Model(&model.Establishment{}).
		Where("owner_id = ?", ownerId).
		Pluck("id", &ids).Error
	return ids, err
}

// Banners

func (r *EstablishmentRepositoryImpl) CreateBanner(ctx context.Context, banner *entity.Banner) error {
	m := r.mapper.BannerToModel(banner)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*banner = *r.mapper.BannerToEntity(m)
	return nil
}

func (r *EstablishmentRepositoryImpl) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Banner{}, id).Error
}

func (r *EstablishmentRepositoryImpl) FindBanners(ctx context.Context, establishmentId uuid.UUID) ([]*entity.Banner, error) {
	var models []*model.Banner
	err := r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentId).
		Order("sort_order ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.BannersToEntities(models), nil
}
