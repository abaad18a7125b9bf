package mapper

import (
	"sipspot-be/internal/entity"
	"sipspot-be/internal/model"
)

type MenuMapper struct{}

func NewMenuMapper() *MenuMapper {
	return &MenuMapper{}
}

func (m *MenuMapper) CategoryToEntity(c *model.MenuCategory) *entity.MenuCategory {
	if c == nil {
		return nil
	}
	return &entity.MenuCategory{
		Id:              c.Id,
		EstablishmentId: c.EstablishmentId,
		Name:            c.Name,
		SortOrder:       c.SortOrder,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		DeletedAt:       deletedAtToTime(c.DeletedAt),
	}
}

func (m *MenuMapper) CategoryToModel(c *entity.MenuCategory) *model.MenuCategory {
	return &model.MenuCategory{
		Id:              c.Id,
		EstablishmentId: c.EstablishmentId,
		Name:            c.Name,
		SortOrder:       c.SortOrder,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		DeletedAt:       timeToDeletedAt(c.DeletedAt),
	}
}

func (m *MenuMapper) CategoriesToEntities(list []*model.MenuCategory) []*entity.MenuCategory {
	out := make([]*entity.MenuCategory, 0, len(list))
	for _, c := range list {
		out = append(out, m.CategoryToEntity(c))
	}
	return out
}

func (m *MenuMapper) ItemToEntity(i *model.MenuItem) *entity.MenuItem {
	if i == nil {
		return nil
	}
	return &entity.MenuItem{
		Id:              i.Id,
		EstablishmentId: i.EstablishmentId,
		CategoryId:      i.CategoryId,
		Name:            i.Name,
		Description:     i.Description,
		Price:           i.Price,
		Available:       i.Available,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
		DeletedAt:       deletedAtToTime(i.DeletedAt),
	}
}

func (m *MenuMapper) ItemToModel(i *entity.MenuItem) *model.MenuItem {
	return &model.MenuItem{
		Id:              i.Id,
		EstablishmentId: i.EstablishmentId,
		CategoryId:      i.CategoryId,
		Name:            i.Name,
		Description:     i.Description,
		Price:           i.Price,
		Available:       i.Available,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
		DeletedAt:       timeToDeletedAt(i.DeletedAt),
	}
}

func (m *MenuMapper) ItemsToEntities(list []*model.MenuItem) []*entity.MenuItem {
	out := make([]*entity.MenuItem, 0, len(list))
	for _, i := range list {
		out = append(out, m.ItemToEntity(i))
	}
	return out
}
