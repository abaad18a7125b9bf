package mapper

import (
	"sipspot-be/internal/entity"
	"sipspot-be/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}
	return &entity.Order{
		Id:              o.Id,
		CustomerId:      o.CustomerId,
		EstablishmentId: o.EstablishmentId,
		MenuItemId:      o.MenuItemId,
		Quantity:        o.Quantity,
		UnitPrice:       o.UnitPrice,
		Total:           o.Total,
		Status:          entity.OrderStatus(o.Status),
		Note:            o.Note,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		DeletedAt:       deletedAtToTime(o.DeletedAt),
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	return &model.Order{
		Id:              o.Id,
		CustomerId:      o.CustomerId,
		EstablishmentId: o.EstablishmentId,
		MenuItemId:      o.MenuItemId,
		Quantity:        o.Quantity,
		UnitPrice:       o.UnitPrice,
		Total:           o.Total,
		Status:          string(o.Status),
		Note:            o.Note,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		DeletedAt:       timeToDeletedAt(o.DeletedAt),
	}
}

func (m *OrderMapper) ToEntities(list []*model.Order) []*entity.Order {
	out := make([]*entity.Order, 0, len(list))
	for _, o := range list {
		out = append(out, m.ToEntity(o))
	}
	return out
}
