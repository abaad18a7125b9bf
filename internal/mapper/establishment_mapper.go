package mapper

import (
	"encoding/json"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/model"

	"gorm.io/datatypes"
)

type EstablishmentMapper struct{}

func NewEstablishmentMapper() *EstablishmentMapper {
	return &EstablishmentMapper{}
}

func (m *EstablishmentMapper) ToEntity(e *model.Establishment) *entity.Establishment {
	if e == nil {
		return nil
	}
	var windows []entity.HappyHourWindow
	if len(e.HappyHours) > 0 {
		// A malformed column yields an empty window list rather than an error.
		_ = json.Unmarshal(e.HappyHours, &windows)
	}
	return &entity.Establishment{
		Id:          e.Id,
		OwnerId:     e.OwnerId,
		Name:        e.Name,
		Slug:        e.Slug,
		Description: e.Description,
		AddressLine: e.AddressLine,
		City:        e.City,
		PostalCode:  e.PostalCode,
		Country:     e.Country,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
		HappyHours:  windows,
		QRCode:      e.QRCode,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		DeletedAt:   deletedAtToTime(e.DeletedAt),
	}
}

func (m *EstablishmentMapper) ToModel(e *entity.Establishment) *model.Establishment {
	if e == nil {
		return nil
	}
	windows := e.HappyHours
	if windows == nil {
		windows = []entity.HappyHourWindow{}
	}
	raw, _ := json.Marshal(windows)
	return &model.Establishment{
		Id:          e.Id,
		OwnerId:     e.OwnerId,
		Name:        e.Name,
		Slug:        e.Slug,
		Description: e.Description,
		AddressLine: e.AddressLine,
		City:        e.City,
		PostalCode:  e.PostalCode,
		Country:     e.Country,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
		HappyHours:  datatypes.JSON(raw),
		QRCode:      e.QRCode,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		DeletedAt:   timeToDeletedAt(e.DeletedAt),
	}
}

func (m *EstablishmentMapper) ToEntities(list []*model.Establishment) []*entity.Establishment {
	out := make([]*entity.Establishment, 0, len(list))
	for _, e := range list {
		out = append(out, m.ToEntity(e))
	}
	return out
}

func (m *EstablishmentMapper) BannerToEntity(b *model.Banner) *entity.Banner {
	if b == nil {
		return nil
	}
	return &entity.Banner{
		Id:              b.Id,
		EstablishmentId: b.EstablishmentId,
		ImageURL:        b.ImageURL,
		Caption:         b.Caption,
		SortOrder:       b.SortOrder,
		CreatedAt:       b.CreatedAt,
	}
}

func (m *EstablishmentMapper) BannerToModel(b *entity.Banner) *model.Banner {
	return &model.Banner{
		Id:              b.Id,
		EstablishmentId: b.EstablishmentId,
		ImageURL:        b.ImageURL,
		Caption:         b.Caption,
		SortOrder:       b.SortOrder,
		CreatedAt:       b.CreatedAt,
	}
}

func (m *EstablishmentMapper) BannersToEntities(list []*model.Banner) []*entity.Banner {
	out := make([]*entity.Banner, 0, len(list))
	for _, b := range list {
		out = append(out, m.BannerToEntity(b))
	}
	return out
}
