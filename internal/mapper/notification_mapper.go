package mapper

import (
	"encoding/json"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/model"

	"gorm.io/datatypes"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}
	var meta map[string]interface{}
	if len(n.Metadata) > 0 {
		_ = json.Unmarshal(n.Metadata, &meta)
	}
	return &entity.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Type:      entity.NotificationType(n.Type),
		Title:     n.Title,
		Body:      n.Body,
		Metadata:  meta,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(n *entity.Notification) *model.Notification {
	var meta datatypes.JSON
	if n.Metadata != nil {
		raw, _ := json.Marshal(n.Metadata)
		meta = datatypes.JSON(raw)
	}
	return &model.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Type:      string(n.Type),
		Title:     n.Title,
		Body:      n.Body,
		Metadata:  meta,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToEntities(list []*model.Notification) []*entity.Notification {
	out := make([]*entity.Notification, 0, len(list))
	for _, n := range list {
		out = append(out, m.ToEntity(n))
	}
	return out
}
