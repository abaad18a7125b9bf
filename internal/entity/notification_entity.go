package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationOrderPlaced    NotificationType = "ORDER_PLACED"
	NotificationOrderCompleted NotificationType = "ORDER_COMPLETED"
	NotificationOrderCanceled  NotificationType = "ORDER_CANCELED"
	NotificationUserBlocked    NotificationType = "USER_BLOCKED"
)

type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Type      NotificationType
	Title     string
	Body      string
	Metadata  map[string]interface{}
	ReadAt    *time.Time
	CreatedAt time.Time
}
