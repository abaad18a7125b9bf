package service

import (
	"context"
	"time"

	"sipspot-be/internal/dto"
	"sipspot-be/internal/entity"
	"sipspot-be/internal/mapper"
	"sipspot-be/internal/pkg/logger"
	"sipspot-be/internal/repository/contract"
	"sipspot-be/internal/websocket"

	"github.com/google/uuid"
)

type INotificationService interface {
	Notify(ctx context.Context, n *entity.Notification) error
	List(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.NotificationResponse, error)
	MarkRead(ctx context.Context, userId, notificationId uuid.UUID) error
	UnreadCount(ctx context.Context, userId uuid.UUID) (int64, error)
}

type notificationService struct {
	repo   contract.NotificationRepository
	hub    *websocket.Hub
	mapper *mapper.NotificationMapper
	logger logger.ILogger
}

func NewNotificationService(repo contract.NotificationRepository, hub *websocket.Hub, log logger.ILogger) INotificationService {
	return &notificationService{
		repo:   repo,
		hub:    hub,
		mapper: mapper.NewNotificationMapper(),
		logger: log,
	}
}

// Notify persists the notification and pushes it to the user's open
// websocket connections.
func (s *notificationService) Notify(ctx context.Context, n *entity.Notification) error {
	if n.Id == uuid.Nil {
		n.Id = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Send(n.UserId, *s.mapper.ToModel(n))
	}

	s.logger.Info("Notification", "Notification delivered", map[string]interface{}{
		"user_id": n.UserId,
		"type":    n.Type,
	})
	return nil
}

func (s *notificationService) List(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.NotificationResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	notifications, err := s.repo.FindByUser(ctx, userId, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, &dto.NotificationResponse{
			Id:        n.Id,
			Type:      string(n.Type),
			Title:     n.Title,
			Body:      n.Body,
			Metadata:  n.Metadata,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userId, notificationId uuid.UUID) error {
	return s.repo.MarkRead(ctx, notificationId, userId)
}

func (s *notificationService) UnreadCount(ctx context.Context, userId uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userId)
}
