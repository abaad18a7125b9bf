package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/repository/specification"
	"sipspot-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService turns order lifecycle messages into persisted, pushed
// notifications for the interested parties.
type consumerService struct {
	pubSub              *gochannel.GoChannel
	uowFactory          unitofwork.RepositoryFactory
	notificationService INotificationService
}

func NewConsumerService(pubSub *gochannel.GoChannel, uowFactory unitofwork.RepositoryFactory, notificationService INotificationService) IConsumerService {
	return &consumerService{
		pubSub:              pubSub,
		uowFactory:          uowFactory,
		notificationService: notificationService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, OrderEventsTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload OrderEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal order event: %v", err)
		// Ack malformed messages to avoid infinite redelivery.
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOneUnscoped(ctx, specification.ByID{ID: payload.OrderId})
	if err != nil {
		log.Printf("[ERROR] Failed to load order %s: %v", payload.OrderId, err)
		msg.Nack()
		return
	}
	if order == nil {
		msg.Ack()
		return
	}

	est, err := uow.EstablishmentRepository().FindOneUnscoped(ctx, specification.ByID{ID: order.EstablishmentId})
	if err != nil {
		log.Printf("[ERROR] Failed to load establishment %s: %v", order.EstablishmentId, err)
		msg.Nack()
		return
	}
	if est == nil {
		msg.Ack()
		return
	}

	meta := map[string]interface{}{
		"order_id":         order.Id.String(),
		"establishment_id": est.Id.String(),
		"total":            order.Total,
	}

	switch entity.NotificationType(payload.Type) {
	case entity.NotificationOrderPlaced:
		// The owner hears about new orders.
		cs.deliver(ctx, &entity.Notification{
			UserId:   est.OwnerId,
			Type:     entity.NotificationOrderPlaced,
			Title:    "New order received",
			Body:     fmt.Sprintf("A new order came in at %s.", est.Name),
			Metadata: meta,
		})
	case entity.NotificationOrderCompleted:
		cs.deliver(ctx, &entity.Notification{
			UserId:   order.CustomerId,
			Type:     entity.NotificationOrderCompleted,
			Title:    "Order completed",
			Body:     fmt.Sprintf("Your order at %s is ready.", est.Name),
			Metadata: meta,
		})
	case entity.NotificationOrderCanceled:
		cs.deliver(ctx, &entity.Notification{
			UserId:   order.CustomerId,
			Type:     entity.NotificationOrderCanceled,
			Title:    "Order canceled",
			Body:     fmt.Sprintf("Your order at %s was canceled.", est.Name),
			Metadata: meta,
		})
		cs.deliver(ctx, &entity.Notification{
			UserId:   est.OwnerId,
			Type:     entity.NotificationOrderCanceled,
			Title:    "Order canceled",
			Body:     fmt.Sprintf("An order at %s was canceled.", est.Name),
			Metadata: meta,
		})
	default:
		log.Printf("[WARN] Unknown order event type %q", payload.Type)
	}

	msg.Ack()
}

func (cs *consumerService) deliver(ctx context.Context, n *entity.Notification) {
	if err := cs.notificationService.Notify(ctx, n); err != nil {
		log.Printf("[ERROR] Failed to deliver notification to %s: %v", n.UserId, err)
	}
}
