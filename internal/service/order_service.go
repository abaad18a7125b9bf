package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sipspot-be/internal/dto"
	"sipspot-be/internal/entity"
	"sipspot-be/internal/pkg/apperr"
	"sipspot-be/internal/pkg/authz"
	"sipspot-be/internal/repository/specification"
	"sipspot-be/internal/repository/unitofwork"
	"sipspot-be/pkg/events"
	pkgNats "sipspot-be/pkg/nats"
	"sipspot-be/pkg/timewindow"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// OrderEventsTopic carries order lifecycle messages to the in-process
// notification consumer.
const OrderEventsTopic = "order_events"

// OrderEventMessage is the watermill payload for order lifecycle changes.
type OrderEventMessage struct {
	OrderId uuid.UUID `json:"order_id"`
	Type    string    `json:"type"`
}

type IOrderService interface {
	Place(ctx context.Context, principal authz.Principal, req *dto.PlaceOrderRequest) (*dto.OrderResponse, error)
	Complete(ctx context.Context, principal authz.Principal, orderId uuid.UUID) (*dto.OrderResponse, error)
	Cancel(ctx context.Context, principal authz.Principal, orderId uuid.UUID) (*dto.OrderResponse, error)
	GetById(ctx context.Context, principal authz.Principal, orderId uuid.UUID) (*dto.OrderResponse, error)
	ListMine(ctx context.Context, principal authz.Principal, query *dto.OrderListQuery) ([]*dto.OrderResponse, error)
	ListForEstablishment(ctx context.Context, principal authz.Principal, establishmentId uuid.UUID, query *dto.OrderListQuery) ([]*dto.OrderResponse, error)
}

type orderService struct {
	uowFactory     unitofwork.RepositoryFactory
	pubSub         *gochannel.GoChannel
	eventPublisher *pkgNats.Publisher
}

func NewOrderService(uowFactory unitofwork.RepositoryFactory, pubSub *gochannel.GoChannel, eventPublisher *pkgNats.Publisher) IOrderService {
	return &orderService{
		uowFactory:     uowFactory,
		pubSub:         pubSub,
		eventPublisher: eventPublisher,
	}
}

func toOrderResponse(order *entity.Order, itemName string) *dto.OrderResponse {
	return &dto.OrderResponse{
		Id:              order.Id,
		CustomerId:      order.CustomerId,
		EstablishmentId: order.EstablishmentId,
		MenuItemId:      order.MenuItemId,
		MenuItemName:    itemName,
		Quantity:        order.Quantity,
		UnitPrice:       order.UnitPrice,
		Total:           order.Total,
		Status:          string(order.Status),
		Note:            order.Note,
		CreatedAt:       order.CreatedAt,
		DeletedAt:       order.DeletedAt,
	}
}

// listSpecs builds the common filter chain for order listings. A recognized
// period token or an explicit date narrows created_at; a malformed explicit
// date yields no results at all rather than an unfiltered set.
func listSpecs(query *dto.OrderListQuery) ([]specification.Specification, bool) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}

	if query.Status != "" {
		specs = append(specs, specification.ByStatus{Status: query.Status})
	}

	if query.Date != "" {
		r, ok := timewindow.ResolveDate(query.Date, time.Local)
		if !ok {
			return nil, false
		}
		specs = append(specs, specification.CreatedBetween{Start: r.Start, End: r.End})
	} else if query.Period != "" {
		if r := timewindow.Resolve(query.Period, time.Now()); !r.IsZero() {
			specs = append(specs, specification.CreatedBetween{Start: r.Start, End: r.End})
		}
	}

	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	specs = append(specs, specification.Pagination{Limit: limit, Offset: query.Offset})

	return specs, true
}

func (s *orderService) publishOrderEvent(ctx context.Context, order *entity.Order, eventType string) {
	if s.pubSub != nil {
		payload, _ := json.Marshal(OrderEventMessage{OrderId: order.Id, Type: eventType})
		msg := message.NewMessage(watermill.NewUUID(), payload)
		if err := s.pubSub.Publish(OrderEventsTopic, msg); err != nil {
			fmt.Printf("[WARN] Failed to publish %s message: %v\n", eventType, err)
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: eventType,
			Data: map[string]interface{}{
				"order_id":         order.Id,
				"customer_id":      order.CustomerId,
				"establishment_id": order.EstablishmentId,
				"total":            order.Total,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
		}
	}
}

func (s *orderService) Place(ctx context.Context, principal authz.Principal, req *dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	if err := authz.OrderCreate.CanWrite(principal); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	est, err := uow.EstablishmentRepository().FindOne(ctx, specification.ByID{ID: req.EstablishmentId})
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, apperr.NotFound("establishment")
	}

	// Ordering is only open inside the establishment's happy-hour windows.
	if !est.OrderingAllowedAt(time.Now()) {
		return nil, apperr.Validation("ordering is closed outside happy hours")
	}

	item, err := uow.MenuRepository().FindOneItem(ctx,
		specification.ByID{ID: req.MenuItemId},
		specification.ByEstablishment{EstablishmentID: req.EstablishmentId},
	)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("menu item")
	}
	if !item.Available {
		return nil, apperr.Validation("menu item is not available")
	}

	order := &entity.Order{
		Id:              uuid.New(),
		CustomerId:      principal.Id,
		EstablishmentId: req.EstablishmentId,
		MenuItemId:      req.MenuItemId,
		Quantity:        req.Quantity,
		UnitPrice:       item.Price,
		Total:           item.Price * float64(req.Quantity),
		Status:          entity.OrderStatusPending,
		Note:            req.Note,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return nil, err
	}

	s.publishOrderEvent(ctx, order, string(entity.NotificationOrderPlaced))

	return toOrderResponse(order, item.Name), nil
}

func (s *orderService) transition(ctx context.Context, principal authz.Principal, orderId uuid.UUID, target entity.OrderStatus) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFound("order")
	}

	est, err := uow.EstablishmentRepository().FindOne(ctx, specification.ByID{ID: order.EstablishmentId})
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, apperr.NotFound("order")
	}

	switch target {
	case entity.OrderStatusCompleted:
		// Only the establishment's owner fulfills orders.
		if err := authz.OrderComplete.CanWriteOwned(principal, est.OwnerId); err != nil {
			return nil, err
		}
	case entity.OrderStatusCanceled:
		// Either side of the order may cancel while it is pending.
		if principal.Id != order.CustomerId && principal.Id != est.OwnerId {
			return nil, apperr.Forbidden()
		}
	}

	if err := order.Transition(target); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}
	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return nil, err
	}

	eventType := string(entity.NotificationOrderCompleted)
	if target == entity.OrderStatusCanceled {
		eventType = string(entity.NotificationOrderCanceled)
	}
	s.publishOrderEvent(ctx, order, eventType)

	return toOrderResponse(order, ""), nil
}

func (s *orderService) Complete(ctx context.Context, principal authz.Principal, orderId uuid.UUID) (*dto.OrderResponse, error) {
	return s.transition(ctx, principal, orderId, entity.OrderStatusCompleted)
}

func (s *orderService) Cancel(ctx context.Context, principal authz.Principal, orderId uuid.UUID) (*dto.OrderResponse, error) {
	return s.transition(ctx, principal, orderId, entity.OrderStatusCanceled)
}

// itemNames resolves menu item names for a batch of orders in one query.
// Items removed from the menu after the order was placed still resolve, so
// the lookup runs over the full set.
func itemNames(ctx context.Context, uow unitofwork.UnitOfWork, orders []*entity.Order) map[uuid.UUID]string {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(orders))
	seen := make(map[uuid.UUID]struct{}, len(orders))
	for _, order := range orders {
		if _, ok := seen[order.MenuItemId]; ok {
			continue
		}
		seen[order.MenuItemId] = struct{}{}
		ids = append(ids, order.MenuItemId)
	}

	items, err := uow.MenuRepository().FindItemsUnscoped(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil
	}
	names := make(map[uuid.UUID]string, len(items))
	for _, item := range items {
		names[item.Id] = item.Name
	}
	return names
}

func (s *orderService) GetById(ctx context.Context, principal authz.Principal, orderId uuid.UUID) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFound("order")
	}

	if principal.Id != order.CustomerId {
		est, err := uow.EstablishmentRepository().FindOne(ctx, specification.ByID{ID: order.EstablishmentId})
		if err != nil {
			return nil, err
		}
		if est == nil || principal.Id != est.OwnerId {
			// The order's existence stays hidden from strangers.
			return nil, apperr.NotFound("order")
		}
	}

	names := itemNames(ctx, uow, []*entity.Order{order})
	return toOrderResponse(order, names[order.MenuItemId]), nil
}

func (s *orderService) ListMine(ctx context.Context, principal authz.Principal, query *dto.OrderListQuery) ([]*dto.OrderResponse, error) {
	specs, ok := listSpecs(query)
	if !ok {
		return []*dto.OrderResponse{}, nil
	}
	specs = append(specs, specification.ByCustomer{CustomerID: principal.Id})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	orders, err := uow.OrderRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	names := itemNames(ctx, uow, orders)
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order, names[order.MenuItemId]))
	}
	return out, nil
}

func (s *orderService) ListForEstablishment(ctx context.Context, principal authz.Principal, establishmentId uuid.UUID, query *dto.OrderListQuery) ([]*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	est, err := uow.EstablishmentRepository().FindOneUnscoped(ctx, specification.ByID{ID: establishmentId})
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, apperr.NotFound("establishment")
	}
	admin := principal.Role == entity.UserRoleAdmin
	if principal.Id != est.OwnerId && !admin {
		return nil, apperr.Forbidden()
	}

	specs, ok := listSpecs(query)
	if !ok {
		return []*dto.OrderResponse{}, nil
	}
	specs = append(specs, specification.ByEstablishment{EstablishmentID: establishmentId})

	// Admins audit the full set, removed orders included.
	var orders []*entity.Order
	if admin {
		orders, err = uow.OrderRepository().FindAllUnscoped(ctx, specs...)
	} else {
		orders, err = uow.OrderRepository().FindAll(ctx, specs...)
	}
	if err != nil {
		return nil, err
	}

	names := itemNames(ctx, uow, orders)
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order, names[order.MenuItemId]))
	}
	return out, nil
}
