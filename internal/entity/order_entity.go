package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCanceled  OrderStatus = "canceled"
)

type Order struct {
	Id              uuid.UUID
	CustomerId      uuid.UUID
	EstablishmentId uuid.UUID
	MenuItemId      uuid.UUID
	Quantity        int
	UnitPrice       float64
	Total           float64
	Status          OrderStatus
	Note            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

func (o *Order) IsDeleted() bool {
	return o.DeletedAt != nil
}

// Transition moves the order to the target status. Only pending orders may
// move, and only to completed or canceled.
func (o *Order) Transition(target OrderStatus) error {
	if o.Status != OrderStatusPending {
		return fmt.Errorf("order is %s and cannot change status", o.Status)
	}
	if target != OrderStatusCompleted && target != OrderStatusCanceled {
		return fmt.Errorf("invalid target status %s", target)
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}
