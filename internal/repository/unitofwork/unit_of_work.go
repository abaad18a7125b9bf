package unitofwork

import (
	"context"

	"sipspot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	EstablishmentRepository() contract.EstablishmentRepository
	MenuRepository() contract.MenuRepository
	OrderRepository() contract.OrderRepository
	FeedbackRepository() contract.FeedbackRepository
	SubscriptionRepository() contract.SubscriptionRepository
	ForumRepository() contract.ForumRepository
}
