package contract

import (
	"context"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	// Plans
	CreatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error
	UpdatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error
	FindOnePlan(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error)
	FindAllPlans(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionPlan, error)
	SetPlanActive(ctx context.Context, id uuid.UUID, active bool) error

	// Partner subscriptions
	CreateSubscription(ctx context.Context, sub *entity.PartnerSubscription) error
	UpdateSubscription(ctx context.Context, sub *entity.PartnerSubscription) error
	FindOneSubscription(ctx context.Context, specs ...specification.Specification) (*entity.PartnerSubscription, error)
	FindSubscriptions(ctx context.Context, specs ...specification.Specification) ([]*entity.PartnerSubscription, error)
}
