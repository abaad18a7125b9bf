package mapper

import (
	"sipspot-be/internal/entity"
	"sipspot-be/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) PlanToEntity(p *model.SubscriptionPlan) *entity.SubscriptionPlan {
	if p == nil {
		return nil
	}
	return &entity.SubscriptionPlan{
		Id:            p.Id,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		TaxRate:       p.TaxRate,
		BillingPeriod: entity.BillingPeriod(p.BillingPeriod),
		TrialDays:     p.TrialDays,
		IsActive:      p.IsActive,
		SortOrder:     p.SortOrder,
	}
}

func (m *SubscriptionMapper) PlanToModel(p *entity.SubscriptionPlan) *model.SubscriptionPlan {
	return &model.SubscriptionPlan{
		Id:            p.Id,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		TaxRate:       p.TaxRate,
		BillingPeriod: string(p.BillingPeriod),
		TrialDays:     p.TrialDays,
		IsActive:      p.IsActive,
		SortOrder:     p.SortOrder,
	}
}

func (m *SubscriptionMapper) PlansToEntities(list []*model.SubscriptionPlan) []*entity.SubscriptionPlan {
	out := make([]*entity.SubscriptionPlan, 0, len(list))
	for _, p := range list {
		out = append(out, m.PlanToEntity(p))
	}
	return out
}

func (m *SubscriptionMapper) SubscriptionToEntity(s *model.PartnerSubscription) *entity.PartnerSubscription {
	if s == nil {
		return nil
	}
	return &entity.PartnerSubscription{
		Id:                    s.Id,
		UserId:                s.UserId,
		PlanId:                s.PlanId,
		Status:                entity.SubscriptionStatus(s.Status),
		PaymentStatus:         entity.PaymentStatus(s.PaymentStatus),
		TrialEndsAt:           s.TrialEndsAt,
		CurrentPeriodStart:    s.CurrentPeriodStart,
		CurrentPeriodEnd:      s.CurrentPeriodEnd,
		MidtransTransactionId: s.MidtransTransactionId,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) SubscriptionToModel(s *entity.PartnerSubscription) *model.PartnerSubscription {
	return &model.PartnerSubscription{
		Id:                    s.Id,
		UserId:                s.UserId,
		PlanId:                s.PlanId,
		Status:                string(s.Status),
		PaymentStatus:         string(s.PaymentStatus),
		TrialEndsAt:           s.TrialEndsAt,
		CurrentPeriodStart:    s.CurrentPeriodStart,
		CurrentPeriodEnd:      s.CurrentPeriodEnd,
		MidtransTransactionId: s.MidtransTransactionId,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) SubscriptionsToEntities(list []*model.PartnerSubscription) []*entity.PartnerSubscription {
	out := make([]*entity.PartnerSubscription, 0, len(list))
	for _, s := range list {
		out = append(out, m.SubscriptionToEntity(s))
	}
	return out
}
