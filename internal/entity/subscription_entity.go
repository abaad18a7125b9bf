package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string
type PaymentStatus string
type BillingPeriod string

const (
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"

	BillingPeriodMonthly BillingPeriod = "monthly"
	BillingPeriodYearly  BillingPeriod = "yearly"
)

// SubscriptionPlan is what a partner subscribes to in order to list their
// establishment on the platform.
type SubscriptionPlan struct {
	Id            uuid.UUID
	Name          string
	Slug          string
	Description   string
	Price         float64
	TaxRate       float64
	BillingPeriod BillingPeriod
	TrialDays     int
	IsActive      bool
	SortOrder     int
}

type PartnerSubscription struct {
	Id                    uuid.UUID
	UserId                uuid.UUID
	PlanId                uuid.UUID
	Status                SubscriptionStatus
	PaymentStatus         PaymentStatus
	TrialEndsAt           *time.Time
	CurrentPeriodStart    time.Time
	CurrentPeriodEnd      time.Time
	MidtransTransactionId *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsLive reports whether the subscription currently grants access.
func (s *PartnerSubscription) IsLive(now time.Time) bool {
	switch s.Status {
	case SubscriptionStatusActive:
		return now.Before(s.CurrentPeriodEnd)
	case SubscriptionStatusTrialing:
		return s.TrialEndsAt != nil && now.Before(*s.TrialEndsAt)
	default:
		return false
	}
}
