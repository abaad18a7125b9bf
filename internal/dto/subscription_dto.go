package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Plans ---

type PlanResponse struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	BillingPeriod string    `json:"billing_period"`
	TrialDays     int       `json:"trial_days"`
	IsActive      bool      `json:"is_active"`
}

type CreatePlanRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=80"`
	Description   string  `json:"description" validate:"max=1000"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	TaxRate       float64 `json:"tax_rate" validate:"min=0,max=1"`
	BillingPeriod string  `json:"billing_period" validate:"required,oneof=monthly yearly"`
	TrialDays     int     `json:"trial_days" validate:"min=0,max=90"`
	SortOrder     int     `json:"sort_order" validate:"min=0"`
}

type UpdatePlanRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=80"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	TaxRate     *float64 `json:"tax_rate,omitempty" validate:"omitempty,min=0,max=1"`
	TrialDays   *int     `json:"trial_days,omitempty" validate:"omitempty,min=0,max=90"`
	IsActive    *bool    `json:"is_active,omitempty"`
	SortOrder   *int     `json:"sort_order,omitempty" validate:"omitempty,min=0"`
}

// --- Checkout ---

type OrderSummaryResponse struct {
	PlanName      string  `json:"plan_name"`
	BillingPeriod string  `json:"billing_period"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
}

type CheckoutRequest struct {
	PlanId uuid.UUID `json:"plan_id" validate:"required"`
}

type CheckoutResponse struct {
	SubscriptionId  uuid.UUID `json:"subscription_id"`
	SnapRedirectUrl string    `json:"snap_redirect_url"`
	SnapToken       string    `json:"snap_token"`
}

type StartTrialRequest struct {
	PlanId uuid.UUID `json:"plan_id" validate:"required"`
}

type SubscriptionStatusResponse struct {
	SubscriptionId   uuid.UUID  `json:"subscription_id"`
	PlanName         string     `json:"plan_name"`
	Status           string     `json:"status"`
	PaymentStatus    string     `json:"payment_status"`
	TrialEndsAt      *time.Time `json:"trial_ends_at,omitempty"`
	CurrentPeriodEnd time.Time  `json:"current_period_end"`
	IsLive           bool       `json:"is_live"`
}

// --- Provider webhook ---

type MidtransWebhookRequest struct {
	TransactionStatus string `json:"transaction_status"`
	OrderId           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
	SignatureKey      string `json:"signature_key"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
}
