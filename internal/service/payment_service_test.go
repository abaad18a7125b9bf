package service

import (
	"testing"
	"time"

	"sipspot-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestPeriodEndFor(t *testing.T) {
	start := time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC)

	monthly := &entity.SubscriptionPlan{BillingPeriod: entity.BillingPeriodMonthly}
	yearly := &entity.SubscriptionPlan{BillingPeriod: entity.BillingPeriodYearly}

	assert.Equal(t, start.AddDate(0, 1, 0), periodEndFor(monthly, start))
	assert.Equal(t, start.AddDate(1, 0, 0), periodEndFor(yearly, start))
}
