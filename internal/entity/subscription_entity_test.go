package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPartnerSubscriptionIsLive(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name string
		sub  PartnerSubscription
		want bool
	}{
		{
			name: "active within period",
			sub:  PartnerSubscription{Status: SubscriptionStatusActive, CurrentPeriodEnd: future},
			want: true,
		},
		{
			name: "active but expired",
			sub:  PartnerSubscription{Status: SubscriptionStatusActive, CurrentPeriodEnd: past},
			want: false,
		},
		{
			name: "trialing before trial end",
			sub:  PartnerSubscription{Status: SubscriptionStatusTrialing, TrialEndsAt: &future},
			want: true,
		},
		{
			name: "trialing after trial end",
			sub:  PartnerSubscription{Status: SubscriptionStatusTrialing, TrialEndsAt: &past},
			want: false,
		},
		{
			name: "trialing without trial end",
			sub:  PartnerSubscription{Status: SubscriptionStatusTrialing},
			want: false,
		},
		{
			name: "inactive never live",
			sub:  PartnerSubscription{Status: SubscriptionStatusInactive, CurrentPeriodEnd: future},
			want: false,
		},
		{
			name: "canceled never live",
			sub:  PartnerSubscription{Status: SubscriptionStatusCanceled, CurrentPeriodEnd: future},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sub.IsLive(now))
		})
	}
}
