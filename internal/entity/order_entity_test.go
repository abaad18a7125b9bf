package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		wantErr bool
	}{
		{name: "pending to completed", from: OrderStatusPending, to: OrderStatusCompleted},
		{name: "pending to canceled", from: OrderStatusPending, to: OrderStatusCanceled},
		{name: "pending to pending rejected", from: OrderStatusPending, to: OrderStatusPending, wantErr: true},
		{name: "completed is terminal", from: OrderStatusCompleted, to: OrderStatusCanceled, wantErr: true},
		{name: "canceled is terminal", from: OrderStatusCanceled, to: OrderStatusCompleted, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{Status: tt.from}
			err := o.Transition(tt.to)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.from, o.Status)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.to, o.Status)
		})
	}
}
