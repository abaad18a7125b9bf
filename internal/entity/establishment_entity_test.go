package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderingAllowedAt(t *testing.T) {
	// 2026-03-16 is a Monday.
	monday := func(hm string) time.Time {
		parsed, err := time.Parse("2006-01-02 15:04", "2026-03-16 "+hm)
		if err != nil {
			t.Fatalf("bad test time: %v", err)
		}
		return parsed
	}

	windows := []HappyHourWindow{
		{Weekday: time.Monday, StartTime: "17:00", EndTime: "19:00"},
		{Weekday: time.Friday, StartTime: "16:00", EndTime: "20:00"},
	}

	tests := []struct {
		name    string
		windows []HappyHourWindow
		at      time.Time
		want    bool
	}{
		{
			name:    "no windows means always open",
			windows: nil,
			at:      monday("03:00"),
			want:    true,
		},
		{
			name:    "inside window",
			windows: windows,
			at:      monday("18:00"),
			want:    true,
		},
		{
			name:    "start is inclusive",
			windows: windows,
			at:      monday("17:00"),
			want:    true,
		},
		{
			name:    "end is exclusive",
			windows: windows,
			at:      monday("19:00"),
			want:    false,
		},
		{
			name:    "before window",
			windows: windows,
			at:      monday("16:59"),
			want:    false,
		},
		{
			name:    "right weekday wrong for friday window",
			windows: windows,
			at:      monday("16:30"),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Establishment{HappyHours: tt.windows}
			assert.Equal(t, tt.want, e.OrderingAllowedAt(tt.at))
		})
	}
}
