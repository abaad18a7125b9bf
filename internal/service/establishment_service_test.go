package service

import (
	"testing"

	"sipspot-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Thirsty Fox", "the-thirsty-fox"},
		{"Café & Bar  42", "caf-bar-42"},
		{"---already---", "already"},
		{"ALL CAPS", "all-caps"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in))
	}
}

func TestToHappyHourEntities(t *testing.T) {
	t.Run("valid windows", func(t *testing.T) {
		out, err := toHappyHourEntities([]dto.HappyHourWindowDTO{
			{Weekday: 1, StartTime: "17:00", EndTime: "19:00"},
			{Weekday: 5, StartTime: "16:00", EndTime: "20:00"},
		})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "17:00", out[0].StartTime)
	})

	t.Run("start after end rejected", func(t *testing.T) {
		_, err := toHappyHourEntities([]dto.HappyHourWindowDTO{
			{Weekday: 1, StartTime: "19:00", EndTime: "17:00"},
		})
		assert.Error(t, err)
	})

	t.Run("zero length window rejected", func(t *testing.T) {
		_, err := toHappyHourEntities([]dto.HappyHourWindowDTO{
			{Weekday: 1, StartTime: "17:00", EndTime: "17:00"},
		})
		assert.Error(t, err)
	})
}
