package service

import (
	"testing"

	"sipspot-be/internal/dto"
	"sipspot-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSpecs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		specs, ok := listSpecs(&dto.OrderListQuery{})
		require.True(t, ok)

		var pg specification.Pagination
		found := false
		for _, s := range specs {
			if p, isPg := s.(specification.Pagination); isPg {
				pg = p
				found = true
			}
		}
		require.True(t, found)
		assert.Equal(t, 20, pg.Limit)
		assert.Equal(t, 0, pg.Offset)
	})

	t.Run("limit is capped", func(t *testing.T) {
		specs, ok := listSpecs(&dto.OrderListQuery{Limit: 5000})
		require.True(t, ok)

		for _, s := range specs {
			if p, isPg := s.(specification.Pagination); isPg {
				assert.Equal(t, 20, p.Limit)
			}
		}
	})

	t.Run("status filter included", func(t *testing.T) {
		specs, ok := listSpecs(&dto.OrderListQuery{Status: "pending"})
		require.True(t, ok)

		found := false
		for _, s := range specs {
			if st, isStatus := s.(specification.ByStatus); isStatus {
				assert.Equal(t, "pending", st.Status)
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("valid date narrows range", func(t *testing.T) {
		specs, ok := listSpecs(&dto.OrderListQuery{Date: "2026-03-15"})
		require.True(t, ok)

		found := false
		for _, s := range specs {
			if cb, isRange := s.(specification.CreatedBetween); isRange {
				assert.Equal(t, 15, cb.Start.Day())
				assert.Equal(t, 24.0, cb.End.Sub(cb.Start).Hours())
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("malformed date yields no result set", func(t *testing.T) {
		_, ok := listSpecs(&dto.OrderListQuery{Date: "not-a-date"})
		assert.False(t, ok)
	})

	t.Run("unknown period token passes through unfiltered", func(t *testing.T) {
		specs, ok := listSpecs(&dto.OrderListQuery{Period: "fortnight"})
		require.True(t, ok)

		for _, s := range specs {
			_, isRange := s.(specification.CreatedBetween)
			assert.False(t, isRange)
		}
	})

	t.Run("known period token narrows range", func(t *testing.T) {
		specs, ok := listSpecs(&dto.OrderListQuery{Period: "today"})
		require.True(t, ok)

		found := false
		for _, s := range specs {
			if _, isRange := s.(specification.CreatedBetween); isRange {
				found = true
			}
		}
		assert.True(t, found)
	})
}
