package timewindow_test

import (
	"testing"
	"time"

	"sipspot-be/pkg/timewindow"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

func TestResolve_Today(t *testing.T) {
	r := timewindow.Resolve("today", now)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), r.End)
}

func TestResolve_Yesterday(t *testing.T) {
	r := timewindow.Resolve("yesterday", now)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), r.End)
}

func TestResolve_LastMonth(t *testing.T) {
	r := timewindow.Resolve("last_month", now)

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), r.End)
}

func TestResolve_LastSixMonths(t *testing.T) {
	r := timewindow.Resolve("last_6_months", now)

	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), r.End)
}

func TestResolve_LastYear(t *testing.T) {
	r := timewindow.Resolve("last_year", now)

	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), r.End)
}

func TestResolve_UnknownTokenMeansNoFilter(t *testing.T) {
	assert.True(t, timewindow.Resolve("fortnight", now).IsZero())
	assert.True(t, timewindow.Resolve("", now).IsZero())
}

func TestRange_ContainsHalfOpen(t *testing.T) {
	r := timewindow.Resolve("today", now)

	assert.True(t, r.Contains(r.Start))
	assert.True(t, r.Contains(r.End.Add(-time.Nanosecond)))
	assert.False(t, r.Contains(r.End))
}

func TestResolveDate(t *testing.T) {
	r, ok := timewindow.ResolveDate("2026-03-14", time.UTC)

	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), r.End)
}

func TestResolveDate_Malformed(t *testing.T) {
	_, ok := timewindow.ResolveDate("14-03-2026", time.UTC)
	assert.False(t, ok)

	_, ok = timewindow.ResolveDate("2026-13-40", time.UTC)
	assert.False(t, ok)
}
