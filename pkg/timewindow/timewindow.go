// Package timewindow translates symbolic period tokens and explicit dates
// into half-open UTC time ranges for created-at filtering.
package timewindow

import "time"

const dateLayout = "2006-01-02"

// Range is a half-open interval [Start, End). A zero Range means no
// constraint.
type Range struct {
	Start time.Time
	End   time.Time
}

func (r Range) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains reports whether t falls inside the range, start inclusive and
// end exclusive.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Resolve maps a period token to a range relative to now. Unrecognized
// tokens and the empty token resolve to the zero Range, which callers treat
// as "no filter". All boundaries are computed in now's location.
func Resolve(token string, now time.Time) Range {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	monthStart := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	}
	yearStart := func(t time.Time) time.Time {
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	}

	switch token {
	case "today":
		start := day(now)
		return Range{Start: start, End: start.AddDate(0, 0, 1)}
	case "yesterday":
		start := day(now).AddDate(0, 0, -1)
		return Range{Start: start, End: start.AddDate(0, 0, 1)}
	case "this_month":
		start := monthStart(now)
		return Range{Start: start, End: start.AddDate(0, 1, 0)}
	case "last_month":
		end := monthStart(now)
		return Range{Start: end.AddDate(0, -1, 0), End: end}
	case "last_6_months":
		end := monthStart(now).AddDate(0, 1, 0)
		return Range{Start: end.AddDate(0, -6, 0), End: end}
	case "this_year":
		start := yearStart(now)
		return Range{Start: start, End: start.AddDate(1, 0, 0)}
	case "last_year":
		end := yearStart(now)
		return Range{Start: end.AddDate(-1, 0, 0), End: end}
	}
	return Range{}
}

// ResolveDate parses an explicit YYYY-MM-DD date into the whole-day range it
// covers. A malformed date returns ok=false; callers must then produce an
// empty result set rather than fall back to an unfiltered one.
func ResolveDate(value string, loc *time.Location) (Range, bool) {
	t, err := time.ParseInLocation(dateLayout, value, loc)
	if err != nil {
		return Range{}, false
	}
	return Range{Start: t, End: t.AddDate(0, 0, 1)}, true
}
