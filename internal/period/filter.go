package period

import (
	"strconv"
	"strings"
	"time"

	apperrors "walletwise/internal/errors"
)

// Dated is implemented by records that carry the instant they apply to.
type Dated interface {
	OccurredAt() time.Time
}

// Filter returns the records inside w, in their original order. The input
// slice is never modified.
func Filter[T Dated](records []T, w Window) []T {
	return FilterFunc(records, func(r T) bool { return w.Contains(r.OccurredAt()) })
}

// FilterFunc returns the records for which keep reports true, in their
// original order.
func FilterFunc[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Slot is one labelled step of a trend window.
type Slot struct {
	Label string
	Window
}

// Slots splits a trend window into chart steps: days for Week, months for
// Month and years for Year. Steps are returned oldest first and clipped to w.
func Slots(w Window, p Period) []Slot {
	var slots []Slot
	loc := w.Start.Location()
	for cur := w.Start; !cur.After(w.End); {
		var next time.Time
		y, m, d := cur.Date()
		switch p {
		case Week:
			next = time.Date(y, m, d+1, 0, 0, 0, 0, loc)
		case Year:
			next = time.Date(y+1, time.January, 1, 0, 0, 0, 0, loc)
		default:
			next = time.Date(y, m+1, 1, 0, 0, 0, 0, loc)
		}
		end := next.Add(-time.Nanosecond)
		if end.After(w.End) {
			end = w.End
		}
		slots = append(slots, Slot{Label: Label(cur, p), Window: Window{Start: cur, End: end}})
		cur = next
	}
	return slots
}

// Label returns the chart key for t: a weekday abbreviation ("Mon") for
// Week, a month abbreviation ("Jan") for Month and the year ("2025") for Year.
func Label(t time.Time, p Period) string {
	switch p {
	case Week:
		return t.Weekday().String()[:3]
	case Month:
		return t.Month().String()[:3]
	default:
		return strconv.Itoa(t.Year())
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate accepts RFC 3339 timestamps and plain calendar dates
// ("2025-03-14"). Dates without a zone are read in loc. Anything else is a
// validation error, so malformed dates never reach the aggregation code.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidDate, "Malformed date: "+s)
}
