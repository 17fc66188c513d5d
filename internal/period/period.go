// Package period classifies timestamped records into reporting periods.
//
// All calendar arithmetic happens in the location of the reference instant,
// so "this week" for a caller in Accra and one in Auckland can differ. Weeks
// start on Sunday.
package period

import (
	"strings"
	"time"

	apperrors "walletwise/internal/errors"
)

// Period is a reporting granularity.
type Period string

const (
	Week  Period = "week"
	Month Period = "month"
	Year  Period = "year"
)

// Parse validates a period tag. An empty string defaults to Month, matching
// what the dashboards show first.
func Parse(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case Week, Month, Year:
		return p, nil
	case "":
		return Month, nil
	default:
		return "", apperrors.WithMessage(apperrors.ErrInvalidPeriod, "Unsupported period: "+s)
	}
}

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	return p == Week || p == Month || p == Year
}

// Window is an inclusive time range.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window. The zero time is never
// inside any window.
func (w Window) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !t.Before(w.Start) && !t.After(w.End)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location()).Add(-time.Nanosecond)
}

// WeekOf returns Sunday 00:00 through Saturday 23:59:59.999999999 of the week
// containing ref.
func WeekOf(ref time.Time) Window {
	y, m, d := ref.Date()
	start := time.Date(y, m, d-int(ref.Weekday()), 0, 0, 0, 0, ref.Location())
	return Window{
		Start: start,
		End:   time.Date(y, m, d-int(ref.Weekday())+7, 0, 0, 0, 0, ref.Location()).Add(-time.Nanosecond),
	}
}

// MonthOf returns the calendar month containing ref.
func MonthOf(ref time.Time) Window {
	y, m, _ := ref.Date()
	return Window{
		Start: time.Date(y, m, 1, 0, 0, 0, 0, ref.Location()),
		End:   time.Date(y, m+1, 1, 0, 0, 0, 0, ref.Location()).Add(-time.Nanosecond),
	}
}

// YearOf returns the calendar year containing ref.
func YearOf(ref time.Time) Window {
	return Window{
		Start: time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location()),
		End:   time.Date(ref.Year()+1, time.January, 1, 0, 0, 0, 0, ref.Location()).Add(-time.Nanosecond),
	}
}

// Current returns the window of period p that contains ref. Month and year
// windows are exactly calendar-field equality with ref.
func Current(ref time.Time, p Period) Window {
	switch p {
	case Week:
		return WeekOf(ref)
	case Year:
		return YearOf(ref)
	default:
		return MonthOf(ref)
	}
}

// LastSevenDays covers the six days before ref plus all of ref's day.
func LastSevenDays(ref time.Time) Window {
	y, m, d := ref.Date()
	return Window{
		Start: time.Date(y, m, d-6, 0, 0, 0, 0, ref.Location()),
		End:   EndOfDay(ref),
	}
}

// LastSixMonths covers the first day of the month five months back through
// the last day of ref's month.
func LastSixMonths(ref time.Time) Window {
	y, m, _ := ref.Date()
	return Window{
		Start: time.Date(y, m-5, 1, 0, 0, 0, 0, ref.Location()),
		End:   time.Date(y, m+1, 1, 0, 0, 0, 0, ref.Location()).Add(-time.Nanosecond),
	}
}

// LastThreeYears covers January 1st three years before ref's year through the
// end of ref's day.
func LastThreeYears(ref time.Time) Window {
	return Window{
		Start: time.Date(ref.Year()-3, time.January, 1, 0, 0, 0, 0, ref.Location()),
		End:   EndOfDay(ref),
	}
}

// TrendWindow is the range a trend chart for period p looks back over.
func TrendWindow(ref time.Time, p Period) Window {
	switch p {
	case Week:
		return LastSevenDays(ref)
	case Year:
		return LastThreeYears(ref)
	default:
		return LastSixMonths(ref)
	}
}
