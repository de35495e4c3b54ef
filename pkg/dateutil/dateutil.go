package dateutil

import (
	"fmt"
	"slices"
	"time"
)

// DateLayout is the canonical date format used across the planner
const DateLayout = "2006-01-02"

// Date returns the given calendar day at midnight UTC
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns the calendar day of date at midnight UTC.
// All dates handed to the planner go through here so they can be used as map keys.
func StartOfDay(date time.Time) time.Time {
	return Date(date.Year(), date.Month(), date.Day())
}

// StartOfYear returns January 1 of the given year
func StartOfYear(year int) time.Time {
	return Date(year, time.January, 1)
}

// EndOfYear returns December 31 of the given year
func EndOfYear(year int) time.Time {
	return Date(year, time.December, 31)
}

// DaysBetween returns the number of calendar days from one day to another.
// Negative when to is before from.
func DaysBetween(from, to time.Time) int {
	return int(StartOfDay(to).Sub(StartOfDay(from)).Hours() / 24)
}

// Range returns every day from start to end inclusive
func Range(start, end time.Time) []time.Time {
	start, end = StartOfDay(start), StartOfDay(end)
	if end.Before(start) {
		return nil
	}

	days := make([]time.Time, 0, DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// SortDates sorts dates chronologically in place
func SortDates(dates []time.Time) {
	slices.SortFunc(dates, func(a, b time.Time) int {
		return a.Compare(b)
	})
}

// Unique returns the distinct calendar days of dates in chronological order
func Unique(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		d = StartOfDay(d)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	SortDates(out)
	return out
}

// FormatDate formats date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		DateLayout,
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return StartOfDay(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
