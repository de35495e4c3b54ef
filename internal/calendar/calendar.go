package calendar

import (
	"context"
	"errors"
	"time"

	"github.com/username/leave-planner/pkg/dateutil"
)

// ErrYearNotCovered is returned by sources that have no data for the requested year
var ErrYearNotCovered = errors.New("year not covered by calendar")

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeLeave
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// Holiday is a named public holiday spanning one or more consecutive days
type Holiday struct {
	Name  string
	Dates []time.Time
}

// Start returns the first day of the holiday
func (h Holiday) Start() time.Time {
	return h.Dates[0]
}

// HolidaySet holds the public holidays of one civil year, keyed by name.
// Dates are normalized to midnight UTC.
type HolidaySet struct {
	Year     int
	holidays []Holiday
	index    map[string]int
}

// NewHolidaySet creates an empty set for the given year
func NewHolidaySet(year int) *HolidaySet {
	return &HolidaySet{
		Year:  year,
		index: make(map[string]int),
	}
}

// Add registers dates under the holiday name, merging with dates already known for it
func (s *HolidaySet) Add(name string, dates ...time.Time) {
	if len(dates) == 0 {
		return
	}

	i, ok := s.index[name]
	if !ok {
		s.index[name] = len(s.holidays)
		s.holidays = append(s.holidays, Holiday{Name: name, Dates: dateutil.Unique(dates)})
		return
	}

	merged := append(append([]time.Time{}, s.holidays[i].Dates...), dates...)
	s.holidays[i].Dates = dateutil.Unique(merged)
}

// Remove drops the date from every holiday; holidays left without dates disappear
func (s *HolidaySet) Remove(date time.Time) {
	date = dateutil.StartOfDay(date)

	kept := s.holidays[:0]
	for _, h := range s.holidays {
		dates := h.Dates[:0]
		for _, d := range h.Dates {
			if !d.Equal(date) {
				dates = append(dates, d)
			}
		}
		if len(dates) > 0 {
			h.Dates = dates
			kept = append(kept, h)
		}
	}
	s.holidays = kept

	s.index = make(map[string]int, len(s.holidays))
	for i, h := range s.holidays {
		s.index[h.Name] = i
	}
}

// Holidays returns the holidays ordered by their first day
func (s *HolidaySet) Holidays() []Holiday {
	out := make([]Holiday, len(s.holidays))
	for i, h := range s.holidays {
		out[i] = Holiday{Name: h.Name, Dates: append([]time.Time{}, h.Dates...)}
	}

	// insertion sort keeps equal starts in registration order
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Start().Before(out[j-1].Start()); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Groups returns the dates of each holiday, one group per holiday
func (s *HolidaySet) Groups() [][]time.Time {
	holidays := s.Holidays()
	groups := make([][]time.Time, len(holidays))
	for i, h := range holidays {
		groups[i] = h.Dates
	}
	return groups
}

// Dates returns every holiday date, unique and in chronological order
func (s *HolidaySet) Dates() []time.Time {
	var all []time.Time
	for _, h := range s.holidays {
		all = append(all, h.Dates...)
	}
	return dateutil.Unique(all)
}

// Contains reports whether date is a holiday
func (s *HolidaySet) Contains(date time.Time) bool {
	date = dateutil.StartOfDay(date)
	for _, h := range s.holidays {
		for _, d := range h.Dates {
			if d.Equal(date) {
				return true
			}
		}
	}
	return false
}

// NameOf returns the name of the holiday covering date, or "" if none does
func (s *HolidaySet) NameOf(date time.Time) string {
	date = dateutil.StartOfDay(date)
	for _, h := range s.holidays {
		for _, d := range h.Dates {
			if d.Equal(date) {
				return h.Name
			}
		}
	}
	return ""
}

// Len returns the number of named holidays
func (s *HolidaySet) Len() int {
	return len(s.holidays)
}

// Source provides the public holidays of a civil year
type Source interface {
	Holidays(ctx context.Context, year int) (*HolidaySet, error)
}
