package planner

import (
	"errors"
	"slices"
	"time"
)

// Policy holds the tunable constants of the leave heuristic
type Policy struct {
	// ScanPaddingDays extends the clustering window before the first and after the last holiday
	ScanPaddingDays int

	// MaxBridgeWorkdays is the largest working-day gap worth bridging
	MaxBridgeWorkdays int

	// BaseScore minus the gap's working days is the starting score of a candidate
	BaseScore int

	// BonusWindowDays bounds how far around a candidate neighbouring cluster days are counted.
	// Reaching WeekBonusThreshold such days adds WeekBonus, reaching
	// ExtendedBonusThreshold adds ExtendedBonus on top.
	BonusWindowDays        int
	WeekBonusThreshold     int
	WeekBonus              int
	ExtendedBonusThreshold int
	ExtendedBonus          int

	// PeriodPaddingDays extends the weekend fill-in window of the aggregator
	PeriodPaddingDays int

	// MinPeriodDays is the shortest run reported as a consecutive period
	MinPeriodDays int

	Weekend []time.Weekday
}

// DefaultPolicy returns the stock heuristic constants
func DefaultPolicy() Policy {
	return Policy{
		ScanPaddingDays:        10,
		MaxBridgeWorkdays:      7,
		BaseScore:              15,
		BonusWindowDays:        7,
		WeekBonusThreshold:     7,
		WeekBonus:              5,
		ExtendedBonusThreshold: 10,
		ExtendedBonus:          5,
		PeriodPaddingDays:      7,
		MinPeriodDays:          3,
		Weekend:                []time.Weekday{time.Saturday, time.Sunday},
	}
}

// Validate checks the policy for values the heuristic cannot work with
func (p Policy) Validate() error {
	switch {
	case p.ScanPaddingDays < 0:
		return errors.New("scan padding must not be negative")
	case p.MaxBridgeWorkdays < 1:
		return errors.New("max bridge workdays must be positive")
	case p.BonusWindowDays < 0:
		return errors.New("bonus window must not be negative")
	case p.PeriodPaddingDays < 0:
		return errors.New("period padding must not be negative")
	case p.MinPeriodDays < 1:
		return errors.New("min period days must be positive")
	case weekdayCount(p.Weekend) >= 7:
		return errors.New("weekend must leave at least one working day")
	}
	return nil
}

// IsWeekend reports whether date falls on one of the policy's weekend days
func (p Policy) IsWeekend(date time.Time) bool {
	return slices.Contains(p.Weekend, date.Weekday())
}

// weekdayCount returns the number of distinct weekdays in days
func weekdayCount(days []time.Weekday) int {
	var seen [7]bool
	n := 0
	for _, d := range days {
		if d >= time.Sunday && d <= time.Saturday && !seen[d] {
			seen[d] = true
			n++
		}
	}
	return n
}
