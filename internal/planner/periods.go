package planner

import (
	"time"

	"github.com/username/leave-planner/pkg/dateutil"
)

// Period is a run of consecutive off-days
type Period struct {
	Days []time.Time
}

// Start returns the first day of the period
func (p Period) Start() time.Time { return p.Days[0] }

// End returns the last day of the period
func (p Period) End() time.Time { return p.Days[len(p.Days)-1] }

// Len returns the number of days in the period
func (p Period) Len() int { return len(p.Days) }

// CalculateConsecutivePeriods merges holidays, leaves and the weekends
// around them into runs of consecutive days, keeping runs of at least
// policy.MinPeriodDays days.
func CalculateConsecutivePeriods(leaves, holidays []time.Time, policy Policy) []Period {
	combined := dateutil.Unique(append(append([]time.Time{}, leaves...), holidays...))
	if len(combined) == 0 {
		return nil
	}

	start := combined[0].AddDate(0, 0, -policy.PeriodPaddingDays)
	end := combined[len(combined)-1].AddDate(0, 0, policy.PeriodPaddingDays)
	for _, d := range dateutil.Range(start, end) {
		if policy.IsWeekend(d) {
			combined = append(combined, d)
		}
	}
	combined = dateutil.Unique(combined)

	var periods []Period
	var current []time.Time

	flush := func() {
		if len(current) >= policy.MinPeriodDays {
			periods = append(periods, Period{Days: current})
		}
	}

	for _, d := range combined {
		if len(current) > 0 && dateutil.DaysBetween(current[len(current)-1], d) != 1 {
			flush()
			current = nil
		}
		current = append(current, d)
	}
	flush()

	return periods
}

// TotalDays sums the length of the periods
func TotalDays(periods []Period) int {
	total := 0
	for _, p := range periods {
		total += p.Len()
	}
	return total
}
