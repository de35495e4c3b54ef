package planner

import (
	"sort"
	"time"

	"github.com/username/leave-planner/pkg/dateutil"
)

// LeaveCost returns the budget units a leave day consumes.
// With fridayDouble a Friday costs two units.
func LeaveCost(date time.Time, fridayDouble bool) int {
	if fridayDouble && date.Weekday() == time.Friday {
		return 2
	}
	return 1
}

// BudgetUsed sums the cost of the given leave days
func BudgetUsed(leaves []time.Time, fridayDouble bool) int {
	total := 0
	for _, d := range leaves {
		total += LeaveCost(d, fridayDouble)
	}
	return total
}

// SelectLeaves greedily picks the best scored candidates within maxLeaves
// budget units. Ties on score go to the earlier date. A candidate whose
// cost exceeds the remaining budget is skipped for good and the walk goes
// on with the next one. The result is in chronological order.
func SelectLeaves(candidates []Candidate, maxLeaves int, fridayDouble bool) []time.Time {
	selected := []time.Time{}
	if maxLeaves <= 0 {
		return selected
	}

	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Date.Before(ranked[j].Date)
	})

	taken := make(dateSet)
	remaining := maxLeaves

	for _, c := range ranked {
		if remaining <= 0 {
			break
		}

		date := dateutil.StartOfDay(c.Date)
		if taken.has(date) {
			continue
		}

		cost := LeaveCost(date, fridayDouble)
		if cost > remaining {
			continue
		}

		taken[date] = struct{}{}
		selected = append(selected, date)
		remaining -= cost
	}

	dateutil.SortDates(selected)
	return selected
}
