package planner

import (
	"errors"
	"time"

	"github.com/username/leave-planner/pkg/dateutil"
)

// ErrNoHolidays is returned when the planner is given an empty holiday set
var ErrNoHolidays = errors.New("no holidays supplied")

// Cluster is a maximal run of consecutive off-days
type Cluster struct {
	Days []time.Time
}

// Start returns the first day of the cluster
func (c Cluster) Start() time.Time { return c.Days[0] }

// End returns the last day of the cluster
func (c Cluster) End() time.Time { return c.Days[len(c.Days)-1] }

// Len returns the number of days in the cluster
func (c Cluster) Len() int { return len(c.Days) }

// countSince counts the cluster days on or after from
func (c Cluster) countSince(from time.Time) int {
	n := 0
	for _, d := range c.Days {
		if !d.Before(from) {
			n++
		}
	}
	return n
}

// countUntil counts the cluster days on or before until
func (c Cluster) countUntil(until time.Time) int {
	n := 0
	for _, d := range c.Days {
		if !d.After(until) {
			n++
		}
	}
	return n
}

type dateSet map[time.Time]struct{}

func newDateSet(dates ...[]time.Time) dateSet {
	set := make(dateSet)
	for _, group := range dates {
		for _, d := range group {
			set[dateutil.StartOfDay(d)] = struct{}{}
		}
	}
	return set
}

func (s dateSet) has(d time.Time) bool {
	_, ok := s[d]
	return ok
}

// BuildClusters merges holidays and weekend days into maximal runs of
// consecutive off-days. The scan covers the holidays padded by
// policy.ScanPaddingDays on both sides; clusters come back in date order.
func BuildClusters(holidays []time.Time, policy Policy) ([]Cluster, error) {
	dates := dateutil.Unique(holidays)
	if len(dates) == 0 {
		return nil, ErrNoHolidays
	}

	off := newDateSet(dates)
	start := dates[0].AddDate(0, 0, -policy.ScanPaddingDays)
	end := dates[len(dates)-1].AddDate(0, 0, policy.ScanPaddingDays)

	var clusters []Cluster
	var current []time.Time

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if off.has(d) || policy.IsWeekend(d) {
			current = append(current, d)
		} else if len(current) > 0 {
			clusters = append(clusters, Cluster{Days: current})
			current = nil
		}
	}

	if len(current) > 0 {
		clusters = append(clusters, Cluster{Days: current})
	}

	return clusters, nil
}
