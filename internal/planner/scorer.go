package planner

import (
	"time"

	"github.com/username/leave-planner/pkg/dateutil"
)

// Candidate is a working day that could be taken as leave to bridge two clusters
type Candidate struct {
	Date        time.Time
	Score       int
	GapWorkdays int
}

// ScoreGaps scores every working day lying between adjacent clusters whose
// gap is small enough to bridge. Smaller gaps score higher, and candidates
// with many off-days close by on both sides earn bonuses.
func ScoreGaps(clusters []Cluster, holidays []time.Time, policy Policy) []Candidate {
	off := newDateSet(holidays)
	window := policy.BonusWindowDays

	var candidates []Candidate
	for i := 0; i+1 < len(clusters); i++ {
		prev, next := clusters[i], clusters[i+1]
		gap := dateutil.Range(prev.End().AddDate(0, 0, 1), next.Start().AddDate(0, 0, -1))

		workdays := 0
		for _, d := range gap {
			if !policy.IsWeekend(d) && !off.has(d) {
				workdays++
			}
		}
		if workdays > policy.MaxBridgeWorkdays {
			continue
		}

		for _, d := range gap {
			if policy.IsWeekend(d) || off.has(d) {
				continue
			}

			score := policy.BaseScore - workdays

			nearby := prev.countSince(d.AddDate(0, 0, -window)) + next.countUntil(d.AddDate(0, 0, window))
			if nearby >= policy.WeekBonusThreshold {
				score += policy.WeekBonus
			}
			if nearby >= policy.ExtendedBonusThreshold {
				score += policy.ExtendedBonus
			}

			candidates = append(candidates, Candidate{
				Date:        d,
				Score:       score,
				GapWorkdays: workdays,
			})
		}
	}

	return candidates
}
