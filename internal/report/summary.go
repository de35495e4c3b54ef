package report

import (
	"github.com/shopspring/decimal"
	"github.com/username/leave-planner/internal/planner"
	"github.com/username/leave-planner/pkg/dateutil"
)

// Summary aggregates the figures printed under a plan
type Summary struct {
	Year            int             `json:"year"`
	Budget          int             `json:"budget"`
	BudgetUsed      int             `json:"budget_used"`
	LeaveCount      int             `json:"leave_count"`
	HolidayDays     int             `json:"holiday_days"`
	WeekendDays     int             `json:"weekend_days"`
	TotalOffDays    int             `json:"total_off_days"`
	PeriodCount     int             `json:"period_count"`
	ConsecutiveDays int             `json:"consecutive_days"`
	LongestPeriod   int             `json:"longest_period"`
	RestPerUnit     decimal.Decimal `json:"rest_days_per_unit"`
}

// Summarize computes the summary of a plan. Day counts other than the
// period figures only include days inside the plan's year: TotalOffDays
// leaves out suggested leaves that fall in a neighbouring year (such as
// 30-31 December bridging into New Year), while the periods containing them
// are counted whole.
func Summarize(plan *planner.Plan, policy planner.Policy) Summary {
	s := Summary{
		Year:       plan.Year,
		Budget:     plan.MaxLeaves,
		BudgetUsed: plan.BudgetUsed,
		LeaveCount: len(plan.Leaves),
	}

	holidays := make(map[int64]bool)
	if plan.Holidays != nil {
		for _, d := range plan.Holidays.Dates() {
			holidays[d.Unix()] = true
		}
	}
	leaves := make(map[int64]bool, len(plan.Leaves))
	for _, d := range plan.Leaves {
		leaves[d.Unix()] = true
	}

	for _, d := range dateutil.Range(dateutil.StartOfYear(plan.Year), dateutil.EndOfYear(plan.Year)) {
		weekend := policy.IsWeekend(d)
		holiday := holidays[d.Unix()]
		if weekend {
			s.WeekendDays++
		}
		if holiday {
			s.HolidayDays++
		}
		if weekend || holiday || leaves[d.Unix()] {
			s.TotalOffDays++
		}
	}

	s.PeriodCount = len(plan.Periods)
	for _, p := range plan.Periods {
		s.ConsecutiveDays += p.Len()
		if p.Len() > s.LongestPeriod {
			s.LongestPeriod = p.Len()
		}
	}

	s.RestPerUnit = RestPerUnit(s.ConsecutiveDays, s.BudgetUsed)
	return s
}

// RestPerUnit returns consecutive days off per budget unit spent,
// rounded to two places. Zero units give zero.
func RestPerUnit(days, units int) decimal.Decimal {
	if units <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(days)).DivRound(decimal.NewFromInt(int64(units)), 2)
}
