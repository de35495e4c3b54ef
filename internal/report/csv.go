package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/internal/planner"
	"github.com/username/leave-planner/pkg/dateutil"
)

// DayRow is one line of the CSV export
type DayRow struct {
	Date    string `csv:"date"`
	Weekday string `csv:"weekday"`
	Type    string `csv:"type"`
	Name    string `csv:"name,omitempty"`
	Cost    int    `csv:"cost,omitempty"`
}

// PlanRows lists every day off the plan touches: holidays, leaves and
// the days of each consecutive period, in date order
func PlanRows(plan *planner.Plan, policy planner.Policy, locale *Locale) []DayRow {
	leaves := make(map[time.Time]bool, len(plan.Leaves))
	days := append([]time.Time{}, plan.Leaves...)
	for _, d := range plan.Leaves {
		leaves[d] = true
	}
	if plan.Holidays != nil {
		days = append(days, plan.Holidays.Dates()...)
	}
	for _, p := range plan.Periods {
		days = append(days, p.Days...)
	}

	rows := []DayRow{}
	for _, d := range dateutil.Unique(days) {
		row := DayRow{
			Date:    dateutil.FormatDate(d),
			Weekday: locale.Weekday(d.Weekday()),
		}

		switch {
		case plan.Holidays != nil && plan.Holidays.Contains(d):
			row.Type = calendar.DayTypeHoliday.String()
			row.Name = plan.Holidays.NameOf(d)
		case leaves[d]:
			row.Type = calendar.DayTypeLeave.String()
			row.Cost = planner.LeaveCost(d, plan.FridayDouble)
		case policy.IsWeekend(d):
			row.Type = calendar.DayTypeWeekend.String()
		default:
			row.Type = calendar.DayTypeWorkday.String()
		}

		rows = append(rows, row)
	}
	return rows
}

// HolidayRows lists every holiday date of set
func HolidayRows(set *calendar.HolidaySet, locale *Locale) []DayRow {
	rows := []DayRow{}
	for _, h := range set.Holidays() {
		for _, d := range h.Dates {
			rows = append(rows, DayRow{
				Date:    dateutil.FormatDate(d),
				Weekday: locale.Weekday(d.Weekday()),
				Type:    calendar.DayTypeHoliday.String(),
				Name:    h.Name,
			})
		}
	}
	return rows
}

// WriteCSV writes rows with a header line
func WriteCSV(w io.Writer, rows []DayRow) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if err := enc.EncodeHeader(DayRow{}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("failed to write csv row %s: %w", row.Date, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
