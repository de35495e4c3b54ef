package report

import (
	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/internal/planner"
	"github.com/username/leave-planner/pkg/dateutil"
)

// LeaveEntry is one suggested leave day
type LeaveEntry struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Cost    int    `json:"cost"`
}

// PeriodEntry is one run of consecutive days off
type PeriodEntry struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// HolidayEntry is one named public holiday
type HolidayEntry struct {
	Name  string   `json:"name"`
	Dates []string `json:"dates"`
}

// PlanDocument is the serialized form of a plan
type PlanDocument struct {
	Year         int            `json:"year"`
	MaxLeaves    int            `json:"max_leaves"`
	FridayDouble bool           `json:"friday_double"`
	Holidays     []HolidayEntry `json:"holidays"`
	Leaves       []LeaveEntry   `json:"leaves"`
	Periods      []PeriodEntry  `json:"periods"`
	Summary      Summary        `json:"summary"`
}

// HolidayDocument is the serialized form of a holiday set
type HolidayDocument struct {
	Year     int            `json:"year"`
	Holidays []HolidayEntry `json:"holidays"`
}

// NewPlanDocument builds the serialized form of plan
func NewPlanDocument(plan *planner.Plan, policy planner.Policy, locale *Locale) PlanDocument {
	doc := PlanDocument{
		Year:         plan.Year,
		MaxLeaves:    plan.MaxLeaves,
		FridayDouble: plan.FridayDouble,
		Holidays:     []HolidayEntry{},
		Leaves:       make([]LeaveEntry, 0, len(plan.Leaves)),
		Periods:      make([]PeriodEntry, 0, len(plan.Periods)),
		Summary:      Summarize(plan, policy),
	}

	if plan.Holidays != nil {
		doc.Holidays = holidayEntries(plan.Holidays)
	}

	for _, d := range plan.Leaves {
		doc.Leaves = append(doc.Leaves, LeaveEntry{
			Date:    dateutil.FormatDate(d),
			Weekday: locale.Weekday(d.Weekday()),
			Cost:    planner.LeaveCost(d, plan.FridayDouble),
		})
	}

	for _, p := range plan.Periods {
		doc.Periods = append(doc.Periods, PeriodEntry{
			Start: dateutil.FormatDate(p.Start()),
			End:   dateutil.FormatDate(p.End()),
			Days:  p.Len(),
		})
	}

	return doc
}

// NewHolidayDocument builds the serialized form of set
func NewHolidayDocument(set *calendar.HolidaySet) HolidayDocument {
	return HolidayDocument{
		Year:     set.Year,
		Holidays: holidayEntries(set),
	}
}

func holidayEntries(set *calendar.HolidaySet) []HolidayEntry {
	holidays := set.Holidays()
	entries := make([]HolidayEntry, 0, len(holidays))
	for _, h := range holidays {
		dates := make([]string, len(h.Dates))
		for i, d := range h.Dates {
			dates[i] = dateutil.FormatDate(d)
		}
		entries = append(entries, HolidayEntry{Name: h.Name, Dates: dates})
	}
	return entries
}
