package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/internal/planner"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	headerColor  = color.New(color.Bold)
	leaveColor   = color.New(color.FgGreen)
	fridayColor  = color.New(color.FgYellow)
	holidayColor = color.New(color.FgMagenta)
	totalColor   = color.New(color.FgCyan)
)

// TextRenderer prints plans and holiday lists for a terminal
type TextRenderer struct {
	w      io.Writer
	locale *Locale
}

// NewTextRenderer creates a renderer writing to w.
// Colors follow color.NoColor.
func NewTextRenderer(w io.Writer, locale *Locale) *TextRenderer {
	return &TextRenderer{w: w, locale: locale}
}

// RenderPlan prints the suggested leaves, the periods they form and the totals
func (r *TextRenderer) RenderPlan(plan *planner.Plan, summary Summary) {
	msg := r.locale.Messages

	titleColor.Fprintln(r.w, r.locale.Upper(fmt.Sprintf(msg.Title, plan.Year)))
	fmt.Fprintln(r.w)

	headerColor.Fprintf(r.w, msg.LeavesHeader+"\n", plan.Year, plan.MaxLeaves, plan.BudgetUsed)
	if len(plan.Leaves) == 0 {
		fmt.Fprintf(r.w, "  %s\n", msg.NoLeaves)
	}
	for _, d := range plan.Leaves {
		if planner.LeaveCost(d, plan.FridayDouble) > 1 {
			fridayColor.Fprintf(r.w, "- %s (%s)\n", r.locale.LongDate(d), msg.FridayMark)
			continue
		}
		leaveColor.Fprintf(r.w, "- %s\n", r.locale.LongDate(d))
	}

	fmt.Fprintln(r.w)
	headerColor.Fprintln(r.w, msg.PeriodsHeader)
	if len(plan.Periods) == 0 {
		fmt.Fprintf(r.w, "  %s\n", msg.NoPeriods)
	}
	for _, p := range plan.Periods {
		fmt.Fprintf(r.w, "- "+msg.PeriodLine+"\n", r.locale.ShortDate(p.Start()), r.locale.ShortDate(p.End()), p.Len())
	}

	fmt.Fprintln(r.w)
	totalColor.Fprintf(r.w, msg.TotalConsecutive+"\n", summary.ConsecutiveDays)
	totalColor.Fprintf(r.w, msg.TotalOff+"\n", summary.Year, summary.TotalOffDays)
	totalColor.Fprintf(r.w, msg.RestPerUnit+"\n", summary.RestPerUnit.StringFixed(2))
}

// RenderHolidays prints the holidays of set in date order
func (r *TextRenderer) RenderHolidays(set *calendar.HolidaySet) {
	msg := r.locale.Messages

	titleColor.Fprintln(r.w, r.locale.Title(fmt.Sprintf(msg.HolidaysHeader, set.Year)))
	for _, h := range set.Holidays() {
		fmt.Fprint(r.w, "- ")
		holidayColor.Fprintf(r.w, msg.HolidayLine+"\n", h.Name, r.locale.LongDate(h.Start()), len(h.Dates))
	}
}

