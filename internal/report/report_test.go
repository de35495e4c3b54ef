package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/internal/planner"
	"github.com/username/leave-planner/pkg/dateutil"
	"go.uber.org/zap"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func turkey2025() *calendar.HolidaySet {
	d := dateutil.Date
	set := calendar.NewHolidaySet(2025)
	set.Add("Yılbaşı", d(2025, 1, 1))
	set.Add("Ramazan Bayramı", d(2025, 3, 30), d(2025, 3, 31), d(2025, 4, 1))
	set.Add("Ulusal Egemenlik ve Çocuk Bayramı", d(2025, 4, 23))
	set.Add("İşçi Bayramı", d(2025, 5, 1))
	set.Add("Gençlik ve Spor Bayramı", d(2025, 5, 19))
	set.Add("Kurban Bayramı", d(2025, 6, 6), d(2025, 6, 7), d(2025, 6, 8), d(2025, 6, 9))
	set.Add("Demokrasi ve Milli Birlik Günü", d(2025, 7, 15))
	set.Add("Zafer Bayramı", d(2025, 8, 30))
	set.Add("Cumhuriyet Bayramı", d(2025, 10, 29))
	return set
}

func mayDay() *calendar.HolidaySet {
	set := calendar.NewHolidaySet(2025)
	set.Add("İşçi Bayramı", dateutil.Date(2025, 5, 1))
	return set
}

func makePlan(t *testing.T, set *calendar.HolidaySet, maxLeaves int, fridayDouble bool) *planner.Plan {
	t.Helper()
	p := planner.NewPlanner(nil, planner.DefaultPolicy(), zap.NewNop())
	plan, err := p.PlanWithHolidays(set, planner.Request{Year: set.Year, MaxLeaves: maxLeaves, FridayDouble: fridayDouble})
	require.NoError(t, err)
	return plan
}

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

// =============================================================================
// LOCALE
// =============================================================================

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input   string
		month   string
		weekday string
		wantErr bool
	}{
		{input: "tr", month: "Ağustos", weekday: "Perşembe"},
		{input: "tr-TR", month: "Ağustos", weekday: "Perşembe"},
		{input: "en", month: "August", weekday: "Thursday"},
		{input: "en-GB", month: "August", weekday: "Thursday"},
		{input: "de", wantErr: true},
		{input: "not a tag", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l, err := ParseLocale(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.month, l.Month(time.August))
			assert.Equal(t, tt.weekday, l.Weekday(time.Thursday))
		})
	}
}

func TestLocale_Dates(t *testing.T) {
	d := dateutil.Date(2025, 1, 2)
	assert.Equal(t, "02 Ocak 2025, Perşembe", MustLocale("tr").LongDate(d))
	assert.Equal(t, "02 Ocak", MustLocale("tr").ShortDate(d))
	assert.Equal(t, "02 January 2025, Thursday", MustLocale("en").LongDate(d))
}

func TestLocale_Casing(t *testing.T) {
	assert.Equal(t, "İZİN PLANI", MustLocale("tr").Upper("izin planı"))
	assert.Equal(t, "IZIN", MustLocale("en").Upper("izin"))
	assert.Equal(t, "Resmi Tatilleri", MustLocale("tr").Title("resmi tatilleri"))
}

// =============================================================================
// SUMMARY
// =============================================================================

func TestSummarize(t *testing.T) {
	plan := makePlan(t, turkey2025(), 14, false)
	s := Summarize(plan, planner.DefaultPolicy())

	assert.Equal(t, 2025, s.Year)
	assert.Equal(t, 14, s.Budget)
	assert.Equal(t, 14, s.BudgetUsed)
	assert.Equal(t, 14, s.LeaveCount)
	assert.Equal(t, 14, s.HolidayDays)
	assert.Equal(t, 104, s.WeekendDays)
	// weekends, the ten weekday holidays and the twelve leaves inside 2025
	assert.Equal(t, 126, s.TotalOffDays)
	assert.Equal(t, 8, s.PeriodCount)
	assert.Equal(t, 46, s.ConsecutiveDays)
	assert.Equal(t, 9, s.LongestPeriod)
	assert.Equal(t, "3.29", s.RestPerUnit.StringFixed(2))
}

func TestSummarize_LeavesBeforeTheYear(t *testing.T) {
	set := calendar.NewHolidaySet(2025)
	set.Add("Yılbaşı", dateutil.Date(2025, 1, 1))

	plan := makePlan(t, set, 2, false)
	require.Equal(t, []time.Time{dateutil.Date(2024, 12, 30), dateutil.Date(2024, 12, 31)}, plan.Leaves)

	s := Summarize(plan, planner.DefaultPolicy())
	assert.Equal(t, 2, s.LeaveCount)
	assert.Equal(t, 2, s.BudgetUsed)
	// the December leaves belong to 2024, so only weekends and Jan 1 count
	assert.Equal(t, 104, s.WeekendDays)
	assert.Equal(t, 105, s.TotalOffDays)
	// the period spans the turn of the year and is counted whole
	assert.Equal(t, 5, s.ConsecutiveDays)
	assert.Equal(t, "2.50", s.RestPerUnit.StringFixed(2))
}

func TestRestPerUnit(t *testing.T) {
	assert.True(t, RestPerUnit(10, 0).IsZero())
	assert.Equal(t, "2.50", RestPerUnit(10, 4).StringFixed(2))
	assert.Equal(t, "0.33", RestPerUnit(1, 3).String())
}

// =============================================================================
// JSON
// =============================================================================

func TestWriteJSON_Plan(t *testing.T) {
	plan := makePlan(t, mayDay(), 3, true)
	doc := NewPlanDocument(plan, planner.DefaultPolicy(), MustLocale("en"))

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, doc, false))

	var decoded struct {
		Year    int            `json:"year"`
		Leaves  []LeaveEntry   `json:"leaves"`
		Periods []PeriodEntry  `json:"periods"`
		Summary map[string]any `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, 2025, decoded.Year)
	assert.Equal(t, []LeaveEntry{
		{Date: "2025-04-28", Weekday: "Monday", Cost: 1},
		{Date: "2025-05-02", Weekday: "Friday", Cost: 2},
	}, decoded.Leaves)
	assert.Equal(t, []PeriodEntry{
		{Start: "2025-04-26", End: "2025-04-28", Days: 3},
		{Start: "2025-05-01", End: "2025-05-04", Days: 4},
	}, decoded.Periods)
	assert.Equal(t, float64(3), decoded.Summary["budget_used"])
	assert.Equal(t, "2.33", decoded.Summary["rest_days_per_unit"])
}

func TestWriteJSON_EmptyListsAreArrays(t *testing.T) {
	plan := makePlan(t, mayDay(), 0, false)
	doc := NewPlanDocument(plan, planner.DefaultPolicy(), MustLocale("tr"))

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, doc, false))
	assert.Contains(t, buf.String(), `"leaves": []`)
}

func TestWriteJSON_Colored(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, NewHolidayDocument(mayDay()), true))
	assert.Contains(t, buf.String(), "İşçi Bayramı")
	assert.Contains(t, buf.String(), "2025-05-01")
}

// =============================================================================
// CSV
// =============================================================================

func TestWriteCSV_Plan(t *testing.T) {
	plan := makePlan(t, mayDay(), 1, false)
	rows := PlanRows(plan, planner.DefaultPolicy(), MustLocale("en"))

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"date,weekday,type,name,cost",
		"2025-05-01,Thursday,holiday,İşçi Bayramı,",
		"2025-05-02,Friday,leave,,1",
		"2025-05-03,Saturday,weekend,,",
		"2025-05-04,Sunday,weekend,,",
	}, lines)
}

func TestWriteCSV_Holidays(t *testing.T) {
	rows := HolidayRows(turkey2025(), MustLocale("tr"))
	require.Len(t, rows, 14)
	assert.Equal(t, DayRow{Date: "2025-03-30", Weekday: "Pazar", Type: "holiday", Name: "Ramazan Bayramı"}, rows[1])

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "date,weekday,type,name,cost\n", buf.String())
}

// =============================================================================
// TEXT
// =============================================================================

func TestTextRenderer_Plan(t *testing.T) {
	withoutColor(t)

	plan := makePlan(t, turkey2025(), 14, false)
	var buf bytes.Buffer
	NewTextRenderer(&buf, MustLocale("tr")).RenderPlan(plan, Summarize(plan, planner.DefaultPolicy()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "2025 İZİN PLANI\n"))
	assert.Contains(t, out, "2025 için Önerilen İzin Günleri (14 günün 14 günü kullanılıyor):")
	assert.Contains(t, out, "- 30 Aralık 2024, Pazartesi\n")
	assert.Contains(t, out, "- 14 Temmuz 2025, Pazartesi\n")
	assert.Contains(t, out, "- 28 Aralık ile 05 Ocak arası: 9 gün\n")
	assert.Contains(t, out, "- 17 Mayıs ile 19 Mayıs arası: 3 gün\n")
	assert.Contains(t, out, "Toplam ardışık tatil günleri: 46\n")
	assert.Contains(t, out, "2025 yılında toplam tatil günleri (tüm haftasonları + resmi tatiller + izinler): 126\n")
	assert.Contains(t, out, "İzin günü başına tatil: 3.29\n")
}

func TestTextRenderer_FridayDouble(t *testing.T) {
	withoutColor(t)

	plan := makePlan(t, mayDay(), 3, true)
	var buf bytes.Buffer
	NewTextRenderer(&buf, MustLocale("en")).RenderPlan(plan, Summarize(plan, planner.DefaultPolicy()))
	out := buf.String()

	assert.Contains(t, out, "LEAVE PLAN 2025")
	assert.Contains(t, out, "Suggested leave days for 2025 (using 3 of 3 days):")
	assert.Contains(t, out, "- 28 April 2025, Monday\n")
	assert.Contains(t, out, "- 02 May 2025, Friday (counts double)\n")
}

func TestTextRenderer_NoLeaves(t *testing.T) {
	withoutColor(t)

	plan := makePlan(t, mayDay(), 0, false)
	var buf bytes.Buffer
	NewTextRenderer(&buf, MustLocale("en")).RenderPlan(plan, Summarize(plan, planner.DefaultPolicy()))

	assert.Contains(t, buf.String(), "No leave days to suggest.")
	assert.Contains(t, buf.String(), "No long holiday periods found.")
	assert.Contains(t, buf.String(), "Days off per leave unit: 0.00")
}

func TestTextRenderer_Holidays(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	NewTextRenderer(&buf, MustLocale("tr")).RenderHolidays(turkey2025())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	require.Len(t, lines, 10)
	assert.Equal(t, "2025 Resmi Tatilleri", lines[0])
	assert.Equal(t, "- Yılbaşı: 01 Ocak 2025, Çarşamba (1 gün)", lines[1])
	assert.Equal(t, "- Ramazan Bayramı: 30 Mart 2025, Pazar (3 gün)", lines[2])
	assert.Equal(t, "- Kurban Bayramı: 06 Haziran 2025, Cuma (4 gün)", lines[6])
}
