package calendar

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/username/leave-planner/pkg/dateutil"
	"go.uber.org/zap"
)

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = dateutil.FormatDate(d)
	}
	return out
}

func assertDates(t *testing.T, label string, got []time.Time, want ...string) {
	t.Helper()

	gotStr := formatDates(got)
	if len(gotStr) != len(want) {
		t.Fatalf("%s = %v, want %v", label, gotStr, want)
	}
	for i := range want {
		if gotStr[i] != want[i] {
			t.Fatalf("%s = %v, want %v", label, gotStr, want)
		}
	}
}

func holidayByName(t *testing.T, set *HolidaySet, name string) Holiday {
	t.Helper()

	for _, h := range set.Holidays() {
		if h.Name == name {
			return h
		}
	}
	t.Fatalf("holiday %q not found", name)
	return Holiday{}
}

func TestTurkishCalendar_FixedHolidays(t *testing.T) {
	cal := NewTurkishCalendar(0, zap.NewNop())

	set, err := cal.Holidays(context.Background(), 2025)
	if err != nil {
		t.Fatalf("Holidays() error = %v", err)
	}

	tests := []struct {
		name string
		date string
	}{
		{"Yılbaşı", "2025-01-01"},
		{"Ulusal Egemenlik ve Çocuk Bayramı", "2025-04-23"},
		{"İşçi Bayramı", "2025-05-01"},
		{"Gençlik ve Spor Bayramı", "2025-05-19"},
		{"Demokrasi ve Milli Birlik Günü", "2025-07-15"},
		{"Zafer Bayramı", "2025-08-30"},
		{"Cumhuriyet Bayramı", "2025-10-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := holidayByName(t, set, tt.name)
			assertDates(t, tt.name, h.Dates, tt.date)
		})
	}

	if set.Len() != 9 {
		t.Errorf("Len() = %d, want 9", set.Len())
	}
}

func TestTurkishCalendar_LunarHolidays(t *testing.T) {
	tests := []struct {
		name    string
		system  HijriCalendar
		offset  int
		ramazan []string
		kurban  []string
	}{
		{
			name:    "umm al-qura matches the announced 2025 dates",
			system:  UmmAlQura,
			offset:  0,
			ramazan: []string{"2025-03-30", "2025-03-31", "2025-04-01"},
			kurban:  []string{"2025-06-06", "2025-06-07", "2025-06-08", "2025-06-09"},
		},
		{
			name:    "tabular calendar",
			system:  Tabular,
			offset:  0,
			ramazan: []string{"2025-03-31", "2025-04-01", "2025-04-02"},
			kurban:  []string{"2025-06-07", "2025-06-08", "2025-06-09", "2025-06-10"},
		},
		{
			name:    "tabular shifted to the observed 2025 dates",
			system:  Tabular,
			offset:  -1,
			ramazan: []string{"2025-03-30", "2025-03-31", "2025-04-01"},
			kurban:  []string{"2025-06-06", "2025-06-07", "2025-06-08", "2025-06-09"},
		},
		{
			name:    "umm al-qura shifted a day late",
			system:  UmmAlQura,
			offset:  1,
			ramazan: []string{"2025-03-31", "2025-04-01", "2025-04-02"},
			kurban:  []string{"2025-06-07", "2025-06-08", "2025-06-09", "2025-06-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := NewTurkishCalendar(tt.offset, zap.NewNop()).WithHijriCalendar(tt.system)

			set, err := cal.Holidays(context.Background(), 2025)
			if err != nil {
				t.Fatalf("Holidays() error = %v", err)
			}

			assertDates(t, "Ramazan Bayramı", holidayByName(t, set, "Ramazan Bayramı").Dates, tt.ramazan...)
			assertDates(t, "Kurban Bayramı", holidayByName(t, set, "Kurban Bayramı").Dates, tt.kurban...)
		})
	}
}

func TestTurkishCalendar_FestivalTwiceInOneYear(t *testing.T) {
	tests := []struct {
		system HijriCalendar
		first  []string
		second []string
	}{
		{UmmAlQura, []string{"2033-01-02", "2033-01-03", "2033-01-04"}, []string{"2033-12-23", "2033-12-24", "2033-12-25"}},
		{Tabular, []string{"2033-01-03", "2033-01-04", "2033-01-05"}, []string{"2033-12-23", "2033-12-24", "2033-12-25"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.system), func(t *testing.T) {
			cal := NewTurkishCalendar(0, zap.NewNop()).WithHijriCalendar(tt.system)

			set, err := cal.Holidays(context.Background(), 2033)
			if err != nil {
				t.Fatalf("Holidays() error = %v", err)
			}

			assertDates(t, "first Ramazan Bayramı", holidayByName(t, set, "Ramazan Bayramı").Dates, tt.first...)
			assertDates(t, "second Ramazan Bayramı", holidayByName(t, set, "Ramazan Bayramı (1455)").Dates, tt.second...)
		})
	}
}

func TestTurkishCalendar_UmmAlQuraFallsBackOutsideRange(t *testing.T) {
	ummAlQura := NewTurkishCalendar(0, zap.NewNop())
	tabular := NewTurkishCalendar(0, zap.NewNop()).WithHijriCalendar(Tabular)

	for _, year := range []int{1900, 2080} {
		got, err := ummAlQura.Holidays(context.Background(), year)
		if err != nil {
			t.Fatalf("Holidays(%d) error = %v", year, err)
		}
		want, err := tabular.Holidays(context.Background(), year)
		if err != nil {
			t.Fatalf("Holidays(%d) error = %v", year, err)
		}
		assertDates(t, fmt.Sprintf("Dates(%d)", year), got.Dates(), formatDates(want.Dates())...)
		if got.Len() < 9 {
			t.Errorf("Holidays(%d) has %d holidays, want at least 9", year, got.Len())
		}
	}
}

func TestTurkishCalendar_ToCivil(t *testing.T) {
	tests := []struct {
		name   string
		system HijriCalendar
		input  hijriDate
		want   string
	}{
		{"1 Shawwal 1446 tabular", Tabular, hijriDate{1446, shawwal, 1}, "2025-03-31"},
		{"10 Dhu al-Hijjah 1446 tabular", Tabular, hijriDate{1446, dhuAlHijjah, 10}, "2025-06-07"},
		{"1 Shawwal 1445 tabular", Tabular, hijriDate{1445, shawwal, 1}, "2024-04-10"},
		{"1 Shawwal 1447 tabular", Tabular, hijriDate{1447, shawwal, 1}, "2026-03-20"},
		{"1 Shawwal 1446 umm al-qura", UmmAlQura, hijriDate{1446, shawwal, 1}, "2025-03-30"},
		{"10 Dhu al-Hijjah 1446 umm al-qura", UmmAlQura, hijriDate{1446, dhuAlHijjah, 10}, "2025-06-06"},
		{"1 Shawwal 1447 umm al-qura", UmmAlQura, hijriDate{1447, shawwal, 1}, "2026-03-20"},
		{"beyond umm al-qura", UmmAlQura, hijriDate{1501, shawwal, 1}, "2078-08-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := NewTurkishCalendar(0, zap.NewNop()).WithHijriCalendar(tt.system)
			got := cal.toCivil(tt.input)
			if dateutil.FormatDate(got) != tt.want {
				t.Errorf("toCivil(%v) = %s, want %s", tt.input, dateutil.FormatDate(got), tt.want)
			}
			if got != dateutil.StartOfDay(got) {
				t.Errorf("toCivil(%v) = %v, want midnight UTC", tt.input, got)
			}
		})
	}
}

func TestTurkishCalendar_FromCivil(t *testing.T) {
	tests := []struct {
		name   string
		system HijriCalendar
		input  time.Time
		want   hijriDate
	}{
		{"New Year 2025", Tabular, dateutil.Date(2025, 1, 1), hijriDate{1446, 7, 1}},
		{"Millennium", Tabular, dateutil.Date(2000, 1, 1), hijriDate{1420, 9, 24}},
		{"Time of day ignored", Tabular, time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC), hijriDate{1446, shawwal, 1}},
		{"Eid 2025 umm al-qura", UmmAlQura, dateutil.Date(2025, 3, 30), hijriDate{1446, shawwal, 1}},
		{"Before umm al-qura", UmmAlQura, dateutil.Date(1900, 1, 1), hijriDate{1317, 8, 28}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := NewTurkishCalendar(0, zap.NewNop()).WithHijriCalendar(tt.system)
			got, err := cal.fromCivil(tt.input)
			if err != nil {
				t.Fatalf("fromCivil(%s) error = %v", dateutil.FormatDate(tt.input), err)
			}
			if got != tt.want {
				t.Errorf("fromCivil(%s) = %v, want %v", dateutil.FormatDate(tt.input), got, tt.want)
			}
		})
	}

	if _, err := NewTurkishCalendar(0, zap.NewNop()).fromCivil(dateutil.Date(600, 1, 1)); err == nil {
		t.Error("fromCivil(0600-01-01) expected error, got nil")
	}
}

func TestTurkishCalendar_RoundTrip(t *testing.T) {
	for _, system := range []HijriCalendar{UmmAlQura, Tabular} {
		cal := NewTurkishCalendar(0, zap.NewNop()).WithHijriCalendar(system)

		for d := dateutil.Date(1990, 1, 1); d.Before(dateutil.Date(2060, 1, 1)); d = d.AddDate(0, 0, 1) {
			h, err := cal.fromCivil(d)
			if err != nil {
				t.Fatalf("%s: fromCivil(%s) error = %v", system, dateutil.FormatDate(d), err)
			}
			if h.Day < 1 || h.Day > 30 || h.Month < 1 || h.Month > 12 {
				t.Fatalf("%s: fromCivil(%s) = %v is out of range", system, dateutil.FormatDate(d), h)
			}
			if back := cal.toCivil(h); !back.Equal(d) {
				t.Fatalf("%s: toCivil(fromCivil(%s)) = %s", system, dateutil.FormatDate(d), dateutil.FormatDate(back))
			}
		}
	}
}

func TestParseHijriCalendar(t *testing.T) {
	for _, s := range []string{"umm_al_qura", "tabular"} {
		if got, err := ParseHijriCalendar(s); err != nil || string(got) != s {
			t.Errorf("ParseHijriCalendar(%q) = %q, %v", s, got, err)
		}
	}
	if _, err := ParseHijriCalendar("julian"); err == nil {
		t.Error("ParseHijriCalendar(julian) expected error, got nil")
	}
}

func TestTurkishCalendar_DatesStayInsideYear(t *testing.T) {
	cal := NewTurkishCalendar(0, zap.NewNop())

	for year := 2020; year <= 2040; year++ {
		set, err := cal.Holidays(context.Background(), year)
		if err != nil {
			t.Fatalf("Holidays(%d) error = %v", year, err)
		}
		for _, d := range set.Dates() {
			if d.Year() != year {
				t.Errorf("Holidays(%d) contains %s", year, dateutil.FormatDate(d))
			}
		}
	}
}

func TestTurkishCalendar_InvalidInput(t *testing.T) {
	cal := NewTurkishCalendar(0, zap.NewNop())

	if _, err := cal.Holidays(context.Background(), 0); err == nil {
		t.Error("Holidays(0) expected error, got nil")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := cal.Holidays(ctx, 2025); err == nil {
		t.Error("Holidays() with cancelled context expected error, got nil")
	}
}

func TestHolidaySet_AddAndRemove(t *testing.T) {
	set := NewHolidaySet(2025)
	set.Add("Kurban Bayramı", dateutil.Date(2025, 6, 7), dateutil.Date(2025, 6, 6))
	set.Add("Yılbaşı", dateutil.Date(2025, 1, 1))
	set.Add("Kurban Bayramı", dateutil.Date(2025, 6, 7), dateutil.Date(2025, 6, 8))

	holidays := set.Holidays()
	if len(holidays) != 2 {
		t.Fatalf("Holidays() returned %d entries, want 2", len(holidays))
	}
	if holidays[0].Name != "Yılbaşı" {
		t.Errorf("first holiday = %q, want Yılbaşı", holidays[0].Name)
	}
	assertDates(t, "Kurban Bayramı", holidays[1].Dates, "2025-06-06", "2025-06-07", "2025-06-08")

	if !set.Contains(time.Date(2025, 6, 7, 15, 0, 0, 0, time.UTC)) {
		t.Error("Contains(2025-06-07 15:00) = false, want true")
	}
	if got := set.NameOf(dateutil.Date(2025, 6, 8)); got != "Kurban Bayramı" {
		t.Errorf("NameOf(2025-06-08) = %q", got)
	}

	set.Remove(dateutil.Date(2025, 1, 1))
	if set.Len() != 1 {
		t.Errorf("Len() after removing the only Yılbaşı date = %d, want 1", set.Len())
	}
	assertDates(t, "Dates()", set.Dates(), "2025-06-06", "2025-06-07", "2025-06-08")

	// index must follow the compaction done by Remove
	set.Add("Kurban Bayramı", dateutil.Date(2025, 6, 9))
	if set.Len() != 1 {
		t.Errorf("Len() after re-adding = %d, want 1", set.Len())
	}
}

func TestDayType_String(t *testing.T) {
	tests := []struct {
		input DayType
		want  string
	}{
		{DayTypeWorkday, "workday"},
		{DayTypeWeekend, "weekend"},
		{DayTypeHoliday, "holiday"},
		{DayTypeLeave, "leave"},
		{DayType(0), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.input.String(); got != tt.want {
			t.Errorf("DayType(%d).String() = %q, want %q", int(tt.input), got, tt.want)
		}
	}
}
