package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/hablullah/go-hijri"
	"github.com/username/leave-planner/pkg/dateutil"
	"go.uber.org/zap"
)

// HijriCalendar selects the Islamic calendar the religious festivals follow
type HijriCalendar string

const (
	// UmmAlQura is the astronomical calendar of Saudi Arabia. It matches the
	// dates announced in Turkey and covers 1356-1500 AH (1937-2077).
	UmmAlQura HijriCalendar = "umm_al_qura"
	// Tabular is the arithmetic calendar with a 30-year leap cycle
	Tabular HijriCalendar = "tabular"
)

const (
	shawwal     = 10
	dhuAlHijjah = 12

	ummAlQuraFirstYear = 1356
	ummAlQuraLastYear  = 1500
)

type fixedHoliday struct {
	name  string
	month time.Month
	day   int
}

type lunarHoliday struct {
	name  string
	month int64
	day   int64
	days  int
}

var turkishFixedHolidays = []fixedHoliday{
	{"Yılbaşı", time.January, 1},
	{"Ulusal Egemenlik ve Çocuk Bayramı", time.April, 23},
	{"İşçi Bayramı", time.May, 1},
	{"Gençlik ve Spor Bayramı", time.May, 19},
	{"Demokrasi ve Milli Birlik Günü", time.July, 15},
	{"Zafer Bayramı", time.August, 30},
	{"Cumhuriyet Bayramı", time.October, 29},
}

var turkishLunarHolidays = []lunarHoliday{
	{"Ramazan Bayramı", shawwal, 1, 3},
	{"Kurban Bayramı", dhuAlHijjah, 10, 4},
}

// hijriDate is a day of the Islamic calendar
type hijriDate struct {
	Year  int64
	Month int64
	Day   int64
}

// TurkishCalendar computes Turkish public holidays. Religious festivals are
// derived from the Umm al-Qura calendar (the tabular one outside its range
// or when selected) and shifted by hijriOffset days.
type TurkishCalendar struct {
	system      HijriCalendar
	hijriOffset int
	logger      *zap.Logger
}

// NewTurkishCalendar creates a new TurkishCalendar instance using Umm al-Qura
func NewTurkishCalendar(hijriOffset int, logger *zap.Logger) *TurkishCalendar {
	return &TurkishCalendar{
		system:      UmmAlQura,
		hijriOffset: hijriOffset,
		logger:      logger,
	}
}

// WithHijriCalendar selects the Islamic calendar
func (tc *TurkishCalendar) WithHijriCalendar(system HijriCalendar) *TurkishCalendar {
	tc.system = system
	return tc
}

// ParseHijriCalendar validates a calendar.hijri_calendar value
func ParseHijriCalendar(s string) (HijriCalendar, error) {
	switch HijriCalendar(s) {
	case UmmAlQura, Tabular:
		return HijriCalendar(s), nil
	default:
		return "", fmt.Errorf("unknown hijri calendar %q, want %q or %q", s, UmmAlQura, Tabular)
	}
}

// toCivil converts an Islamic date to a civil date at midnight UTC
func (tc *TurkishCalendar) toCivil(d hijriDate) time.Time {
	if tc.system == UmmAlQura && d.Year >= ummAlQuraFirstYear && d.Year <= ummAlQuraLastYear {
		return dateutil.StartOfDay(hijri.UmmAlQuraDate{Year: d.Year, Month: d.Month, Day: d.Day}.ToGregorian())
	}
	return dateutil.StartOfDay(hijri.HijriDate{Year: d.Year, Month: d.Month, Day: d.Day, Pattern: hijri.Default}.ToGregorian())
}

// fromCivil converts a civil date to the Islamic calendar.
// Dates before 1 Muharram 1 AH have no Islamic date.
func (tc *TurkishCalendar) fromCivil(t time.Time) (hijriDate, error) {
	if tc.system == UmmAlQura {
		if uq, err := hijri.CreateUmmAlQuraDate(t); err == nil {
			return hijriDate{Year: uq.Year, Month: uq.Month, Day: uq.Day}, nil
		}
	}

	h, err := hijri.CreateHijriDate(t, hijri.Default)
	if err != nil {
		return hijriDate{}, fmt.Errorf("failed to convert %s to hijri: %w", dateutil.FormatDate(t), err)
	}
	return hijriDate{Year: h.Year, Month: h.Month, Day: h.Day}, nil
}

// Holidays returns the public holidays of the civil year
func (tc *TurkishCalendar) Holidays(ctx context.Context, year int) (*HolidaySet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if year < 1 {
		return nil, fmt.Errorf("invalid year: %d", year)
	}

	set := NewHolidaySet(year)
	for _, h := range turkishFixedHolidays {
		set.Add(h.name, dateutil.Date(year, h.month, h.day))
	}

	yearStart := dateutil.StartOfYear(year)
	yearEnd := dateutil.EndOfYear(year)

	last, err := tc.fromCivil(yearEnd)
	if err != nil {
		tc.logger.Debug("No Islamic calendar for year", zap.Int("year", year))
		return set, nil
	}
	first, err := tc.fromCivil(yearStart)
	if err != nil {
		first = hijriDate{Year: 1}
	}

	// A civil year overlaps two (rarely three) Islamic years, so a festival
	// can occur twice in the same civil year.
	for _, h := range turkishLunarHolidays {
		occurrences := 0
		for hy := first.Year; hy <= last.Year; hy++ {
			start := tc.toCivil(hijriDate{Year: hy, Month: h.month, Day: h.day}).
				AddDate(0, 0, tc.hijriOffset)

			var dates []time.Time
			for i := 0; i < h.days; i++ {
				d := start.AddDate(0, 0, i)
				if !d.Before(yearStart) && !d.After(yearEnd) {
					dates = append(dates, d)
				}
			}
			if len(dates) == 0 {
				continue
			}

			name := h.name
			if occurrences > 0 {
				name = fmt.Sprintf("%s (%d)", h.name, hy)
			}
			occurrences++
			set.Add(name, dates...)

			tc.logger.Debug("Resolved lunar holiday",
				zap.String("name", name),
				zap.Int64("hijri_year", hy),
				zap.String("calendar", string(tc.system)),
				zap.String("start", dateutil.FormatDate(dates[0])),
				zap.Int("days", len(dates)))
		}
	}

	return set, nil
}
