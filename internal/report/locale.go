package report

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Messages holds the user facing strings of one language.
// Format verbs use explicit argument indexes so word order can differ.
type Messages struct {
	Title            string // year
	LeavesHeader     string // year, budget, units used
	NoLeaves         string
	PeriodsHeader    string
	PeriodLine       string // start, end, days
	NoPeriods        string
	TotalConsecutive string // days
	TotalOff         string // year, days
	RestPerUnit      string // ratio
	HolidaysHeader   string // year
	HolidayLine      string // name, first day, days
	FridayMark       string
	PromptMaxLeaves  string // default
	PromptYear       string // default
	PromptFriday     string // default
	InvalidInput     string // default
	Yes              string
	No               string
}

var turkishMessages = Messages{
	Title:            "%[1]d izin planı",
	LeavesHeader:     "%[1]d için Önerilen İzin Günleri (%[2]d günün %[3]d günü kullanılıyor):",
	NoLeaves:         "Önerilecek izin günü bulunamadı.",
	PeriodsHeader:    "Uzun Hafta Sonu/Tatil Dönemleri:",
	PeriodLine:       "%[1]s ile %[2]s arası: %[3]d gün",
	NoPeriods:        "Uzun tatil dönemi bulunamadı.",
	TotalConsecutive: "Toplam ardışık tatil günleri: %[1]d",
	TotalOff:         "%[1]d yılında toplam tatil günleri (tüm haftasonları + resmi tatiller + izinler): %[2]d",
	RestPerUnit:      "İzin günü başına tatil: %[1]s",
	HolidaysHeader:   "%[1]d resmi tatilleri",
	HolidayLine:      "%[1]s: %[2]s (%[3]d gün)",
	FridayMark:       "çift sayılır",
	PromptMaxLeaves:  "Maksimum izin günü sayısını girin (varsayılan %[1]d): ",
	PromptYear:       "Yıl girin (varsayılan %[1]d): ",
	PromptFriday:     "Cuma günleri çift sayılsın mı? (e/h, varsayılan %[1]s): ",
	InvalidInput:     "Geçersiz giriş. Varsayılan değer olan %[1]v kullanılacak.",
	Yes:              "e",
	No:               "h",
}

var englishMessages = Messages{
	Title:            "leave plan %[1]d",
	LeavesHeader:     "Suggested leave days for %[1]d (using %[3]d of %[2]d days):",
	NoLeaves:         "No leave days to suggest.",
	PeriodsHeader:    "Long weekends and holiday periods:",
	PeriodLine:       "%[1]s to %[2]s: %[3]d days",
	NoPeriods:        "No long holiday periods found.",
	TotalConsecutive: "Total consecutive days off: %[1]d",
	TotalOff:         "Total days off in %[1]d (all weekends + public holidays + leaves): %[2]d",
	RestPerUnit:      "Days off per leave unit: %[1]s",
	HolidaysHeader:   "public holidays %[1]d",
	HolidayLine:      "%[1]s: %[2]s (%[3]d days)",
	FridayMark:       "counts double",
	PromptMaxLeaves:  "Enter the maximum number of leave days (default %[1]d): ",
	PromptYear:       "Enter the year (default %[1]d): ",
	PromptFriday:     "Count Fridays double? (y/n, default %[1]s): ",
	InvalidInput:     "Invalid input. Using the default value %[1]v.",
	Yes:              "y",
	No:               "n",
}

var (
	turkishMonths = [12]string{
		"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
		"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
	}
	turkishWeekdays = [7]string{
		"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi",
	}
)

// Locale renders dates and messages in one language
type Locale struct {
	Tag      language.Tag
	Messages Messages

	months   [12]string
	weekdays [7]string
}

// ParseLocale resolves a BCP 47 tag such as "tr", "tr-TR" or "en-GB".
// Only Turkish and English are supported.
func ParseLocale(s string) (*Locale, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", s, err)
	}

	base, _ := tag.Base()
	switch base.String() {
	case "tr":
		return newLocale(language.Turkish, turkishMessages, turkishMonths, turkishWeekdays), nil
	case "en":
		var months [12]string
		for m := time.January; m <= time.December; m++ {
			months[m-1] = m.String()
		}
		var weekdays [7]string
		for d := time.Sunday; d <= time.Saturday; d++ {
			weekdays[d] = d.String()
		}
		return newLocale(language.English, englishMessages, months, weekdays), nil
	default:
		return nil, fmt.Errorf("unsupported locale %q", s)
	}
}

// MustLocale is ParseLocale for known good tags
func MustLocale(s string) *Locale {
	l, err := ParseLocale(s)
	if err != nil {
		panic(err)
	}
	return l
}

func newLocale(tag language.Tag, msgs Messages, months [12]string, weekdays [7]string) *Locale {
	return &Locale{
		Tag:      tag,
		Messages: msgs,
		months:   months,
		weekdays: weekdays,
	}
}

// Month returns the localized month name
func (l *Locale) Month(m time.Month) string {
	return l.months[m-1]
}

// Weekday returns the localized weekday name
func (l *Locale) Weekday(d time.Weekday) string {
	return l.weekdays[d]
}

// LongDate formats a date as "02 Ocak 2025, Perşembe"
func (l *Locale) LongDate(d time.Time) string {
	return fmt.Sprintf("%02d %s %d, %s", d.Day(), l.Month(d.Month()), d.Year(), l.Weekday(d.Weekday()))
}

// ShortDate formats a date as "02 Ocak"
func (l *Locale) ShortDate(d time.Time) string {
	return fmt.Sprintf("%02d %s", d.Day(), l.Month(d.Month()))
}

// Upper upper-cases s with the language's rules (i becomes İ in Turkish).
// Casers keep state, so each call gets its own.
func (l *Locale) Upper(s string) string {
	return cases.Upper(l.Tag).String(s)
}

// Title title-cases s with the language's rules
func (l *Locale) Title(s string) string {
	return cases.Title(l.Tag).String(s)
}
