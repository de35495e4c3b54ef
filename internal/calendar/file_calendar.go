package calendar

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/username/leave-planner/pkg/dateutil"
	"go.uber.org/zap"
)

// FileCalendar implements Source using a local text file.
//
// Each line is "YYYY-MM-DD type [name]" where type is "holiday" or
// "workday". Workday lines cancel a holiday when the file is used as an
// overlay on top of another source.
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	data     map[int]*HolidaySet // year → holidays
	workdays map[int][]time.Time // year → cancelled holidays
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		data:     make(map[int]*HolidaySet),
		workdays: make(map[int][]time.Time),
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Example: 2025-03-30 holiday Ramazan Bayramı
		parts := strings.Fields(line)
		if len(parts) < 2 {
			fc.logger.Warn("Invalid line format",
				zap.Int("line", lineNo),
				zap.String("content", line))
			continue
		}

		date, err := dateutil.ParseDate(parts[0])
		if err != nil {
			fc.logger.Warn("Failed to parse date",
				zap.Int("line", lineNo),
				zap.String("date", parts[0]),
				zap.Error(err))
			continue
		}

		switch parts[1] {
		case "holiday":
			name := strings.Join(parts[2:], " ")
			if name == "" {
				name = dateutil.FormatDate(date)
			}
			fc.yearSet(date.Year()).Add(name, date)
		case "workday":
			fc.workdays[date.Year()] = append(fc.workdays[date.Year()], date)
		default:
			fc.logger.Warn("Unknown day type",
				zap.Int("line", lineNo),
				zap.String("type", parts[1]))
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("years", len(fc.data)))

	return nil
}

// Holidays returns the holidays listed in the file for the year
func (fc *FileCalendar) Holidays(_ context.Context, year int) (*HolidaySet, error) {
	set, ok := fc.data[year]
	if !ok {
		return nil, fmt.Errorf("%w: %d in %s", ErrYearNotCovered, year, fc.filePath)
	}

	out := NewHolidaySet(year)
	for _, h := range set.Holidays() {
		out.Add(h.Name, h.Dates...)
	}
	for _, d := range fc.workdays[year] {
		out.Remove(d)
	}
	return out, nil
}

// ApplyTo corrects set with the file contents for the same year:
// workday lines remove dates, holiday lines add them.
func (fc *FileCalendar) ApplyTo(set *HolidaySet) {
	for _, d := range fc.workdays[set.Year] {
		set.Remove(d)
	}
	if extra, ok := fc.data[set.Year]; ok {
		for _, h := range extra.Holidays() {
			set.Add(h.Name, h.Dates...)
		}
	}
}

func (fc *FileCalendar) yearSet(year int) *HolidaySet {
	set, ok := fc.data[year]
	if !ok {
		set = NewHolidaySet(year)
		fc.data[year] = set
	}
	return set
}
