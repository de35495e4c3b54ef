package calendar

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// CompositeCalendar implements Source with fallback strategy
// Primary: usually NagerCalendar (API)
// Fallback: usually TurkishCalendar (computed)
// Overlay: optional FileCalendar applied on top of whichever answered
type CompositeCalendar struct {
	primary  Source
	fallback Source
	overlay  *FileCalendar
	logger   *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Source, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// WithOverlay sets the file calendar used to correct results
func (cc *CompositeCalendar) WithOverlay(overlay *FileCalendar) *CompositeCalendar {
	cc.overlay = overlay
	return cc
}

// Holidays returns the holidays of the year from the first source that answers
func (cc *CompositeCalendar) Holidays(ctx context.Context, year int) (*HolidaySet, error) {
	set, err := cc.primary.Holidays(ctx, year)
	if err != nil {
		if cc.fallback == nil {
			return nil, err
		}

		cc.logger.Warn("Primary calendar failed, falling back",
			zap.Int("year", year),
			zap.Error(err))

		var fallbackErr error
		set, fallbackErr = cc.fallback.Holidays(ctx, year)
		if fallbackErr != nil {
			return nil, fmt.Errorf("primary and fallback both failed: primary=%w, fallback=%v", err, fallbackErr)
		}
	}

	if cc.overlay != nil {
		corrected := NewHolidaySet(set.Year)
		for _, h := range set.Holidays() {
			corrected.Add(h.Name, h.Dates...)
		}
		cc.overlay.ApplyTo(corrected)
		set = corrected
	}

	return set, nil
}

// LoadOverlay loads the overlay file, if any
func (cc *CompositeCalendar) LoadOverlay() error {
	if cc.overlay == nil {
		return nil
	}
	if err := cc.overlay.Load(); err != nil {
		return fmt.Errorf("failed to load overlay calendar: %w", err)
	}
	cc.logger.Info("Overlay calendar loaded successfully")
	return nil
}
