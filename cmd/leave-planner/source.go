package main

import (
	"fmt"

	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/internal/config"
	"go.uber.org/zap"
)

// buildSource initializes the holiday source based on calendar.type
func buildSource(cfg *config.Config, logger *zap.Logger) (calendar.Source, error) {
	system, err := calendar.ParseHijriCalendar(cfg.Calendar.HijriCalendar)
	if err != nil {
		return nil, err
	}
	computed := calendar.NewTurkishCalendar(cfg.Calendar.HijriOffset, logger).WithHijriCalendar(system)

	var overlay *calendar.FileCalendar
	if cfg.Calendar.OverlayFile != "" {
		overlay = calendar.NewFileCalendar(cfg.Calendar.OverlayFile, logger)
	}

	switch cfg.Calendar.Type {
	case "computed":
		logger.Debug("Using computed Turkish calendar",
			zap.String("hijri_calendar", string(system)),
			zap.Int("hijri_offset", cfg.Calendar.HijriOffset))
		if overlay == nil {
			return computed, nil
		}
		composite := calendar.NewCompositeCalendar(computed, nil, logger).WithOverlay(overlay)
		if err := composite.LoadOverlay(); err != nil {
			return nil, err
		}
		return composite, nil

	case "nager":
		logger.Debug("Using Nager.Date API with computed fallback",
			zap.String("api_url", cfg.Calendar.APIURL),
			zap.String("country", cfg.Calendar.Country))
		nager := calendar.NewNagerCalendar(
			cfg.Calendar.APIURL,
			cfg.Calendar.Country,
			cfg.Calendar.GetCacheTTL(),
			logger,
		)
		composite := calendar.NewCompositeCalendar(nager, computed, logger)
		if overlay != nil {
			composite.WithOverlay(overlay)
			if err := composite.LoadOverlay(); err != nil {
				return nil, err
			}
		}
		return composite, nil

	case "file":
		logger.Debug("Using holiday file", zap.String("file", cfg.Calendar.File))
		fc := calendar.NewFileCalendar(cfg.Calendar.File, logger)
		if err := fc.Load(); err != nil {
			return nil, err
		}
		return fc, nil

	default:
		return nil, fmt.Errorf("unknown calendar type: %s", cfg.Calendar.Type)
	}
}
