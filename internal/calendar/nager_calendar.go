package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/username/leave-planner/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	defaultCacheTTL    = 24 * time.Hour
)

// NagerCalendar implements Source using the date.nager.at public holiday API
type NagerCalendar struct {
	apiURL     string
	country    string
	cacheTTL   time.Duration
	httpClient *http.Client
	logger     *zap.Logger
	cache      map[int]*cachedYear
	cacheMu    sync.RWMutex
}

type cachedYear struct {
	data      *HolidaySet
	fetchedAt time.Time
}

// nagerHoliday represents a single entry of the PublicHolidays response
type nagerHoliday struct {
	Date        string   `json:"date"`
	LocalName   string   `json:"localName"`
	Name        string   `json:"name"`
	CountryCode string   `json:"countryCode"`
	Global      bool     `json:"global"`
	Types       []string `json:"types"`
}

// NewNagerCalendar creates a new NagerCalendar instance
func NewNagerCalendar(apiURL, country string, cacheTTL time.Duration, logger *zap.Logger) *NagerCalendar {
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	return &NagerCalendar{
		apiURL:   strings.TrimRight(apiURL, "/"),
		country:  strings.ToUpper(country),
		cacheTTL: cacheTTL,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger: logger,
		cache:  make(map[int]*cachedYear),
	}
}

// Holidays returns the public holidays of the year
func (nc *NagerCalendar) Holidays(ctx context.Context, year int) (*HolidaySet, error) {
	nc.cacheMu.RLock()
	if cached, ok := nc.cache[year]; ok {
		if time.Since(cached.fetchedAt) < nc.cacheTTL {
			nc.cacheMu.RUnlock()
			nc.logger.Debug("Using cached holidays", zap.Int("year", year))
			return cached.data, nil
		}
	}
	nc.cacheMu.RUnlock()

	set, err := nc.fetchYear(ctx, year)
	if err != nil {
		return nil, err
	}

	nc.cacheMu.Lock()
	nc.cache[year] = &cachedYear{
		data:      set,
		fetchedAt: time.Now(),
	}
	nc.cacheMu.Unlock()

	nc.logger.Info("Holidays fetched and cached",
		zap.Int("year", year),
		zap.String("country", nc.country),
		zap.Int("holidays", set.Len()))

	return set, nil
}

// fetchYear fetches the holidays of a year from the API
func (nc *NagerCalendar) fetchYear(ctx context.Context, year int) (*HolidaySet, error) {
	// Build URL: https://date.nager.at/api/v3/PublicHolidays/{year}/{country}
	url := fmt.Sprintf("%s/api/v3/PublicHolidays/%d/%s", nc.apiURL, year, nc.country)

	nc.logger.Debug("Fetching holidays",
		zap.String("url", url),
		zap.Int("year", year))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := nc.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holidays: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent, http.StatusNotFound:
		return nil, fmt.Errorf("%w: %d for %s", ErrYearNotCovered, year, nc.country)
	default:
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var entries []nagerHoliday
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	set := NewHolidaySet(year)
	for _, entry := range entries {
		if len(entry.Types) > 0 && !slices.Contains(entry.Types, "Public") {
			continue
		}

		date, err := dateutil.ParseDate(entry.Date)
		if err != nil {
			nc.logger.Warn("Failed to parse date",
				zap.String("date", entry.Date),
				zap.Error(err))
			continue
		}

		name := entry.LocalName
		if name == "" {
			name = entry.Name
		}
		set.Add(name, date)
	}

	if set.Len() == 0 {
		return nil, fmt.Errorf("%w: %d for %s", ErrYearNotCovered, year, nc.country)
	}

	return set, nil
}
