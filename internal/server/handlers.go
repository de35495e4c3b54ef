package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/internal/planner"
	"github.com/username/leave-planner/internal/report"
	"github.com/username/leave-planner/pkg/dateutil"
	"go.uber.org/zap"
)

// Defaults holds the request values used when the query leaves them out
type Defaults struct {
	MaxLeaves    int
	FridayDouble bool
	Locale       string
}

// Handler serves the planner over HTTP
type Handler struct {
	planner  *planner.Planner
	defaults Defaults
	logger   *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(p *planner.Planner, defaults Defaults, logger *zap.Logger) *Handler {
	return &Handler{
		planner:  p,
		defaults: defaults,
		logger:   logger,
	}
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Health reports that the server is up
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetHolidays returns the public holidays of the year in the path
func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year", err)
		return
	}

	set, err := h.planner.Holidays(r.Context(), year)
	if err != nil {
		h.writeSourceError(w, year, err)
		return
	}

	writeJSON(w, http.StatusOK, report.NewHolidayDocument(set))
}

// GetPlan proposes leave days for the year in the query
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := planner.Request{
		Year:         dateutil.Today().Year(),
		MaxLeaves:    h.defaults.MaxLeaves,
		FridayDouble: h.defaults.FridayDouble,
	}

	if v := q.Get("year"); v != "" {
		year, err := parseYear(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year", err)
			return
		}
		req.Year = year
	}

	if v := q.Get("max_leaves"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "max_leaves must be a non-negative integer", err)
			return
		}
		req.MaxLeaves = n
	}

	if v := q.Get("friday_double"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "friday_double must be a boolean", err)
			return
		}
		req.FridayDouble = b
	}

	localeTag := h.defaults.Locale
	if v := q.Get("locale"); v != "" {
		localeTag = v
	}
	locale, err := report.ParseLocale(localeTag)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unsupported locale", err)
		return
	}

	plan, err := h.planner.Plan(r.Context(), req)
	if err != nil {
		h.writeSourceError(w, req.Year, err)
		return
	}

	writeJSON(w, http.StatusOK, report.NewPlanDocument(plan, h.planner.Policy(), locale))
}

func (h *Handler) writeSourceError(w http.ResponseWriter, year int, err error) {
	switch {
	case errors.Is(err, calendar.ErrYearNotCovered):
		writeError(w, http.StatusNotFound, fmt.Sprintf("no holiday data for %d", year), err)
	case errors.Is(err, planner.ErrNoHolidays):
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("no holidays in %d", year), err)
	default:
		h.logger.Error("Holiday source failed", zap.Int("year", year), zap.Error(err))
		writeError(w, http.StatusBadGateway, "holiday source unavailable", err)
	}
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if year < 1 || year > 9999 {
		return 0, fmt.Errorf("year %d out of range", year)
	}
	return year, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
