package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/username/leave-planner/internal/calendar"
	"github.com/username/leave-planner/pkg/dateutil"
	"go.uber.org/zap"
)

// FindEfficientLeaves proposes leave days around the given holidays.
// Each group holds the dates of one holiday; single-day holidays are groups of one.
func FindEfficientLeaves(groups [][]time.Time, maxLeaves int, fridayDouble bool, policy Policy) ([]time.Time, error) {
	var holidays []time.Time
	for _, g := range groups {
		holidays = append(holidays, g...)
	}

	clusters, err := BuildClusters(holidays, policy)
	if err != nil {
		return nil, err
	}

	candidates := ScoreGaps(clusters, holidays, policy)
	return SelectLeaves(candidates, maxLeaves, fridayDouble), nil
}

// Request describes a planning run
type Request struct {
	Year         int
	MaxLeaves    int
	FridayDouble bool
}

// Plan is the outcome of a planning run
type Plan struct {
	Request
	Holidays   *calendar.HolidaySet
	Leaves     []time.Time
	BudgetUsed int
	Periods    []Period
}

// Planner resolves holidays for a year and runs the leave heuristic on them
type Planner struct {
	source calendar.Source
	policy Policy
	logger *zap.Logger
}

// NewPlanner creates a new planner
func NewPlanner(source calendar.Source, policy Policy, logger *zap.Logger) *Planner {
	return &Planner{
		source: source,
		policy: policy,
		logger: logger,
	}
}

// Policy returns the heuristic constants in use
func (p *Planner) Policy() Policy {
	return p.policy
}

// Holidays returns the holidays of the year from the configured source
func (p *Planner) Holidays(ctx context.Context, year int) (*calendar.HolidaySet, error) {
	set, err := p.source.Holidays(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays for %d: %w", year, err)
	}
	return set, nil
}

// Plan fetches the holidays of req.Year and proposes leave days for them
func (p *Planner) Plan(ctx context.Context, req Request) (*Plan, error) {
	set, err := p.Holidays(ctx, req.Year)
	if err != nil {
		return nil, err
	}
	return p.PlanWithHolidays(set, req)
}

// PlanWithHolidays proposes leave days for an already resolved holiday set
func (p *Planner) PlanWithHolidays(set *calendar.HolidaySet, req Request) (*Plan, error) {
	p.logger.Info("Starting leave planning",
		zap.Int("year", req.Year),
		zap.Int("max_leaves", req.MaxLeaves),
		zap.Bool("friday_double", req.FridayDouble),
		zap.Int("holidays", set.Len()))

	leaves, err := FindEfficientLeaves(set.Groups(), req.MaxLeaves, req.FridayDouble, p.policy)
	if err != nil {
		return nil, fmt.Errorf("failed to plan leaves for %d: %w", req.Year, err)
	}

	periods := CalculateConsecutivePeriods(leaves, set.Dates(), p.policy)

	plan := &Plan{
		Request:    req,
		Holidays:   set,
		Leaves:     leaves,
		BudgetUsed: BudgetUsed(leaves, req.FridayDouble),
		Periods:    periods,
	}

	leaveStrings := make([]string, len(leaves))
	for i, d := range leaves {
		leaveStrings[i] = dateutil.FormatDate(d)
	}

	p.logger.Info("Leave planning finished",
		zap.Strings("leaves", leaveStrings),
		zap.Int("budget_used", plan.BudgetUsed),
		zap.Int("periods", len(periods)),
		zap.Int("consecutive_days", TotalDays(periods)))

	return plan, nil
}
