package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/leave-planner/internal/planner"
	"github.com/username/leave-planner/internal/report"
	"github.com/username/leave-planner/pkg/dateutil"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func planCmd() *cobra.Command {
	var (
		year         int
		maxLeaves    int
		fridayDouble bool
		format       string
		localeTag    string
		interactive  bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Suggest leave days for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			locale, err := localeFlag(cmd, localeTag)
			if err != nil {
				return err
			}
			outFormat, err := formatFlag(cmd, format)
			if err != nil {
				return err
			}

			req := planner.Request{
				Year:         dateutil.Today().Year(),
				MaxLeaves:    cfg.Planner.MaxLeaves,
				FridayDouble: cfg.Planner.FridayDouble,
			}
			if cmd.Flags().Changed("year") {
				req.Year = year
			}
			if cmd.Flags().Changed("max-leaves") {
				req.MaxLeaves = maxLeaves
			}
			if cmd.Flags().Changed("friday-double") {
				req.FridayDouble = fridayDouble
			}

			if interactive {
				if f, ok := cmd.InOrStdin().(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
					logger.Debug("stdin is not a terminal, reading answers from it anyway")
				}
				req = askRequest(newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr(), locale.Messages), req)
			}

			if req.Year < 1 {
				return fmt.Errorf("invalid year %d", req.Year)
			}
			if req.MaxLeaves < 0 {
				return fmt.Errorf("max leaves must not be negative, got %d", req.MaxLeaves)
			}

			p, err := newPlanner()
			if err != nil {
				return err
			}

			plan, err := p.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}

			logger.Debug("Plan ready",
				zap.Int("leaves", len(plan.Leaves)),
				zap.Int("periods", len(plan.Periods)))

			return writePlan(cmd.OutOrStdout(), outFormat, locale, plan, p.Policy())
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year to plan (default: current year)")
	cmd.Flags().IntVarP(&maxLeaves, "max-leaves", "m", 14, "Leave budget in days")
	cmd.Flags().BoolVar(&fridayDouble, "friday-double", false, "Count a Friday leave as two days")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or csv")
	cmd.Flags().StringVarP(&localeTag, "locale", "l", "tr", "Output language: tr or en")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Ask for year, budget and Friday rule")

	return cmd
}

// askRequest prompts for the request fields, keeping req's values as defaults
func askRequest(p *prompter, req planner.Request) planner.Request {
	req.MaxLeaves = p.askInt(p.msgs.PromptMaxLeaves, req.MaxLeaves, func(n int) bool { return n >= 0 })
	req.Year = p.askInt(p.msgs.PromptYear, req.Year, func(n int) bool { return n >= 1 && n <= 9999 })
	req.FridayDouble = p.askBool(p.msgs.PromptFriday, req.FridayDouble)
	return req
}

func writePlan(w io.Writer, format string, locale *report.Locale, plan *planner.Plan, policy planner.Policy) error {
	switch format {
	case "json":
		return report.WriteJSON(w, report.NewPlanDocument(plan, policy, locale), useColor(cfg.Output.Color, w))
	case "csv":
		return report.WriteCSV(w, report.PlanRows(plan, policy, locale))
	default:
		useColor(cfg.Output.Color, w)
		report.NewTextRenderer(w, locale).RenderPlan(plan, report.Summarize(plan, policy))
		return nil
	}
}
