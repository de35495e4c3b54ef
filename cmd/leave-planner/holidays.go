package main

import (
	"github.com/spf13/cobra"
	"github.com/username/leave-planner/internal/report"
	"github.com/username/leave-planner/pkg/dateutil"
)

func holidaysCmd() *cobra.Command {
	var (
		year      int
		format    string
		localeTag string
	)

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the public holidays of a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			locale, err := localeFlag(cmd, localeTag)
			if err != nil {
				return err
			}
			outFormat, err := formatFlag(cmd, format)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("year") {
				year = dateutil.Today().Year()
			}

			p, err := newPlanner()
			if err != nil {
				return err
			}

			set, err := p.Holidays(cmd.Context(), year)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch outFormat {
			case "json":
				return report.WriteJSON(w, report.NewHolidayDocument(set), useColor(cfg.Output.Color, w))
			case "csv":
				return report.WriteCSV(w, report.HolidayRows(set, locale))
			default:
				useColor(cfg.Output.Color, w)
				report.NewTextRenderer(w, locale).RenderHolidays(set)
				return nil
			}
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year to list (default: current year)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or csv")
	cmd.Flags().StringVarP(&localeTag, "locale", "l", "tr", "Output language: tr or en")

	return cmd
}
