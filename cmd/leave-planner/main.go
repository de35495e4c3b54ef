package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/username/leave-planner/internal/config"
	"github.com/username/leave-planner/internal/planner"
	"github.com/username/leave-planner/internal/report"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	configPath string
	cfg        *config.Config
	logger     = zap.NewNop()
)

func main() {
	err := newRootCmd().Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "leave-planner",
		Short:         "Turkish public holiday leave planner",
		Long:          "Suggest leave days that bridge Turkish public holidays and weekends into long breaks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					logger = initLogger(cfg.Log.Level) // Fallback to console
				}
			} else {
				logger = initLogger(cfg.Log.Level)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: config.yaml in ., $HOME/.leave-planner, /etc/leave-planner)")

	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(holidaysCmd())
	rootCmd.AddCommand(serveCmd())

	return rootCmd
}

// newPlanner builds the planner from the loaded config
func newPlanner() (*planner.Planner, error) {
	policy, err := cfg.Planner.Policy.ToPolicy()
	if err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}

	source, err := buildSource(cfg, logger)
	if err != nil {
		return nil, err
	}

	return planner.NewPlanner(source, policy, logger), nil
}

// useColor resolves the output.color setting for w and applies it to fatih/color
func useColor(mode string, w io.Writer) bool {
	enabled := false
	switch mode {
	case "always":
		enabled = true
	case "never":
		enabled = false
	default:
		if f, ok := w.(*os.File); ok {
			enabled = term.IsTerminal(int(f.Fd()))
		}
	}
	color.NoColor = !enabled
	return enabled
}

// localeFlag returns the --locale value or the configured locale
func localeFlag(cmd *cobra.Command, value string) (*report.Locale, error) {
	if !cmd.Flags().Changed("locale") {
		value = cfg.Output.Locale
	}
	return report.ParseLocale(value)
}

// formatFlag returns the --format value or the configured format
func formatFlag(cmd *cobra.Command, value string) (string, error) {
	if !cmd.Flags().Changed("format") {
		value = cfg.Output.Format
	}
	switch value {
	case "text", "json", "csv":
		return value, nil
	default:
		return "", fmt.Errorf("unknown format %q, want text, json or csv", value)
	}
}
