package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/username/leave-planner/internal/server"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve holidays and plans over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Server.Addr
			}

			p, err := newPlanner()
			if err != nil {
				return err
			}

			h := server.NewHandler(p, server.Defaults{
				MaxLeaves:    cfg.Planner.MaxLeaves,
				FridayDouble: cfg.Planner.FridayDouble,
				Locale:       cfg.Output.Locale,
			}, logger)
			router := server.NewRouter(h, cfg.Server.AllowedOrigins, logger)
			srv := server.New(addr, router, cfg.Server.GetShutdownTimeout(), logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info("Starting leave planner API",
				zap.String("addr", addr),
				zap.String("calendar", cfg.Calendar.Type))

			return srv.ListenAndRun(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	return cmd
}
