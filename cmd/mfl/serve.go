package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stephenkarpeles/money-for-life/internal/api"
	"github.com/stephenkarpeles/money-for-life/internal/calculation"
	"github.com/stephenkarpeles/money-for-life/internal/config"
	"github.com/stephenkarpeles/money-for-life/internal/store/sqlite"
)

func newServeCmd() *cobra.Command {
	var (
		envFile string
		port    string
		useFast bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator page and JSON API",
		Long: `serve starts the HTTP server. Settings come from the environment or a .env
file: PORT, DB_PATH (SQLite file for saved profiles), LOG_LEVEL and CORS_ORIGINS.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadServerSettings(envFile)
			if err != nil {
				return err
			}
			if port != "" {
				settings.Port = port
			}

			logger := newLogger(settings.LogLevel)
			slog.SetDefault(logger)

			store, err := sqlite.New(settings.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open profile store: %w", err)
			}
			defer store.Close()

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(calculation.NewSlogLogger(logger))
			h := api.NewHandler(engine, store, engine.Logger)
			router := api.NewRouter(h, api.RouterOptions{
				AllowedOrigins: settings.CORSOrigins,
				RequestLog:     slog.NewLogLogger(logger.Handler(), slog.LevelInfo),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("money for life server starting", "addr", settings.Addr(), "db", settings.DBPath, "fasthttp", useFast)
			if useFast {
				err = api.ServeFast(ctx, settings.Addr(), router)
			} else {
				err = api.Serve(ctx, settings.Addr(), router)
			}
			if err != nil {
				return err
			}
			logger.Info("server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&envFile, "env", ".env", "Path to a .env file (missing is fine)")
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
	cmd.Flags().BoolVar(&useFast, "fasthttp", false, "Serve with valyala/fasthttp instead of net/http")
	return cmd
}
