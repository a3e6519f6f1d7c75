package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"circulation/cmd/bootstrap"
	"circulation/internal/handler/middleware"
	"circulation/internal/pkg/config"
	"circulation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// Fail safe: never expose debug output on a misconfigured deploy
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           circulation
// @version         1.0
// @description     Library circulation engine: lending, reservations, fines

// @BasePath  /api
// @schemes http https
// @in header
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping server")
			return nil
		},
	})
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the circulation HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			app := fx.New(
				bootstrap.Module,
				fx.Provide(
					func(cfg config.Config) *slog.Logger {
						logger := middleware.NewLogger(cfg.Log)
						return logger.GetSlogLogger()
					},
					func() *gin.Engine {
						return gin.New()
					},
				),
				fx.Invoke(
					startServer,
				),
			)

			if err := app.Start(context.Background()); err != nil {
				return err
			}

			<-app.Done()

			if err := app.Stop(context.Background()); err != nil {
				slog.Error("failed to stop application", "error", err)
			}
			return nil
		},
	}
}

func newSweepCmd() *cobra.Command {
	var asOfFlag string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the overdue fine sweep and reservation expiry once",
		RunE: func(_ *cobra.Command, _ []string) error {
			asOf := time.Now()
			if asOfFlag != "" {
				parsed, err := time.Parse(time.RFC3339, asOfFlag)
				if err != nil {
					return err
				}
				asOf = parsed
			}

			var runErr error
			app := fx.New(
				bootstrap.CoreModule,
				fx.NopLogger,
				fx.Invoke(func(overdue commands.OverdueCommands, reservations commands.ReservationCommands) {
					fines, err := overdue.ProcessOverdue(context.Background(), asOf)
					if err != nil {
						runErr = err
						return
					}
					slog.Info("overdue sweep finished",
						"processed", fines.Processed, "skipped", fines.Skipped, "failed", fines.Failed)

					expiry, err := reservations.ExpirePickups(context.Background(), asOf)
					if err != nil {
						runErr = err
						return
					}
					slog.Info("reservation expiry finished",
						"processed", expiry.Processed, "failed", expiry.Failed)
				}),
			)

			if err := app.Start(context.Background()); err != nil {
				return err
			}
			if err := app.Stop(context.Background()); err != nil {
				slog.Error("failed to stop application", "error", err)
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&asOfFlag, "as-of", "", "sweep cutoff instant (RFC3339, defaults to now)")
	return cmd
}

func main() {
	root := &cobra.Command{
		Use:           "circulation",
		Short:         "Library circulation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newSweepCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
