package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"place-forecast/config"
	v1 "place-forecast/internal/controllers/http/v1"
	"place-forecast/pkg/httpserver"
	"place-forecast/pkg/logger"
)

func newServeCmd(cnf *config.Config, l *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run a long-lived HTTP server exposing GET /forecast?place=",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newService(cmd, cnf, l)

			app := httpserver.InitFiberServer(cnf.AppName)

			v1.NewRouter(
				app,
				service,
				l,
			)

			go func() {
				if err := app.Listen(":" + cnf.Port); err != nil {
					l.Fatal("cannot run the server", map[string]any{"err": err})
				}
			}()

			l.Info("application started successfully", map[string]any{"port": cnf.Port})

			sigCh := make(chan os.Signal, 2)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh

			l.Warning("stopping application services")
			signal.Stop(sigCh)
			close(sigCh)

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer shutdownCancel()

			return app.ShutdownWithContext(shutdownCtx)
		},
	}
}
