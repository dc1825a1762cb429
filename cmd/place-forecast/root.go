package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"place-forecast/config"
	"place-forecast/internal/mcpclient"
	"place-forecast/internal/services/forecast"
	"place-forecast/pkg/logger"
)

func newRootCmd(cnf *config.Config, l *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place-forecast <place>",
		Short: "Resolve a place name into a weather forecast via two MCP servers",
		Long: `place-forecast chains two MCP servers: a geocoder resolving the place
name to coordinates and a forecaster returning the forecast for them.
The forecast text is printed to stdout unmodified.`,
		Example: `  place-forecast "Paris"
  place-forecast "Ludwigshafen am Rhein" --geo-server http://127.0.0.1:8001/mcp`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &forecast.InvalidInputError{Reason: "expected exactly one place name argument"}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			place := strings.TrimSpace(args[0])
			if place == "" {
				return &forecast.InvalidInputError{Reason: "place name is empty"}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			service := newService(cmd, cnf, l)

			result, err := service.ByPlace(ctx, place)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Forecast)
			return nil
		},
	}

	cmd.PersistentFlags().String("geo-server", cnf.GeoServer,
		"geocoder MCP server URI (default from GEO_SERVER)")
	cmd.PersistentFlags().String("weather-server", cnf.WeatherServer,
		"forecaster MCP server URI (default from WEATHER_SERVER)")

	cmd.AddCommand(newServeCmd(cnf, l))

	return cmd
}

// newService wires the orchestrator from config and the endpoint flags.
// Flags default to the env-derived config values, so an explicit flag
// always wins over the environment.
func newService(cmd *cobra.Command, cnf *config.Config, l *logger.Logger) *forecast.Service {
	geoServer, _ := cmd.Flags().GetString("geo-server")
	weatherServer, _ := cmd.Flags().GetString("weather-server")

	dialer := mcpclient.New(
		cnf.AppName,
		cnf.AppVersion,
		time.Duration(cnf.RequestTimeout)*time.Second,
		l,
	)

	return forecast.NewService(geoServer, weatherServer, dialer, l)
}
