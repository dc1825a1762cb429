package forecast_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"place-forecast/internal/mcpclient"
	"place-forecast/internal/services/forecast"
	"place-forecast/pkg/logger"
)

// startToolServer runs an in-process streamable HTTP MCP server with a
// single text tool and returns its endpoint.
func startToolServer(t *testing.T, toolName string, handler func(req mcp.CallToolRequest) string) string {
	t.Helper()

	s := server.NewMCPServer(toolName+"-server", "0.0.1")
	s.AddTool(
		mcp.NewTool(toolName),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(handler(req)), nil
		},
	)

	ts := server.NewTestStreamableHTTPServer(s)
	t.Cleanup(ts.Close)

	return ts.URL
}

func TestPipeline_EndToEnd(t *testing.T) {
	var forecastArgs map[string]any

	geoURL := startToolServer(t, "forward_geocode", func(req mcp.CallToolRequest) string {
		return "1. Paris (Ile-de-France, France) -> lat=48.8566, lon=2.3522"
	})
	weatherURL := startToolServer(t, "get_forecast", func(req mcp.CallToolRequest) string {
		forecastArgs = req.GetArguments()
		return "Partly cloudy, high of 21C"
	})

	l := logger.NewZapLogger("test-app")
	dialer := mcpclient.New("test-app", "0.0.1", 5*time.Second, l)
	service := forecast.NewService(geoURL, weatherURL, dialer, l)

	result, err := service.ByPlace(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, "Paris", result.Place)
	assert.Equal(t, 48.8566, result.Coordinates.Latitude)
	assert.Equal(t, 2.3522, result.Coordinates.Longitude)
	assert.Equal(t, "Partly cloudy, high of 21C", result.Forecast)

	// The extracted values arrive verbatim at the forecaster.
	require.NotNil(t, forecastArgs)
	assert.InDelta(t, 48.8566, forecastArgs["latitude"], 1e-9)
	assert.InDelta(t, 2.3522, forecastArgs["longitude"], 1e-9)
}

func TestPipeline_ForecasterDownAfterGeocode(t *testing.T) {
	geoURL := startToolServer(t, "forward_geocode", func(req mcp.CallToolRequest) string {
		return "lat=48.8566, lon=2.3522"
	})

	l := logger.NewZapLogger("test-app")
	dialer := mcpclient.New("test-app", "0.0.1", 2*time.Second, l)
	service := forecast.NewService(geoURL, "http://127.0.0.1:1/mcp", dialer, l)

	_, err := service.ByPlace(context.Background(), "Paris")
	require.Error(t, err)

	var connErr *mcpclient.ConnectionError
	require.True(t, errors.As(err, &connErr))

	var stageErr *forecast.StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, forecast.StageForecast, stageErr.Stage)
}
