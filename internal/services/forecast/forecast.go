// Package forecast sequences the geocoder and forecaster calls into one
// place-name-to-forecast pipeline.
package forecast

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"place-forecast/internal/geocode"
	"place-forecast/internal/mcpclient"
	"place-forecast/internal/models"
	"place-forecast/pkg/logger"
)

const (
	geocodeToolName  = "forward_geocode"
	forecastToolName = "get_forecast"
)

// Service runs the pipeline: geocode the place, extract coordinates, fetch
// the forecast. Each run is one-shot and stateless; sessions are opened for
// exactly one tool call and closed on every exit path. No retries, no
// fallback coordinates, no caching.
type Service struct {
	geoEndpoint     string
	weatherEndpoint string
	dialer          mcpclient.Dialer
	extractor       *geocode.Extractor
	l               *logger.Logger
}

func NewService(geoEndpoint, weatherEndpoint string, dialer mcpclient.Dialer, l *logger.Logger) *Service {
	return &Service{
		geoEndpoint:     geoEndpoint,
		weatherEndpoint: weatherEndpoint,
		dialer:          dialer,
		extractor:       geocode.NewExtractor(),
		l:               l,
	}
}

// ByPlace resolves a free-text place name into a forecast. It either returns
// a complete Result or a single stage-tagged error; there is no partial
// success mode.
func (s *Service) ByPlace(ctx context.Context, place string) (models.Result, error) {
	result := models.Result{Place: strings.TrimSpace(place)}

	if result.Place == "" {
		return result, &InvalidInputError{Reason: "place name is empty"}
	}
	if err := validateEndpoint(s.geoEndpoint); err != nil {
		return result, err
	}
	if err := validateEndpoint(s.weatherEndpoint); err != nil {
		return result, err
	}

	s.l.Info("resolving place", map[string]any{
		"place":   result.Place,
		"geo":     s.geoEndpoint,
		"weather": s.weatherEndpoint,
	})

	coords, err := s.resolveCoordinates(ctx, result.Place)
	if err != nil {
		return result, &StageError{Stage: StageGeocode, Err: err}
	}
	result.Coordinates = coords

	s.l.Info("extracted coordinates", map[string]any{
		"place":  result.Place,
		"coords": coords.String(),
	})

	forecastText, err := s.fetchForecast(ctx, coords)
	if err != nil {
		return result, &StageError{Stage: StageForecast, Err: err}
	}
	result.Forecast = forecastText

	return result, nil
}

func (s *Service) resolveCoordinates(ctx context.Context, place string) (models.Coordinates, error) {
	session, err := s.dialer.Connect(ctx, s.geoEndpoint)
	if err != nil {
		return models.Coordinates{}, err
	}
	defer session.Close()

	toolName, err := session.FindTool(ctx, geocodeToolName)
	if err != nil {
		return models.Coordinates{}, err
	}

	text, err := session.CallTool(ctx, toolName, map[string]any{"query": place})
	if err != nil {
		return models.Coordinates{}, err
	}

	s.l.Debug("geocoder response", map[string]any{"place": place, "text": text})

	return s.extractor.Extract(text)
}

func (s *Service) fetchForecast(ctx context.Context, coords models.Coordinates) (string, error) {
	session, err := s.dialer.Connect(ctx, s.weatherEndpoint)
	if err != nil {
		return "", err
	}
	defer session.Close()

	toolName, err := session.FindTool(ctx, forecastToolName)
	if err != nil {
		return "", err
	}

	return session.CallTool(ctx, toolName, map[string]any{
		"latitude":  coords.Latitude,
		"longitude": coords.Longitude,
	})
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return &InvalidInputError{Reason: fmt.Sprintf("malformed endpoint URI %q: %v", endpoint, err)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &InvalidInputError{
			Reason: fmt.Sprintf("endpoint %q has unsupported scheme %q: use http:// or https://", endpoint, u.Scheme),
		}
	}
	if u.Host == "" {
		return &InvalidInputError{Reason: fmt.Sprintf("endpoint %q has no host", endpoint)}
	}
	return nil
}
