package geocode_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"place-forecast/internal/geocode"
)

func TestExtract_LabeledFormats(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantLat float64
		wantLon float64
	}{
		{
			name:    "equals separator",
			text:    "Resolved: lat=48.8566, lon=2.3522",
			wantLat: 48.8566,
			wantLon: 2.3522,
		},
		{
			name:    "colon separator with spaces",
			text:    "lat: 48.85, lon: 2.35",
			wantLat: 48.85,
			wantLon: 2.35,
		},
		{
			name:    "full labels",
			text:    "latitude 40.7128 longitude -74.006",
			wantLat: 40.7128,
			wantLon: -74.006,
		},
		{
			name:    "uppercase labels",
			text:    "LAT=52.52 LON=13.41",
			wantLat: 52.52,
			wantLon: 13.41,
		},
		{
			name:    "integer coordinates",
			text:    "lat=48, lon=2",
			wantLat: 48,
			wantLon: 2,
		},
		{
			name:    "signed values",
			text:    "lat=-33.8688, lon=+151.2093",
			wantLat: -33.8688,
			wantLon: 151.2093,
		},
		{
			name:    "surrounding prose",
			text:    "1. Paris (Ile-de-France, France) -> lat=48.8566, lon=2.3522 (source: nominatim)",
			wantLat: 48.8566,
			wantLon: 2.3522,
		},
		{
			name:    "lng label",
			text:    "position lat: 10.5 lng: 20.25",
			wantLat: 10.5,
			wantLon: 20.25,
		},
		{
			name:    "extra whitespace",
			text:    "  lat =  48.85 \n  lon =  2.35  ",
			wantLat: 48.85,
			wantLon: 2.35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coords, err := geocode.Extract(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLat, coords.Latitude)
			assert.Equal(t, tt.wantLon, coords.Longitude)
		})
	}
}

func TestExtract_FirstMatchWins(t *testing.T) {
	coords, err := geocode.Extract("lat=48.85, lon=2.35; alternative: lat=40.71, lon=-74.0")
	require.NoError(t, err)
	assert.Equal(t, 48.85, coords.Latitude)
	assert.Equal(t, 2.35, coords.Longitude)
}

func TestExtract_Failures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "no coordinates at all", text: "I could not find that place"},
		{name: "empty text", text: ""},
		{name: "missing longitude", text: "lat=48.85"},
		{name: "missing latitude", text: "lon=2.35"},
		{name: "latitude out of range", text: "lat=91.0, lon=2.35"},
		{name: "longitude out of range", text: "lat=48.85, lon=-180.5"},
		{name: "unlabeled numbers", text: "48.85 2.35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := geocode.Extract(tt.text)
			require.Error(t, err)

			var parseErr *geocode.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.text, parseErr.Raw)
		})
	}
}

func TestExtract_ErrorCarriesRawText(t *testing.T) {
	raw := "I could not find that place"
	_, err := geocode.Extract(raw)
	require.Error(t, err)

	var parseErr *geocode.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, raw, parseErr.Raw)
	assert.Contains(t, err.Error(), raw)
}

func TestNewExtractor_CustomPatterns(t *testing.T) {
	extractor := geocode.NewExtractor(
		geocode.WithLatitudePatterns(regexp.MustCompile(`y:([+-]?[0-9]+(?:\.[0-9]+)?)`)),
		geocode.WithLongitudePatterns(regexp.MustCompile(`x:([+-]?[0-9]+(?:\.[0-9]+)?)`)),
	)

	coords, err := extractor.Extract("point y:48.85 x:2.35")
	require.NoError(t, err)
	assert.Equal(t, 48.85, coords.Latitude)
	assert.Equal(t, 2.35, coords.Longitude)
}

func TestExtract_BoundaryValues(t *testing.T) {
	coords, err := geocode.Extract("lat=-90, lon=180")
	require.NoError(t, err)
	assert.Equal(t, -90.0, coords.Latitude)
	assert.Equal(t, 180.0, coords.Longitude)
}
