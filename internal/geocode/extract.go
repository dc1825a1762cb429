// Package geocode extracts coordinates from unstructured geocoder responses.
package geocode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"place-forecast/internal/models"
)

// ParseError reports a geocoder response that did not yield valid
// coordinates. Raw carries the offending response text for diagnostics.
type ParseError struct {
	Field  string
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot extract %s: %s (response: %q)", e.Field, e.Reason, e.Raw)
}

// A labeled numeric token: signed, optional decimal fraction. The label may
// be separated from the value by whitespace, a colon, or an equals sign.
const numToken = `([+-]?[0-9]+(?:\.[0-9]+)?)`

var (
	defaultLatPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\blat(?:itude)?\b\s*[:=]?\s*` + numToken),
	}
	defaultLonPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:longitude|lng|lon)\b\s*[:=]?\s*` + numToken),
	}
)

// Extractor is a pure text scanner: no I/O, no retries, no shared state.
// The response grammar is not pinned down by the geocoder, so the label
// patterns are configurable; each pattern must contain exactly one capture
// group for the numeric token.
type Extractor struct {
	lat []*regexp.Regexp
	lon []*regexp.Regexp
}

type Option func(*Extractor)

func WithLatitudePatterns(patterns ...*regexp.Regexp) Option {
	return func(e *Extractor) { e.lat = patterns }
}

func WithLongitudePatterns(patterns ...*regexp.Regexp) Option {
	return func(e *Extractor) { e.lon = patterns }
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		lat: defaultLatPatterns,
		lon: defaultLonPatterns,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract scans text left to right and returns the first latitude-labeled
// and first longitude-labeled numeric tokens as Coordinates. Surrounding
// prose is ignored. A missing label, an unparseable token, or an
// out-of-range value fails with *ParseError.
func (e *Extractor) Extract(text string) (models.Coordinates, error) {
	lat, err := extractField(text, "latitude", e.lat)
	if err != nil {
		return models.Coordinates{}, err
	}

	lon, err := extractField(text, "longitude", e.lon)
	if err != nil {
		return models.Coordinates{}, err
	}

	coords := models.Coordinates{Latitude: lat, Longitude: lon}
	if err := coords.Validate(); err != nil {
		return models.Coordinates{}, &ParseError{
			Field:  "coordinates",
			Reason: err.Error(),
			Raw:    text,
		}
	}

	return coords, nil
}

func extractField(text, field string, patterns []*regexp.Regexp) (float64, error) {
	token, ok := firstMatch(text, patterns)
	if !ok {
		return 0, &ParseError{Field: field, Reason: "no labeled numeric value found", Raw: text}
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, &ParseError{
			Field:  field,
			Reason: fmt.Sprintf("token %q is not a finite number", token),
			Raw:    text,
		}
	}

	return value, nil
}

// firstMatch returns the leftmost capture across all patterns, so multiple
// occurrences resolve to the first one in the text regardless of which
// pattern matched it.
func firstMatch(text string, patterns []*regexp.Regexp) (string, bool) {
	best := -1
	var token string
	for _, p := range patterns {
		loc := p.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		if best == -1 || loc[0] < best {
			best = loc[0]
			token = text[loc[2]:loc[3]]
		}
	}
	return token, best >= 0
}

var defaultExtractor = NewExtractor()

// Extract runs the default extractor.
func Extract(text string) (models.Coordinates, error) {
	return defaultExtractor.Extract(text)
}
