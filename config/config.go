package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppName    string `envconfig:"APP_NAME" yaml:"app_name"`
	AppVersion string `envconfig:"APP_VERSION" yaml:"app_version"`
	AppEnv     string `envconfig:"APP_ENV" yaml:"app_env"`
	Port       string `envconfig:"PORT" yaml:"port"`

	// MCP server endpoints. Flags override these at the CLI level.
	GeoServer     string `envconfig:"GEO_SERVER" yaml:"geo_server"`
	WeatherServer string `envconfig:"WEATHER_SERVER" yaml:"weather_server"`

	// Per-call HTTP timeout in seconds for both MCP servers.
	RequestTimeout int `envconfig:"REQUEST_TIMEOUT" yaml:"request_timeout"`

	SentryDSN string `envconfig:"SENTRY_DSN" yaml:"sentry_dsn,omitempty"`
}

// defaultConfig seeds the struct before the YAML file and environment are
// applied, so each layer only overrides what it actually sets. Defaults must
// not live in envconfig tags: those are applied whenever the env var is
// unset and would clobber values loaded from the file.
func defaultConfig() Config {
	return Config{
		AppName:        "place-forecast",
		AppVersion:     "1.0.0",
		AppEnv:         "development",
		Port:           "8080",
		GeoServer:      "http://127.0.0.1:8001/mcp",
		WeatherServer:  "http://127.0.0.1:8000/mcp",
		RequestTimeout: 30,
	}
}

func NewConfig() *Config {
	cnf := defaultConfig()

	// Read from YAML file first
	if yamlData, err := os.ReadFile("config/config.yaml"); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			panic(fmt.Sprintf("Warning: failed to parse YAML config: %v\n", err))
		}
	}

	// Override with environment variables
	if err := envconfig.Process("", &cnf); err != nil {
		panic(fmt.Errorf("error environment variable parsing: %w", err))
	}

	return &cnf
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
