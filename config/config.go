// Package config loads the routegraph YAML configuration.
//
// Values are resolved in this order, later wins: built-in defaults, the YAML
// file, the MAPBOX_ACCESS_TOKEN environment variable, command-line flags
// (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/routegraph/routegraph/dijkstra"
	"github.com/routegraph/routegraph/internal/logging"
	"github.com/routegraph/routegraph/mapbox"
)

// TokenEnv names the environment variable that overrides Mapbox.Token.
const TokenEnv = "MAPBOX_ACCESS_TOKEN"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root of the configuration file.
type Config struct {
	Log      LogOptions      `yaml:"log"`
	Dijkstra DijkstraOptions `yaml:"dijkstra"`
	Mapbox   MapboxOptions   `yaml:"mapbox"`
	Export   ExportOptions   `yaml:"export"`
}

// LogOptions configures the process logger.
type LogOptions struct {
	Level string `yaml:"level"`
}

// DijkstraOptions configures shortest-path runs.
type DijkstraOptions struct {
	Strategy string `yaml:"strategy"`
}

// MapboxOptions configures the distance-matrix client.
type MapboxOptions struct {
	Token      string        `yaml:"token"`
	BaseURL    string        `yaml:"base-url"`
	Profile    string        `yaml:"profile"`
	Annotation string        `yaml:"annotation"`
	Timeout    time.Duration `yaml:"timeout"`
}

// ExportOptions configures visualisation output.
type ExportOptions struct {
	Dir string `yaml:"dir"`
	// MapToken is the public token embedded in map pages; empty means Mapbox.Token.
	MapToken string `yaml:"map-token"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:      LogOptions{Level: "info"},
		Dijkstra: DijkstraOptions{Strategy: dijkstra.LinearScan.String()},
		Mapbox: MapboxOptions{
			BaseURL:    mapbox.DefaultBaseURL,
			Profile:    string(mapbox.Driving),
			Annotation: string(mapbox.Duration),
			Timeout:    30 * time.Second,
		},
		Export: ExportOptions{Dir: "out"},
	}
}

// Load reads file on top of the defaults, applies the environment and
// validates the result. An empty file name skips the file.
func Load(file string) (Config, error) {
	cfg := Default()
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", file, err)
		}
	}
	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ApplyEnv overrides values from the environment through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if tok, ok := lookup(TokenEnv); ok && tok != "" {
		c.Mapbox.Token = tok
	}
}

// Validate reports every invalid value at once. The Mapbox token is not
// required here; commands that call the API check it themselves.
func (c Config) Validate() error {
	var result *multierror.Error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		result = multierror.Append(result, fmt.Errorf("%w: log.level: %v", ErrInvalid, err))
	}
	if _, err := dijkstra.ParseStrategy(c.Dijkstra.Strategy); err != nil {
		result = multierror.Append(result, fmt.Errorf("%w: dijkstra.strategy: %v", ErrInvalid, err))
	}
	if _, err := mapbox.ParseProfile(c.Mapbox.Profile); err != nil {
		result = multierror.Append(result, fmt.Errorf("%w: mapbox.profile: %v", ErrInvalid, err))
	}
	if _, err := mapbox.ParseAnnotation(c.Mapbox.Annotation); err != nil {
		result = multierror.Append(result, fmt.Errorf("%w: mapbox.annotation: %v", ErrInvalid, err))
	}
	if c.Mapbox.Timeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("%w: mapbox.timeout must be positive", ErrInvalid))
	}
	if c.Export.Dir == "" {
		result = multierror.Append(result, fmt.Errorf("%w: export.dir is empty", ErrInvalid))
	}

	return result.ErrorOrNil()
}

// MapToken returns the token for map pages.
func (c Config) MapToken() string {
	if c.Export.MapToken != "" {
		return c.Export.MapToken
	}

	return c.Mapbox.Token
}
