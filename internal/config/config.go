// Package config loads the application's settings from a YAML file laid over the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/mayjs/mayjs3d/maze"
	"github.com/mayjs/mayjs3d/viewer"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	Resizable  bool   `yaml:"resizable"`
}

type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
}

// Config is the whole of the application's settings.
type Config struct {
	Window Window          `yaml:"window"`
	Log    Log             `yaml:"log"`
	Route  string          `yaml:"route"` // The screen shown at startup.
	Maze   maze.Settings   `yaml:"maze"`
	Viewer viewer.Settings `yaml:"viewer"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Window: Window{
			Width:     960,
			Height:    540,
			Title:     "MAY.JS",
			Resizable: true,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Route:  "/",
		Maze:   maze.DefaultSettings(),
		Viewer: viewer.DefaultSettings(),
	}
}

// Load reads the YAML file at path over the defaults and validates the result. Keys the file leaves out keep their
// default values, but a list given in the file replaces the default list whole. Unknown keys are an error.
func Load(path string) (Config, error) {

	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := Decode(file, &cfg); err != nil {
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil

}

// Decode reads YAML from r into cfg. An empty document leaves cfg untouched.
func Decode(r io.Reader, cfg *Config) error {

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	err := decoder.Decode(cfg)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		for _, msg := range typeErr.Errors {
			if strings.HasPrefix(msg, "line") {
				return fmt.Errorf("%w: %s", ErrInvalid, msg)
			}
		}
	}

	return err

}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate reports every setting that can't be used, wrapped in ErrInvalid.
func (cfg Config) Validate() error {

	var errs []error

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", cfg.Window.Width, cfg.Window.Height))
	}

	if !slices.Contains(logLevels, cfg.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", cfg.Log.Level))
	}

	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", cfg.Log.Format))
	}

	if cfg.Route == "" || !strings.HasPrefix(cfg.Route, "/") {
		errs = append(errs, fmt.Errorf("route: %q must start with /", cfg.Route))
	}

	if err := cfg.Maze.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("maze: %w", err))
	}

	if err := cfg.Viewer.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("viewer: %w", err))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))

}
