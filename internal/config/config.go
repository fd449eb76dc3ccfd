// Package config loads relcheck settings from relcheck.yaml.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"relcheck/internal/analyze"
	"relcheck/internal/catalog"
	"relcheck/internal/diagnostic"
)

// DefaultFile is the config file name looked up when none is given.
const DefaultFile = "relcheck.yaml"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Source selects the model source the inputs are read with.
type Source string

const (
	// SourceModel reads YAML model files.
	SourceModel Source = "model"
	// SourceGo loads Go package patterns.
	SourceGo Source = "go"
)

// Config holds relcheck settings.
type Config struct {
	// Source is the model source. Default: "model".
	Source Source `yaml:"source,omitempty"`

	// Format is the diagnostic output format. Default: "text".
	Format diagnostic.Format `yaml:"format,omitempty"`

	// LogLevel is one of debug, info, warn, error. Default: "warn".
	LogLevel string `yaml:"log_level,omitempty"`

	// Markers overrides the marker type names. Empty names fall back to the
	// source's defaults: the JPA names for model files, orm.* for Go.
	Markers catalog.Names `yaml:"markers,omitempty"`

	// Library lists model files loaded ahead of the inputs (model source only).
	Library []string `yaml:"library,omitempty"`
}

// Default returns the settings used without a config file.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()

	return c
}

// Load reads the config at path. A missing DefaultFile is not an error;
// any other missing path is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && path == DefaultFile {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Source == "" {
		c.Source = SourceModel
	}
	if c.Format == "" {
		c.Format = diagnostic.FormatText
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// MarkerNames returns the configured marker names completed with the defaults of the source.
func (c *Config) MarkerNames() catalog.Names {
	if c.Source == SourceGo {
		return c.Markers.WithDefaults(analyze.Names())
	}

	return c.Markers.WithDefaults(catalog.DefaultNames())
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}

	return level, nil
}

// Validate rejects unknown sources, formats and log levels.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceModel, SourceGo:
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidConfig, c.Source)
	}

	switch c.Format {
	case diagnostic.FormatText, diagnostic.FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	if c.Source == SourceGo && len(c.Library) > 0 {
		return fmt.Errorf("%w: library files require the model source", ErrInvalidConfig)
	}

	return nil
}
