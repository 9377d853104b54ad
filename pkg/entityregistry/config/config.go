package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Settings configures a registry.
type Settings struct {
	// Name identifies the registry in logs, metrics and spans.
	Name string `yaml:"name" json:"name" toml:"name"`

	// InitialCapacity presizes the entity map. Zero means no presizing.
	InitialCapacity int `yaml:"initial_capacity" json:"initial_capacity" toml:"initial_capacity"`

	Logging Logging `yaml:"logging" json:"logging" toml:"logging"`
	Metrics Metrics `yaml:"metrics" json:"metrics" toml:"metrics"`
	Tracing Tracing `yaml:"tracing" json:"tracing" toml:"tracing"`
}

// Logging configures the log observer.
type Logging struct {
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" json:"level" toml:"level"`
}

// Metrics configures the OpenTelemetry metrics observer.
type Metrics struct {
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`
}

// Tracing configures the OpenTelemetry span observer.
type Tracing struct {
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`
}

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("invalid registry settings")

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		Name: "default",
		Logging: Logging{
			Level: "info",
		},
	}
}

// Validate checks the settings for values a registry cannot use.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSettings)
	}
	if s.InitialCapacity < 0 {
		return fmt.Errorf("%w: initial_capacity must not be negative, got %d", ErrInvalidSettings, s.InitialCapacity)
	}
	if _, err := parseLevel(s.Logging.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// SlogLevel returns the configured log level. Unknown values map to info.
func (s Settings) SlogLevel() slog.Level {
	level, err := parseLevel(s.Logging.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
