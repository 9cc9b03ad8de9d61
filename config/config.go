// Package config loads demo configuration and declarative widget trees from TOML.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed default.toml
var defaultConfig []byte

// ErrInvalidLevel is returned for an unrecognized log level
var ErrInvalidLevel = errors.New("invalid log level")

// Config is the root of a configuration file
type Config struct {
	Log    LogConfig `toml:"log"`
	Layout Node      `toml:"layout"`
}

// LogConfig selects where diagnostic logs go, the terminal itself is never used
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// Default returns the embedded demo configuration
func Default() (*Config, error) {
	return Parse(defaultConfig)
}

// Load reads and parses a configuration file
func Load(path string, logger *slog.Logger) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("config loaded", "path", path, "root", cfg.Layout.Kind, "children", len(cfg.Layout.Children))
	return cfg, nil
}

// Parse decodes TOML, unknown keys are rejected
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("decode config at %d:%d: %w", row, col, err)
		}
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// SlogLevel parses the configured level, empty means info
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if c.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, c.Level)
	}
	return lvl, nil
}

// NewLogger opens the log destination, the returned closer releases it
// Without a path logs are discarded
func (c LogConfig) NewLogger() (*slog.Logger, io.Closer, error) {
	lvl, err := c.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	if c.Path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(c.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})), f, nil
}
