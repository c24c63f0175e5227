// Package config loads consolidator settings from an optional TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"consolidator/pkg/consolidate"
)

// ErrUnsupportedFormat is returned for config files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config is the merged view of defaults and the config file.
type Config struct {
	Options consolidate.Options
	Log     LogConfig
}

// LogConfig holds logger settings.
type LogConfig struct {
	Debug bool
	Level string // zap level name; empty keeps the mode's default
}

type fileConfig struct {
	Src    string  `toml:"src" yaml:"src"`
	Output string  `toml:"output" yaml:"output"`
	Log    fileLog `toml:"log" yaml:"log"`
}

type fileLog struct {
	Debug *bool  `toml:"debug" yaml:"debug"`
	Level string `toml:"level" yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Options: consolidate.DefaultOptions()}
}

// Load reads path and overlays the values it defines onto Default().
// The format is chosen by extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	var raw fileConfig

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return raw.apply(Default()), nil
}

// apply overlays non-empty file values onto cfg.
func (raw fileConfig) apply(cfg Config) Config {
	if src := strings.TrimSpace(raw.Src); src != "" {
		cfg.Options.SourceDir = src
	}
	if out := strings.TrimSpace(raw.Output); out != "" {
		cfg.Options.OutputFile = out
	}
	if raw.Log.Debug != nil {
		cfg.Log.Debug = *raw.Log.Debug
	}
	if level := strings.TrimSpace(raw.Log.Level); level != "" {
		cfg.Log.Level = strings.ToLower(level)
	}
	return cfg
}
