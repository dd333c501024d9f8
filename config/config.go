// Package config loads windemo settings from defaults, an optional TOML or
// YAML file, and WINDEMO_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/termwin/render"
)

// EnvPrefix is prepended to every environment override, e.g. WINDEMO_FPS
const EnvPrefix = "WINDEMO"

// Backends lists the accepted output backends
var Backends = []string{"ansi", "tcell", "tea"}

// ErrInvalid marks a configuration that failed validation
var ErrInvalid = errors.New("invalid config")

// Config holds all windemo configuration.
// Environment fields carry no defaults; unset variables leave the value as loaded.
type Config struct {
	Backend  string `toml:"backend" yaml:"backend" split_words:"true"`
	FPS      int    `toml:"fps" yaml:"fps" split_words:"true"`
	Frames   int    `toml:"frames" yaml:"frames" split_words:"true"` // 0 runs until quit
	LineType string `toml:"line_type" yaml:"line_type" split_words:"true"`
	Padding  int    `toml:"padding" yaml:"padding" split_words:"true"`
	Debug    bool   `toml:"debug" yaml:"debug" split_words:"true"`
	LogDir   string `toml:"log_dir" yaml:"log_dir" split_words:"true"`
	LogLevel string `toml:"log_level" yaml:"log_level" split_words:"true"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Backend:  "ansi",
		FPS:      20,
		Frames:   0,
		LineType: "double",
		Padding:  1,
		Debug:    false,
		LogDir:   "logs",
		LogLevel: "debug",
	}
}

// Load builds a Config from defaults, the file at path when non-empty, and the
// environment, then validates it
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		return fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks every field and reports the first problem
func (c *Config) Validate() error {
	if !validBackend(c.Backend) {
		return fmt.Errorf("%w: backend %q, want one of %s", ErrInvalid, c.Backend, strings.Join(Backends, ", "))
	}
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("%w: fps %d out of range 1..240", ErrInvalid, c.FPS)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: frames %d is negative", ErrInvalid, c.Frames)
	}
	if _, err := render.ParseLineType(c.LineType); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Padding < 0 {
		return fmt.Errorf("%w: padding %d is negative", ErrInvalid, c.Padding)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// LineStyle returns the parsed border line type
func (c *Config) LineStyle() render.LineType {
	lt, _ := render.ParseLineType(c.LineType)
	return lt
}

func validBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}
