package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/hanoi/internal/logging"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "hanoi.yaml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the game settings.
// Precedence: defaults < YAML file < environment < command-line flags.
type Config struct {
	Disks    int    `mapstructure:"disks" env:"HANOI_DISKS"`
	MaxDisks int    `mapstructure:"max_disks" env:"HANOI_MAX_DISKS"`
	Color    string `mapstructure:"color" env:"HANOI_COLOR"`
	LogLevel string `mapstructure:"log_level" env:"HANOI_LOG_LEVEL"`
	Metrics  bool   `mapstructure:"metrics" env:"HANOI_METRICS"`

	// disksSet marks a disk count given by the file, the environment or a flag.
	disksSet bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Disks:    domain.DefaultDisks,
		MaxDisks: domain.DefaultMaxDisks,
		Color:    ColorAuto,
		LogLevel: "warn",
	}
}

// Load builds a Config from defaults, the YAML file at path and the environment.
// An empty path means DefaultFile, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		set, err := decodeYAML(data, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		cfg.disksSet = set
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file; defaults apply.
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	if _, ok := os.LookupEnv("HANOI_DISKS"); ok {
		cfg.disksSet = true
	}

	cfg.FitDisks()
	return cfg, nil
}

// SetDisks sets an explicit disk count, which Validate checks against the ceiling.
func (c *Config) SetDisks(n int) {
	c.Disks = n
	c.disksSet = true
}

// FitDisks caps the built-in disk count at MaxDisks. An explicit count is
// left as is for Validate to judge.
func (c *Config) FitDisks() {
	if !c.disksSet {
		c.Disks = min(domain.DefaultDisks, c.MaxDisks)
	}
}

// decodeYAML fills cfg from data and reports whether the file sets disks.
func decodeYAML(data []byte, cfg *Config) (bool, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return false, err
	}
	if len(raw) == 0 {
		return false, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return false, err
	}
	if err := decoder.Decode(raw); err != nil {
		return false, err
	}
	_, set := raw["disks"]
	return set, nil
}

// Validate checks the ranges of every field.
func (c Config) Validate() error {
	if c.MaxDisks < domain.MinDisks || c.MaxDisks > domain.HardMaxDisks {
		return fmt.Errorf("%w: max_disks must be between %d and %d, got %d",
			domain.ErrInvalidConfiguration, domain.MinDisks, domain.HardMaxDisks, c.MaxDisks)
	}
	if c.Disks < domain.MinDisks || c.Disks > c.MaxDisks {
		return fmt.Errorf("%w: disks must be between %d and %d, got %d",
			domain.ErrInvalidConfiguration, domain.MinDisks, c.MaxDisks, c.Disks)
	}
	switch strings.ToLower(c.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be one of auto, always, never; got %q",
			domain.ErrInvalidConfiguration, c.Color)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
	}
	return nil
}
