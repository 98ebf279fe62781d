package cli

import (
	"context"
	"io"
	"os"

	"github.com/aretw0/hanoi/internal/config"
)

// RunOptions contains all the configuration for the menu and play commands.
// Zero values leave the configured setting untouched.
type RunOptions struct {
	ConfigPath string
	Disks      int
	MaxDisks   int
	Color      string
	Debug      bool
	JSON       bool
	Headless   bool
	Metrics    bool

	// Menu shows the main menu instead of starting a game right away.
	Menu bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o RunOptions) withDefaults() RunOptions {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// LoadConfig resolves the effective settings: the config file and
// environment first, then the command-line overrides in opts.
func LoadConfig(opts RunOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	if opts.MaxDisks > 0 {
		cfg.MaxDisks = opts.MaxDisks
	}
	if opts.Disks > 0 {
		cfg.SetDisks(opts.Disks)
	}
	cfg.FitDisks()
	if opts.Color != "" {
		cfg.Color = opts.Color
	}
	if opts.Metrics {
		cfg.Metrics = true
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Execute handles the 'menu' and 'play' commands.
func Execute(ctx context.Context, opts RunOptions) error {
	opts = opts.withDefaults()

	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	return RunSession(ctx, opts, cfg)
}
