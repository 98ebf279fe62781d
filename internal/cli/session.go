package cli

import (
	"context"
	"io"
	"strings"

	"github.com/aretw0/hanoi"
	"github.com/aretw0/hanoi/internal/config"
	"github.com/aretw0/hanoi/internal/presentation/tui"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/observability"
	"github.com/aretw0/hanoi/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// RunSession plays one session: the menu loop, or a single game when opts.Menu is false.
func RunSession(ctx context.Context, opts RunOptions, cfg config.Config) error {
	opts = opts.withDefaults()
	logger := createLogger(opts.Stderr, cfg.LogLevel)
	quiet := opts.JSON || opts.Headless
	profile := tui.Profile(cfg.Color, opts.Stdout)

	if !quiet {
		tui.PrintBanner(opts.Stdout, profile, strings.TrimSpace(hanoi.Version))
	}

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	hooks := domain.ComposeHooks(createDebugHooks(logger), metrics.Hooks())

	sm := runner.NewSignalManager(ctx)
	defer sm.Stop()

	r := runner.NewRunner(createRunnerOptions(opts, cfg, logger, profile, hooks)...)
	if c, ok := r.Handler.(io.Closer); ok {
		defer c.Close()
	}

	var runErr error
	if opts.Menu {
		runErr = r.Run(sm.Context())
	} else {
		runErr = r.Play(sm.Context(), cfg.Disks)
	}

	if runErr != nil {
		sm.Settle()
	}
	if runErr == nil && sm.Interrupted() {
		runErr = sm.Context().Err()
	}

	logCompletion(opts.Stdout, runErr, quiet)

	if cfg.Metrics {
		if err := observability.WriteText(opts.Stderr, reg); err != nil {
			logger.Warn("Failed to write metrics", "err", err)
		}
	}

	return handleExecutionError(runErr)
}
