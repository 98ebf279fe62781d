package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/hanoi/internal/config"
	"github.com/aretw0/hanoi/internal/logging"
	"github.com/aretw0/hanoi/internal/presentation/tui"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/runner"
	"github.com/muesli/termenv"
)

// createLogger configures the application logger.
// It writes to w (Stderr in practice) to stay out of the game UI on Stdout.
func createLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		lvl = slog.LevelWarn
	}
	return logging.NewWithWriter(w, lvl)
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// createRunnerOptions prepares the functional options for the Runner.
func createRunnerOptions(opts RunOptions, cfg config.Config, logger *slog.Logger, profile termenv.Profile, hooks domain.LifecycleHooks) []runner.Option {
	ropts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithHeadless(opts.Headless),
		runner.WithHooks(hooks),
		runner.WithDefaultDisks(cfg.Disks),
		runner.WithMaxDisks(cfg.MaxDisks),
	}

	if opts.JSON {
		return append(ropts, runner.WithInputHandler(runner.NewJSONHandler(opts.Stdin, opts.Stdout)))
	}

	board := tui.NewBoardRenderer(profile, !opts.Headless)
	hopts := []runner.TextHandlerOption{runner.WithTextHandlerBoard(board.Render)}
	if !opts.Headless {
		if render := newContentRenderer(opts.Stdout, profile, logger); render != nil {
			hopts = append(hopts, runner.WithTextHandlerRenderer(render))
		}
	}

	return append(ropts, runner.WithInputHandler(runner.NewTextHandler(opts.Stdin, opts.Stdout, hopts...)))
}

// newContentRenderer returns a glamour renderer when out can show styled text,
// or nil to print markdown as-is.
func newContentRenderer(out io.Writer, profile termenv.Profile, logger *slog.Logger) runner.ContentRenderer {
	if profile == termenv.Ascii && !tui.IsTerminal(out) {
		return nil
	}

	style := "auto"
	if profile == termenv.Ascii {
		style = "notty"
	}
	render, err := tui.NewRenderer(style)
	if err != nil {
		logger.Warn("Markdown renderer unavailable", "style", style, "err", err)
		return nil
	}
	return render
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnInitialize: func(e *domain.GameEvent) {
			logger.Debug("Game initialized", "disks", e.Disks)
		},
		OnMove: func(e *domain.MoveEvent) {
			logger.Debug("Disk moved", "disk", e.Disk, "from", e.From, "to", e.To, "moves", e.Moves)
		},
		OnReject: func(e *domain.MoveEvent) {
			logger.Debug("Move rejected", "from", e.From, "to", e.To, "err", e.Err)
		},
		OnWin: func(e *domain.GameEvent) {
			logger.Debug("Game won", "disks", e.Disks, "moves", e.Moves)
		},
		OnAbandon: func(e *domain.GameEvent) {
			logger.Debug("Game abandoned", "disks", e.Disks, "moves", e.Moves)
		},
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}

func logCompletion(w io.Writer, err error, quiet bool) {
	if quiet || !isInterrupted(err) {
		return
	}
	// The prompt line is still open when Ctrl+C lands.
	fmt.Fprintln(w)
	printSystemMessage(w, "Interrupted. Goodbye!")
}
