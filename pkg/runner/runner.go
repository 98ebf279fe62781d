package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/hanoi/internal/logging"
	"github.com/aretw0/hanoi/pkg/domain"
)

// Runner drives games through the menu, prompt and move loop.
// It owns no board between games: each Play creates a fresh domain.State.
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on Stdin/Stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Hooks are installed on every game.
	Hooks domain.LifecycleHooks

	// Headless skips the "Press Enter" pause after a win.
	Headless bool

	DefaultDisks int
	MaxDisks     int
	Rules        string
}

// NewRunner creates a Runner with default Stdin/Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger:       logging.NewNop(),
		DefaultDisks: domain.DefaultDisks,
		MaxDisks:     domain.DefaultMaxDisks,
		Rules:        DefaultRules,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run shows the main menu until the player exits.
// Running out of input ends the loop cleanly; cancellation returns ctx.Err().
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := r.output(ctx,
			message(menuText),
			prompt(domain.InputMenu, "Enter your choice:"),
		); err != nil {
			return err
		}

		line, err := r.Handler.Input(ctx)
		if err != nil {
			return r.finish(err)
		}

		choice, err := ParseMenuChoice(line)
		if err != nil {
			r.Logger.Debug("menu choice rejected", "input", line)
			if err := r.output(ctx, message("Invalid choice.")); err != nil {
				return err
			}
			continue
		}

		switch choice {
		case MenuPlay:
			n, err := r.askDisks(ctx)
			if err != nil {
				return r.finish(err)
			}
			if err := r.play(ctx, n); err != nil {
				return r.finish(err)
			}
		case MenuRules:
			if err := r.showRules(ctx); err != nil {
				return err
			}
		case MenuExit:
			return r.output(ctx, message("Goodbye!"))
		}
	}
}

// Play runs a single game with n disks, skipping the menu.
// It returns when the game is won or the player quits.
func (r *Runner) Play(ctx context.Context, n int) error {
	return r.finish(r.play(ctx, n))
}

func (r *Runner) askDisks(ctx context.Context) (int, error) {
	ask := fmt.Sprintf("Enter number of disks (%d to %d):", domain.MinDisks, r.MaxDisks)
	if err := r.output(ctx, prompt(domain.InputDisks, ask)); err != nil {
		return 0, err
	}

	line, err := r.Handler.Input(ctx)
	if err != nil {
		return 0, err
	}

	n, err := ParseDiskCount(line, domain.MinDisks, r.MaxDisks)
	if err != nil {
		r.Logger.Info("Invalid disk count, using default", "input", line, "default", r.DefaultDisks, "err", err)
		if err := r.output(ctx, message(fmt.Sprintf("Invalid. Using %d disks.", r.DefaultDisks))); err != nil {
			return 0, err
		}
		return r.DefaultDisks, nil
	}
	return n, nil
}

func (r *Runner) play(ctx context.Context, n int) error {
	state, err := domain.NewState(
		domain.WithMaxDisks(r.MaxDisks),
		domain.WithHooks(r.Hooks),
	)
	if err != nil {
		return err
	}
	if err := state.Initialize(n); err != nil {
		return err
	}
	r.Logger.Debug("Game started", "disks", n)

	for {
		if err := r.output(ctx,
			board(domain.ActionRenderBoard, state.Snapshot()),
			message(moveHint),
			prompt(domain.InputMove, "Enter move (or Q to quit to menu):"),
		); err != nil {
			return err
		}

		line, err := r.Handler.Input(ctx)
		if err != nil {
			return err
		}

		cmd, err := ParseCommand(line)
		if errors.Is(err, ErrEmptyCommand) {
			continue
		}
		if err != nil {
			if err := r.output(ctx, message("Invalid rods. Use A, B, or C.")); err != nil {
				return err
			}
			continue
		}

		switch cmd.Kind {
		case CommandQuit:
			r.Logger.Debug("Game abandoned", "disks", n, "moves", state.Moves())
			if err := state.Abandon(); err != nil {
				return err
			}
			return nil

		case CommandHelp:
			if err := r.showRules(ctx); err != nil {
				return err
			}

		case CommandMove:
			if err := state.Move(cmd.From, cmd.To); err != nil {
				r.Logger.Debug("Move rejected", "from", cmd.From, "to", cmd.To, "err", err)
				if err := r.output(ctx, message(moveFeedback(cmd, err))); err != nil {
					return err
				}
				continue
			}

			if state.Phase() == domain.PhaseWon {
				return r.celebrate(ctx, state)
			}
		}
	}
}

func (r *Runner) celebrate(ctx context.Context, state *domain.State) error {
	r.Logger.Debug("Game won", "disks", state.Disks(), "moves", state.Moves())

	if err := r.output(ctx,
		board(domain.ActionGameOver, state.Snapshot()),
		message(fmt.Sprintf("You win! All disks moved to rod C in %d moves.", state.Moves())),
	); err != nil {
		return err
	}

	if !r.Headless {
		if err := r.output(ctx, prompt(domain.InputConfirm, "Press Enter to return to menu...")); err != nil {
			return err
		}
		if _, err := r.Handler.Input(ctx); err != nil {
			return err
		}
	}

	return state.Acknowledge()
}

func (r *Runner) showRules(ctx context.Context) error {
	return r.output(ctx, domain.ActionRequest{Type: domain.ActionRenderContent, Payload: r.Rules})
}

func (r *Runner) output(ctx context.Context, actions ...domain.ActionRequest) error {
	if err := r.Handler.Output(ctx, actions); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}

// finish maps an exhausted input stream to a clean exit.
func (r *Runner) finish(err error) error {
	if errors.Is(err, io.EOF) {
		r.Logger.Debug("Input closed")
		return nil
	}
	return err
}

func moveFeedback(cmd Command, err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptySource):
		return fmt.Sprintf("Move failed (rod %s is empty).", cmd.From)
	case errors.Is(err, domain.ErrIllegalMove) && cmd.From == cmd.To:
		return "Illegal move: source and destination are the same rod."
	case errors.Is(err, domain.ErrIllegalMove):
		return "Illegal move: cannot place larger disk on smaller one."
	}
	return fmt.Sprintf("Move rejected: %v", err)
}

func message(text string) domain.ActionRequest {
	return domain.ActionRequest{Type: domain.ActionSystemMessage, Payload: text}
}

func prompt(kind domain.InputKind, text string) domain.ActionRequest {
	return domain.ActionRequest{Type: domain.ActionRequestInput, Payload: domain.InputRequest{Kind: kind, Prompt: text}}
}

func board(actionType string, snap domain.Snapshot) domain.ActionRequest {
	return domain.ActionRequest{Type: actionType, Payload: snap}
}
