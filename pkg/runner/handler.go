package runner

import (
	"context"

	"github.com/aretw0/hanoi/pkg/domain"
)

// IOHandler defines the strategy for interacting with the player.
// This allows switching between Text (console) and JSON (structured) modes.
type IOHandler interface {
	// Output presents the actions to the player.
	Output(ctx context.Context, actions []domain.ActionRequest) error

	// Input reads one response line from the player.
	// It returns io.EOF when the input stream is exhausted and ctx.Err() on cancellation.
	Input(ctx context.Context) (string, error)
}

// ContentRenderer is a function that transforms markdown content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// BoardRenderer draws a board snapshot.
type BoardRenderer func(domain.Snapshot) string
