package hanoi

import (
	"log/slog"

	"github.com/aretw0/hanoi/internal/logging"
	"github.com/aretw0/hanoi/pkg/domain"
)

// Game is the high-level entry point for the hanoi library.
// It wraps a domain.State and accepts rod labels as text, the way a host
// application receives them from its users.
type Game struct {
	state    *domain.State
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	maxDisks int
}

// Option defines a functional option for configuring the Game.
type Option func(*Game)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(g *Game) {
		g.hooks = hooks
	}
}

// WithLogger sets the structured logger for the game.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithMaxDisks sets the capacity ceiling of every rod.
func WithMaxDisks(n int) Option {
	return func(g *Game) {
		g.maxDisks = n
	}
}

// New creates a Game in the setup phase.
func New(opts ...Option) (*Game, error) {
	g := &Game{
		logger:   logging.NewNop(),
		maxDisks: domain.DefaultMaxDisks,
	}
	for _, opt := range opts {
		opt(g)
	}

	state, err := domain.NewState(
		domain.WithMaxDisks(g.maxDisks),
		domain.WithHooks(g.hooks),
	)
	if err != nil {
		return nil, err
	}
	g.state = state
	return g, nil
}

// Start places n disks on rod A, discarding any game in progress.
func (g *Game) Start(n int) error {
	if err := g.state.Initialize(n); err != nil {
		return err
	}
	g.logger.Debug("Game started", "disks", n)
	return nil
}

// Move moves the top disk between two rods given by label ("A", "b", ...).
func (g *Game) Move(from, to string) error {
	src, err := domain.ParseRodID(from)
	if err != nil {
		return err
	}
	dst, err := domain.ParseRodID(to)
	if err != nil {
		return err
	}

	if err := g.state.Move(src, dst); err != nil {
		g.logger.Debug("Move rejected", "from", src, "to", dst, "err", err)
		return err
	}
	return nil
}

// Won reports whether every disk sits on rod C.
func (g *Game) Won() bool {
	return g.state.IsWon()
}

// Snapshot returns a copy of the board.
func (g *Game) Snapshot() domain.Snapshot {
	return g.state.Snapshot()
}

// State exposes the underlying state machine for callers that need the
// unchecked operations (CanMove, MoveDisk).
func (g *Game) State() *domain.State {
	return g.state
}
