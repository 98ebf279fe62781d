package runner

import (
	"log/slog"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithHeadless disables the interactive pauses (e.g. after a win).
func WithHeadless(headless bool) Option {
	return func(r *Runner) {
		r.Headless = headless
	}
}

// WithHooks registers lifecycle hooks on every game the runner creates.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runner) {
		r.Hooks = hooks
	}
}

// WithDefaultDisks sets the disk count substituted for invalid answers.
func WithDefaultDisks(n int) Option {
	return func(r *Runner) {
		r.DefaultDisks = n
	}
}

// WithMaxDisks sets the capacity ceiling (MAX_N).
func WithMaxDisks(n int) Option {
	return func(r *Runner) {
		r.MaxDisks = n
	}
}

// WithRules replaces the markdown shown on the instructions screen.
func WithRules(markdown string) Option {
	return func(r *Runner) {
		r.Rules = markdown
	}
}
