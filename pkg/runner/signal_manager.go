package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// raceWindow is how long Settle waits for a signal to follow an input error.
const raceWindow = 100 * time.Millisecond

// SignalManager turns SIGINT/SIGTERM into context cancellation for a game session.
type SignalManager struct {
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignalManager starts listening for signals on top of parent.
func NewSignalManager(parent context.Context) *SignalManager {
	if parent == nil {
		parent = context.Background()
	}
	sm := &SignalManager{parent: parent}
	sm.Reset()
	return sm
}

// Context is cancelled when the process receives an interrupt.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Reset re-arms the listener after a handled interrupt.
func (sm *SignalManager) Reset() {
	if sm.cancel != nil {
		sm.cancel()
	}
	sm.ctx, sm.cancel = signal.NotifyContext(sm.parent, os.Interrupt, syscall.SIGTERM)
}

// Stop releases the signal listener and cancels the context.
func (sm *SignalManager) Stop() {
	if sm.cancel != nil {
		sm.cancel()
	}
}

// Interrupted reports whether the session ended because of a signal.
func (sm *SignalManager) Interrupted() bool {
	return sm.ctx.Err() != nil
}

// Settle waits briefly for a cancellation that may trail an input error.
// On some terminals Ctrl+C closes stdin slightly before the signal is delivered,
// so an EOF seen here could still turn out to be an interrupt.
func (sm *SignalManager) Settle() {
	if sm.ctx.Err() != nil {
		return
	}
	select {
	case <-sm.ctx.Done():
	case <-time.After(raceWindow):
	}
}
