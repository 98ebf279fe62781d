package domain

import (
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventInitialize EventType = "initialize"
	EventMove       EventType = "move"
	EventReject     EventType = "reject"
	EventWin        EventType = "win"
	EventAbandon    EventType = "abandon"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Disks     int       `json:"disks"`
	Moves     int       `json:"moves"`
}

// GameEvent marks a phase change of the game.
type GameEvent struct {
	EventBase
	Phase Phase `json:"phase"`
}

// MoveEvent describes an applied or rejected move.
type MoveEvent struct {
	EventBase
	From RodID `json:"from"`
	To   RodID `json:"to"`
	Disk int   `json:"disk,omitempty"`
	Err  error `json:"-"`
}

// LifecycleHooks defines callbacks for game observability.
// Hooks run synchronously, after the state change they report.
type LifecycleHooks struct {
	OnInitialize func(*GameEvent)
	OnMove       func(*MoveEvent)
	OnReject     func(*MoveEvent)
	OnWin        func(*GameEvent)
	OnAbandon    func(*GameEvent)
}

// ComposeHooks returns hooks that call each of the given hook sets in order.
func ComposeHooks(sets ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnInitialize: func(e *GameEvent) {
			for _, s := range sets {
				if s.OnInitialize != nil {
					s.OnInitialize(e)
				}
			}
		},
		OnMove: func(e *MoveEvent) {
			for _, s := range sets {
				if s.OnMove != nil {
					s.OnMove(e)
				}
			}
		},
		OnReject: func(e *MoveEvent) {
			for _, s := range sets {
				if s.OnReject != nil {
					s.OnReject(e)
				}
			}
		},
		OnWin: func(e *GameEvent) {
			for _, s := range sets {
				if s.OnWin != nil {
					s.OnWin(e)
				}
			}
		},
		OnAbandon: func(e *GameEvent) {
			for _, s := range sets {
				if s.OnAbandon != nil {
					s.OnAbandon(e)
				}
			}
		},
	}
}
