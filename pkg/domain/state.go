package domain

import (
	"fmt"
	"time"
)

// Phase is the coarse lifecycle position of a game.
type Phase string

const (
	PhaseSetup   Phase = "setup"   // No active game
	PhasePlaying Phase = "playing" // Disks on the board, not yet solved
	PhaseWon     Phase = "won"     // Every disk sits on rod C
)

// State owns the three rods of a single game.
// It is not safe for concurrent use; each game gets its own instance.
type State struct {
	rods     [RodCount]Rod
	disks    int
	maxDisks int
	moves    int
	phase    Phase
	hooks    LifecycleHooks
}

// Option configures a State.
type Option func(*State)

// WithMaxDisks sets the per-rod capacity ceiling (MAX_N).
func WithMaxDisks(n int) Option {
	return func(s *State) {
		s.maxDisks = n
	}
}

// WithHooks registers lifecycle hooks.
func WithHooks(hooks LifecycleHooks) Option {
	return func(s *State) {
		s.hooks = hooks
	}
}

// NewState creates an empty board in the setup phase.
func NewState(opts ...Option) (*State, error) {
	s := &State{
		maxDisks: DefaultMaxDisks,
		phase:    PhaseSetup,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.maxDisks < MinDisks || s.maxDisks > HardMaxDisks {
		return nil, fmt.Errorf("%w: max disks %d outside [%d, %d]",
			ErrInvalidConfiguration, s.maxDisks, MinDisks, HardMaxDisks)
	}

	for i := range s.rods {
		s.rods[i] = newRod(s.maxDisks)
	}
	return s, nil
}

// Initialize starts a game with n disks stacked on rod A, largest at the bottom.
// On error the board is left as it was.
func (s *State) Initialize(n int) error {
	if n < MinDisks || n > s.maxDisks {
		return fmt.Errorf("%w: disk count %d outside [%d, %d]",
			ErrInvalidConfiguration, n, MinDisks, s.maxDisks)
	}

	s.clear()
	for d := n; d >= 1; d-- {
		s.rods[RodA].push(d)
	}
	s.disks = n
	s.phase = PhasePlaying

	if s.hooks.OnInitialize != nil {
		s.hooks.OnInitialize(s.gameEvent(EventInitialize))
	}
	return nil
}

// TopDisk returns the size of the top disk of rod, or false if it is empty.
func (s *State) TopDisk(rod RodID) (int, bool) {
	if !rod.Valid() {
		return 0, false
	}
	return s.rods[rod].Top()
}

// CanMove reports whether the top disk of from may be placed on to.
// A rod compared with itself never passes, since no disk is smaller than itself.
func (s *State) CanMove(from, to RodID) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	moving, ok := s.rods[from].Top()
	if !ok {
		return false
	}
	target, ok := s.rods[to].Top()
	if !ok {
		return true
	}
	return moving < target
}

// MoveDisk pops the top disk of from and pushes it onto to without checking
// the ordering rule. It returns false, leaving the board untouched, when from
// is empty or either rod is invalid. Callers wanting the rule enforced use Move.
func (s *State) MoveDisk(from, to RodID) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	disk, ok := s.rods[from].pop()
	if !ok {
		return false
	}
	s.rods[to].push(disk)
	s.moves++

	if s.hooks.OnMove != nil {
		s.hooks.OnMove(s.moveEvent(EventMove, from, to, disk, nil))
	}

	switch {
	case s.phase == PhasePlaying && s.IsWon():
		s.phase = PhaseWon
		if s.hooks.OnWin != nil {
			s.hooks.OnWin(s.gameEvent(EventWin))
		}
	case s.phase == PhaseWon && !s.IsWon():
		s.phase = PhasePlaying
	}
	return true
}

// Move applies a legality-checked move. Rejected moves leave the board
// untouched and return an error matching ErrNotPlaying, ErrUnrecognizedRod,
// ErrEmptySource or ErrIllegalMove.
func (s *State) Move(from, to RodID) error {
	if err := s.checkMove(from, to); err != nil {
		if s.hooks.OnReject != nil {
			disk, _ := s.TopDisk(from)
			s.hooks.OnReject(s.moveEvent(EventReject, from, to, disk, err))
		}
		return err
	}
	s.MoveDisk(from, to)
	return nil
}

func (s *State) checkMove(from, to RodID) error {
	if s.phase != PhasePlaying {
		return fmt.Errorf("%w: game is in %s phase", ErrNotPlaying, s.phase)
	}
	if !from.Valid() {
		return fmt.Errorf("%w: %d", ErrUnrecognizedRod, int(from))
	}
	if !to.Valid() {
		return fmt.Errorf("%w: %d", ErrUnrecognizedRod, int(to))
	}

	moving, ok := s.rods[from].Top()
	if !ok {
		return fmt.Errorf("%w (rod %s)", ErrEmptySource, from)
	}
	if s.CanMove(from, to) {
		return nil
	}
	if from == to {
		return fmt.Errorf("%w: source and destination are both rod %s", ErrIllegalMove, from)
	}
	target, _ := s.rods[to].Top()
	return fmt.Errorf("%w: cannot place disk %d on disk %d", ErrIllegalMove, moving, target)
}

// IsWon reports whether rod C holds all disks, largest at the bottom.
func (s *State) IsWon() bool {
	if s.disks == 0 {
		return false
	}
	c := &s.rods[RodC]
	return c.Len() == s.disks && c.Ordered()
}

// Abandon ends a game in progress and returns to the setup phase.
func (s *State) Abandon() error {
	if s.phase != PhasePlaying {
		return fmt.Errorf("%w: game is in %s phase", ErrNotPlaying, s.phase)
	}
	event := s.gameEvent(EventAbandon)
	s.clear()
	s.phase = PhaseSetup

	if s.hooks.OnAbandon != nil {
		event.Phase = s.phase
		s.hooks.OnAbandon(event)
	}
	return nil
}

// Acknowledge closes a won game and returns to the setup phase.
func (s *State) Acknowledge() error {
	if s.phase != PhaseWon {
		return fmt.Errorf("%w: game is in %s phase", ErrNotWon, s.phase)
	}
	s.clear()
	s.phase = PhaseSetup
	return nil
}

// Phase returns the current lifecycle phase.
func (s *State) Phase() Phase {
	return s.phase
}

// Disks returns the active disk count N, or 0 in the setup phase.
func (s *State) Disks() int {
	return s.disks
}

// MaxDisks returns the configured capacity ceiling.
func (s *State) MaxDisks() int {
	return s.maxDisks
}

// Moves returns the number of disks moved since Initialize.
func (s *State) Moves() int {
	return s.moves
}

// Rod returns a copy of a rod's disks, bottom to top. Invalid ids yield nil.
func (s *State) Rod(id RodID) []int {
	if !id.Valid() {
		return nil
	}
	return s.rods[id].Disks()
}

// Verify checks the board invariants: every size in 1..N present exactly once
// and each rod strictly decreasing from bottom to top.
func (s *State) Verify() error {
	seen := make([]bool, s.disks+1)
	total := 0
	for _, id := range Rods() {
		rod := &s.rods[id]
		if !rod.Ordered() {
			return fmt.Errorf("rod %s out of order: %v", id, rod.disks)
		}
		for _, d := range rod.disks {
			if d < 1 || d > s.disks {
				return fmt.Errorf("rod %s holds unknown disk %d", id, d)
			}
			if seen[d] {
				return fmt.Errorf("disk %d duplicated", d)
			}
			seen[d] = true
			total++
		}
	}
	if total != s.disks {
		return fmt.Errorf("expected %d disks on the board, found %d", s.disks, total)
	}
	return nil
}

func (s *State) clear() {
	for i := range s.rods {
		s.rods[i].clear()
	}
	s.disks = 0
	s.moves = 0
}

func (s *State) base(t EventType) EventBase {
	return EventBase{
		Timestamp: time.Now(),
		Type:      t,
		Disks:     s.disks,
		Moves:     s.moves,
	}
}

func (s *State) gameEvent(t EventType) *GameEvent {
	return &GameEvent{EventBase: s.base(t), Phase: s.phase}
}

func (s *State) moveEvent(t EventType, from, to RodID, disk int, err error) *MoveEvent {
	return &MoveEvent{EventBase: s.base(t), From: from, To: to, Disk: disk, Err: err}
}
