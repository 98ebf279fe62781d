package domain

import (
	"fmt"
	"strings"
)

// RodID identifies one of the three rods.
type RodID int

const (
	RodA RodID = iota
	RodB
	RodC
)

// Rods lists every rod in board order.
func Rods() []RodID {
	return []RodID{RodA, RodB, RodC}
}

// Valid reports whether id names an existing rod.
func (id RodID) Valid() bool {
	return id >= RodA && id <= RodC
}

// String returns the rod label ("A", "B" or "C").
func (id RodID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("RodID(%d)", int(id))
	}
	return string(rune('A' + id))
}

// MarshalText renders the rod label, so snapshots serialize as "A"/"B"/"C".
func (id RodID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnrecognizedRod, int(id))
	}
	return []byte(id.String()), nil
}

// UnmarshalText parses a rod label.
func (id *RodID) UnmarshalText(text []byte) error {
	parsed, err := ParseRodID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseRodID maps a label to a RodID, ignoring case and surrounding spaces.
func ParseRodID(s string) (RodID, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return RodA, nil
	case "B":
		return RodB, nil
	case "C":
		return RodC, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedRod, s)
}

// Rod is a stack of disk sizes; index 0 is the bottom.
type Rod struct {
	disks []int
}

func newRod(capacity int) Rod {
	return Rod{disks: make([]int, 0, capacity)}
}

// Len returns the number of disks on the rod.
func (r *Rod) Len() int {
	return len(r.disks)
}

// Top returns the size of the topmost disk, or false if the rod is empty.
func (r *Rod) Top() (int, bool) {
	if len(r.disks) == 0 {
		return 0, false
	}
	return r.disks[len(r.disks)-1], true
}

// Disks returns a copy of the rod contents, bottom to top.
func (r *Rod) Disks() []int {
	out := make([]int, len(r.disks))
	copy(out, r.disks)
	return out
}

// Ordered reports whether sizes strictly decrease from bottom to top.
func (r *Rod) Ordered() bool {
	for i := 1; i < len(r.disks); i++ {
		if r.disks[i-1] <= r.disks[i] {
			return false
		}
	}
	return true
}

func (r *Rod) push(disk int) {
	r.disks = append(r.disks, disk)
}

func (r *Rod) pop() (int, bool) {
	top, ok := r.Top()
	if !ok {
		return 0, false
	}
	r.disks = r.disks[:len(r.disks)-1]
	return top, true
}

func (r *Rod) clear() {
	r.disks = r.disks[:0]
}
