package domain

// RodView is the read-only projection of a single rod.
type RodView struct {
	ID    RodID `json:"id"`
	Disks []int `json:"disks"` // Bottom to top
}

// Snapshot is a display projection of the board. It shares no memory with the State.
type Snapshot struct {
	Phase    Phase     `json:"phase"`
	Disks    int       `json:"disks"`
	MaxDisks int       `json:"max_disks"`
	Moves    int       `json:"moves"`
	Rods     []RodView `json:"rods"`
}

// Snapshot captures the current board.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:    s.phase,
		Disks:    s.disks,
		MaxDisks: s.maxDisks,
		Moves:    s.moves,
		Rods:     make([]RodView, 0, RodCount),
	}
	for _, id := range Rods() {
		snap.Rods = append(snap.Rods, RodView{ID: id, Disks: s.rods[id].Disks()})
	}
	return snap
}

// Rod returns the disks of the given rod in the snapshot.
func (snap Snapshot) Rod(id RodID) []int {
	for _, r := range snap.Rods {
		if r.ID == id {
			return r.Disks
		}
	}
	return nil
}
