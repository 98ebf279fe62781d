package domain

// Board dimensions and disk-count limits.
const (
	// RodCount is the number of rods on the board.
	RodCount = 3

	// MinDisks is the smallest playable disk count.
	MinDisks = 3

	// DefaultMaxDisks is the capacity ceiling (MAX_N) used when none is configured.
	DefaultMaxDisks = 6

	// DefaultDisks is the disk count substituted when the player asks for an invalid one.
	DefaultDisks = 4

	// HardMaxDisks bounds any configured ceiling.
	HardMaxDisks = 12
)
