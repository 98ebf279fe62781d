package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a disk count is outside [MinDisks, MaxDisks].
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrIllegalMove is returned when a move would place a disk atop a smaller one.
var ErrIllegalMove = errors.New("illegal move")

// ErrEmptySource is returned when the source rod holds no disk.
// It matches ErrIllegalMove under errors.Is.
var ErrEmptySource = fmt.Errorf("%w: source rod is empty", ErrIllegalMove)

// ErrUnrecognizedRod is returned for a rod label or index outside A, B, C.
var ErrUnrecognizedRod = errors.New("unrecognized rod")

// ErrNotPlaying is returned when a move is attempted while no game is in progress.
var ErrNotPlaying = errors.New("no game in progress")

// ErrNotWon is returned when a win is acknowledged before the game is won.
var ErrNotWon = errors.New("game not won")
