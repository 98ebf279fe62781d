package runner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/hanoi/pkg/domain"
)

// ErrEmptyCommand is returned for a blank input line.
var ErrEmptyCommand = errors.New("empty command")

// ErrUnknownChoice is returned for a menu entry that does not exist.
var ErrUnknownChoice = errors.New("unknown menu choice")

// CommandKind is the kind of a parsed game command.
type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandQuit
	CommandHelp
)

// Command is a parsed line typed at the move prompt.
type Command struct {
	Kind CommandKind
	From domain.RodID
	To   domain.RodID
}

// ParseCommand parses a move prompt line.
// Moves are two rod letters, optionally separated by spaces, commas or an
// arrow ("A C", "ac", "A->C"). "Q" quits to the menu and "?" shows the rules.
func ParseCommand(line string) (Command, error) {
	s := strings.ToUpper(strings.TrimSpace(line))
	switch s {
	case "":
		return Command{}, ErrEmptyCommand
	case "Q", "QUIT":
		return Command{Kind: CommandQuit}, nil
	case "?", "H", "HELP":
		return Command{Kind: CommandHelp}, nil
	}

	letters := []rune(strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', ',', '-', '>':
			return -1
		}
		return r
	}, s))
	if len(letters) != 2 {
		return Command{}, fmt.Errorf("%w: %q", domain.ErrUnrecognizedRod, line)
	}

	from, err := domain.ParseRodID(string(letters[0]))
	if err != nil {
		return Command{}, err
	}
	to, err := domain.ParseRodID(string(letters[1]))
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: CommandMove, From: from, To: to}, nil
}

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuPlay MenuChoice = iota + 1
	MenuRules
	MenuExit
)

// ParseMenuChoice accepts the entry number or its name.
func ParseMenuChoice(line string) (MenuChoice, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "1", "play", "p":
		return MenuPlay, nil
	case "2", "instructions", "rules", "help", "?":
		return MenuRules, nil
	case "3", "exit", "quit", "q":
		return MenuExit, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChoice, line)
}

// ParseDiskCount parses a disk count and checks it against [min, max].
func ParseDiskCount(line string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidConfiguration, line)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%w: %d outside [%d, %d]", domain.ErrInvalidConfiguration, n, min, max)
	}
	return n, nil
}
