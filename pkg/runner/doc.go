/*
Package runner implements the interactive driver for Hanoi games.

It is the bridge between the rules engine (domain.State) and the outside world:
the runner presents the menu, asks for a disk count, parses move commands and
reports rejected moves, while all rule enforcement stays in the domain package.
Interaction goes through a pluggable IOHandler.

# Key Components

  - Runner: menu loop (Run) and single-game loop (Play).
  - IOHandler: decouples how actions are shown and lines are read.
  - TextHandler: console interaction with optional board and markdown renderers.
  - JSONHandler: NDJSON interaction for scripts and tests.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithMaxDisks(6),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
