/*
Package hanoi is a Tower of Hanoi rules engine with an interactive console driver.

Three rods hold disks of distinct sizes. Only the top disk of a rod may move,
and a disk may never rest on a smaller one. The game is won when every disk
has been moved from rod A to rod C.

# Layout

The module follows a hexagonal split. The rules live in pkg/domain with no
dependencies. pkg/runner drives games through an IOHandler (plain text or
JSON lines). pkg/observability turns lifecycle hooks into Prometheus metrics.
The hanoi command in cmd/hanoi wires everything together.

# Usage

	game, err := hanoi.New(hanoi.WithMaxDisks(6))
	if err != nil {
		log.Fatal(err)
	}
	if err := game.Start(3); err != nil {
		log.Fatal(err)
	}
	if err := game.Move("A", "C"); err != nil {
		fmt.Println(err)
	}
	fmt.Println(game.Won())

Illegal moves return errors matching domain.ErrIllegalMove via errors.Is and
leave the board untouched.
*/
package hanoi
