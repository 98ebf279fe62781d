/*
Package domain contains the Tower of Hanoi rules engine.

It models three rods holding distinct disks and enforces the classic rule set:
only the top disk of a rod moves, and a disk never rests on a smaller one.
The package is pure (no I/O, no globals); a driver owns one State per game.

# Key Entities

  - RodID: closed enumeration of the rods A, B and C.
  - Rod: a stack of disk sizes, bottom to top.
  - State: the board, its active disk count and its phase (setup, playing, won).
  - Snapshot: a copy of the board for rendering.
  - ActionRequest: what a driver asks its IO handler to present.

CanMove is a pure legality preview and MoveDisk an unchecked transfer; Move
combines both so a caller cannot break the ordering invariant by accident.
*/
package domain
