// Package searcher holds the autonomous agent that solves the puzzle without input.
package searcher

import "errors"

// ErrNoMove is returned when the solver is asked for a move on a puzzle it cannot advance.
var ErrNoMove = errors.New("no legal move left")

// direction is how far the smallest disk travels per move, as a rod offset modulo NumRods.
type direction int

const (
	clockwise     direction = 1 // A -> B -> C -> A
	anticlockwise direction = 2 // A -> C -> B -> A
)

// directionFor picks the smallest disk's rotation so the tower ends up on the last rod:
// even puzzles rotate A -> B -> C, odd ones A -> C -> B.
func directionFor(disks int) direction {
	if disks%2 == 0 {
		return clockwise
	}
	return anticlockwise
}
