package game

import (
	"fmt"
	"math"
	"math/big"

	"hanoi/meta"
)

// View is the read-only side of a game state, handed to agents that need to inspect the rods.
type View interface {
	Peek(rod Rod) (Disk, bool)
	Height(rod Rod) int
	Holding() (Disk, bool)
	DiskCount() int
}

// GameState is the whole puzzle: three towers, the disk in hand and the move counters.
// It is owned by a single game loop and mutated only through Play.
type GameState struct {
	Towers  [NumRods]Tower
	Disks   int      // Number of disks in the puzzle
	InHand  Disk     // Disk currently held, 0 when empty-handed
	Moves   uint64   // Successful placements so far
	Optimal *big.Int // 2^Disks - 1
}

// NewGameState builds a puzzle of the given size with every disk stacked on rod A.
func NewGameState(disks int) (*GameState, error) {
	if disks < meta.MinDisks || disks > meta.MaxDisks {
		return nil, fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrDiskCount, disks, meta.MinDisks, meta.MaxDisks)
	}

	gs := &GameState{
		Disks:   disks,
		Optimal: OptimalMoves(disks),
	}
	for _, rod := range Rods {
		gs.Towers[rod] = newTower(disks)
	}
	for d := disks; d >= 1; d-- {
		gs.Towers[RodA].disks = append(gs.Towers[RodA].disks, Disk(d))
	}
	return gs, nil
}

// OptimalMoves returns 2^disks - 1, the fewest placements that solve the puzzle.
func OptimalMoves(disks int) *big.Int {
	n := new(big.Int).Lsh(big.NewInt(1), uint(disks))
	return n.Sub(n, big.NewInt(1))
}

func (gs *GameState) tower(rod Rod) *Tower {
	if !rod.Valid() {
		panic(fmt.Sprintf("game: invalid rod %d", int(rod)))
	}
	return &gs.Towers[rod]
}

func (gs *GameState) Peek(rod Rod) (Disk, bool) {
	return gs.tower(rod).Peek()
}

func (gs *GameState) Pop(rod Rod) (Disk, bool) {
	return gs.tower(rod).Pop()
}

func (gs *GameState) Push(rod Rod, d Disk) (Disk, bool) {
	return gs.tower(rod).Push(d)
}

func (gs *GameState) Height(rod Rod) int {
	return gs.tower(rod).Height()
}

func (gs *GameState) Holding() (Disk, bool) {
	return gs.InHand, gs.InHand != 0
}

func (gs *GameState) DiskCount() int {
	return gs.Disks
}

// Solved reports whether the last rod holds every disk.
func (gs *GameState) Solved() bool {
	return gs.Towers[NumRods-1].Height() == gs.Disks
}

// Efficiency returns Optimal / Moves as a percentage rounded to the nearest integer.
// It is 0 before the first placement and saturates at math.MaxInt32 while the puzzle is far from solved.
func (gs *GameState) Efficiency() int {
	if gs.Moves == 0 {
		return 0
	}
	moves := new(big.Int).SetUint64(gs.Moves)
	pct := new(big.Int).Mul(gs.Optimal, big.NewInt(100))
	pct.Add(pct, new(big.Int).Rsh(moves, 1))
	pct.Quo(pct, moves)
	if !pct.IsInt64() || pct.Int64() > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(pct.Int64())
}

// Validate checks every tower's ordering and that each disk appears exactly once.
func (gs *GameState) Validate() error {
	seen := make([]bool, gs.Disks+1)
	mark := func(d Disk) error {
		if int(d) > gs.Disks {
			return fmt.Errorf("disk %d exceeds puzzle size %d", d, gs.Disks)
		}
		if seen[d] {
			return fmt.Errorf("disk %d appears twice", d)
		}
		seen[d] = true
		return nil
	}

	for _, rod := range Rods {
		t := &gs.Towers[rod]
		if err := t.Validate(); err != nil {
			return fmt.Errorf("rod %s: %w", rod, err)
		}
		for _, d := range t.disks {
			if err := mark(d); err != nil {
				return err
			}
		}
	}
	if gs.InHand != 0 {
		if err := mark(gs.InHand); err != nil {
			return err
		}
	}
	for d := 1; d <= gs.Disks; d++ {
		if !seen[d] {
			return fmt.Errorf("disk %d is missing", d)
		}
	}
	return nil
}
