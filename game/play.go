package game

import "fmt"

// Outcome describes what a single rod selection did.
type Outcome struct {
	Type ActionType
	Rod  Rod
	Disk Disk // Disk picked up, placed or refused
	Top  Disk // Blocking top disk for RejectAction
	Won  bool // Set on the placement that solves the puzzle
}

func (o Outcome) String() string {
	switch o.Type {
	case PickUpAction:
		return fmt.Sprintf("Picked up disk %d from rod %s.", o.Disk, o.Rod)
	case EmptyRodAction:
		return fmt.Sprintf("No disks on rod %s!", o.Rod)
	case PlaceAction:
		return fmt.Sprintf("Placed disk %d on rod %s.", o.Disk, o.Rod)
	case RejectAction:
		return fmt.Sprintf("Cannot place disk %d on top of disk %d!", o.Disk, o.Top)
	default:
		return fmt.Sprintf("Unknown action on rod %s.", o.Rod)
	}
}

// Play applies one selection of rod. Empty-handed, it picks up the rod's top disk.
// Holding a disk, it tries to place it on the rod; only an accepted placement counts as a move.
func (gs *GameState) Play(rod Rod) Outcome {
	t := gs.tower(rod)

	if gs.InHand == 0 {
		d, ok := t.Pop()
		if !ok {
			return Outcome{Type: EmptyRodAction, Rod: rod}
		}
		gs.InHand = d
		return Outcome{Type: PickUpAction, Rod: rod, Disk: d}
	}

	d := gs.InHand
	top, ok := t.Push(d)
	if !ok {
		return Outcome{Type: RejectAction, Rod: rod, Disk: d, Top: top}
	}
	gs.InHand = 0
	gs.Moves++

	return Outcome{Type: PlaceAction, Rod: rod, Disk: d, Won: gs.Solved()}
}
