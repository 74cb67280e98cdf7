package game

import "fmt"

// Disk is the size rank of a disk: 1 is the smallest. The zero value is never a real disk.
type Disk uint16

// Rod identifies one of the three rods of the puzzle.
type Rod int

const (
	RodA Rod = iota
	RodB
	RodC
	NumRods
)

// Rods lists every rod in display order.
var Rods = [NumRods]Rod{RodA, RodB, RodC}

func (r Rod) Valid() bool {
	return r >= RodA && r < NumRods
}

func (r Rod) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rod(%d)", int(r))
	}
	return string(rune('A' + int(r)))
}

// Tower holds the disks stacked on a rod, bottom first. Ranks strictly decrease towards the top.
type Tower struct {
	disks []Disk
}

func newTower(capacity int) Tower {
	return Tower{disks: make([]Disk, 0, capacity)}
}

// Height returns the number of disks on the tower.
func (t *Tower) Height() int {
	return len(t.disks)
}

// Peek returns the top disk without removing it, false when the tower is empty.
func (t *Tower) Peek() (Disk, bool) {
	if len(t.disks) == 0 {
		return 0, false
	}
	return t.disks[len(t.disks)-1], true
}

// Pop removes and returns the top disk, false when the tower is empty.
func (t *Tower) Pop() (Disk, bool) {
	d, ok := t.Peek()
	if ok {
		t.disks = t.disks[:len(t.disks)-1]
	}
	return d, ok
}

// Push places d on the tower if the tower is empty or its top disk is larger than d.
// It returns the resulting top disk: d itself on success, or the unchanged existing top
// with ok == false when the placement is rejected.
func (t *Tower) Push(d Disk) (top Disk, ok bool) {
	if d == 0 {
		panic("game: push of an empty disk")
	}
	if top, occupied := t.Peek(); occupied && top <= d {
		return top, false
	}
	t.disks = append(t.disks, d)
	return d, true
}

// Disks returns a copy of the tower's disks, bottom first.
func (t *Tower) Disks() []Disk {
	out := make([]Disk, len(t.disks))
	copy(out, t.disks)
	return out
}

// Validate reports an error if a disk rests on a disk that is not strictly larger.
func (t *Tower) Validate() error {
	for i, d := range t.disks {
		if d == 0 {
			return fmt.Errorf("empty disk at position %d", i)
		}
		if i > 0 && t.disks[i-1] <= d {
			return fmt.Errorf("disk %d rests on disk %d at position %d", d, t.disks[i-1], i)
		}
	}
	return nil
}
