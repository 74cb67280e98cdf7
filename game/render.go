package game

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Render writes the rods as a fixed-width text diagram, one row per disk slot plus an empty row
// on top, followed by the rod bases.
func (gs *GameState) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	digits := len(strconv.Itoa(gs.Disks))
	width := digits + 6

	for _, rod := range Rods {
		bw.WriteString(centered(rod.String(), width))
	}
	bw.WriteByte('\n')

	for row := gs.Disks + 1; row > 0; row-- {
		for _, rod := range Rods {
			t := &gs.Towers[rod]
			if row <= t.Height() {
				d := strconv.Itoa(int(t.disks[row-1]))
				bw.WriteString("  [")
				bw.WriteString(strings.Repeat(" ", digits-len(d)))
				bw.WriteString(d)
				bw.WriteString("]  ")
			} else {
				bw.WriteString(centered("|", width))
			}
		}
		bw.WriteByte('\n')
	}

	base := "  " + strings.Repeat("-", digits+2) + "  "
	for range Rods {
		bw.WriteString(base)
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

func centered(s string, width int) string {
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
