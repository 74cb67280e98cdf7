package engine

import (
	"fmt"
	"time"

	"hanoi/game"
	"hanoi/metrics"
)

// show prints the result of one action, the rods and the move count.
func (e *Engine) show(out game.Outcome) error {
	fmt.Fprintln(e.out, out.String())
	fmt.Fprintln(e.out)
	if err := e.State.Render(e.out); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Moves: %d / %s\n\n", e.State.Moves, e.State.Optimal)
	return nil
}

// report prints the final summary.
func (e *Engine) report(m metrics.GameMetric) {
	fmt.Fprintf(e.out, "Congratulations! You completed the puzzle in %d moves (%d%%).\n",
		e.State.Moves, e.State.Efficiency())
	if e.timed {
		fmt.Fprintf(e.out, "Time: %s wall, %s CPU.\n",
			m.Duration.Round(time.Millisecond), m.CPUTime.Round(time.Millisecond))
	}
}
