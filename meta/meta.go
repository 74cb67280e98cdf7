// meta/meta.go
package meta

import "time"

// MinDisks is the smallest puzzle the engine accepts.
const MinDisks = 2

// MaxDisks is the largest puzzle the engine accepts (one below the 16-bit disk range,
// leaving room for the empty-rod row in the diagram).
const MaxDisks = 65533

// DefaultDisks is the puzzle size used when none is given.
const DefaultDisks = 3

// SettleDelay is how long the button poller waits after an accepted edge.
const SettleDelay = 20 * time.Millisecond

// PollInterval is the pause between two raw button readings.
const PollInterval = 500 * time.Microsecond

// SolverDelay paces the solver's moves when the diagram is displayed.
const SolverDelay = 300 * time.Millisecond
