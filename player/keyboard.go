package player

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"hanoi/game"
)

// ErrNotTerminal is returned when the keyboard agent is opened on something other than a terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// Terminal switches the input into unbuffered, non-echoing mode and hands back the function
// that restores the previous mode.
type Terminal interface {
	Cbreak() (restore func() error, err error)
}

// rodKeys maps each rod to the key that selects it.
var rodKeys = []byte{'1', '2', '3'}

// Keyboard reads rod selections as single key presses.
type Keyboard struct {
	in   io.Reader
	term Terminal
}

// NewKeyboard reads keys from in while term is held in single-key mode. A read returning no bytes
// and no error is treated as a timeout and retried.
func NewKeyboard(in io.Reader, term Terminal) *Keyboard {
	return &Keyboard{in: in, term: term}
}

// NextRod waits for one of the keys 1-3 and returns rods A-C. Other keys are ignored.
// The terminal mode is restored before returning on every path.
func (k *Keyboard) NextRod(ctx context.Context) (rod game.Rod, err error) {
	restore, err := k.term.Cbreak()
	if err != nil {
		return 0, fmt.Errorf("failed to enter single-key mode: %w", err)
	}
	defer func() {
		if rerr := restore(); rerr != nil && err == nil {
			err = fmt.Errorf("failed to restore terminal: %w", rerr)
		}
	}()

	var buf [1]byte
	for {
		if cerr := ctx.Err(); cerr != nil {
			return 0, cerr
		}
		n, rerr := k.in.Read(buf[:])
		if n == 1 {
			if i := slices.Index(rodKeys, buf[0]); i >= 0 {
				return game.Rod(i), nil
			}
			log.Debug().Msgf("ignoring key %q", buf[0])
		}
		if rerr != nil {
			return 0, rerr
		}
	}
}

// Close is a no-op; the terminal is restored after every key.
func (k *Keyboard) Close() error {
	return nil
}
