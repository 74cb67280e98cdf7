// Package agent defines where rod selections come from and builds the configured source.
package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hanoi/game"
	"hanoi/gpio"
	"hanoi/player"
	"hanoi/searcher"
)

type Agent interface {
	// NextRod blocks until the next rod is chosen or ctx is done.
	NextRod(ctx context.Context) (game.Rod, error)
	// Close releases any device held by the agent.
	Close() error
}

// Kind names an agent implementation.
type Kind string

const (
	Buttons  Kind = "buttons"
	Keyboard Kind = "keyboard"
	Solver   Kind = "solver"
)

var Kinds = []Kind{Buttons, Keyboard, Solver}

var ErrUnknownKind = errors.New("unknown input")

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == strings.ToLower(strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownKind, s, kindList())
}

func kindList() string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// Config carries what the agents need from their environment.
type Config struct {
	In          *os.File      // Keyboard input, and the Enter key for the wiring prompt
	Out         io.Writer     // Where setup instructions are shown
	SolverDelay time.Duration // Pause between solver moves
}

// openButtons acquires the GPIO buttons.
var openButtons = func() (player.ButtonReader, error) {
	buttons, err := gpio.OpenButtons()
	if err != nil {
		return nil, err
	}
	return buttons, nil
}

// New builds an agent of the given kind. Failing to acquire its input device is an error;
// nothing is retried. Cancelling ctx while setup waits for the user aborts before any device
// is acquired.
func New(ctx context.Context, kind Kind, view game.View, cfg Config) (Agent, error) {
	log.Info().Str("kind", string(kind)).Msg("starting agent")

	switch kind {
	case Buttons:
		if err := promptWiring(ctx, cfg.Out, cfg.In); err != nil {
			return nil, err
		}
		buttons, err := openButtons()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire buttons: %w", err)
		}
		return player.NewButtons(buttons), nil

	case Keyboard:
		keyboard, err := player.OpenKeyboard(cfg.In)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire keyboard: %w", err)
		}
		return keyboard, nil

	case Solver:
		return searcher.NewIterative(view, searcher.WithDelay(cfg.SolverDelay)), nil

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
}

// promptWiring shows how the buttons connect to the header and waits for Enter or for ctx
// to be done. The pending read is abandoned on cancellation.
func promptWiring(ctx context.Context, out io.Writer, in io.Reader) error {
	fmt.Fprintln(out, "These are the connections for the Tower of Hanoi game:")
	fmt.Fprintln(out, "GP25 in J2 --- B1 in J3")
	fmt.Fprintln(out, "GP24 in J2 --- B2 in J3")
	fmt.Fprintln(out, "GP23 in J2 --- B3 in J3")
	fmt.Fprintln(out, "When ready hit enter.")

	read := make(chan error, 1)
	go func() {
		_, err := bufio.NewReader(in).ReadString('\n')
		read <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-read:
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		return ctx.Err()
	}
}
