package player

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"hanoi/game"
	"hanoi/meta"
)

// ButtonReader returns the currently pressed buttons as a 3-bit mask.
type ButtonReader interface {
	ReadButtons() uint32
}

// buttonRods maps each rod to the mask of its button.
var buttonRods = []uint32{4, 2, 1}

// noReading is never produced by a 3-bit reader, so the first reading always counts as a change.
const noReading = 0x10

type Option func(b *Buttons)

// WithSettle sets the pause after each accepted edge.
func WithSettle(d time.Duration) Option {
	return func(b *Buttons) {
		if d >= 0 {
			b.settle = d
		}
	}
}

// WithPollInterval sets the pause between raw readings.
func WithPollInterval(d time.Duration) Option {
	return func(b *Buttons) {
		if d >= 0 {
			b.poll = d
		}
	}
}

// Buttons turns raw button readings into single rod selections, one per press.
type Buttons struct {
	reader   ButtonReader
	previous uint32 // Last raw reading seen
	reported uint32 // Last accepted edge
	settle   time.Duration
	poll     time.Duration
}

func NewButtons(reader ButtonReader, options ...Option) *Buttons {
	b := &Buttons{
		reader:   reader,
		previous: noReading,
		settle:   meta.SettleDelay,
		poll:     meta.PollInterval,
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func isButton(mask uint32) bool {
	return slices.Index(buttonRods, mask) >= 0
}

// NextRod polls until a single button goes down and returns its rod. Readings with several
// buttons held, repeats of the previous reading and a re-press of the last reported button
// without a clean release are ignored.
func (b *Buttons) NextRod(ctx context.Context) (game.Rod, error) {
	for {
		raw := b.reader.ReadButtons()

		if (isButton(raw) || raw == 0) && raw != b.previous {
			b.previous = raw

			if raw != 0 && raw != b.reported {
				b.reported = raw
				rod := game.Rod(slices.Index(buttonRods, raw))
				log.Debug().Uint32("mask", raw).Msgf("button for rod %s pressed", rod)
				if err := sleep(ctx, b.settle); err != nil {
					return 0, err
				}
				return rod, nil
			}

			b.reported = raw
			if err := sleep(ctx, b.settle); err != nil {
				return 0, err
			}
		} else {
			b.previous = raw
		}

		if err := sleep(ctx, b.poll); err != nil {
			return 0, err
		}
	}
}

// Close releases the reader if it holds a device.
func (b *Buttons) Close() error {
	if c, ok := b.reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
