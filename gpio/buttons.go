// Package gpio reads the three push buttons wired to the Raspberry Pi header.
package gpio

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// ErrUnsupported is returned by OpenButtons on platforms without the GPIO device.
var ErrUnsupported = errors.New("gpio: memory-mapped GPIO is not supported on this platform")

// ButtonPins are the GPIO pins wired to the three push buttons, lowest first.
// GP23 carries B3, GP24 B2 and GP25 B1.
var ButtonPins = []int{23, 24, 25}

// Pin is the part of a GPIO pin the buttons need.
type Pin interface {
	Input()
	PullUp()
	PullOff()
	// Low reports whether the pin currently reads low.
	Low() bool
}

// Buttons reads the three push buttons. The buttons pull their pin low when pressed.
type Buttons struct {
	pins    []Pin
	release func() error
}

// NewButtons sets pins to inputs with pull-ups enabled. The pins are given lowest first,
// so pins[0] is reported as bit 0.
func NewButtons(pins ...Pin) *Buttons {
	for _, pin := range pins {
		pin.Input()
		pin.PullUp()
	}
	log.Debug().Ints("pins", ButtonPins).Msg("button pins pulled up")
	return &Buttons{pins: pins}
}

// ReadButtons returns the pressed buttons as a 3-bit mask: 4 is B1, 2 is B2 and 1 is B3.
func (b *Buttons) ReadButtons() uint32 {
	var mask uint32
	for i, pin := range b.pins {
		if pin.Low() {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// Close removes the pull-ups so the pins are left as found, then releases the GPIO device.
// Closing twice releases the device once.
func (b *Buttons) Close() error {
	for _, pin := range b.pins {
		pin.PullOff()
	}
	log.Debug().Ints("pins", ButtonPins).Msg("button pins released")

	if b.release == nil {
		return nil
	}
	release := b.release
	b.release = nil
	return release()
}
