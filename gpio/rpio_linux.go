//go:build linux

package gpio

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

type rpioPin struct {
	rpio.Pin
}

func (p rpioPin) Low() bool {
	return p.Read() == rpio.Low
}

// OpenButtons maps the GPIO registers through /dev/gpiomem and prepares the button pins.
func OpenButtons() (*Buttons, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("failed to map gpio registers: %w", err)
	}

	pins := make([]Pin, len(ButtonPins))
	for i, n := range ButtonPins {
		pins[i] = rpioPin{rpio.Pin(n)}
	}
	b := NewButtons(pins...)
	b.release = rpio.Close
	return b, nil
}
