//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package player

import "os"

func OpenKeyboard(f *os.File) (*Keyboard, error) {
	return nil, ErrNotTerminal
}
