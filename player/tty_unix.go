//go:build linux || darwin || freebsd || netbsd || openbsd

package player

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// OpenKeyboard reads keys from f, which must be a terminal.
func OpenKeyboard(f *os.File) (*Keyboard, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	t := &tty{fd: fd}
	return NewKeyboard(t, t), nil
}

type tty struct {
	fd int
}

// Cbreak clears canonical mode and echo, and makes reads return after at most a tenth of a
// second so a waiting reader can notice cancellation.
func (t *tty) Cbreak() (func() error, error) {
	saved, err := unix.IoctlGetTermios(t.fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}

	state := *saved
	state.Lflag &^= unix.ICANON | unix.ECHO
	state.Cc[unix.VMIN] = 0
	state.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &state); err != nil {
		return nil, err
	}
	return func() error {
		return unix.IoctlSetTermios(t.fd, ioctlSetTermios, saved)
	}, nil
}

func (t *tty) Read(p []byte) (int, error) {
	for {
		n, err := unix.Read(t.fd, p)
		if err == unix.EINTR {
			continue
		}
		if n < 0 {
			n = 0
		}
		return n, err
	}
}
