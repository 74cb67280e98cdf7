//go:build !linux

package gpio

func OpenButtons() (*Buttons, error) {
	return nil, ErrUnsupported
}
