package game

import "errors"

// ErrDiskCount is returned when a puzzle is requested with an unsupported number of disks.
var ErrDiskCount = errors.New("invalid disk count")
