//go:build linux || darwin || freebsd || netbsd || openbsd

package metrics

import (
	"time"

	"golang.org/x/sys/unix"
)

// cpuTime returns the user and system time consumed by the process so far.
func cpuTime() time.Duration {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		logCPUError(err)
		return 0
	}
	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano())
}
