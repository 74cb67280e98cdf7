//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package metrics

import "time"

func cpuTime() time.Duration {
	return 0
}
