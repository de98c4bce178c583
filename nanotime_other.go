//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd

package jrandom

import "time"

var processStart = time.Now()

// nanoTime returns the nanoseconds elapsed on the monotonic clock since the package was
// initialized.
func nanoTime() int64 {
	return time.Since(processStart).Nanoseconds()
}
