//go:build linux || darwin || freebsd || netbsd || openbsd

package jrandom

import "golang.org/x/sys/unix"

// nanoTime returns the current value of the monotonic clock in nanoseconds, like Java's
// System.nanoTime(). The values are only comparable within the same process.
func nanoTime() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		panic(err)
	}
	return ts.Nano()
}
