//go:build windows

package jrandom

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const nanosPerSecond = 1_000_000_000

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = modkernel32.NewProc("QueryPerformanceFrequency")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")

	qpcFrequency = getFrequency()
)

// getFrequency returns frequency in ticks per second.
func getFrequency() int64 {
	var freq int64
	r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		panic(fmt.Sprintf("call failed: %v", err))
	}
	return freq
}

// nanoTime returns the current value of the performance counter in nanoseconds, like
// Java's System.nanoTime(). The values are only comparable within the same process.
func nanoTime() int64 {
	var qpc int64
	r1, _, err := procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	if r1 == 0 {
		panic(fmt.Sprintf("call failed: %v", err))
	}
	// split to avoid overflowing qpc * 1e9 on long uptimes
	return qpc/qpcFrequency*nanosPerSecond + qpc%qpcFrequency*nanosPerSecond/qpcFrequency
}
