// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ksys

import (
	"runtime"
	"unsafe"
)

// TimeVal is the seconds/microseconds pair the time and sleep calls exchange
// with the kernel. When the kernel produces it, Usec is in [0, 1e6).
type TimeVal struct {
	Sec  int64
	Usec int64
}

// SysGetTime stores the current time of day in tv. tz is forwarded
// untouched; the kernel under test ignores it.
func SysGetTime(tv *TimeVal, tz int) int64 {
	r := trap(NrGettimeofday, uintptr(unsafe.Pointer(tv)), uintptr(tz), 0, 0, 0, 0)
	runtime.KeepAlive(tv)

	return r
}

// GetTime returns a millisecond counter derived from the low 16 bits of the
// current seconds value, or -1 if the time syscall fails.
//
// Known limitation: the 16-bit truncation wraps roughly every 18 hours. The
// counter orders events within a test run and is not a clock.
func GetTime() int64 {
	var tv TimeVal

	if r := SysGetTime(&tv, 0); r < 0 {
		return -1
	}

	return (tv.Sec&0xffff)*1000 + tv.Usec/1000
}

// Sleep suspends the calling task for sec seconds. If the kernel reports an
// early wake (non-zero result), the remaining whole seconds it wrote back
// into the request structure are returned; a completed sleep returns 0. An
// interrupted sleep is not resumed.
//
// The request and remainder share one [TimeVal]: the kernel under test reads
// and writes the same seconds/microseconds pair.
func Sleep(sec int64) int64 {
	tv := TimeVal{Sec: sec}

	r := trap(NrNanosleep,
		uintptr(unsafe.Pointer(&tv)), uintptr(unsafe.Pointer(&tv)),
		0, 0, 0, 0)
	runtime.KeepAlive(&tv)

	if r != 0 {
		return tv.Sec
	}

	return 0
}
