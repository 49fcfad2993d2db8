// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ksys

import (
	"strconv"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Nr is a kernel syscall number.
//
// The tables in the sysnum_*.go files pin the numbers the kernel under test
// implements. They are deliberately independent of the host's libc headers:
// the kernel is the contract, not the build machine.
type Nr uintptr

// AT_FDCWD is the directory descriptor sentinel meaning "resolve relative to
// the current working directory".
const AT_FDCWD = -100

// trap performs the architecture's syscall instruction and returns the raw
// signed result. It is a variable so white-box tests can substitute a
// recording fake kernel.
var trap = func(nr Nr, a1, a2, a3, a4, a5, a6 uintptr) int64 {
	r1, _, errno := unix.Syscall6(uintptr(nr), a1, a2, a3, a4, a5, a6)
	if errno != 0 {
		return -int64(errno)
	}

	return int64(r1)
}

// Syscall issues the raw syscall nr with up to six word-sized arguments and
// returns the kernel's signed result. It performs no validation and no
// retries; a negative result carries the kernel error code as its magnitude.
func Syscall(nr Nr, args ...uintptr) int64 {
	var a [6]uintptr

	copy(a[:], args)

	return trap(nr, a[0], a[1], a[2], a[3], a[4], a[5])
}

// Errno is a kernel error code, the magnitude of a negative syscall result.
type Errno int64

func (e Errno) Error() string {
	if name := unix.ErrnoName(unix.Errno(e)); name != "" {
		return name
	}

	return "errno " + strconv.FormatInt(int64(e), 10)
}

// AsError converts a raw syscall result into an error: nil for results >= 0,
// the corresponding [Errno] otherwise. It is a convenience for diagnostic
// layers; the shim itself always hands out raw values.
func AsError(r int64) error {
	if r >= 0 {
		return nil
	}

	return Errno(-r)
}

// pathArg returns a pointer to a NUL-terminated copy of path for use as a
// syscall argument. A path containing a NUL byte yields a negative result in
// the kernel's error convention.
func pathArg(path string) (*byte, int64) {
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		return nil, -int64(unix.EINVAL)
	}

	return p, 0
}

// fdArg widens a descriptor for the trap argument array. Negative sentinels
// like [AT_FDCWD] become their two's complement word.
func fdArg(fd int) uintptr {
	return uintptr(fd)
}

// bufArg returns the address of the first byte of buf, or 0 for an empty
// buffer.
func bufArg(buf []byte) uintptr {
	if len(buf) == 0 {
		return 0
	}

	return uintptr(unsafe.Pointer(&buf[0]))
}
