// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build riscv64 || arm64 || amd64

package ksys

import (
	"runtime"
	"unsafe"
)

// On these targets the kernel exposes the legacy fstat number and the reply
// already has the [Kstat] layout, so Fstat is a plain forward.
//
// Caveat for amd64: a stock Linux dev host fills the x86_64 stat layout
// instead, which only agrees with [Kstat] on Size, Ino and the timestamps.
// Smoke tests on such a host must stick to those fields; the riscv64 and
// arm64 replies match field for field.
func fstat(fd int, st *Kstat) int64 {
	r := trap(NrFstat, uintptr(fd), uintptr(unsafe.Pointer(st)), 0, 0, 0, 0)
	runtime.KeepAlive(st)

	return r
}
