// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ksys

import (
	"runtime"
	"unsafe"
)

// Getcwd stores the current working directory as a NUL-terminated string in
// buf and returns the raw syscall result.
func Getcwd(buf []byte) int64 {
	r := trap(NrGetcwd, bufArg(buf), uintptr(len(buf)), 0, 0, 0, 0)
	runtime.KeepAlive(buf)

	return r
}

// Chdir changes the current working directory to path.
func Chdir(path string) int64 {
	p, errv := pathArg(path)
	if p == nil {
		return errv
	}

	r := trap(NrChdir, uintptr(unsafe.Pointer(p)), 0, 0, 0, 0, 0)
	runtime.KeepAlive(p)

	return r
}

// Uname fills buf with the kernel's identification record. The record
// layout is kernel-defined and opaque to this layer; buf must be large
// enough for it.
func Uname(buf []byte) int64 {
	r := trap(NrUname, bufArg(buf), 0, 0, 0, 0, 0)
	runtime.KeepAlive(buf)

	return r
}
