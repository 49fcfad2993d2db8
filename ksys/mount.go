// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ksys

import (
	"runtime"
	"unsafe"
)

// Mount mounts the file system fstype from the source device special at
// target. data carries type-specific options and may be empty, in which case
// a null pointer is forwarded.
func Mount(special, target, fstype string, flags uintptr, data string) int64 {
	sp, errv := pathArg(special)
	if sp == nil {
		return errv
	}

	tp, errv := pathArg(target)
	if tp == nil {
		return errv
	}

	fp, errv := pathArg(fstype)
	if fp == nil {
		return errv
	}

	var dataArg uintptr

	var dp *byte

	if data != "" {
		dp, errv = pathArg(data)
		if dp == nil {
			return errv
		}

		dataArg = uintptr(unsafe.Pointer(dp))
	}

	r := trap(NrMount,
		uintptr(unsafe.Pointer(sp)), uintptr(unsafe.Pointer(tp)),
		uintptr(unsafe.Pointer(fp)), flags, dataArg, 0)
	runtime.KeepAlive(sp)
	runtime.KeepAlive(tp)
	runtime.KeepAlive(fp)
	runtime.KeepAlive(dp)

	return r
}

// Umount unmounts the file system mounted at special, with no flags.
func Umount(special string) int64 {
	p, errv := pathArg(special)
	if p == nil {
		return errv
	}

	r := trap(NrUmount2, uintptr(unsafe.Pointer(p)), 0, 0, 0, 0, 0)
	runtime.KeepAlive(p)

	return r
}
