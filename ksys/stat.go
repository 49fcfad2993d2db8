// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ksys

import (
	"runtime"
	"unsafe"
)

const (
	// AT_EMPTY_PATH makes a *at syscall operate on its descriptor argument
	// itself instead of resolving a path.
	AT_EMPTY_PATH = 0x1000

	// statxMask is the fixed field request handed to statx. The kernel under
	// test fills at least these fields; extra fields are ignored on repack.
	statxMask = 0x77
)

// StatxTimestamp is one (seconds, nanoseconds) pair of an extended metadata
// reply.
type StatxTimestamp struct {
	Sec  int64
	Nsec uint32
	_    int32
}

// Statx mirrors the kernel's extended metadata reply. The layout is the wire
// format; field order and padding must not change.
type Statx struct {
	Mask           uint32
	Blksize        uint32
	Attributes     uint64
	Nlink          uint32
	UID            uint32
	GID            uint32
	Mode           uint16
	_              [1]uint16
	Ino            uint64
	Size           uint64
	Blocks         uint64
	AttributesMask uint64
	Atime          StatxTimestamp
	Btime          StatxTimestamp
	Ctime          StatxTimestamp
	Mtime          StatxTimestamp
	RdevMajor      uint32
	RdevMinor      uint32
	DevMajor       uint32
	DevMinor       uint32
	_              [14]uint64
}

// Kstat is the stable stat shape test programs consume. The layout is the
// wire format of the kernel's legacy fstat reply.
type Kstat struct {
	Dev       uint64
	Ino       uint64
	Mode      uint32
	Nlink     uint32
	UID       uint32
	GID       uint32
	Rdev      uint64
	_         uint64
	Size      int64
	Blksize   int32
	_         int32
	Blocks    int64
	AtimeSec  int64
	AtimeNsec int64
	MtimeSec  int64
	MtimeNsec int64
	CtimeSec  int64
	CtimeNsec int64
	_         [2]uint32
}

// MakeDeviceID packs a major/minor pair into the kernel's extended dev_t
// encoding.
func MakeDeviceID(major, minor uint32) uint64 {
	return (uint64(major)&0xfffff000)<<32 |
		(uint64(major)&0x00000fff)<<8 |
		(uint64(minor)&0xffffff00)<<12 |
		(uint64(minor) & 0x000000ff)
}

// Fstat fills st with the metadata of the open descriptor fd. Whether this
// is a direct kernel call or a statx round trip is decided per target
// architecture at build time; see stat_direct.go and stat_statx.go.
func Fstat(fd int, st *Kstat) int64 {
	return fstat(fd, st)
}

// fstatViaStatx serves Fstat on kernels that have no legacy fstat number: it
// queries statx for the descriptor itself (empty path) with the fixed field
// mask and repacks the reply. A failing statx propagates its raw result and
// leaves st untouched.
func fstatViaStatx(fd int, st *Kstat) int64 {
	var stx Statx

	empty, errv := pathArg("")
	if empty == nil {
		return errv
	}

	r := trap(NrStatx,
		uintptr(fd), uintptr(unsafe.Pointer(empty)),
		AT_EMPTY_PATH, statxMask,
		uintptr(unsafe.Pointer(&stx)), 0)
	runtime.KeepAlive(empty)

	if r < 0 {
		return r
	}

	*st = statFromStatx(&stx)

	return r
}

// statFromStatx repacks an extended metadata reply into the stable legacy
// shape. Timestamps map one to one; device numbers are re-encoded from their
// major/minor pairs.
func statFromStatx(stx *Statx) Kstat {
	return Kstat{
		Dev:       MakeDeviceID(stx.DevMajor, stx.DevMinor),
		Ino:       stx.Ino,
		Mode:      uint32(stx.Mode),
		Nlink:     stx.Nlink,
		UID:       stx.UID,
		GID:       stx.GID,
		Rdev:      MakeDeviceID(stx.RdevMajor, stx.RdevMinor),
		Size:      int64(stx.Size),
		Blksize:   int32(stx.Blksize),
		Blocks:    int64(stx.Blocks),
		AtimeSec:  stx.Atime.Sec,
		AtimeNsec: int64(stx.Atime.Nsec),
		MtimeSec:  stx.Mtime.Sec,
		MtimeNsec: int64(stx.Mtime.Nsec),
		CtimeSec:  stx.Ctime.Sec,
		CtimeNsec: int64(stx.Ctime.Nsec),
	}
}
