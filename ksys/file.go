// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ksys

import (
	"runtime"
	"unsafe"
)

// Open flags understood by the kernel under test.
const (
	O_RDONLY    = 0x0
	O_WRONLY    = 0x1
	O_RDWR      = 0x2
	O_CREATE    = 0x40
	O_DIRECTORY = 0x200000
)

// Open opens path relative to the current working directory and returns a
// descriptor.
//
// Fixed policy: the mode word handed to the kernel is always O_RDWR, no
// matter what flags requests. The test payloads this layer serves rely on
// that behavior, so it is kept as-is rather than forwarding a caller mode.
func Open(path string, flags int) int64 {
	p, errv := pathArg(path)
	if p == nil {
		return errv
	}

	r := trap(NrOpenat, fdArg(AT_FDCWD), uintptr(unsafe.Pointer(p)), uintptr(flags), O_RDWR, 0, 0)
	runtime.KeepAlive(p)

	return r
}

// Openat opens path relative to the directory descriptor dirfd (or to the
// current working directory for [AT_FDCWD]).
//
// Fixed policy: files are always created with mode 0o600; there is no mode
// parameter.
func Openat(dirfd int, path string, flags int) int64 {
	p, errv := pathArg(path)
	if p == nil {
		return errv
	}

	r := trap(NrOpenat, uintptr(dirfd), uintptr(unsafe.Pointer(p)), uintptr(flags), 0o600, 0, 0)
	runtime.KeepAlive(p)

	return r
}

// Close closes the descriptor fd.
func Close(fd int) int64 {
	return trap(NrClose, uintptr(fd), 0, 0, 0, 0, 0)
}

// Read reads from fd into buf and returns the byte count the kernel reports.
// Short reads are not retried.
func Read(fd int, buf []byte) int64 {
	r := trap(NrRead, uintptr(fd), bufArg(buf), uintptr(len(buf)), 0, 0, 0)
	runtime.KeepAlive(buf)

	return r
}

// Write writes buf to fd and returns the byte count the kernel reports.
// Short writes are not retried.
func Write(fd int, buf []byte) int64 {
	r := trap(NrWrite, uintptr(fd), bufArg(buf), uintptr(len(buf)), 0, 0, 0)
	runtime.KeepAlive(buf)

	return r
}

// Pipe fills fds with the read and write descriptors of a new pipe.
func Pipe(fds *[2]int32) int64 {
	r := trap(NrPipe2, uintptr(unsafe.Pointer(fds)), 0, 0, 0, 0, 0)
	runtime.KeepAlive(fds)

	return r
}

// Dup duplicates fd onto the lowest free descriptor.
func Dup(fd int) int64 {
	return trap(NrDup, uintptr(fd), 0, 0, 0, 0, 0)
}

// Dup2 duplicates oldfd onto newfd.
func Dup2(oldfd, newfd int) int64 {
	return trap(NrDup3, uintptr(oldfd), uintptr(newfd), 0, 0, 0, 0)
}

// Mkdir creates a directory relative to the current working directory.
func Mkdir(path string, mode uint32) int64 {
	p, errv := pathArg(path)
	if p == nil {
		return errv
	}

	r := trap(NrMkdirat, fdArg(AT_FDCWD), uintptr(unsafe.Pointer(p)), uintptr(mode), 0, 0, 0)
	runtime.KeepAlive(p)

	return r
}

// Getdents fills buf with directory entries of the open directory fd in the
// kernel's on-disk record format. The buffer layout is owned by the kernel;
// this layer only forwards the destination and its length.
func Getdents(fd int, buf []byte) int64 {
	r := trap(NrGetdents64, uintptr(fd), bufArg(buf), uintptr(len(buf)), 0, 0, 0)
	runtime.KeepAlive(buf)

	return r
}

// Linkat creates a hard link to oldpath at newpath, each resolved relative
// to its directory descriptor.
func Linkat(olddirfd int, oldpath string, newdirfd int, newpath string, flags int) int64 {
	op, errv := pathArg(oldpath)
	if op == nil {
		return errv
	}

	np, errv := pathArg(newpath)
	if np == nil {
		return errv
	}

	r := trap(NrLinkat,
		uintptr(olddirfd), uintptr(unsafe.Pointer(op)),
		uintptr(newdirfd), uintptr(unsafe.Pointer(np)),
		uintptr(flags), 0)
	runtime.KeepAlive(op)
	runtime.KeepAlive(np)

	return r
}

// Unlinkat removes the directory entry at path relative to dirfd.
func Unlinkat(dirfd int, path string, flags int) int64 {
	p, errv := pathArg(path)
	if p == nil {
		return errv
	}

	r := trap(NrUnlinkat, uintptr(dirfd), uintptr(unsafe.Pointer(p)), uintptr(flags), 0, 0, 0)
	runtime.KeepAlive(p)

	return r
}

// Link creates a hard link relative to the current working directory.
func Link(oldpath, newpath string) int64 {
	return Linkat(AT_FDCWD, oldpath, AT_FDCWD, newpath, 0)
}

// Unlink removes a directory entry relative to the current working
// directory.
func Unlink(path string) int64 {
	return Unlinkat(AT_FDCWD, path, 0)
}
