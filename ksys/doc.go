// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ksys is the user-space syscall layer for the thcore kernel.
//
// Test binaries use this package instead of a libc. Every function forwards
// to a raw kernel syscall using the per-architecture number table in this
// package and returns the kernel's signed result unchanged: values >= 0 are
// success values (a descriptor, a byte count, a pid), negative values carry
// the kernel error code as their magnitude. There is no buffering, no retry
// on short reads or writes, and no local validation; result interpretation
// is the caller's job.
//
// The layer keeps no state of its own. All descriptor, process and memory
// bookkeeping lives in the kernel, so every call is independent and
// reentrant.
//
// The kernel under test exposes only the *at family of path syscalls. The
// classic forms (Open, Mkdir, Link, Unlink) pass the [AT_FDCWD] sentinel and
// resolve relative to the current working directory.
package ksys
