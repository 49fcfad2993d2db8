// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build loong64

package ksys

// loong64 kernels have no legacy fstat number; the extended metadata call
// covers a superset of its fields, so Fstat is reconstructed from statx.
func fstat(fd int, st *Kstat) int64 {
	return fstatViaStatx(fd, st)
}
