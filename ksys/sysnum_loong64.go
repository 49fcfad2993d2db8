// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ksys

// Syscall numbers of the loong64 kernel build. The table follows the Linux
// asm-generic numbering, but loong64 dropped the legacy stat family: there is
// no fstat number, metadata queries go through statx. See stat_statx.go.
const (
	NrGetcwd       Nr = 17
	NrDup          Nr = 23
	NrDup3         Nr = 24
	NrMkdirat      Nr = 34
	NrUnlinkat     Nr = 35
	NrLinkat       Nr = 37
	NrUmount2      Nr = 39
	NrMount        Nr = 40
	NrChdir        Nr = 49
	NrOpenat       Nr = 56
	NrClose        Nr = 57
	NrPipe2        Nr = 59
	NrGetdents64   Nr = 61
	NrRead         Nr = 63
	NrWrite        Nr = 64
	NrExit         Nr = 93
	NrNanosleep    Nr = 101
	NrSchedYield   Nr = 124
	NrSetpriority  Nr = 140
	NrTimes        Nr = 153
	NrUname        Nr = 160
	NrGettimeofday Nr = 169
	NrGetpid       Nr = 172
	NrGetppid      Nr = 173
	NrBrk          Nr = 214
	NrMunmap       Nr = 215
	NrClone        Nr = 220
	NrExecve       Nr = 221
	NrMmap         Nr = 222
	NrWait4        Nr = 260
	NrStatx        Nr = 291
)
