// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ksys

// Syscall numbers of the amd64 kernel build. amd64 predates the asm-generic
// layout and keeps the historical x86_64 numbering; the symbolic set matches
// the other tables exactly.
//
// amd64 is a development-host convenience, not a kernel target. On a stock
// Linux host the fstat reply has the x86_64 stat layout, whose Mode/Nlink/
// UID/GID/Rdev offsets differ from [Kstat]; only the fields both layouts
// agree on (Size, Ino, timestamps) are reliable there. See stat_direct.go.
const (
	NrRead         Nr = 0
	NrWrite        Nr = 1
	NrClose        Nr = 3
	NrFstat        Nr = 5
	NrMmap         Nr = 9
	NrMunmap       Nr = 11
	NrBrk          Nr = 12
	NrSchedYield   Nr = 24
	NrDup          Nr = 32
	NrNanosleep    Nr = 35
	NrGetpid       Nr = 39
	NrClone        Nr = 56
	NrExecve       Nr = 59
	NrExit         Nr = 60
	NrWait4        Nr = 61
	NrUname        Nr = 63
	NrGetcwd       Nr = 79
	NrChdir        Nr = 80
	NrGettimeofday Nr = 96
	NrTimes        Nr = 100
	NrGetppid      Nr = 110
	NrSetpriority  Nr = 141
	NrMount        Nr = 165
	NrUmount2      Nr = 166
	NrGetdents64   Nr = 217
	NrOpenat       Nr = 257
	NrMkdirat      Nr = 258
	NrUnlinkat     Nr = 263
	NrLinkat       Nr = 265
	NrDup3         Nr = 292
	NrPipe2        Nr = 293
	NrStatx        Nr = 332
)
