// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ksys

// Protection and mapping flags understood by the kernel under test.
const (
	PROT_NONE  = 0x0
	PROT_READ  = 0x1
	PROT_WRITE = 0x2
	PROT_EXEC  = 0x4

	MAP_SHARED    = 0x01
	MAP_PRIVATE   = 0x02
	MAP_FIXED     = 0x10
	MAP_ANONYMOUS = 0x20
)

// Mmap maps length bytes at offset of fd (or anonymous memory) into the
// address space and returns the mapped address. The layer keeps no record of
// mappings; callers track their own address-space layout.
func Mmap(addr, length uintptr, prot, flags, fd int, offset int64) int64 {
	return trap(NrMmap,
		addr, length,
		uintptr(prot), uintptr(flags), uintptr(fd), uintptr(offset))
}

// Munmap removes the mapping of length bytes at addr.
func Munmap(addr, length uintptr) int64 {
	return trap(NrMunmap, addr, length, 0, 0, 0, 0)
}

// Brk sets the program break to addr and returns the kernel's view of the
// break. addr 0 queries without changing it.
func Brk(addr uintptr) int64 {
	return trap(NrBrk, addr, 0, 0, 0, 0, 0)
}
