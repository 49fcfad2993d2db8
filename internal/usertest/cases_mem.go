// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package usertest

import (
	"fmt"
	"unsafe"

	"github.com/wingrew/thcore/ksys"
)

func init() {
	Register(Case{Name: "brk", Run: runBrk})
	Register(Case{Name: "mmap", Run: runMmap})
}

func runBrk(Config) error {
	cur := ksys.Brk(0)
	if cur < 0 {
		return sysErr("brk 0", cur)
	}

	grown := ksys.Brk(uintptr(cur) + 4096)
	if grown < 0 {
		return sysErr("brk grow", grown)
	}

	if grown < cur+4096 {
		return fmt.Errorf("break moved to %#x, expected at least %#x", grown, cur+4096)
	}

	return ksys.AsError(ksys.Brk(uintptr(cur)))
}

func runMmap(Config) error {
	const length = 4096

	addr := ksys.Mmap(0, length,
		ksys.PROT_READ|ksys.PROT_WRITE,
		ksys.MAP_PRIVATE|ksys.MAP_ANONYMOUS,
		-1, 0)
	if addr < 0 {
		return sysErr("mmap", addr)
	}

	region := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), length)

	region[0] = 0xa5
	region[length-1] = 0x5a

	if region[0] != 0xa5 || region[length-1] != 0x5a {
		return fmt.Errorf("mapping at %#x did not hold written bytes", addr)
	}

	return ksys.AsError(ksys.Munmap(uintptr(addr), length))
}
