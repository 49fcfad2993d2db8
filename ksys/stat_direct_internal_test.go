// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build riscv64 || arm64 || amd64

package ksys

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestFstatDirectForward(t *testing.T) {
	fk := installFakeKernel(t)

	var st Kstat

	fk.results = []int64{0}

	Fstat(4, &st)

	call := fk.lastCall(t)
	assert.Equal(t, NrFstat, call.nr)
	assert.Equal(t, uintptr(4), call.args[0])
	assert.Equal(t, uintptr(unsafe.Pointer(&st)), call.args[1])
	assert.Len(t, fk.calls, 1, "no statx round trip on direct targets")
}
