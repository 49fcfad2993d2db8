// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ksys

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type trapCall struct {
	nr   Nr
	args [6]uintptr
}

// fakeKernel substitutes the trap primitive with a recorder. Results are
// played from the results queue, or produced by handler if set; with neither
// every call answers 0.
type fakeKernel struct {
	calls   []trapCall
	results []int64
	handler func(nr Nr, args [6]uintptr) int64
}

func installFakeKernel(t *testing.T) *fakeKernel {
	t.Helper()

	fk := &fakeKernel{}
	orig := trap

	trap = func(nr Nr, a1, a2, a3, a4, a5, a6 uintptr) int64 {
		call := trapCall{nr: nr, args: [6]uintptr{a1, a2, a3, a4, a5, a6}}
		fk.calls = append(fk.calls, call)

		if fk.handler != nil {
			return fk.handler(nr, call.args)
		}

		if len(fk.results) > 0 {
			r := fk.results[0]
			fk.results = fk.results[1:]

			return r
		}

		return 0
	}

	t.Cleanup(func() { trap = orig })

	return fk
}

func (fk *fakeKernel) lastCall(t *testing.T) trapCall {
	t.Helper()

	require.NotEmpty(t, fk.calls, "no syscall was issued")

	return fk.calls[len(fk.calls)-1]
}

// cstringAt reads the NUL-terminated string at p. Only valid while the
// pointed-to memory is alive, so callers use it inside a trap handler.
func cstringAt(p uintptr) string {
	if p == 0 {
		return ""
	}

	var buf []byte

	for i := uintptr(0); ; i++ {
		c := *(*byte)(unsafe.Pointer(p + i))
		if c == 0 {
			break
		}

		buf = append(buf, c)
	}

	return string(buf)
}

// signedArg undoes the two's complement conversion of a word argument.
func signedArg(a uintptr) int {
	return int(int64(uint64(a)))
}
