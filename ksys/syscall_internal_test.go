// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ksys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyscallPadsArguments(t *testing.T) {
	fk := installFakeKernel(t)

	Syscall(NrClose, 7)

	call := fk.lastCall(t)
	assert.Equal(t, NrClose, call.nr)
	assert.Equal(t, [6]uintptr{7, 0, 0, 0, 0, 0}, call.args)
}

func TestSyscallMaxArguments(t *testing.T) {
	fk := installFakeKernel(t)

	Syscall(NrMmap, 1, 2, 3, 4, 5, 6)

	call := fk.lastCall(t)
	assert.Equal(t, [6]uintptr{1, 2, 3, 4, 5, 6}, call.args)
}

func TestSyscallResultPassThrough(t *testing.T) {
	tests := []struct {
		name   string
		result int64
	}{
		{name: "success value", result: 42},
		{name: "zero", result: 0},
		{name: "error", result: -38},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fk := installFakeKernel(t)
			fk.results = []int64{tt.result}

			assert.Equal(t, tt.result, Syscall(NrGetpid))
			assert.Len(t, fk.calls, 1, "no retry on any result")
		})
	}
}

func TestAsError(t *testing.T) {
	assert.NoError(t, AsError(0))
	assert.NoError(t, AsError(17))

	err := AsError(-2)
	require.Error(t, err)
	assert.Equal(t, "ENOENT", err.Error())

	assert.Equal(t, "errno 9999", AsError(-9999).Error())
}
