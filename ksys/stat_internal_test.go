// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ksys

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeDeviceID(t *testing.T) {
	tests := []struct {
		name     string
		major    uint32
		minor    uint32
		expected uint64
	}{
		{name: "zero", major: 0, minor: 0, expected: 0},
		{name: "small pair", major: 8, minor: 1, expected: 0x801},
		{name: "low bits full", major: 0xfff, minor: 0xff, expected: 0xfffff},
		{name: "all fields", major: 0x12345678, minor: 0x9abcdef0, expected: 0x123459abcde678f0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MakeDeviceID(tt.major, tt.minor))
		})
	}
}

func TestStatFromStatx(t *testing.T) {
	stx := &Statx{
		Mask:      statxMask,
		Blksize:   4096,
		Nlink:     2,
		UID:       1000,
		GID:       100,
		Mode:      0o100644,
		Ino:       1337,
		Size:      8192,
		Blocks:    16,
		Atime:     StatxTimestamp{Sec: 1, Nsec: 11},
		Btime:     StatxTimestamp{Sec: 2, Nsec: 22},
		Ctime:     StatxTimestamp{Sec: 3, Nsec: 33},
		Mtime:     StatxTimestamp{Sec: 4, Nsec: 44},
		RdevMajor: 5,
		RdevMinor: 6,
		DevMajor:  0xfe,
		DevMinor:  0x01,
	}

	expected := Kstat{
		Dev:       MakeDeviceID(0xfe, 0x01),
		Ino:       1337,
		Mode:      0o100644,
		Nlink:     2,
		UID:       1000,
		GID:       100,
		Rdev:      MakeDeviceID(5, 6),
		Size:      8192,
		Blksize:   4096,
		Blocks:    16,
		AtimeSec:  1,
		AtimeNsec: 11,
		MtimeSec:  4,
		MtimeNsec: 44,
		CtimeSec:  3,
		CtimeNsec: 33,
	}

	assert.Equal(t, expected, statFromStatx(stx))
}

// The fallback path must encode the device fields with the fixed bit packing
// for any major/minor pair the kernel reports, not just friendly ones.
func TestFstatFallbackDevicePacking(t *testing.T) {
	pairs := []struct{ major, minor uint32 }{
		{0, 0},
		{1, 0},
		{0, 1},
		{8, 1},
		{0xfff, 0xff},
		{0x1000, 0x100},
		{0xfffff000, 0xffffff00},
		{0xffffffff, 0xffffffff},
		{0x12345678, 0x9abcdef0},
	}

	for _, pair := range pairs {
		fk := installFakeKernel(t)
		fk.handler = func(_ Nr, args [6]uintptr) int64 {
			stx := (*Statx)(unsafe.Pointer(args[4]))
			*stx = Statx{
				Mask:      statxMask,
				DevMajor:  pair.major,
				DevMinor:  pair.minor,
				RdevMajor: pair.minor,
				RdevMinor: pair.major,
			}

			return 0
		}

		var st Kstat

		require.Equal(t, int64(0), fstatViaStatx(9, &st))
		assert.Equal(t, MakeDeviceID(pair.major, pair.minor), st.Dev,
			"dev for %#x:%#x", pair.major, pair.minor)
		assert.Equal(t, MakeDeviceID(pair.minor, pair.major), st.Rdev,
			"rdev for %#x:%#x", pair.minor, pair.major)
	}
}

func TestFstatFallbackRequest(t *testing.T) {
	fk := installFakeKernel(t)

	var path string

	fk.handler = func(_ Nr, args [6]uintptr) int64 {
		path = cstringAt(args[1])
		return 0
	}

	var st Kstat

	fstatViaStatx(7, &st)

	call := fk.lastCall(t)
	assert.Equal(t, NrStatx, call.nr)
	assert.Equal(t, uintptr(7), call.args[0])
	assert.Empty(t, path, "the descriptor itself is queried")
	assert.Equal(t, uintptr(AT_EMPTY_PATH), call.args[2])
	assert.Equal(t, uintptr(statxMask), call.args[3])
}

func TestFstatFallbackErrorPropagates(t *testing.T) {
	fk := installFakeKernel(t)
	fk.results = []int64{-9}

	st := Kstat{Ino: 123}

	assert.Equal(t, int64(-9), fstatViaStatx(3, &st))
	assert.Equal(t, Kstat{Ino: 123}, st, "a failed query leaves the result untouched")
}
