// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build integration

package ksys_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingrew/thcore/ksys"
)

// These tests issue real syscalls and need a kernel with the asm-generic ABI,
// either the kernel under test or a Linux development host.

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	payload := []byte("round trip payload")

	fd := ksys.Openat(ksys.AT_FDCWD, path, ksys.O_CREATE|ksys.O_RDWR)
	require.GreaterOrEqual(t, fd, int64(0), "create: %v", ksys.AsError(fd))

	n := ksys.Write(int(fd), payload)
	require.Equal(t, int64(len(payload)), n, "write: %v", ksys.AsError(n))
	require.Equal(t, int64(0), ksys.Close(int(fd)))

	fd = ksys.Open(path, ksys.O_RDONLY)
	require.GreaterOrEqual(t, fd, int64(0), "open: %v", ksys.AsError(fd))

	t.Cleanup(func() { ksys.Close(int(fd)) })

	buf := make([]byte, 64)
	n = ksys.Read(int(fd), buf)
	require.Equal(t, int64(len(payload)), n, "read: %v", ksys.AsError(n))
	assert.Equal(t, payload, buf[:n])
}

func TestGetcwdReportsAPath(t *testing.T) {
	buf := make([]byte, 256)

	r := ksys.Getcwd(buf)
	require.GreaterOrEqual(t, r, int64(0), "getcwd: %v", ksys.AsError(r))

	end := bytes.IndexByte(buf, 0)
	require.Positive(t, end)
	assert.True(t, filepath.IsAbs(string(buf[:end])))
}

func TestFstatReportsSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")

	fd := ksys.Openat(ksys.AT_FDCWD, path, ksys.O_CREATE|ksys.O_RDWR)
	require.GreaterOrEqual(t, fd, int64(0), "create: %v", ksys.AsError(fd))

	t.Cleanup(func() { ksys.Close(int(fd)) })

	payload := []byte("123456789")
	require.Equal(t, int64(len(payload)), ksys.Write(int(fd), payload))

	var st ksys.Kstat

	r := ksys.Fstat(int(fd), &st)
	require.Equal(t, int64(0), r, "fstat: %v", ksys.AsError(r))

	// Only Size and Ino are asserted: on an amd64 Linux host the reply has
	// the x86_64 stat layout, which agrees with Kstat on exactly these
	// fields and the timestamps. See stat_direct.go.
	assert.Equal(t, int64(len(payload)), st.Size)
	assert.NotZero(t, st.Ino)
}
