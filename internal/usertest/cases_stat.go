// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package usertest

import (
	"fmt"

	"github.com/wingrew/thcore/ksys"
)

func init() {
	Register(Case{Name: "fstat", Run: runFstat})
}

func runFstat(cfg Config) error {
	path := cfg.scratch("fstat.dat")
	payload := []byte("sized for fstat")

	if err := createFile(path, payload); err != nil {
		return err
	}

	defer ksys.Unlink(path)

	fd := ksys.Open(path, ksys.O_RDONLY)
	if fd < 0 {
		return sysErr("open", fd)
	}

	defer ksys.Close(int(fd))

	var st ksys.Kstat

	if r := ksys.Fstat(int(fd), &st); r < 0 {
		return sysErr("fstat", r)
	}

	if st.Size != int64(len(payload)) {
		return fmt.Errorf("size %d, wrote %d bytes", st.Size, len(payload))
	}

	if st.Ino == 0 {
		return fmt.Errorf("inode number is zero")
	}

	if st.Nlink == 0 {
		return fmt.Errorf("link count is zero")
	}

	return nil
}
