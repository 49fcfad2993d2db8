// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package usertest

import (
	"bytes"
	"fmt"

	"github.com/wingrew/thcore/ksys"
)

func init() {
	Register(Case{Name: "uname", Run: runUname})
	Register(Case{Name: "getcwd_chdir", Run: runGetcwdChdir})
}

func runUname(Config) error {
	buf := make([]byte, 65*6)

	if r := ksys.Uname(buf); r < 0 {
		return sysErr("uname", r)
	}

	// The first utsname field is sysname, a NUL terminated string.
	if buf[0] == 0 {
		return fmt.Errorf("uname returned an empty sysname")
	}

	return nil
}

// cwd reads the current working directory as a string.
func cwd() (string, error) {
	buf := make([]byte, 256)

	r := ksys.Getcwd(buf)
	if r < 0 {
		return "", sysErr("getcwd", r)
	}

	end := bytes.IndexByte(buf, 0)
	if end < 0 {
		end = len(buf)
	}

	return string(buf[:end]), nil
}

func runGetcwdChdir(cfg Config) error {
	orig, err := cwd()
	if err != nil {
		return err
	}

	if len(orig) == 0 || orig[0] != '/' {
		return fmt.Errorf("working directory %q is not absolute", orig)
	}

	dir := cfg.scratch("chdir.d")

	if r := ksys.Mkdir(dir, 0o755); r < 0 {
		return sysErr("mkdir", r)
	}

	if r := ksys.Chdir(dir); r < 0 {
		return sysErr("chdir", r)
	}

	now, err := cwd()
	if err != nil {
		return err
	}

	if now != dir {
		return fmt.Errorf("working directory %q after chdir to %q", now, dir)
	}

	return ksys.AsError(ksys.Chdir(orig))
}
