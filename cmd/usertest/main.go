// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"os"

	"github.com/wingrew/thcore/internal/cmd"
)

func main() {
	rc := cmd.Run("usertest", os.Args[1:], cmd.IO{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})

	os.Exit(rc)
}
