// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package exitcode implements the console line the guest test binary prints
// as its last output so an external harness can collect the verdict from the
// serial log.
package exitcode

import (
	"fmt"
	"io"
	"strings"
)

// Identifier marks the console line that carries the suite verdict.
const Identifier = "USERTEST EXIT CODE"

const format = Identifier + ": %d"

// Sprint renders the full verdict line for the given exit code.
func Sprint(exitCode int) string {
	return fmt.Sprintf(format, exitCode)
}

// Fprint writes the verdict line followed by a newline into w.
func Fprint(w io.Writer, exitCode int) (int, error) {
	return fmt.Fprintln(w, Sprint(exitCode))
}

// Parse scans str for a verdict line. The identifier may start anywhere in
// the string, so scraping a whole serial log works. Returns the exit code
// and whether one was found.
//
// External harnesses cannot import this package; Parse pins the protocol in
// code so the suite's own tests catch format drift, and serves as the
// reference for out-of-tree scrapers.
func Parse(str string) (int, bool) {
	start := strings.Index(str, Identifier)
	if start < 0 {
		return 0, false
	}

	var exitCode int

	if _, err := fmt.Sscanf(str[start:], format, &exitCode); err != nil {
		return 0, false
	}

	return exitCode, true
}
