// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package usertest is the syscall smoke-test suite run on the kernel under
// test. Each case exercises one area of the ksys layer through real traps
// and reports an error on unexpected kernel behavior.
//
// Cases register themselves in file init functions and run in registration
// order. Output follows the judge console protocol: one START/END marker
// pair per case with the verdict in between.
package usertest

import (
	"fmt"
	"slices"
	"strings"

	"github.com/wingrew/thcore/ksys"
)

// Case is one kernel smoke test.
type Case struct {
	Name string

	// Optional marks probes of behavior a kernel build may legitimately
	// lack. A failing optional case is reported but does not fail the run.
	Optional bool

	Run func(cfg Config) error
}

var registry []Case

// Register adds c to the suite. Case names are unique; registering a
// nameless or duplicate case is a programming error.
func Register(c Case) {
	if c.Name == "" || c.Run == nil {
		panic("usertest: case without name or run function")
	}

	for _, existing := range registry {
		if existing.Name == c.Name {
			panic("usertest: duplicate case " + c.Name)
		}
	}

	registry = append(registry, c)
}

// Cases returns the registered suite in registration order.
func Cases() []Case {
	return slices.Clone(registry)
}

// Filter returns the cases whose names start with prefix.
func Filter(cases []Case, prefix string) []Case {
	var out []Case

	for _, c := range cases {
		if strings.HasPrefix(c.Name, prefix) {
			out = append(out, c)
		}
	}

	return out
}

// sysErr wraps a failing raw syscall result with the operation that issued
// it.
func sysErr(op string, r int64) error {
	return fmt.Errorf("%s: %w", op, ksys.AsError(r))
}
