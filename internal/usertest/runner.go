// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package usertest

import (
	"fmt"
	"io"
	"log/slog"
)

// Result sums up one suite run.
type Result struct {
	Ran     int
	Passed  int
	Failed  int
	Skipped int
}

// Runner executes cases against the kernel and writes the judge console
// protocol to Out.
type Runner struct {
	Out    io.Writer
	Config Config
}

// Run executes the given cases in order and returns the tally. A case fails
// by returning an error or panicking; failures of optional cases are
// reported but count as skipped.
func (r *Runner) Run(cases []Case) Result {
	var res Result

	for _, c := range cases {
		if r.Config.Skipped(c.Name) {
			slog.Debug("Skipping case", slog.String("case", c.Name))

			res.Skipped++

			continue
		}

		fmt.Fprintf(r.Out, "========== START %s ==========\n", c.Name)

		err := runCase(c, r.Config)

		res.Ran++

		switch {
		case err == nil:
			res.Passed++

			fmt.Fprintln(r.Out, "OK")
		case c.Optional:
			res.Ran--
			res.Skipped++

			fmt.Fprintf(r.Out, "SKIP (optional): %v\n", err)
		default:
			res.Failed++

			fmt.Fprintf(r.Out, "FAIL: %v\n", err)
			slog.Error("Case failed",
				slog.String("case", c.Name),
				slog.Any("error", err))
		}

		fmt.Fprintf(r.Out, "========== END %s ==========\n", c.Name)
	}

	fmt.Fprintf(r.Out, "SUMMARY: %d passed, %d failed, %d skipped\n",
		res.Passed, res.Failed, res.Skipped)

	return res
}

// runCase shields the runner from a panicking case so one broken probe does
// not take down the whole suite on the kernel.
func runCase(c Case, cfg Config) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, v)
		}
	}()

	return c.Run(cfg)
}
