// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/wingrew/thcore/internal/exitcode"
	"github.com/wingrew/thcore/internal/usertest"
)

// IO provides input and output details for the command.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

func newConfig(flags *flags) (usertest.Config, error) {
	cfg := usertest.Default()

	if flags.configFile != "" {
		var err error

		cfg, err = usertest.Load(flags.configFile)
		if err != nil {
			return usertest.Config{}, fmt.Errorf("load config: %w", err)
		}
	}

	if flags.workDir != "" {
		cfg.WorkDir = flags.workDir
	}

	return cfg, nil
}

func listCases(out io.Writer, cases []usertest.Case) {
	for _, c := range cases {
		if c.Optional {
			fmt.Fprintf(out, "%s (optional)\n", c.Name)
		} else {
			fmt.Fprintln(out, c.Name)
		}
	}
}

func run(flags *flags, cfg IO) error {
	config, err := newConfig(flags)
	if err != nil {
		return err
	}

	cases := usertest.Filter(usertest.Cases(), flags.runPrefix)
	if len(cases) == 0 {
		return fmt.Errorf("%w: %s", ErrNoCasesSelected, flags.runPrefix)
	}

	if flags.list {
		listCases(cfg.Stdout, cases)
		return nil
	}

	slog.Debug("Running suite",
		slog.Int("cases", len(cases)),
		slog.String("workdir", config.WorkDir))

	runner := &usertest.Runner{
		Out:    cfg.Stdout,
		Config: config,
	}

	return verdict(runner.Run(cases))
}

// verdict converts the suite tally into the error carrying the process exit
// code. Failed cases already printed their diagnostics on the console, so
// the error holds nothing but the code.
func verdict(res usertest.Result) error {
	if res.Failed > 0 {
		return exitcode.Error(1)
	}

	return nil
}

func handleParseArgsError(err error) int {
	// Help was requested and has been printed, exit without error.
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	// The flag package already printed parse errors.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

// Run is the main entry point for the usertest command. The exit code is
// always printed as the last line of output so a harness on the other end of
// the console can parse the verdict even if the exit status is lost.
func Run(name string, args []string, cfg IO) int {
	flags, err := parseArgs(name, args, cfg.Stderr)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debug)

	if flags.version {
		fmt.Fprintf(cfg.Stdout, "Version: %s\n", version)
		return 0
	}

	err = run(flags, cfg)

	exitCode, isExitErr := exitcode.From(err)
	if err != nil && !isExitErr {
		slog.Error(err.Error())
	}

	if !flags.list {
		_, _ = exitcode.Fprint(cfg.Stdout, exitCode)
	}

	return exitCode
}
