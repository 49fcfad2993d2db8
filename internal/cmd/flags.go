// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"io"
)

// Set on build.
var version = "dev"

type flags struct {
	configFile string
	workDir    string
	runPrefix  string
	list       bool
	debug      bool
	version    bool
}

func parseArgs(name string, args []string, output io.Writer) (*flags, error) {
	flags := &flags{}

	fs := flag.NewFlagSet(name+" [flags...]", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(
		&flags.configFile,
		"config",
		"",
		"TOML run configuration file to load",
	)

	fs.StringVar(
		&flags.workDir,
		"workdir",
		"",
		"writable scratch directory, overrides the configuration file",
	)

	fs.StringVar(
		&flags.runPrefix,
		"run",
		"",
		"run only cases whose name starts with this prefix",
	)

	fs.BoolVar(
		&flags.list,
		"list",
		false,
		"list selected cases instead of running them",
	)

	fs.BoolVar(
		&flags.debug,
		"debug",
		false,
		"enable debug output",
	)

	fs.BoolVar(
		&flags.version,
		"version",
		false,
		"show version and exit",
	)

	err := fs.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}

		return nil, &ParseArgsError{msg: "parse args", err: err}
	}

	if fs.NArg() > 0 {
		return nil, &ParseArgsError{msg: "unexpected argument: " + fs.Arg(0)}
	}

	return flags, nil
}
